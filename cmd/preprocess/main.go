// Command preprocess runs data preprocessing transforms from the command line
// or serves them over HTTP.
package main

import (
	"context"
	"os"

	"github.com/Gobd/preprocess/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
