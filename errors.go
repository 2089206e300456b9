package preprocess

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidArgument is wrapped by every error returned for a violated
// precondition, e.g. Clip with min_val > max_val.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentErrors maps argument names to their errors.
// It is an alias for [validation.Errors] from ozzo-validation.
type ArgumentErrors = validation.Errors

func invalidArgument(name, code, message string) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, ArgumentErrors{
		name: validation.NewError(code, message),
	})
}
