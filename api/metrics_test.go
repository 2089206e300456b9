package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserve(t *testing.T) {
	m := NewMetrics()
	m.Observe("clean/unique", statusOK, 3, time.Millisecond)
	m.Observe("clean/unique", statusOK, 0, time.Millisecond)
	m.Observe("clean/unique", statusInvalid, 0, time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				got[f.GetName()] += metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				got[f.GetName()] += float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	assert.Equal(t, float64(3), got["preprocess_requests_total"])
	assert.Equal(t, float64(3), got["preprocess_request_duration_seconds"])
	assert.Equal(t, float64(3), got["preprocess_elements_dropped_total"])
}
