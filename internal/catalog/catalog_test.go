package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferingsCoverFourServiceTypes(t *testing.T) {
	offerings := Offerings()
	require.Len(t, offerings, 4)

	seen := map[string]bool{}
	for _, o := range offerings {
		assert.True(t, o.ServiceType.Valid(), o.Title)
		assert.Len(t, o.Features, 4, o.Title)
		assert.NotEmpty(t, o.Description)
		seen[o.ServiceType.String()] = true
	}
	assert.Len(t, seen, 4, "each offering maps to a distinct service type")
}

func TestHomeContent(t *testing.T) {
	assert.Len(t, Highlights(), 3)
	assert.Len(t, Features(), 4)
	assert.Equal(t, "Request AI Analysis", HomeCTA.Action)
}

func TestStepsAreNumbered(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 3)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Number)
	}
}

func TestReturnedSlicesAreFresh(t *testing.T) {
	first := Offerings()
	first[0].Title = "changed"
	assert.Equal(t, "Cloud Infrastructure Management", Offerings()[0].Title)
}
