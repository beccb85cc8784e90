package nisosts_test

import (
	"strings"
	"testing"

	"github.com/ParapluOU/schemas-go/bundles/nisosts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor(t *testing.T) {
	t.Parallel()

	desc := nisosts.Bundle.Descriptor()

	assert.Equal(t, "NISO STS", desc.Name)
	assert.Equal(t, "1.0", desc.Version)
	assert.Equal(t, "NISO", desc.License)
}

func TestHasInterchangeAndExtended(t *testing.T) {
	t.Parallel()

	var interchange, extended []string

	for f := range nisosts.InterchangeFiles() {
		interchange = append(interchange, f.Path())
	}
	for f := range nisosts.ExtendedFiles() {
		extended = append(extended, f.Path())
	}

	require.NotEmpty(t, interchange, "should have interchange schemas")
	require.NotEmpty(t, extended, "should have extended schemas")

	for _, p := range interchange {
		assert.Contains(t, p, "interchange")
		assert.NotContains(t, extended, p)
	}
}

func TestMathMLFiles(t *testing.T) {
	t.Parallel()

	count := 0
	for f := range nisosts.MathMLFiles() {
		assert.True(t, strings.Contains(f.Path(), "mathml"))
		count++
	}

	assert.Positive(t, count, "should have MathML schemas")
}
