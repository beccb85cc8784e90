package jats14_test

import (
	"testing"

	"github.com/ParapluOU/schemas-go/bundles/jats14"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor(t *testing.T) {
	t.Parallel()

	desc := jats14.Bundle.Descriptor()

	assert.Equal(t, "JATS", desc.Name)
	assert.Equal(t, "1.4", desc.Version)
	assert.Equal(t, "Public Domain", desc.License)
}

func TestPublishingSchemaPresent(t *testing.T) {
	t.Parallel()

	f, ok := jats14.Bundle.GetFile("JATS-journalpublishing1-4-mathml3.xsd")
	require.True(t, ok)
	assert.Equal(t, "xsd", f.Extension())
}
