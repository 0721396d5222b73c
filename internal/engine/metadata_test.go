package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTrip(t *testing.T) {
	classID := uuid.New()
	meta := ExecutionMetadata{
		FallbackUsed: true,
		TokensUsed:   128,
		Branch: &BranchMetadata{
			Kind:    string(BranchDocumentClass),
			Field:   "doc_class",
			Label:   "LAB",
			ClassID: &classID,
		},
	}

	raw, err := meta.Encode()
	require.NoError(t, err)

	decoded, err := DecodeMetadata(raw)
	require.NoError(t, err)
	assert.Equal(t, MetadataVersion, decoded.Version)
	assert.True(t, decoded.FallbackUsed)
	assert.Equal(t, 128, decoded.TokensUsed)
	require.NotNil(t, decoded.Branch)
	assert.Equal(t, "LAB", decoded.Branch.Label)
	require.NotNil(t, decoded.Branch.ClassID)
	assert.Equal(t, classID, *decoded.Branch.ClassID)
}

func TestDecodeMetadata_Empty(t *testing.T) {
	decoded, err := DecodeMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded.Branch)
	assert.Nil(t, decoded.Stop)
	assert.Nil(t, decoded.Failure)
}
