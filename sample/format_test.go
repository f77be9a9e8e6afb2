package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedSuffixes(t *testing.T) {
	assert.Equal(t, []string{".jpeg", ".jpg", ".png"}, SupportedSuffixes())
}

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	for _, s := range []string{".png", ".PNG", ".Jpg", ".jpeg"} {
		f, ok := r.Lookup(s)
		require.True(t, ok, s)
		assert.Equal(t, FamilyImage, f.Family)
	}

	_, ok := r.Lookup(".txt")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	dec := ImageDecoder{}

	assert.Error(t, r.Register("png", Format{Family: FamilyImage, Decoder: dec}))
	assert.Error(t, r.Register(".", Format{Family: FamilyImage, Decoder: dec}))
	assert.Error(t, r.Register(".png", Format{Family: FamilyImage}))

	require.NoError(t, r.Register(".TIF", Format{Family: FamilyImage, Decoder: dec}))
	assert.Equal(t, []string{".tif"}, r.Suffixes())
}
