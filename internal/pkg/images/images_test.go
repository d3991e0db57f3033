package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesDecodedFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	name, err := store.Save("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
}

func TestSaveRejectsBadInput(t *testing.T) {
	store := NewStore(t.TempDir())

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyImage},
		{"plain base64", "aGVsbG8=", ErrInvalidDataURI},
		{"no base64 marker", "data:image/png,aGVsbG8=", ErrInvalidDataURI},
		{"unsupported format", "data:image/tiff;base64,aGVsbG8=", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
