package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want Location
	}{
		{"/data/ds", Location{Scheme: "file", Path: "/data/ds"}},
		{"relative/ds", Location{Scheme: "file", Path: "relative/ds"}},
		{"file:///data/ds", Location{Scheme: "file", Path: filepath.FromSlash("/data/ds")}},
		{"mem://scratch", Location{Scheme: "mem", Host: "scratch"}},
		{"s3://bucket/datasets/mnist", Location{Scheme: "s3", Host: "bucket", Path: "datasets/mnist"}},
		{"MINIO://localhost:9000/bucket/ds", Location{Scheme: "minio", Host: "localhost:9000", Path: "bucket/ds"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLocation(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	s, err := Open("mem://")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	dir := t.TempDir()
	s, err = Open(dir)
	require.NoError(t, err)
	require.IsType(t, &LocalStore{}, s)
	assert.Equal(t, dir, s.(*LocalStore).Root())

	_, err = Open("gcs://bucket")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = Open("file://")
	assert.Error(t, err)
}
