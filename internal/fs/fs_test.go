package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, lfs.MkdirAll(dir, 0755))

	fpath := filepath.Join(dir, "test.txt")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)

	_, err = f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.NoError(t, f.Sync())

	info, err := f.Stat()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.NoError(t, f.Close())

	entries, err := lfs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	newPath := filepath.Join(dir, "renamed.txt")
	assert.NoError(t, lfs.Rename(fpath, newPath))

	data, err := ReadFile(lfs, newPath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	assert.NoError(t, lfs.Remove(newPath))
	_, err = lfs.Stat(newPath)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomic(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "record.json")

	require.NoError(t, WriteFileAtomic(nil, path, []byte("v1"), 0644))
	require.NoError(t, WriteFileAtomic(nil, path, []byte("v2"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	ffs := NewFaultyFS(nil)

	t.Run("NoRule", func(t *testing.T) {
		data, err := ReadFile(ffs, path)
		require.NoError(t, err)
		assert.Equal(t, "data", string(data))
		assert.Equal(t, 1, ffs.Opens(path))
	})

	t.Run("FailOnOpen", func(t *testing.T) {
		ffs.AddRule("photo", Fault{FailOnOpen: true})
		defer ffs.ClearRules()

		_, err := ReadFile(ffs, path)
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("FailOnRead", func(t *testing.T) {
		ffs.AddRule("photo", Fault{FailOnRead: true})
		defer ffs.ClearRules()

		_, err := ReadFile(ffs, path)
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("FailOnRename", func(t *testing.T) {
		target := filepath.Join(tmp, "meta.json")
		ffs.AddRule("meta.json", Fault{FailOnRename: true})
		defer ffs.ClearRules()

		err := WriteFileAtomic(ffs, target, []byte("x"), 0644)
		assert.ErrorIs(t, err, ErrInjected)
		_, err = os.Stat(target + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("FailAfterBytes", func(t *testing.T) {
		target := filepath.Join(tmp, "big.bin")
		ffs.AddRule("big.bin", Fault{FailAfterBytes: 2})
		defer ffs.ClearRules()

		err := WriteFileAtomic(ffs, target, []byte("abc"), 0644)
		assert.ErrorIs(t, err, ErrInjected)
	})
}
