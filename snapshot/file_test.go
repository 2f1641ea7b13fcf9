package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileLoadFile(t *testing.T) {
	ctx := context.Background()
	src := buildWorld(t)

	path := filepath.Join(t.TempDir(), "world.gdx")
	require.NoError(t, SaveFile(ctx, path, src.bundle(), WithCompression(CompressionZstd)))

	dst := emptyWorld()
	require.NoError(t, LoadFile(ctx, path, dst.bundle()))

	assert.Equal(t, src.entities.Len(), dst.entities.Len())
	got, ok := dst.names.Get(src.handles[2])
	require.True(t, ok)
	assert.Equal(t, "gamma", got)
}

func TestSaveFileReplacesExisting(t *testing.T) {
	ctx := context.Background()
	src := buildWorld(t)

	path := filepath.Join(t.TempDir(), "world.gdx")
	require.NoError(t, SaveFile(ctx, path, src.bundle()))

	src.names.Insert(src.handles[3], "delta")
	require.NoError(t, SaveFile(ctx, path, src.bundle()))

	dst := emptyWorld()
	require.NoError(t, LoadFile(ctx, path, dst.bundle()))

	got, ok := dst.names.Get(src.handles[3])
	require.True(t, ok)
	assert.Equal(t, "delta", got)
}

func TestSaveFileLeavesNoFileOnEncodeError(t *testing.T) {
	ctx := context.Background()

	// A channel has no JSON encoding, so the save fails before any write.
	bad := make(chan int)
	path := filepath.Join(t.TempDir(), "broken.gdx")

	err := SaveFile(ctx, path, NewBundle().Add("bad", Value(nil, &bad)))
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadFileMissing(t *testing.T) {
	ctx := context.Background()

	err := LoadFile(ctx, filepath.Join(t.TempDir(), "absent.gdx"), NewBundle())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspectFile(t *testing.T) {
	ctx := context.Background()
	src := buildWorld(t)

	path := filepath.Join(t.TempDir(), "world.gdx")
	require.NoError(t, SaveFile(ctx, path, src.bundle()))

	info, err := InspectFile(path)
	require.NoError(t, err)

	assert.True(t, info.ChecksumOK)
	assert.Equal(t, []string{"entities", "names"}, []string{info.Sections[0].Name, info.Sections[1].Name})
}

func TestInspectFileMissing(t *testing.T) {
	_, err := InspectFile(filepath.Join(t.TempDir(), "absent.gdx"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
