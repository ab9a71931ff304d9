package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndOpen(t *testing.T) {
	store, err := NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	name, err := store.Save(ctx, KindImage, "Deluxe Suite", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Contains(t, name, "deluxe_suite")
	assert.True(t, strings.HasSuffix(name, ".png"))

	rc, err := store.Open(ctx, KindImage, name)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestLocalSaveUniqueNames(t *testing.T) {
	store, err := NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := store.Save(ctx, KindPDF, "Deluxe Suite", "application/pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(ctx, KindPDF, "Deluxe Suite", "application/pdf", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".pdf"))
}

func TestLocalDelete(t *testing.T) {
	store, err := NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	name, err := store.Save(ctx, KindImage, "room", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, KindImage, name))

	_, err = store.Open(ctx, KindImage, name)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	assert.ErrorIs(t, store.Delete(ctx, KindImage, name), ErrAssetNotFound)
}

func TestLocalRejectsTraversal(t *testing.T) {
	store, err := NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Open(ctx, KindImage, "../../etc/passwd")
	assert.Error(t, err)

	err = store.Delete(ctx, KindImage, "../escape.txt")
	assert.Error(t, err)
}

func TestLocalPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalAssetStore(dir, nil)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), KindImage, "room", "image/webp", strings.NewReader("x"))
	require.NoError(t, err)

	path, err := store.Path(KindImage, name)
	require.NoError(t, err)
	assert.Contains(t, path, KindImage)
	assert.True(t, strings.HasSuffix(path, ".webp"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "deluxe_suite", slugify(" Deluxe Suite "))
	assert.Equal(t, "room_42", slugify("Room-42"))
	assert.Equal(t, "asset", slugify("!!!"))
}
