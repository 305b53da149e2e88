package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewLocalService(dir)
	require.NoError(t, err)

	ref, err := svc.Save(context.Background(), "Foto.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, svc.Remove(context.Background(), ref))
	_, err = os.Stat(filepath.Join(dir, ref))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalRemoveMissingIsNoop(t *testing.T) {
	svc, err := NewLocalService(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, svc.Remove(context.Background(), "never-existed.jpg"))
}

func TestLocalRemoveRejectsEscapingRefs(t *testing.T) {
	svc, err := NewLocalService(t.TempDir())
	require.NoError(t, err)

	for _, ref := range []string{"", "..", "../outside.jpg", "a/../../outside.jpg"} {
		assert.Error(t, svc.Remove(context.Background(), ref), "ref %q", ref)
	}
}

func TestLocalSaveGeneratesUniqueNames(t *testing.T) {
	svc, err := NewLocalService(t.TempDir())
	require.NoError(t, err)

	first, err := svc.Save(context.Background(), "same.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := svc.Save(context.Background(), "same.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
