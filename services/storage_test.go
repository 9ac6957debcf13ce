package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLocalAssets(t *testing.T) *LocalAssets {
	t.Helper()
	prev := Assets
	store := NewLocalAssets(t.TempDir())
	Assets = store
	t.Cleanup(func() { Assets = prev })
	return store
}

func TestLocalAssetsRoundTrip(t *testing.T) {
	store := NewLocalAssets(t.TempDir())

	result, err := store.UploadReader(context.Background(),
		strings.NewReader("fake image bytes"), "countries/iceland.jpg", "image/jpeg", 16)
	require.NoError(t, err)
	assert.Equal(t, "countries/iceland.jpg", result.Key)
	assert.Equal(t, "iceland.jpg", result.FileName)
	assert.Equal(t, int64(16), result.FileSize)
	assert.Equal(t, "/assets/countries/iceland.jpg", result.URL)

	reader, contentType, err := store.Get(context.Background(), "countries/iceland.jpg")
	require.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(body))
	assert.Equal(t, "image/jpeg", contentType)
}

func TestLocalAssetsGetMissing(t *testing.T) {
	store := NewLocalAssets(t.TempDir())

	_, _, err := store.Get(context.Background(), "countries/gone.jpg")
	assert.Error(t, err)
}

func TestLocalAssetsPublicURL(t *testing.T) {
	store := NewLocalAssets("static/uploads")

	assert.Equal(t, "/assets/countries/a.svg", store.GetPublicURL("countries/a.svg"))
	assert.Equal(t, "/assets/countries/a.svg", store.GetPublicURL("/countries/a.svg"))
}

func TestAssetKey(t *testing.T) {
	key := AssetKey("countries", "Hero Photo.JPG")

	assert.True(t, strings.HasPrefix(key, "countries/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, AssetKey("countries", "Hero Photo.JPG"))
}

func TestHostAsset(t *testing.T) {
	store := withLocalAssets(t)

	url, err := HostAsset(context.Background(), "wonders", "skogafoss.svg", "image/svg+xml", []byte("<svg/>"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/assets/wonders/"))
	assert.True(t, strings.HasSuffix(url, ".svg"))

	key := strings.TrimPrefix(url, "/assets/")
	reader, contentType, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(body))
	assert.Equal(t, "image/svg+xml", contentType)
}

func TestHostAssetWithoutStore(t *testing.T) {
	prev := Assets
	Assets = nil
	t.Cleanup(func() { Assets = prev })

	url, err := HostAsset(context.Background(), "countries", "iceland.jpg", "image/jpeg", []byte("x"))
	assert.NoError(t, err)
	assert.Equal(t, "", url)
}
