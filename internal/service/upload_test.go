package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/pkg/errors"
	"MonthlyMasti/pkg/objstore"
)

func withMockObjstore(t *testing.T) *objstore.MockClient {
	t.Helper()
	mock := objstore.NewMockClient()
	objstore.SetClient(mock)
	t.Cleanup(func() { objstore.SetClient(nil) })
	return mock
}

func TestStoreRejectsUnknownKind(t *testing.T) {
	withMockObjstore(t)

	_, err := Upload().Store(context.Background(), "documents", "a.pdf", strings.NewReader("x"), "application/pdf", 1)
	assert.ErrorIs(t, err, errors.UploadKindInvalid)
}

func TestStorePhotoUnderPhotosPrefix(t *testing.T) {
	mock := withMockObjstore(t)

	url, err := Upload().Store(context.Background(), "photos", "beach.jpg", strings.NewReader("jpegdata"), "image/jpeg", 8)
	require.NoError(t, err)

	paths := mock.Paths()
	require.Len(t, paths, 1)
	assert.True(t, strings.HasPrefix(paths[0], "photos/"))
	assert.True(t, strings.HasSuffix(paths[0], "_beach.jpg"))
	assert.Equal(t, "https://storage.test/"+paths[0], url)
	assert.Equal(t, []byte("jpegdata"), mock.Objects[paths[0]])
}

func TestStoreSelfieUnderSelfiesPrefix(t *testing.T) {
	mock := withMockObjstore(t)

	_, err := Upload().Store(context.Background(), "selfies", "me.png", strings.NewReader("pngdata"), "image/png", 7)
	require.NoError(t, err)

	paths := mock.Paths()
	require.Len(t, paths, 1)
	assert.True(t, strings.HasPrefix(paths[0], "selfies/"))
}

func TestStoreStripsClientPath(t *testing.T) {
	mock := withMockObjstore(t)

	_, err := Upload().Store(context.Background(), "photos", `C:\Users\priya\beach.jpg`, strings.NewReader("x"), "image/jpeg", 1)
	require.NoError(t, err)

	paths := mock.Paths()
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "_beach.jpg"))
	assert.NotContains(t, paths[0], `\`)
	assert.NotContains(t, paths[0], "Users")
}

func TestStoreUploadFailure(t *testing.T) {
	mock := withMockObjstore(t)
	mock.FailNext = true

	_, err := Upload().Store(context.Background(), "photos", "beach.jpg", strings.NewReader("x"), "image/jpeg", 1)
	assert.ErrorIs(t, err, errors.UploadFailed)
	assert.Empty(t, mock.Paths())
}
