// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/mock"
	"github.com/morshues/msync/models"
)

// ── ListFolder ───────────────────────────────────────────────────────────────

func TestLocalFileService_ListFolder(t *testing.T) {
	svc := NewLocalFileService(nil, logger.Nop())
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("12345"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("12"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	entries, err := svc.ListFolder(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "a.jpg", entries[0].Name)
	assert.Equal(t, int64(5), entries[0].Size)
	assert.NotZero(t, entries[0].ModifiedAt)
	assert.Equal(t, "b.txt", entries[1].Name)
}

func TestLocalFileService_ListFolder_Missing(t *testing.T) {
	svc := NewLocalFileService(nil, logger.Nop())

	_, err := svc.ListFolder(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

// ── WriteRemoteFile ──────────────────────────────────────────────────────────

func TestLocalFileService_WriteRemoteFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := mock.NewMockMediaScanner(ctrl)
	svc := NewLocalFileService(mockMedia, logger.Nop())
	dir := t.TempDir()

	modified := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	remote := models.RemoteFileResult{
		Body:        io.NopCloser(strings.NewReader("downloaded bytes")),
		ModifiedAt:  &modified,
		ContentType: "image/jpeg",
	}

	target := filepath.Join(dir, "photo.jpg")
	mockMedia.EXPECT().Scan(gomock.Any(), target, "image/jpeg")

	require.NoError(t, svc.WriteRemoteFile(context.Background(), dir, "photo.jpg", remote))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "downloaded bytes", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(modified))

	// временных .part файлов не осталось
	leftovers, err := filepath.Glob(filepath.Join(dir, ".*part*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestLocalFileService_WriteRemoteFile_CreatesFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := mock.NewMockMediaScanner(ctrl)
	svc := NewLocalFileService(mockMedia, logger.Nop())
	dir := filepath.Join(t.TempDir(), "new", "deep")

	remote := models.RemoteFileResult{
		Body: io.NopCloser(strings.NewReader("x")),
	}

	mockMedia.EXPECT().Scan(gomock.Any(), filepath.Join(dir, "f.mp4"), "")

	require.NoError(t, svc.WriteRemoteFile(context.Background(), dir, "f.mp4", remote))
	assert.FileExists(t, filepath.Join(dir, "f.mp4"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestLocalFileService_WriteRemoteFile_CopyFailureLeavesNoPartial(t *testing.T) {
	svc := NewLocalFileService(nil, logger.Nop())
	dir := t.TempDir()

	remote := models.RemoteFileResult{Body: io.NopCloser(failingReader{})}

	err := svc.WriteRemoteFile(context.Background(), dir, "broken.jpg", remote)
	require.Error(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "broken.jpg"))
	leftovers, globErr := filepath.Glob(filepath.Join(dir, ".*"))
	require.NoError(t, globErr)
	assert.Empty(t, leftovers)
}

func TestAlwaysAllowedNetwork(t *testing.T) {
	checker := NewAlwaysAllowedNetwork()

	assert.True(t, checker.Allowed(models.NetworkAny))
	assert.True(t, checker.Allowed(models.NetworkUnmetered))
}
