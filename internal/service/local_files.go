package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/models"
)

type localFileService struct {
	media  MediaScanner
	logger *logger.Logger
}

// NewLocalFileService builds a LocalFileService. media may be nil, in which
// case a logging no-op scanner is used.
func NewLocalFileService(media MediaScanner, log *logger.Logger) LocalFileService {
	if media == nil {
		media = NewLoggingMediaScanner(log)
	}
	return &localFileService{
		media:  media,
		logger: log,
	}
}

// ListFolder implements [LocalFileService].
func (l *localFileService) ListFolder(folderPath string) ([]models.FileEntry, error) {
	dirEntries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", folderPath, err)
	}

	var entries []models.FileEntry
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || strings.HasPrefix(dirEntry.Name(), ".") {
			continue
		}

		info, infoErr := dirEntry.Info()
		if infoErr != nil {
			// file vanished between ReadDir and Info
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		entries = append(entries, models.FileEntry{
			Name:       info.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime().UnixMilli(),
		})
	}

	return entries, nil
}

// WriteRemoteFile implements [LocalFileService]. The download lands in a
// temporary file first so a failed transfer never leaves a truncated file
// under the final name.
func (l *localFileService) WriteRemoteFile(ctx context.Context, folderPath, fileName string, remote models.RemoteFileResult) error {
	log := logger.FromContext(ctx)
	defer remote.Body.Close()

	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return fmt.Errorf("ensure folder %s: %w", folderPath, err)
	}

	targetPath := filepath.Join(folderPath, fileName)

	tmp, err := os.CreateTemp(folderPath, "."+fileName+".part-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err = io.Copy(tmp, remote.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", targetPath, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err = os.Rename(tmpPath, targetPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("move %s into place: %w", targetPath, err)
	}

	if remote.ModifiedAt != nil {
		if chErr := os.Chtimes(targetPath, *remote.ModifiedAt, *remote.ModifiedAt); chErr != nil {
			log.Warn().Err(chErr).
				Str("path", targetPath).
				Msg("failed to apply remote modification time")
		}
	}

	l.media.Scan(ctx, targetPath, remote.ContentType)

	return nil
}

type loggingMediaScanner struct {
	logger *logger.Logger
}

// NewLoggingMediaScanner returns the default MediaScanner: it records the
// event and does nothing else. Platforms with a media index can provide
// their own implementation.
func NewLoggingMediaScanner(log *logger.Logger) MediaScanner {
	return &loggingMediaScanner{logger: log}
}

func (m *loggingMediaScanner) Scan(_ context.Context, filePath, contentType string) {
	m.logger.Debug().
		Str("path", filePath).
		Str("content_type", contentType).
		Msg("media index notified")
}
