// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"path/filepath"
	"strings"
)

// Extension allow-lists for the download policy filter. Downloads are
// restricted to media files; uploads are never filtered by type.
var (
	imageExtensions = map[string]struct{}{
		"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "bmp": {},
		"webp": {}, "heic": {}, "heif": {},
	}

	videoExtensions = map[string]struct{}{
		"mp4": {}, "mkv": {}, "avi": {}, "mov": {}, "wmv": {},
		"flv": {}, "webm": {}, "m4v": {}, "3gp": {},
	}

	audioExtensions = map[string]struct{}{
		"mp3": {}, "wav": {}, "flac": {}, "aac": {}, "ogg": {},
		"m4a": {}, "wma": {}, "opus": {},
	}
)

func fileExtension(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	return strings.ToLower(ext)
}

// IsMediaFile reports whether the file is an image, video, or audio file
// judging by its extension.
func IsMediaFile(fileName string) bool {
	return IsImageFile(fileName) || IsVideoFile(fileName) || IsAudioFile(fileName)
}

// IsImageFile reports whether the file extension is a known image type.
func IsImageFile(fileName string) bool {
	_, ok := imageExtensions[fileExtension(fileName)]
	return ok
}

// IsVideoFile reports whether the file extension is a known video type.
func IsVideoFile(fileName string) bool {
	_, ok := videoExtensions[fileExtension(fileName)]
	return ok
}

// IsAudioFile reports whether the file extension is a known audio type.
func IsAudioFile(fileName string) bool {
	_, ok := audioExtensions[fileExtension(fileName)]
	return ok
}
