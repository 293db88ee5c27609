// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"jpeg image", "IMG_0001.JPG", true},
		{"heic image", "photo.heic", true},
		{"video", "clip.mp4", true},
		{"audio", "song.flac", true},
		{"text file", "notes.txt", false},
		{"pdf", "doc.pdf", false},
		{"no extension", "Makefile", false},
		{"dot file", ".hidden", false},
		{"double extension", "archive.tar.gz", false},
		{"uppercase video", "MOVIE.MOV", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMediaFile(tt.fileName))
		})
	}
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("a.png"))
	assert.False(t, IsImageFile("a.mp4"))
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("a.webm"))
	assert.False(t, IsVideoFile("a.webp"))
}

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("a.opus"))
	assert.False(t, IsAudioFile("a.opus.txt"))
}
