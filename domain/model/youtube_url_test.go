package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ytdl-simpel/domain/model"
)

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"watch with scheme and www", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"short link over http", "http://youtu.be/dQw4w9WgXcQ", true},
		{"embed without scheme", "youtube.com/embed/dQw4w9WgXcQ", true},
		{"legacy v path", "https://youtube.com/v/dQw4w9WgXcQ", true},
		{"id with dash and underscore", "youtu.be/a-b_c", true},
		{"vimeo", "https://vimeo.com/12345", false},
		{"empty", "", false},
		{"bare host", "youtube.com/", false},
		{"watch without id", "https://www.youtube.com/watch?v=", false},
		{"shorts are not recognized", "https://youtube.com/shorts/dQw4w9WgXcQ", false},
		{"leading text", "see https://youtu.be/dQw4w9WgXcQ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsYouTubeURL(tt.url))
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"watch with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=5", "dQw4w9WgXcQ", true},
		{"v after other params", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ", true},
		{"embed", "youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"e path", "https://www.youtube.com/e/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"user path", "https://www.youtube.com/user/someone/u/1/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"not a url", "not a url", "", false},
		{"id too short", "https://youtu.be/abc", "", false},
		{"other site", "https://vimeo.com/watch?v=dQw4w9WgXcQ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
