package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Format identifies which rendition the backend should produce
type Format string

const (
	FormatMP3 Format = "mp3"
	FormatMP4 Format = "mp4"
)

// ParseFormat maps user input ("mp3", "MP4", "audio", "video") to a Format
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mp3", "audio":
		return FormatMP3, true
	case "mp4", "video":
		return FormatMP4, true
	}
	return "", false
}

func (f Format) String() string { return string(f) }

// Count is a statistic the backend reports either as a JSON number (1000000)
// or as preformatted text ("1M").
type Count struct {
	Value int64
	Text  string
}

// IsNumeric reports whether the backend sent a plain number.
func (c Count) IsNumeric() bool { return c.Text == "" }

// String renders numeric counts with thousands separators and returns text counts as-is.
func (c Count) String() string {
	if c.Text != "" {
		return c.Text
	}
	return humanize.Comma(c.Value)
}

func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64); err == nil {
			*c = Count{Value: n}
			return nil
		}
		*c = Count{Text: s}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*c = Count{Value: int64(f)}
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	if c.Text != "" {
		return json.Marshal(c.Text)
	}
	return []byte(strconv.FormatInt(c.Value, 10)), nil
}

// DownloadResult is the payload the backend returns for ytmp3/ytmp4 requests
type DownloadResult struct {
	Title       string  `json:"title"`
	Channel     string  `json:"channel"`
	Duration    string  `json:"duration,omitempty"`
	UploadDate  string  `json:"uploadDate,omitempty"`
	Views       *Count  `json:"views,omitempty"`
	Likes       *Count  `json:"likes,omitempty"`
	Comments    *Count  `json:"comments,omitempty"`
	Subscribers *Count  `json:"subscribers,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	DownloadURL string  `json:"downloadUrl"`
	Quality     string  `json:"quality,omitempty"`
	Format      string  `json:"format,omitempty"`
	Size        *string `json:"size,omitempty"`
}

// SearchResultItem is one entry of a backend search response
type SearchResultItem struct {
	URL        string `json:"url"`
	VideoID    string `json:"videoId,omitempty"`
	Title      string `json:"title"`
	Channel    string `json:"channel,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Views      *Count `json:"views,omitempty"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	UploadDate string `json:"uploadDate,omitempty"`
}
