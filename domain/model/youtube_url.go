package model

import "regexp"

var (
	youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/(watch\?v=|embed/|v/)|youtu\.be/)[\w-]+`)

	// Also tolerates /user/x/y/ID paths and any "?…&v=ID" query form.
	videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
)

// IsYouTubeURL is a syntactic pre-filter: it does not check the video exists.
func IsYouTubeURL(candidate string) bool {
	return youtubeURLPattern.MatchString(candidate)
}

// ExtractVideoID returns the 11-character video id embedded in candidate.
func ExtractVideoID(candidate string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(candidate)
	if m == nil {
		return "", false
	}
	return m[1], true
}
