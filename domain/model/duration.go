package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration turns an ISO-8601 duration such as "PT1H4M5S" into "1:4:05".
// Hours are omitted when zero. Anything that is not an ISO duration (the backend
// often sends "5:30" already) is returned unchanged.
func FormatDuration(d string) string {
	m := isoDurationPattern.FindStringSubmatch(d)
	if m == nil || d == "PT" {
		return d
	}
	h, _ := strconv.Atoi(orZero(m[1]))
	mins, _ := strconv.Atoi(orZero(m[2]))
	sec, _ := strconv.Atoi(orZero(m[3]))
	if h > 0 {
		return fmt.Sprintf("%d:%d:%02d", h, mins, sec)
	}
	return fmt.Sprintf("%d:%02d", mins, sec)
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
