package captions

import "regexp"

// An 11 character id from the YouTube charset, preceded by "v=" or "/".
var videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID returns the first video id found in raw, scanning left to
// right. Anything after the 11 character window is ignored.
func ExtractVideoID(raw string) (string, bool) {
	match := videoIDPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return match[1], true
}
