package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Drawing files are named after the catalog drawing key in kebab-case,
// e.g. arch-circular-single.png
var drawingKeyRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ParseDrawingKey derives the drawing key from an image file name.
// The extension is stripped and the remainder must be a kebab-case key;
// files that don't match the pattern are skipped by the sync.
func ParseDrawingKey(filename string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(filename))

	extRegex := regexp.MustCompile(`\.(png|jpg|jpeg)$`)
	key := extRegex.ReplaceAllString(name, "")

	if key == "" {
		return "", fmt.Errorf("empty drawing key in filename %q", filename)
	}
	if !drawingKeyRegex.MatchString(key) {
		return "", fmt.Errorf("invalid drawing key %q: expected kebab-case like arch-circular-single", key)
	}

	return key, nil
}
