package omdb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RatingCount is the number of rating positions kept from a response.
const RatingCount = 3

// RatingSources names the rating positions, ratings are read by index and
// not by their "Source" tag.
var RatingSources = [RatingCount]string{
	"Internet Movie Database",
	"Rotten Tomatoes",
	"Metacritic",
}

// Detail is the subset of a title lookup that is stored. A nil field means
// the response did not contain it, which is different from an empty string.
type Detail struct {
	Title    *string
	Released *string
	Runtime  *string
	Genre    *string
	Director *string
	Ratings  [RatingCount]*string
}

// Field runs `extract` and maps any failure to an absent value.
func Field(extract func() (string, error)) *string {
	value, err := extract()
	if err != nil {
		return nil
	}
	return &value
}

// stringAt walks a decoded json document. Each element of `path` is either
// an object key (string) or an array index (int).
func stringAt(doc any, path ...any) (string, error) {
	current := doc
	for _, step := range path {
		switch s := step.(type) {
		case string:
			obj, ok := current.(map[string]any)
			if !ok {
				return "", fmt.Errorf("expected object at '%s', got %T", s, current)
			}
			next, ok := obj[s]
			if !ok {
				return "", fmt.Errorf("missing key '%s'", s)
			}
			current = next
		case int:
			arr, ok := current.([]any)
			if !ok {
				return "", fmt.Errorf("expected array at index %d, got %T", s, current)
			}
			if s < 0 || s >= len(arr) {
				return "", fmt.Errorf("index %d out of range (len %d)", s, len(arr))
			}
			current = arr[s]
		default:
			return "", fmt.Errorf("invalid path element %v", step)
		}
	}

	value, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", current)
	}
	return value, nil
}

// ParseDetail extracts a Detail from a title lookup response. It never
// fails, a malformed payload simply yields absent fields.
func ParseDetail(payload json.RawMessage) Detail {
	var doc any
	err := json.Unmarshal(payload, &doc)
	if err != nil {
		doc = nil
	}

	field := func(path ...any) *string {
		return Field(func() (string, error) {
			return stringAt(doc, path...)
		})
	}

	detail := Detail{
		Title:    field("Title"),
		Released: field("Released"),
		Runtime:  field("Runtime"),
		Genre:    field("Genre"),
		Director: field("Director"),
	}
	for i := 0; i < RatingCount; i++ {
		detail.Ratings[i] = field("Ratings", i, "Value")
	}
	return detail
}

// Score converts the rating at `position` to a 0-100 scale:
// "7.5/10" -> 75, "91%" -> 91, "64/100" -> 64.
func Score(position int, value string) (float64, bool) {
	value = strings.TrimSpace(value)
	var numeric string
	multiplier := 1.0
	switch position {
	case 0:
		numeric, _, _ = strings.Cut(value, "/")
		multiplier = 10
	case 1:
		numeric, _, _ = strings.Cut(value, "%")
	case 2:
		numeric, _, _ = strings.Cut(value, "/")
	default:
		return 0, false
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(numeric), 64)
	if err != nil {
		return 0, false
	}
	return n * multiplier, true
}
