package domain

import (
	"math"
	"strings"
	"time"
)

// MediaType classifies a media row.
type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaYouTube MediaType = "youtube"
)

// ParseMediaType validates and normalizes a media type string.
func ParseMediaType(s string) (MediaType, error) {
	switch mt := MediaType(strings.ToLower(s)); mt {
	case MediaImage, MediaVideo, MediaYouTube:
		return mt, nil
	default:
		return "", ErrBadMediaType
	}
}

// Media is one media row of a product. Position is the explicit ordering; a
// row without one sorts after every positioned row.
type Media struct {
	MediaID    string
	PartNumber string
	Type       MediaType
	URL        string
	Position   *int64
	CreatedAt  time.Time
}

// sortPosition treats an absent position as "last".
func (m *Media) sortPosition() int64 {
	if m.Position == nil {
		return math.MaxInt64
	}
	return *m.Position
}

// SelectPrimaryMedia picks the canonical media row of the given type:
// ascending explicit position, newest CreatedAt breaking ties. Pure and
// order-independent: shuffling the input yields the same row.
func SelectPrimaryMedia(items []Media, mediaType MediaType) (*Media, error) {
	var best *Media
	for i := range items {
		m := &items[i]
		if m.Type != mediaType {
			continue
		}
		if best == nil || betterMedia(m, best) {
			best = m
		}
	}
	if best == nil {
		return nil, ErrNoMedia
	}
	out := *best
	return &out, nil
}

// betterMedia reports whether a should be selected over b.
func betterMedia(a, b *Media) bool {
	pa, pb := a.sortPosition(), b.sortPosition()
	if pa != pb {
		return pa < pb
	}
	return a.CreatedAt.After(b.CreatedAt)
}
