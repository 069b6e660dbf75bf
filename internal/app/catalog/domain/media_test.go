package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int64) *int64 { return &n }

func TestParseMediaType(t *testing.T) {
	mt, err := ParseMediaType("Image")
	require.NoError(t, err)
	assert.Equal(t, MediaImage, mt)

	_, err = ParseMediaType("gif")
	assert.ErrorIs(t, err, ErrBadMediaType)
}

func TestSelectPrimaryMedia(t *testing.T) {
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	items := []Media{
		{MediaID: "m1", Type: MediaImage, URL: "https://cdn/a.jpg", Position: intPtr(2), CreatedAt: base},
		{MediaID: "m2", Type: MediaImage, URL: "https://cdn/b.jpg", Position: intPtr(1), CreatedAt: base},
		{MediaID: "m3", Type: MediaImage, URL: "https://cdn/c.jpg", CreatedAt: base.Add(time.Hour)},
		{MediaID: "m4", Type: MediaVideo, URL: "https://cdn/v.mp4", Position: intPtr(0), CreatedAt: base},
	}

	t.Run("lowest explicit position wins", func(t *testing.T) {
		m, err := SelectPrimaryMedia(items, MediaImage)
		require.NoError(t, err)
		assert.Equal(t, "m2", m.MediaID)
	})

	t.Run("absent position sorts last", func(t *testing.T) {
		m, err := SelectPrimaryMedia([]Media{items[0], items[2]}, MediaImage)
		require.NoError(t, err)
		assert.Equal(t, "m1", m.MediaID)
	})

	t.Run("type filter applies", func(t *testing.T) {
		m, err := SelectPrimaryMedia(items, MediaVideo)
		require.NoError(t, err)
		assert.Equal(t, "m4", m.MediaID)
	})

	t.Run("no media of type is a miss", func(t *testing.T) {
		_, err := SelectPrimaryMedia(items, MediaYouTube)
		assert.ErrorIs(t, err, ErrNoMedia)
	})

	t.Run("equal positions break ties on recency", func(t *testing.T) {
		tied := []Media{
			{MediaID: "old", Type: MediaImage, Position: intPtr(1), CreatedAt: base},
			{MediaID: "new", Type: MediaImage, Position: intPtr(1), CreatedAt: base.Add(time.Minute)},
		}
		m, err := SelectPrimaryMedia(tied, MediaImage)
		require.NoError(t, err)
		assert.Equal(t, "new", m.MediaID)
	})

	t.Run("result is independent of input order", func(t *testing.T) {
		want, err := SelectPrimaryMedia(items, MediaImage)
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 20; i++ {
			shuffled := make([]Media, len(items))
			copy(shuffled, items)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			got, err := SelectPrimaryMedia(shuffled, MediaImage)
			require.NoError(t, err)
			assert.Equal(t, want.MediaID, got.MediaID)
		}
	})
}
