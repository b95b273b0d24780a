package images_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"droscher.com/MyWhiskies/pkg/images"
)

func TestKeys_RoundTrip(t *testing.T) {
	keys := images.Keys{Prefix: "bottle-images", Extension: "jpg"}

	key := keys.Key(42, 3)
	assert.Equal(t, "bottle-images/42_3.jpg", key)

	bottleID, sequence, ok := keys.Parse(key)
	assert.True(t, ok)
	assert.Equal(t, uint(42), bottleID)
	assert.Equal(t, 3, sequence)
}

func TestKeys_Parse(t *testing.T) {
	keys := images.Keys{Prefix: "bottle-images", Extension: "jpg"}

	tests := []struct {
		name     string
		key      string
		ok       bool
		bottleID uint
	}{
		{name: "older extension", key: "bottle-images/7_1.png", ok: true, bottleID: 7},
		{name: "held copy", key: "bottle-images/7_1.jpg.held", ok: true, bottleID: 7},
		{name: "other prefix", key: "avatars/7_1.jpg", ok: false},
		{name: "nested path", key: "bottle-images/old/7_1.jpg", ok: false},
		{name: "no sequence", key: "bottle-images/7.jpg", ok: false},
		{name: "non numeric id", key: "bottle-images/abc_1.jpg", ok: false},
		{name: "zero sequence", key: "bottle-images/7_0.jpg", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bottleID, _, ok := keys.Parse(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bottleID, bottleID)
		})
	}
}

func TestKeys_NoPrefix(t *testing.T) {
	keys := images.Keys{Extension: "png"}

	assert.Equal(t, "5_2.png", keys.Key(5, 2))

	bottleID, sequence, ok := keys.Parse("5_2.png")
	assert.True(t, ok)
	assert.Equal(t, uint(5), bottleID)
	assert.Equal(t, 2, sequence)
}
