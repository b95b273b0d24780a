package images_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/images"
)

func encodedPNG(t *testing.T, width, height int, fill color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestProcessor_DownscalesWideImages(t *testing.T) {
	processor := images.NewProcessor(configs.Images{MaxWidth: 100, Format: "jpeg", Quality: 80})

	data, err := processor.Process(bytes.NewReader(encodedPNG(t, 400, 200, color.White)))
	require.NoError(t, err)

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, config.Width)
	assert.Equal(t, 50, config.Height)
	assert.Equal(t, "image/jpeg", processor.ContentType())
}

func TestProcessor_KeepsNarrowImages(t *testing.T) {
	processor := images.NewProcessor(configs.Images{MaxWidth: 400, Format: "png"})

	data, err := processor.Process(bytes.NewReader(encodedPNG(t, 120, 300, color.Black)))
	require.NoError(t, err)

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 120, config.Width)
	assert.Equal(t, 300, config.Height)
	assert.Equal(t, "image/png", processor.ContentType())
}

func TestProcessor_RejectsGarbage(t *testing.T) {
	processor := images.NewProcessor(configs.Images{MaxWidth: 400, Format: "jpeg", Quality: 90})

	_, err := processor.Process(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, images.ErrDecode)
}
