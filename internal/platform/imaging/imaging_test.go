package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookcal_backend/internal/domain/apperr"
)

// encodePNG renders a uniform-color image, which compresses far below the
// byte ceiling even at large pixel dimensions.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// encodeNoisePNG renders deterministic noise, which is incompressible and
// pushes the encoded size past the byte ceiling at compliant dimensions.
func encodeNoisePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	rng := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (string, int, int) {
	t.Helper()

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return format, cfg.Width, cfg.Height
}

func TestNormalize_RejectsUndecodableBytes(t *testing.T) {
	t.Parallel()

	_, err := Normalize([]byte("definitely not an image"))
	assert.ErrorIs(t, err, apperr.ErrUnsupportedMedia)
}

func TestNormalize_RejectsDisallowedFormat(t *testing.T) {
	t.Parallel()

	// GIF decodes (the codec is registered by this test's import) but is
	// not on the allow-list.
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), []color.Color{color.Black, color.White})
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))

	_, err := Normalize(buf.Bytes())
	assert.ErrorIs(t, err, apperr.ErrUnsupportedMedia)
}

func TestNormalize_RejectsOversizedPayload(t *testing.T) {
	t.Parallel()

	data := encodeNoisePNG(t, 1000, 1000)
	require.Greater(t, len(data), MaxImageBytes, "noise fixture must exceed the ceiling")

	_, err := Normalize(data)
	require.ErrorIs(t, err, apperr.ErrPayloadTooLarge)
	assert.Contains(t, err.Error(), "Maximum upload size")
}

func TestNormalize_CompliantImagePassesThroughUnchanged(t *testing.T) {
	t.Parallel()

	data := encodePNG(t, 800, 600)

	out, err := Normalize(data)
	require.NoError(t, err)
	assert.Equal(t, data, out, "compliant input must be returned byte-identical")

	// Idempotent on its own output.
	again, err := Normalize(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestNormalize_DownscalesOversizedDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       func(t *testing.T) []byte
		wantFormat string
		wantW      int
		wantH      int
	}{
		{
			name:       "square png",
			data:       func(t *testing.T) []byte { return encodePNG(t, 3000, 3000) },
			wantFormat: "png",
			wantW:      1024,
			wantH:      1024,
		},
		{
			name:       "wide png keeps aspect ratio",
			data:       func(t *testing.T) []byte { return encodePNG(t, 3000, 1500) },
			wantFormat: "png",
			wantW:      1024,
			wantH:      512,
		},
		{
			name:       "tall jpeg keeps aspect ratio and format",
			data:       func(t *testing.T) []byte { return encodeJPEG(t, 1024, 2048) },
			wantFormat: "jpeg",
			wantW:      512,
			wantH:      1024,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Normalize(tt.data(t))
			require.NoError(t, err)

			format, w, h := decodeDims(t, out)
			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)

			// The downscaled output is itself compliant.
			again, err := Normalize(out)
			require.NoError(t, err)
			assert.Equal(t, out, again)
		})
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/png", ContentType(encodePNG(t, 10, 10)))
	assert.Equal(t, "image/jpeg", ContentType(encodeJPEG(t, 10, 10)))
}
