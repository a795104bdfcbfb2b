// Package imaging normalizes uploaded signature images before they are stored.
package imaging

import (
	"bytes"
	"image"
	_ "image/jpeg" // register decoder
	"image/png"
	"io"
	"net/http"

	"gear-rental/internal/pkg/errs"

	"golang.org/x/image/draw"
)

// MaxDimension bounds the stored width and height.
const MaxDimension = 800

const outputMIME = "image/png"

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

var (
	ErrTooLarge          = errs.New("signature image exceeds size limit")
	ErrUnsupportedFormat = errs.New("unsupported signature image format")
	ErrDecode            = errs.New("signature image could not be decoded")
)

type Result struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// Process sniffs the real content type, downscales to MaxDimension and
// re-encodes as PNG. PNG keeps pen strokes sharp and preserves transparency.
func Process(r io.Reader, maxBytes int64) (*Result, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, errs.Wrap(err, "reading signature image")
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}

	detected := http.DetectContentType(data)
	if !allowedMIME[detected] {
		return nil, errs.Wrap(ErrUnsupportedFormat, detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Mark(err, ErrDecode)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, errs.Wrap(err, "encoding PNG")
	}

	b := img.Bounds()
	return &Result{
		Data:   buf.Bytes(),
		MIME:   outputMIME,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
