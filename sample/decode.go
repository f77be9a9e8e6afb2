package sample

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"strings"
)

// Decoder turns raw file bytes into an Array and reports the detected format tag.
// Implementations must be safe for concurrent use.
type Decoder interface {
	Decode(data []byte, family Family) (*Array, string, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte, family Family) (*Array, string, error)

// Decode calls f.
func (f DecoderFunc) Decode(data []byte, family Family) (*Array, string, error) {
	return f(data, family)
}

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// ImageDecoder decodes JPEG and PNG content.
//
// The format tag is taken from the content, not the suffix: a PNG stored
// as photo.jpg reports "PNG". Layout follows numpy conventions for the
// equivalent PIL modes:
//
//	gray, paletted     (H, W)      uint8
//	gray16             (H, W)      uint16
//	gray+alpha         (H, W, 2)   uint8 or uint16
//	rgb                (H, W, 3)   uint8 or uint16
//	rgba, cmyk         (H, W, 4)   uint8 or uint16
//
// A PNG tRNS key does not add an alpha channel: gray stays (H, W) and
// truecolor stays (H, W, 3).
type ImageDecoder struct{}

// Decode implements Decoder.
func (ImageDecoder) Decode(data []byte, _ Family) (*Array, string, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	colorType := -1
	if name == "png" {
		colorType = pngColorType(data)
	}

	arr, err := imageToArray(img, colorType)
	if err != nil {
		return nil, "", err
	}
	return arr, strings.ToUpper(name), nil
}

// PNG IHDR color types.
const (
	pngGray      = 0
	pngTruecolor = 2
	pngGrayAlpha = 4
)

// pngColorType returns the IHDR color type of a PNG stream, or -1.
func pngColorType(data []byte) int {
	if len(data) < 26 || string(data[12:16]) != "IHDR" {
		return -1
	}
	return int(data[25])
}

// Channel selections within a pixel.
var (
	chanFirst     = []int{0}
	chanGrayAlpha = []int{0, 3}
	chanRGB       = []int{0, 1, 2}
	chanRGBA      = []int{0, 1, 2, 3}
)

// nrgbaChannels picks the channels of an NRGBA pixel that the source PNG
// actually carries. Go widens gray+alpha and tRNS images to NRGBA.
func nrgbaChannels(colorType int) []int {
	switch colorType {
	case pngGray:
		return chanFirst
	case pngGrayAlpha:
		return chanGrayAlpha
	case pngTruecolor:
		return chanRGB
	default:
		return chanRGBA
	}
}

func imageToArray(img image.Image, colorType int) (*Array, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	switch m := img.(type) {
	case *image.Gray:
		return planeArray(m.Pix, m.Stride, w, h, 1, chanFirst), nil
	case *image.Paletted:
		return planeArray(m.Pix, m.Stride, w, h, 1, chanFirst), nil
	case *image.Gray16:
		return wideArray(m.Pix, m.Stride, w, h, 1, chanFirst), nil
	case *image.RGBA:
		// PNG only yields RGBA for opaque truecolor, so alpha carries nothing.
		return planeArray(m.Pix, m.Stride, w, h, 4, chanRGB), nil
	case *image.NRGBA:
		return planeArray(m.Pix, m.Stride, w, h, 4, nrgbaChannels(colorType)), nil
	case *image.CMYK:
		return planeArray(m.Pix, m.Stride, w, h, 4, chanRGBA), nil
	case *image.RGBA64:
		return wideArray(m.Pix, m.Stride, w, h, 4, chanRGB), nil
	case *image.NRGBA64:
		return wideArray(m.Pix, m.Stride, w, h, 4, nrgbaChannels(colorType)), nil
	case *image.YCbCr:
		return convertArray(img, w, h, 3), nil
	default:
		return convertArray(img, w, h, 4), nil
	}
}

// planeArray copies the picked channels of 8-bit pixels with src channels each.
func planeArray(pix []byte, stride, w, h, src int, pick []int) *Array {
	data := make([]byte, 0, w*h*len(pick))
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*src]
		if src == len(pick) {
			data = append(data, row...)
			continue
		}
		for x := 0; x < w; x++ {
			for _, c := range pick {
				data = append(data, row[x*src+c])
			}
		}
	}
	return &Array{Shape: shapeOf(h, w, len(pick)), DType: Uint8, Data: data}
}

// wideArray converts the picked big-endian 16-bit channels to little-endian.
func wideArray(pix []byte, stride, w, h, src int, pick []int) *Array {
	data := make([]byte, w*h*len(pick)*2)
	off := 0
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			for _, c := range pick {
				i := (x*src + c) * 2
				binary.LittleEndian.PutUint16(data[off:], binary.BigEndian.Uint16(row[i:]))
				off += 2
			}
		}
	}
	return &Array{Shape: shapeOf(h, w, len(pick)), DType: Uint16, Data: data}
}

func convertArray(img image.Image, w, h, channels int) *Array {
	b := img.Bounds()
	data := make([]byte, 0, w*h*channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data = append(data, c.R, c.G, c.B)
			if channels == 4 {
				data = append(data, c.A)
			}
		}
	}
	return &Array{Shape: shapeOf(h, w, channels), DType: Uint8, Data: data}
}

func shapeOf(h, w, channels int) []int {
	if channels == 1 {
		return []int{h, w}
	}
	return []int{h, w, channels}
}

// checkArray rejects arrays whose buffer disagrees with their shape.
func checkArray(a *Array) error {
	if a == nil {
		return errors.New("decoder returned no array")
	}
	if a.DType.Size() == 0 {
		return fmt.Errorf("unknown dtype %q", a.DType)
	}
	if len(a.Data) != a.NumBytes() {
		return fmt.Errorf("buffer holds %d bytes, shape %s of %s needs %d", len(a.Data), formatShape(a.Shape), a.DType, a.NumBytes())
	}
	return nil
}
