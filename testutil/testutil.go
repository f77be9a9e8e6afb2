package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// ColorModel selects the pixel layout of generated images.
type ColorModel int

const (
	Gray ColorModel = iota
	Gray16
	RGB
	RGBA
	RGB16
	RGBA16
	Paletted
)

// Image returns a w x h image with random pixels in the given model.
func (r *RNG) Image(w, h int, model ColorModel) image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()

	rect := image.Rect(0, 0, w, h)
	u8 := func() uint8 { return uint8(r.rand.Intn(256)) }
	u16 := func() uint16 { return uint16(r.rand.Intn(65536)) }

	switch model {
	case Gray:
		m := image.NewGray(rect)
		for i := range m.Pix {
			m.Pix[i] = u8()
		}
		return m
	case Gray16:
		m := image.NewGray16(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetGray16(x, y, color.Gray16{Y: u16()})
			}
		}
		return m
	case RGBA:
		m := image.NewNRGBA(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				// Alpha below 255 keeps the encoder from dropping the channel.
				m.SetNRGBA(x, y, color.NRGBA{R: u8(), G: u8(), B: u8(), A: uint8(r.rand.Intn(255))})
			}
		}
		return m
	case RGB16:
		m := image.NewRGBA64(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetRGBA64(x, y, color.RGBA64{R: u16(), G: u16(), B: u16(), A: 0xffff})
			}
		}
		return m
	case RGBA16:
		m := image.NewNRGBA64(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetNRGBA64(x, y, color.NRGBA64{R: u16(), G: u16(), B: u16(), A: uint16(r.rand.Intn(0xffff))})
			}
		}
		return m
	case Paletted:
		palette := color.Palette{color.Black, color.White, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255}}
		m := image.NewPaletted(rect, palette)
		for i := range m.Pix {
			m.Pix[i] = uint8(r.rand.Intn(len(palette)))
		}
		return m
	default:
		m := image.NewRGBA(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetRGBA(x, y, color.RGBA{R: u8(), G: u8(), B: u8(), A: 255})
			}
		}
		return m
	}
}

// PNG returns a random PNG-encoded image.
func (r *RNG) PNG(w, h int, model ColorModel) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Image(w, h, model)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// JPEG returns a random JPEG-encoded image. Only Gray and RGB are meaningful.
func (r *RNG) JPEG(w, h int, model ColorModel) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, r.Image(w, h, model), &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Record returns a random metadata record nested up to depth levels, holding
// values in the form the metadata codecs decode to: integers as int64
// (some beyond 2^53), non-integral float64s, strings, bools and nil.
func (r *RNG) Record(depth int) map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.object(depth)
}

func (r *RNG) object(depth int) map[string]any {
	n := r.rand.Intn(5)
	m := make(map[string]any, n)
	for i := 0; i < n; i++ {
		m["k"+strconv.Itoa(r.rand.Intn(1000))] = r.value(depth - 1)
	}
	return m
}

func (r *RNG) value(depth int) any {
	kinds := 6
	if depth > 0 {
		kinds = 8
	}
	switch r.rand.Intn(kinds) {
	case 0:
		return nil
	case 1:
		return r.rand.Intn(2) == 1
	case 2:
		// Odd eighths are never integral.
		return float64(2*r.rand.Intn(1<<19)+1) / 8
	case 3:
		return "s" + strconv.Itoa(r.rand.Int())
	case 4:
		return int64(-r.rand.Intn(100))
	case 5:
		// Beyond float64 integer precision.
		return int64(1<<53) + r.rand.Int63n(1<<40)
	case 6:
		n := r.rand.Intn(4)
		out := make([]any, n)
		for i := range out {
			out[i] = r.value(depth - 1)
		}
		return out
	default:
		return r.object(depth)
	}
}

// WriteFile writes data to dir/name and returns the full path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
