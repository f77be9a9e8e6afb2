package sample

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Family groups suffixes decoded the same way.
type Family string

// FamilyImage covers raster image files.
const FamilyImage Family = "image"

// ImageSuffixes lists the image suffixes supported out of the box.
var ImageSuffixes = []string{".jpeg", ".jpg", ".png"}

// Format binds a suffix to its family and decoder.
type Format struct {
	Family  Family
	Decoder Decoder
}

// Registry maps lower-case file suffixes to formats.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// DefaultRegistry returns a new registry holding the built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	dec := ImageDecoder{}
	for _, suffix := range ImageSuffixes {
		_ = r.Register(suffix, Format{Family: FamilyImage, Decoder: dec})
	}
	return r
}

var builtin = DefaultRegistry()

// SupportedSuffixes returns the sorted suffixes of the default registry.
func SupportedSuffixes() []string {
	return builtin.Suffixes()
}

// Register binds suffix (e.g. ".tif") to f, replacing any previous binding.
func (r *Registry) Register(suffix string, f Format) error {
	if !strings.HasPrefix(suffix, ".") || len(suffix) < 2 {
		return fmt.Errorf("invalid suffix %q: must start with '.'", suffix)
	}
	if f.Decoder == nil {
		return fmt.Errorf("format for %q has no decoder", suffix)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats[strings.ToLower(suffix)] = f
	return nil
}

// Lookup returns the format registered for suffix. Matching is case-insensitive.
func (r *Registry) Lookup(suffix string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formats[strings.ToLower(suffix)]
	return f, ok
}

// Suffixes returns the registered suffixes in sorted order.
func (r *Registry) Suffixes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.formats))
	for s := range r.formats {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
