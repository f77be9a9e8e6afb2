package sample

import (
	"slices"
	"strconv"
	"strings"
)

// DType names the element type of an Array. Names follow numpy.
type DType string

const (
	Uint8  DType = "uint8"
	Uint16 DType = "uint16"
)

// Size returns the element size in bytes, or 0 for unknown types.
func (d DType) Size() int {
	switch d {
	case Uint8:
		return 1
	case Uint16:
		return 2
	default:
		return 0
	}
}

// Array is a dense, row-major numeric buffer.
// Multi-byte elements are stored little-endian.
type Array struct {
	Shape []int
	DType DType
	Data  []byte
}

// Len returns the number of elements.
func (a *Array) Len() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// NumBytes returns the size of Data implied by Shape and DType.
func (a *Array) NumBytes() int {
	return a.Len() * a.DType.Size()
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func cloneShape(shape []int) []int {
	return slices.Clone(shape)
}
