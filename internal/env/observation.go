package env

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mohamedayman15069/Agar/internal/engine"
)

// IntTensor is an n-dimensional int32 tensor in row-major layout,
// used for grid observations.
type IntTensor struct {
	Shape []int
	Data  []int32
}

// At returns the element at the given indices.
func (t *IntTensor) At(idx ...int) int32 {
	return t.Data[t.offset(idx)]
}

func (t *IntTensor) offset(idx []int) int {
	off := 0
	for i, ix := range idx {
		off = off*t.Shape[i] + ix
	}
	return off
}

// ByteTensor is an n-dimensional uint8 tensor in row-major layout,
// used for screen observations.
type ByteTensor struct {
	Shape []int
	Data  []uint8
}

// At returns the element at the given indices.
func (t *ByteTensor) At(idx ...int) uint8 {
	off := 0
	for i, ix := range idx {
		off = off*t.Shape[i] + ix
	}
	return t.Data[off]
}

// FullObservation repackages the engine's raw collections into a named
// five-field structure. No numeric transform is applied.
type FullObservation struct {
	Pellets []engine.EntityPos
	Viruses []engine.EntityPos
	Foods   []engine.EntityPos
	Agent   []engine.CellData
	Others  [][]engine.CellData
}

// transposeCHW permutes a channel-first (channels, width, height) tensor
// into channel-last (width, height, channels). Values pass through
// unchanged.
func transposeCHW(data []int32, channels, width, height int) *IntTensor {
	out := make([]int32, len(data))
	for c := 0; c < channels; c++ {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				out[(x*height+y)*channels+c] = data[(c*width+x)*height+y]
			}
		}
	}
	return &IntTensor{Shape: []int{width, height, channels}, Data: out}
}

// ramVector wraps the engine's flat state vector without copying into a
// gonum vector. Identity transform.
func ramVector(data []float64) *mat.VecDense {
	return mat.NewVecDense(len(data), data)
}

// repackageFull converts a raw snapshot into a FullObservation.
func repackageFull(s engine.Snapshot) FullObservation {
	return FullObservation{
		Pellets: s.Pellets,
		Viruses: s.Viruses,
		Foods:   s.Foods,
		Agent:   s.Agent,
		Others:  s.Others,
	}
}
