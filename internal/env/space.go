package env

import (
	"fmt"
	"math"
	"strings"
)

// Dtype names the element type of a Box space.
type Dtype string

const (
	DtypeInt32   Dtype = "int32"
	DtypeUint8   Dtype = "uint8"
	DtypeFloat64 Dtype = "float64"
)

// Space describes the shape, dtype and bounds contract of observations
// or actions. Computed once at construction and read-only thereafter.
type Space interface {
	fmt.Stringer
}

// Box is an n-dimensional tensor space with uniform scalar bounds.
type Box struct {
	Low   float64
	High  float64
	Shape []int
	Dtype Dtype
}

// NewBox creates a Box space.
func NewBox(low, high float64, shape []int, dtype Dtype) Box {
	return Box{Low: low, High: high, Shape: shape, Dtype: dtype}
}

// Unbounded returns a Box over (-inf, +inf) with the given shape.
func Unbounded(shape []int, dtype Dtype) Box {
	return NewBox(math.Inf(-1), math.Inf(1), shape, dtype)
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%v, %s, [%g, %g])", b.Shape, b.Dtype, b.Low, b.High)
}

// Contains reports whether v lies within the box bounds.
func (b Box) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// Discrete is a space of n choices: {0, 1, ..., n-1}.
type Discrete struct {
	N int
}

func (d Discrete) String() string {
	return fmt.Sprintf("Discrete(%d)", d.N)
}

// Contains reports whether i is a valid choice.
func (d Discrete) Contains(i int) bool {
	return i >= 0 && i < d.N
}

// TupleSpace is an ordered product of spaces.
type TupleSpace struct {
	Spaces []Space
}

func (t TupleSpace) String() string {
	parts := make([]string, len(t.Spaces))
	for i, s := range t.Spaces {
		parts[i] = s.String()
	}
	return fmt.Sprintf("Tuple(%s)", strings.Join(parts, ", "))
}

// DictEntry is one named member of a DictSpace.
type DictEntry struct {
	Key   string
	Space Space
}

// DictSpace is a named collection of spaces with a fixed key order.
type DictSpace struct {
	Entries []DictEntry
}

func (d DictSpace) String() string {
	parts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		parts[i] = fmt.Sprintf("%s: %s", e.Key, e.Space)
	}
	return fmt.Sprintf("Dict(%s)", strings.Join(parts, ", "))
}

// VarShape marks a dimension of unknown, per-step length in a space
// describing variable-length collections.
const VarShape = -1
