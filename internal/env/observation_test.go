package env

import "testing"

func TestTransposeCHW(t *testing.T) {
	// 2 channels over a 2x3 grid, channel-first.
	in := []int32{
		// channel 0
		1, 2, 3,
		4, 5, 6,
		// channel 1
		10, 20, 30,
		40, 50, 60,
	}

	out := transposeCHW(in, 2, 2, 3)

	if len(out.Shape) != 3 || out.Shape[0] != 2 || out.Shape[1] != 3 || out.Shape[2] != 2 {
		t.Fatalf("shape = %v, want [2 3 2]", out.Shape)
	}

	// Every (c, x, y) must land at (x, y, c).
	for c := 0; c < 2; c++ {
		for x := 0; x < 2; x++ {
			for y := 0; y < 3; y++ {
				want := in[(c*2+x)*3+y]
				if got := out.At(x, y, c); got != want {
					t.Errorf("At(%d, %d, %d) = %d, want %d", x, y, c, got, want)
				}
			}
		}
	}
}

func TestTransposeCHWPreservesValues(t *testing.T) {
	in := []int32{7, 0, 0, 0, 0, 0}
	out := transposeCHW(in, 3, 1, 2)

	var inSum, outSum int32
	for _, v := range in {
		inSum += v
	}
	for _, v := range out.Data {
		outSum += v
	}
	if inSum != outSum {
		t.Errorf("value sum changed: %d vs %d", inSum, outSum)
	}
}

func TestIntTensorAt(t *testing.T) {
	tensor := &IntTensor{Shape: []int{2, 2}, Data: []int32{1, 2, 3, 4}}
	if got := tensor.At(1, 0); got != 3 {
		t.Errorf("At(1, 0) = %d, want 3", got)
	}
	if got := tensor.At(0, 1); got != 2 {
		t.Errorf("At(0, 1) = %d, want 2", got)
	}
}

func TestRamVectorIdentity(t *testing.T) {
	data := []float64{1.5, -1, 3.25}
	vec := ramVector(data)
	if vec.Len() != 3 {
		t.Fatalf("Len = %d, want 3", vec.Len())
	}
	for i, want := range data {
		if got := vec.AtVec(i); got != want {
			t.Errorf("AtVec(%d) = %v, want %v", i, got, want)
		}
	}
}
