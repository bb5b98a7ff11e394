package swarm

import (
	"math"
	"math/rand"
	"testing"
)

func TestSinglePointIsCentred(t *testing.T) {
	got := Layout([]float64{3}, 7)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("got %v, want [0]", got)
	}
}

func TestNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const diameter = 7.0

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(120)
		ys := make([]float64, n)
		for i := range ys {
			// Integer counts scaled to pixels produce many exact ties; odd
			// trials add jitter so that neighbours only partly overlap.
			ys[i] = float64(rng.Intn(15)) * 20
			if trial%2 == 1 {
				ys[i] += rng.Float64() * 10
			}
		}

		xs := Layout(ys, diameter)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
				if d < diameter-1e-6 {
					t.Fatalf("trial %d: points %d and %d are %.3f apart (diameter %.1f)", trial, i, j, d, diameter)
				}
			}
		}
	}
}

func TestTiesAreSymmetric(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9} {
		ys := make([]float64, n)
		for i := range ys {
			ys[i] = 10
		}

		xs := Layout(ys, 1)
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("%d ties: offsets %v are not symmetric (sum %g)", n, xs, sum)
		}
		if xs[0] != 0 {
			t.Errorf("%d ties: first point should sit on the centre, got %g", n, xs[0])
		}
	}
}

func TestTieStep(t *testing.T) {
	xs := Layout([]float64{2, 2, 2}, 1)
	want := []float64{0, -Gap, Gap}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > 1e-12 {
			t.Errorf("got %v, want %v", xs, want)
			break
		}
	}
}

func TestInputOrderPreserved(t *testing.T) {
	xs := Layout([]float64{5, 1, 5}, 1)
	want := []float64{0, 0, -Gap}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > 1e-12 {
			t.Errorf("got %v, want %v", xs, want)
			break
		}
	}
}

func TestNaNIsSkipped(t *testing.T) {
	xs := Layout([]float64{4, math.NaN(), 4}, 1)
	if xs[1] != 0 {
		t.Errorf("NaN got offset %g", xs[1])
	}
	if xs[0] != 0 || math.Abs(xs[2]+Gap) > 1e-12 {
		t.Errorf("got %v; the NaN should not take part in placement", xs)
	}
}

func TestFarApartValuesStayCentred(t *testing.T) {
	xs := Layout([]float64{0, 10, 20, 30}, 5)
	for i, x := range xs {
		if x != 0 {
			t.Errorf("point %d moved to %g although nothing overlaps it", i, x)
		}
	}
}

func TestClamp(t *testing.T) {
	got, n := Clamp([]float64{-3, -1, 0, 2, 5}, 2)
	want := []float64{-2, -1, 0, 2, 2}
	if n != 2 {
		t.Errorf("got %d clamped, want 2", n)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
