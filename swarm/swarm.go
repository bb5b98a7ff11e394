// Package swarm places the markers of a categorical scatter ("beeswarm")
// plot: every point keeps its value on the value axis and is pushed sideways
// from the category centre just far enough not to overlap the points already
// placed.
package swarm

import (
	"math"
	"sort"
)

// Gap widens the sideways step between touching markers so that neighbours
// do not quite kiss.
const Gap = 1.05

type placed struct {
	x, y float64
}

// Layout returns the horizontal offset from the category centre of each
// value in ys, in the same units as ys and in input order. Markers have the
// given diameter, so ys must already be scaled to the units the markers are
// drawn in (typically pixels).
//
// Points are placed from the smallest value up. For each point the centre and,
// for every placed neighbour closer than one diameter on the value axis, the
// two positions that just touch that neighbour on the left and on the right
// are candidates; the candidate nearest the centre that overlaps nothing wins.
// NaN values are not placed and get offset 0.
func Layout(ys []float64, diameter float64) []float64 {
	offsets := make([]float64, len(ys))
	if diameter <= 0 {
		return offsets
	}

	order := make([]int, 0, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) {
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(a, b int) bool { return ys[order[a]] < ys[order[b]] })

	swarm := make([]placed, 0, len(order))
	for _, i := range order {
		y := ys[i]
		neighbors := couldOverlap(y, swarm, diameter)
		candidates := positionCandidates(y, neighbors, diameter)

		sort.SliceStable(candidates, func(a, b int) bool {
			return math.Abs(candidates[a]) < math.Abs(candidates[b])
		})

		x := firstFree(candidates, y, neighbors, diameter)
		offsets[i] = x
		swarm = append(swarm, placed{x: x, y: y})
	}

	return offsets
}

// couldOverlap returns the placed points that are within one diameter of y on
// the value axis. Since points are placed in ascending order only the tail of
// the swarm needs checking.
func couldOverlap(y float64, swarm []placed, diameter float64) []placed {
	var out []placed
	for i := len(swarm) - 1; i >= 0; i-- {
		if y-swarm[i].y >= diameter {
			break
		}
		out = append(out, swarm[i])
	}
	return out
}

func positionCandidates(y float64, neighbors []placed, diameter float64) []float64 {
	candidates := make([]float64, 0, 1+2*len(neighbors))
	candidates = append(candidates, 0)

	leftFirst := true
	for _, n := range neighbors {
		dy := y - n.y
		dx := math.Sqrt(math.Max(diameter*diameter-dy*dy, 0)) * Gap
		left, right := n.x-dx, n.x+dx
		if leftFirst {
			candidates = append(candidates, left, right)
		} else {
			candidates = append(candidates, right, left)
		}
		leftFirst = !leftFirst
	}

	return candidates
}

func firstFree(candidates []float64, y float64, neighbors []placed, diameter float64) float64 {
	// Allow for rounding in the candidate computation.
	limit := diameter*diameter - 1e-9*diameter*diameter

Candidates:
	for _, x := range candidates {
		for _, n := range neighbors {
			dx, dy := x-n.x, y-n.y
			if dx*dx+dy*dy < limit {
				continue Candidates
			}
		}
		return x
	}

	// Every candidate collides only if the neighbours are inconsistent, which
	// the construction above rules out. Fall back to the outermost one.
	return candidates[len(candidates)-1]
}

// Clamp pulls offsets further than limit from the centre back to ±limit and
// reports how many had to move. Markers that do not fit in the category's
// width are then drawn overlapping at its edge.
func Clamp(offsets []float64, limit float64) ([]float64, int) {
	out := make([]float64, len(offsets))
	n := 0
	for i, x := range offsets {
		switch {
		case x > limit:
			out[i] = limit
			n++
		case x < -limit:
			out[i] = -limit
			n++
		default:
			out[i] = x
		}
	}
	return out, n
}
