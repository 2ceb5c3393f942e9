/*
 * squares_test.go, part of gomolara.
 *
 * Copyright 2024 The gomolara authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package march

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Molara-Lab/gomolara/voxel"
)

//oneCell builds a single-cell planar grid in the xy plane with the given
//corner values, ordered (0,0), (1,0), (1,1), (0,1).
func oneCell(t *testing.T, corners [4]float64) *voxel.Grid2D {
	t.Helper()
	g, err := voxel.NewGrid2D(
		[3]float64{0, 0, 0},
		[2][3]float64{{1, 0, 0}, {0, 1, 0}},
		[2]int{2, 2},
	)
	require.NoError(t, err)
	g.Set(0, 0, corners[0])
	g.Set(1, 0, corners[1])
	g.Set(1, 1, corners[2])
	g.Set(0, 1, corners[3])
	return g
}

func TestSquaresRejectsBadIsovalue(t *testing.T) {
	g := oneCell(t, [4]float64{0, 0, 0, 0})
	for _, iso := range []float64{0, -1} {
		_, err := Squares(g, iso)
		assert.Error(t, err)
	}
	_, err := Squares(nil, 0.5)
	assert.Error(t, err)
}

func TestSquaresSingleCrossing(t *testing.T) {
	// Only corner (1,1) exceeds the isovalue, so one segment cuts that
	// corner off, crossing edges 1 and 3 at their midpoints.
	g := oneCell(t, [4]float64{0, 0, 2, 0})
	set, err := Squares(g, 1)
	require.NoError(t, err)
	require.Len(t, set.Positive, 2)
	assert.Empty(t, set.Negative)

	posSegs, negSegs := set.Segments()
	require.Equal(t, 1, posSegs)
	require.Zero(t, negSegs)
	a, b := set.Positive[0], set.Positive[1]
	assert.InDelta(t, 1.0, a[0], 1e-12)
	assert.InDelta(t, 0.5, a[1], 1e-12)
	assert.InDelta(t, 0.5, b[0], 1e-12)
	assert.InDelta(t, 1.0, b[1], 1e-12)
}

func TestSquaresNegativeLobe(t *testing.T) {
	g := oneCell(t, [4]float64{-2, 0, 0, 0})
	set, err := Squares(g, 1)
	require.NoError(t, err)
	assert.Empty(t, set.Positive)
	require.Len(t, set.Negative, 2)
	for _, p := range set.Negative {
		assert.Zero(t, p[2], "plane sits at z=0")
	}
}

// segsTouchEdge reports whether either endpoint of seg lies on the cell
// side x=const or y=const; pass NaN to skip a coordinate.
func segsTouchEdge(seg [2][3]float64, x, y float64) bool {
	const eps = 1e-12
	for _, p := range seg {
		if (!math.IsNaN(x) && math.Abs(p[0]-x) < eps) ||
			(!math.IsNaN(y) && math.Abs(p[1]-y) < eps) {
			return true
		}
	}
	return false
}

func TestSquaresAmbiguousDiagonal(t *testing.T) {
	// Corners (0,0) and (1,1) are high: pattern 5. The cell mean decides
	// the split. With a high mean the contour separates the two low
	// corners; with a low mean it separates the two high ones.
	cases := []struct {
		name    string
		corners [4]float64
		// whether the first segment should run from the bottom edge to
		// the left edge, cutting off the high corner (0,0)
		cutsHighCorner bool
	}{
		{"low mean splits high corners", [4]float64{2, -10, 2, -10}, true},
		{"high mean splits low corners", [4]float64{2, 0.9, 2, 0.9}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := oneCell(t, c.corners)
			set, err := Squares(g, 1)
			require.NoError(t, err)
			require.Len(t, set.Positive, 4, "ambiguous cell yields two segments")

			posSegs, _ := set.Segments()
			require.Equal(t, 2, posSegs)
			// Case 5 pairs edge 0 (bottom) with edge 1 (right): the
			// first segment runs from the bottom edge to the right edge,
			// isolating corner (1,0). Case 10 pairs edge 0 (bottom) with
			// edge 2 (left), isolating corner (0,0).
			first := [2][3]float64{set.Positive[0], set.Positive[1]}
			touchesBottom := segsTouchEdge(first, math.NaN(), 0)
			touchesLeft := segsTouchEdge(first, 0, math.NaN())
			require.True(t, touchesBottom)
			assert.Equal(t, c.cutsHighCorner, touchesLeft,
				"mean-based disambiguation picked the wrong topology")
		})
	}
}

func TestSquaresRadialField(t *testing.T) {
	// A radial field R - |p| cut by a plane through the origin gives two
	// concentric circular contours, one per phase.
	g, err := voxel.NewGrid2D(
		[3]float64{-2, -2, 0},
		[2][3]float64{{0.05, 0, 0}, {0, 0.05, 0}},
		[2]int{81, 81},
	)
	require.NoError(t, err)
	voxel.Sample2D(g, func(p [3]float64) float64 {
		return 1.0 - math.Sqrt(p[0]*p[0]+p[1]*p[1])
	})
	set, err := Squares(g, 0.25)
	require.NoError(t, err)
	require.NotEmpty(t, set.Positive)
	require.NotEmpty(t, set.Negative)
	require.Zero(t, len(set.Positive)%2)
	require.Zero(t, len(set.Negative)%2)
	for _, p := range set.Positive {
		r := math.Sqrt(p[0]*p[0] + p[1]*p[1])
		assert.InDelta(t, 0.75, r, 0.03)
	}
	for _, p := range set.Negative {
		r := math.Sqrt(p[0]*p[0] + p[1]*p[1])
		assert.InDelta(t, 1.25, r, 0.03)
	}
}

func TestSquaresMidpointFallback(t *testing.T) {
	// The bottom edge straddles the isovalue with corner values only
	// 4e-7 apart, so its crossing falls back to the edge midpoint.
	g := oneCell(t, [4]float64{1 + 2e-7, 1 - 2e-7, -1, -1})
	set, err := Squares(g, 1)
	require.NoError(t, err)
	require.Len(t, set.Positive, 2)
	for _, p := range set.Positive {
		assert.False(t, math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsNaN(p[2]))
	}
	assert.InDelta(t, 0.5, set.Positive[0][0], 1e-12)
	assert.Zero(t, set.Positive[0][1])
}
