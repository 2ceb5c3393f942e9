/*
 * squares.go, part of gomolara.
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
	"fmt"

	"github.com/Molara-Lab/gomolara/voxel"
)

//squareCorners returns the grid indices of the 4 corners of the cell
//whose lowest-index corner is (i,j), counterclockwise from that corner.
func squareCorners(i, j int) [4][2]int {
	return [4][2]int{
		{i, j},
		{i + 1, j},
		{i + 1, j + 1},
		{i, j + 1},
	}
}

//lineInterp interpolates the crossing of the level set v=iso along the
//cell edge from va to vb. Near-equal corner values would blow up the
//division, so those fall back to the edge midpoint.
func lineInterp(iso, va, vb float64) float64 {
	d := vb - va
	if d < 1e-6 && d > -1e-6 {
		return 0.5
	}
	return (iso - va) / d
}

//lineCase resolves the 4-bit corner pattern into a lineTable index. The
//two diagonal patterns (5 and 10) are ambiguous: both have opposite
//corners inside, and the cell average decides which way the contour
//splits. For the negative lobe the comparison flips along with the sign
//of the isovalue.
func lineCase(pattern int, mean, iso float64) int {
	switch {
	case pattern == 5 && iso > 0 && mean < iso:
		return 10
	case pattern == 10 && iso > 0 && mean < iso:
		return 5
	case pattern == 5 && iso < 0 && mean > iso:
		return 10
	case pattern == 10 && iso < 0 && mean > iso:
		return 5
	}
	return pattern
}

//Squares extracts the two isolines of g at +isovalue and -isovalue with
//the marching-squares algorithm. The isovalue must be strictly positive.
//Points come back in pairs, each pair one line segment, embedded in the
//3D space the plane of g lives in.
func Squares(g *voxel.Grid2D, isovalue float64) (*IsoLineSet, error) {
	if g == nil {
		return nil, fmt.Errorf("march: nil grid")
	}
	if isovalue <= 0 {
		return nil, fmt.Errorf("march: isovalue must be positive, got %v", isovalue)
	}
	set := new(IsoLineSet)
	var corners [4][2]int
	var values [4]float64
	for i := 0; i < g.N[0]-1; i++ {
		for j := 0; j < g.N[1]-1; j++ {
			corners = squareCorners(i, j)
			pos, neg := 0, 0
			var mean float64
			for m := 0; m < 4; m++ {
				values[m] = g.At(corners[m][0], corners[m][1])
				mean += 0.25 * values[m]
				if values[m] > isovalue {
					pos |= 1 << m
				}
				if values[m] < -isovalue {
					neg |= 1 << m
				}
			}
			emitSegments(&set.Positive, g, &corners, &values, lineCase(pos, mean, isovalue), isovalue)
			emitSegments(&set.Negative, g, &corners, &values, lineCase(neg, mean, -isovalue), -isovalue)
		}
	}
	return set, nil
}

func emitSegments(dst *[][3]float64, g *voxel.Grid2D, corners *[4][2]int, values *[4]float64, tableCase int, iso float64) {
	row := &lineTable[tableCase]
	for e := 0; e < 4 && row[e] >= 0; e++ {
		edge := lineCorners[row[e]]
		a := corners[edge[0]]
		b := corners[edge[1]]
		t := lineInterp(iso, values[edge[0]], values[edge[1]])
		pa := g.Point(a[0], a[1])
		pb := g.Point(b[0], b[1])
		var p [3]float64
		for d := 0; d < 3; d++ {
			p[d] = pa[d] + t*(pb[d]-pa[d])
		}
		*dst = append(*dst, p)
	}
}
