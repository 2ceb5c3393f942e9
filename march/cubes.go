/*
 * cubes.go, part of gomolara.
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
	"math"

	"github.com/Molara-Lab/gomolara/voxel"
)

//cubeCorners returns the grid indices of the 8 corners of the cell whose
//lowest-index corner is (i,j,k). Corners 0-3 ring the j plane, corners
//4-7 the j+1 plane, with corner m+4 directly across from corner m.
func cubeCorners(i, j, k int) [8][3]int {
	return [8][3]int{
		{i, j, k + 1},
		{i, j, k},
		{i + 1, j, k},
		{i + 1, j, k + 1},
		{i, j + 1, k + 1},
		{i, j + 1, k},
		{i + 1, j + 1, k},
		{i + 1, j + 1, k + 1},
	}
}

//cornerNormal returns the unit gradient of g at the grid corner c,
//estimated by central differences. At the grid boundary the stencil
//collapses to a one-sided difference.
func cornerNormal(g *voxel.Grid, c [3]int) [3]float64 {
	xm, xp := max(c[0]-1, 0), min(c[0]+1, g.N[0]-1)
	ym, yp := max(c[1]-1, 0), min(c[1]+1, g.N[1]-1)
	zm, zp := max(c[2]-1, 0), min(c[2]+1, g.N[2]-1)
	n := [3]float64{
		g.At(xp, c[1], c[2]) - g.At(xm, c[1], c[2]),
		g.At(c[0], yp, c[2]) - g.At(c[0], ym, c[2]),
		g.At(c[0], c[1], zp) - g.At(c[0], c[1], zm),
	}
	norm := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	n[0] /= norm
	n[1] /= norm
	n[2] /= norm
	return n
}

//edgeVertex interpolates the crossing of the level set v=iso along the
//cell edge from corner a to corner b, returning the interpolated position
//and the smooth-shaded normal, oriented by sign (+1 for the positive
//lobe, -1 for the negative one).
func edgeVertex(g *voxel.Grid, a, b [3]int, iso, sign float64) Vertex {
	va := g.At(a[0], a[1], a[2])
	vb := g.At(b[0], b[1], b[2])
	t := (iso - va) / (vb - va)
	pa := g.Point(a[0], a[1], a[2])
	pb := g.Point(b[0], b[1], b[2])
	na := cornerNormal(g, a)
	nb := cornerNormal(g, b)
	var v Vertex
	var norm float64
	for d := 0; d < 3; d++ {
		v.Pos[d] = pa[d] + t*(pb[d]-pa[d])
		v.Normal[d] = na[d] + t*(nb[d]-na[d])
		norm += v.Normal[d] * v.Normal[d]
	}
	norm = math.Sqrt(norm)
	for d := 0; d < 3; d++ {
		v.Normal[d] *= -sign / norm
	}
	return v
}

//Cubes extracts the two isosurfaces of g at +isovalue and -isovalue with
//the marching-cubes algorithm. The isovalue must be strictly positive;
//the two signed surfaces come back as independent triangle soups with
//smooth-shaded normals pointing away from each lobe. A grid too thin to
//hold a full cell in every direction yields an empty mesh, not an error.
func Cubes(g *voxel.Grid, isovalue float64) (*IsoMesh, error) {
	if g == nil {
		return nil, fmt.Errorf("march: nil grid")
	}
	if isovalue <= 0 {
		return nil, fmt.Errorf("march: isovalue must be positive, got %v", isovalue)
	}
	mesh := new(IsoMesh)
	var corners [8][3]int
	var values [8]float64
	for i := 0; i < g.N[0]-1; i++ {
		for j := 0; j < g.N[1]-1; j++ {
			for k := 0; k < g.N[2]-1; k++ {
				corners = cubeCorners(i, j, k)
				pos, neg := 0, 0
				for m := 0; m < 8; m++ {
					values[m] = g.At(corners[m][0], corners[m][1], corners[m][2])
					if values[m] > isovalue {
						pos |= 1 << m
					}
					if values[m] < -isovalue {
						neg |= 1 << m
					}
				}
				emitTriangles(&mesh.Positive, g, &corners, pos, isovalue, 1)
				emitTriangles(&mesh.Negative, g, &corners, neg, -isovalue, -1)
			}
		}
	}
	return mesh, nil
}

func emitTriangles(dst *[]Vertex, g *voxel.Grid, corners *[8][3]int, pattern int, iso, sign float64) {
	row := &triangleTable[pattern]
	for e := 0; e < 15 && row[e] >= 0; e++ {
		edge := edgeCorners[row[e]]
		a := corners[edge[0]]
		b := corners[edge[1]]
		*dst = append(*dst, edgeVertex(g, a, b, iso, sign))
	}
}
