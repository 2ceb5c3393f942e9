/*
 * cubes_test.go, part of gomolara.
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

func sphereGrid(t *testing.T, center [3]float64, radius float64) *voxel.Grid {
	t.Helper()
	g, err := voxel.NewGrid([3]float64{-2, -2, -2}, [3]float64{0.1, 0.1, 0.1}, [3]int{41, 41, 41})
	require.NoError(t, err)
	voxel.Sample(g, func(p [3]float64) float64 {
		dx := p[0] - center[0]
		dy := p[1] - center[1]
		dz := p[2] - center[2]
		return radius - math.Sqrt(dx*dx+dy*dy+dz*dz)
	})
	return g
}

func TestCubesRejectsBadIsovalue(t *testing.T) {
	g, err := voxel.NewGrid([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{2, 2, 2})
	require.NoError(t, err)
	for _, iso := range []float64{0, -0.02} {
		_, err := Cubes(g, iso)
		assert.Error(t, err, "isovalue %v should be rejected", iso)
	}
	_, err = Cubes(nil, 0.1)
	assert.Error(t, err)
}

func TestCubesFlatFieldInBand(t *testing.T) {
	g, err := voxel.NewGrid([3]float64{0, 0, 0}, [3]float64{0.5, 0.5, 0.5}, [3]int{5, 5, 5})
	require.NoError(t, err)
	for i := range g.Data {
		g.Data[i] = 0.05 // strictly inside (-0.1, 0.1)
	}
	mesh, err := Cubes(g, 0.1)
	require.NoError(t, err)
	assert.Empty(t, mesh.Positive)
	assert.Empty(t, mesh.Negative)
}

func TestCubesDegenerateGrid(t *testing.T) {
	// A single layer of points holds no complete cell, so there is
	// nothing to march over.
	g, err := voxel.NewGrid([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{1, 4, 4})
	require.NoError(t, err)
	for i := range g.Data {
		g.Data[i] = 5.0
	}
	mesh, err := Cubes(g, 0.1)
	require.NoError(t, err)
	assert.Empty(t, mesh.Positive)
	assert.Empty(t, mesh.Negative)
}

func TestCubesSphere(t *testing.T) {
	center := [3]float64{0.05, -0.03, 0.02}
	g := sphereGrid(t, center, 1.0)
	mesh, err := Cubes(g, 0.1)
	require.NoError(t, err)

	require.NotEmpty(t, mesh.Positive)
	require.Zero(t, len(mesh.Positive)%3, "vertices must come in whole triangles")
	posTris, _ := mesh.Triangles()
	require.Equal(t, len(mesh.Positive)/3, posTris)

	// The positive surface is the sphere of radius radius-iso around the
	// center. Its vertices should sit near that radius and the normals
	// should point away from the center.
	wantR := 1.0 - 0.1
	outward := 0
	for _, v := range mesh.Positive {
		dx := v.Pos[0] - center[0]
		dy := v.Pos[1] - center[1]
		dz := v.Pos[2] - center[2]
		r := math.Sqrt(dx*dx + dy*dy + dz*dz)
		assert.InDelta(t, wantR, r, 0.05)
		nn := math.Sqrt(v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2])
		assert.InDelta(t, 1.0, nn, 1e-6, "normals must come out unit length")
		if v.Normal[0]*dx+v.Normal[1]*dy+v.Normal[2]*dz > 0 {
			outward++
		}
	}
	assert.GreaterOrEqual(t, float64(outward), 0.95*float64(len(mesh.Positive)),
		"normals on the positive lobe should point outward")
}

func TestCubesDualSign(t *testing.T) {
	// f = radius - distance is negative far from the center, so with a
	// wide enough box the -iso surface shows up too, as a larger sphere.
	center := [3]float64{0, 0, 0}
	g := sphereGrid(t, center, 1.0)
	mesh, err := Cubes(g, 0.3)
	require.NoError(t, err)
	require.NotEmpty(t, mesh.Positive)
	require.NotEmpty(t, mesh.Negative)
	require.Zero(t, len(mesh.Negative)%3)

	inward := 0
	for _, v := range mesh.Negative {
		r := math.Sqrt(v.Pos[0]*v.Pos[0] + v.Pos[1]*v.Pos[1] + v.Pos[2]*v.Pos[2])
		assert.InDelta(t, 1.3, r, 0.05)
		if v.Normal[0]*v.Pos[0]+v.Normal[1]*v.Pos[1]+v.Normal[2]*v.Pos[2] < 0 {
			inward++
		}
	}
	// The negative lobe's normals point away from where the field is most
	// negative, which for this field is back toward the center.
	assert.GreaterOrEqual(t, float64(inward), 0.95*float64(len(mesh.Negative)))
}

func TestCubesVerticesOnCellEdges(t *testing.T) {
	g := sphereGrid(t, [3]float64{0, 0, 0}, 1.0)
	mesh, err := Cubes(g, 0.1)
	require.NoError(t, err)
	// Every emitted vertex lies on a lattice edge: at least two of its
	// coordinates coincide with lattice planes.
	for _, v := range mesh.Positive[:min(len(mesh.Positive), 300)] {
		onPlane := 0
		for d := 0; d < 3; d++ {
			frac := (v.Pos[d] - g.Origin[d]) / g.Step[d]
			if math.Abs(frac-math.Round(frac)) < 1e-9 {
				onPlane++
			}
		}
		assert.GreaterOrEqual(t, onPlane, 2)
	}
}
