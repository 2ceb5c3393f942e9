/*
 * mesh.go, part of gomolara.
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

//Package march extracts isosurfaces (3D, triangle meshes) and isolines
//(2D, line segments) from sampled voxel grids, for both signs of the field
//at once: molecular-orbital lobes come in pairs, one above +isovalue and
//one below -isovalue.
package march

//Vertex is one triangle-mesh vertex: a position and an outward normal,
//both in the grid's coordinates.
type Vertex struct {
	Pos    [3]float64
	Normal [3]float64
}

//IsoMesh holds the two triangle soups extracted from a grid, one per
//phase of the field. Every 3 consecutive vertices form one triangle;
//vertices are intentionally duplicated between triangles (no index
//buffer), since that is the layout renderers consume directly. Do not
//deduplicate.
type IsoMesh struct {
	Positive []Vertex
	Negative []Vertex
}

//Triangles returns the number of triangles in each phase.
func (m *IsoMesh) Triangles() (pos, neg int) {
	return len(m.Positive) / 3, len(m.Negative) / 3
}

//IsoLineSet holds the two segment soups extracted from a planar grid, one
//per phase. Every 2 consecutive points form one segment. The points live
//in 3D: the sampled plane can be oriented freely in space.
type IsoLineSet struct {
	Positive [][3]float64
	Negative [][3]float64
}

//Segments returns the number of line segments in each phase.
func (s *IsoLineSet) Segments() (pos, neg int) {
	return len(s.Positive) / 2, len(s.Negative) / 2
}
