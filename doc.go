/*
 * doc.go, part of gomolara.
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

/*Package molara evaluates molecular wavefunctions built from contracted
Gaussian basis sets, for visualization purposes.

	**gomolara capabilities**

    Evaluates s, p, d, f and g contracted-Gaussian shells at arbitrary
	points in space, in the Cartesian component convention.

    Normalizes primitive and contracted Gaussians, with the prenormalization
	conventions of several quantum-chemistry programs.

    Transforms molecular-orbital coefficient vectors from the ORCA
	spherical-harmonic order to the Cartesian order used for evaluation.

    Evaluates a molecular orbital as a scalar field, ready to be sampled
	on a voxel grid (see the voxel subpackage).

    Extracts dual-sign (positive and negative lobe) isosurfaces and
	isolines from sampled grids (see the march subpackage).

The library does not perform electronic-structure calculations: basis sets
and molecular-orbital coefficients are expected to come from the output of a
quantum-chemistry program, read by the caller. Positions are in Angstrom
except where noted; Gaussian exponents are in 1/Bohr^2, as customary, and the
evaluators convert internally.
*/
package molara
