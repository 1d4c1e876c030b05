/*
 * doc.go, part of goMTP.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
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

/*Package mtp is the main package of the goMTP library. It turns sets of atomic structures
with their energies, forces and stresses into the configuration (cfg) files read by
machine-learning interatomic potential programs such as MLIP.



	**goMTP Capabilities**


    Builds training records from structures and (optional) labels. Missing labels
	are replaced by zeros of the right shape.

    Builds the element table of a whole pool of structures. The position of each
	element in the table is the "type" of its atoms in the cfg file, so the same
	table is used for every block of a file.

    Reorders the 6-component virial stress from the xx yy zz xy yz xz order
	to the xx yy zz yz xz xy order expected by MLIP.

    Encodes each record into a BEGIN_CFG/END_CFG block with the exact column
	widths MLIP expects, and writes whole pools atomically, optionally compressed
	with zstd or gzip. Blocks can be encoded concurrently; the order of the file
	is always the order of the records.

    Summarizes pools (atoms per element, energy-per-atom statistics and
	histograms).

The training sets themselves can be read with the mtpjson package, and the
energy distribution can be plotted with mtpplot. Coordinates, forces and lattice
vectors are kept in v3.Matrix objects, based on gonum.org/v1/gonum/mat.*/
package mtp
