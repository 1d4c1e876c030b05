/*
 * structure.go, part of goMTP.
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

package mtp

import (
	"fmt"

	v3 "github.com/rmera/gomtp/v3"
)

//Atom contains the information of a site except for its coordinates, which
//are kept in a v3.Matrix in the Structure.
type Atom struct {
	Symbol    string  //the species, used for the type in cfg files
	Label     string  //optional site label
	Occupancy float64 //occupancy of the species in the site. 1 for ordered sites.
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	n := *A
	return &n
}

//Structure is a periodic (or not) set of atoms with their cartesian coordinates
//and, optionally, the lattice vectors of the cell, one vector per row.
//Structures are not modified by any function in this package.
type Structure struct {
	Atoms   []*Atom
	Coords  *v3.Matrix
	Lattice *v3.Matrix //nil for non-periodic structures
}

//NewStructure builds a structure from the given atoms, coordinates and lattice.
//The lattice can be nil. It returns error if there are no atoms, if the number
//of coordinates doesn't match the number of atoms, or if the lattice is not 3x3.
func NewStructure(atoms []*Atom, coords, lattice *v3.Matrix) (*Structure, error) {
	const caller = "NewStructure"
	if len(atoms) == 0 {
		return nil, newError(ErrShapeMismatch, "structure has no atoms", caller)
	}
	if coords == nil {
		return nil, newError(ErrShapeMismatch, "nil coordinates", caller)
	}
	if n := coords.NVecs(); n != len(atoms) {
		return nil, newError(ErrShapeMismatch, fmt.Sprintf("%d atoms but %d coordinates", len(atoms), n), caller)
	}
	for i, at := range atoms {
		if at == nil || at.Symbol == "" {
			return nil, newError(ErrShapeMismatch, fmt.Sprintf("atom %d has no species", i), caller)
		}
	}
	if lattice != nil && lattice.NVecs() != 3 {
		return nil, newError(ErrShapeMismatch, fmt.Sprintf("lattice has %d vectors, expected 3", lattice.NVecs()), caller)
	}
	return &Structure{Atoms: atoms, Coords: coords, Lattice: lattice}, nil
}

//Atom returns the Atom corresponding to the index i. Panics if
//out of range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("Structure: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

//Len returns the number of atoms (sites) in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Species returns the symbol of each atom, in order.
func (S *Structure) Species() []string {
	ret := make([]string, 0, S.Len())
	for _, v := range S.Atoms {
		ret = append(ret, v.Symbol)
	}
	return ret
}

var _ Atomer = (*Structure)(nil)
