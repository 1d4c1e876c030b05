/*
 * record.go, part of goMTP.
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

//StressComponents is the number of independent components of the virial stress.
const StressComponents = 6

//Record is a structure together with its labels, ready to be encoded.
//The stress is kept in SourceStressOrder. Records built by NewRecord always
//have all the labels; a nil Energy, Forces or Stress means that the corresponding
//section is left out of the cfg block.
type Record struct {
	Structure *Structure
	NumAtoms  int
	Energy    *float64
	Forces    *v3.Matrix
	Stress    []float64
}

//Float returns a pointer to a copy of f. Handy to give energies to NewRecord and Pool.
func Float(f float64) *float64 {
	return &f
}

//NewRecord builds a record from structure s and its energy, forces and stress.
//Any of the labels can be nil, in which case zeros are used (a 0.0 energy, zero forces
//for each atom, and zero stress). The forces must have one vector per atom, and the stress
//must have StressComponents elements, otherwise an error matching ErrShapeMismatch is returned.
//The labels given are copied, so the record doesn't share data with the caller.
func NewRecord(s *Structure, energy *float64, forces *v3.Matrix, stress []float64) (*Record, error) {
	const caller = "NewRecord"
	if s == nil || s.Len() == 0 {
		return nil, newError(ErrShapeMismatch, "nil or empty structure", caller)
	}
	n := s.Len()
	r := &Record{Structure: s, NumAtoms: n}
	r.Energy = Float(0)
	if energy != nil {
		r.Energy = Float(*energy)
	}
	if forces != nil {
		if f := forces.NVecs(); f != n {
			return nil, newError(ErrShapeMismatch, fmt.Sprintf("%d force vectors for %d atoms", f, n), caller)
		}
		r.Forces = forces.Copy()
	} else {
		r.Forces = v3.Zeros(n)
	}
	r.Stress = make([]float64, StressComponents)
	if stress != nil {
		if len(stress) != StressComponents {
			return nil, newError(ErrShapeMismatch, fmt.Sprintf("stress has %d components, expected %d", len(stress), StressComponents), caller)
		}
		copy(r.Stress, stress)
	}
	return r, nil
}

//Pool builds one record per structure with NewRecord. energies, forces and stresses
//are lists parallel to structures. Any list can be nil, meaning that the label is absent
//for all structures, and any element of a list can be nil, meaning that the label is absent
//for that structure. Non-nil lists must have the same length as structures, otherwise an
//error matching ErrLengthMismatch is returned.
func Pool(structures []*Structure, energies []*float64, forces []*v3.Matrix, stresses [][]float64) ([]*Record, error) {
	const caller = "Pool"
	n := len(structures)
	lens := []struct {
		name  string
		l     int
		given bool
	}{
		{"energies", len(energies), energies != nil},
		{"forces", len(forces), forces != nil},
		{"stresses", len(stresses), stresses != nil},
	}
	for _, v := range lens {
		if v.given && v.l != n {
			return nil, newError(ErrLengthMismatch, fmt.Sprintf("%d structures but %d %s", n, v.l, v.name), caller)
		}
	}
	ret := make([]*Record, 0, n)
	for i, s := range structures {
		var e *float64
		var f *v3.Matrix
		var st []float64
		if energies != nil {
			e = energies[i]
		}
		if forces != nil {
			f = forces[i]
		}
		if stresses != nil {
			st = stresses[i]
		}
		r, err := NewRecord(s, e, f, st)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("%s: structure %d", caller, i))
		}
		ret = append(ret, r)
	}
	return ret, nil
}
