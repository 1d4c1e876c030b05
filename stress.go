/*
 * stress.go, part of goMTP.
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

import "fmt"

//Axis orders of the virial stress. Labels are given in the VASP
//order; MLIP cfg files use the Voigt-like order.
var (
	SourceStressOrder = [StressComponents]string{"xx", "yy", "zz", "xy", "yz", "xz"}
	TargetStressOrder = [StressComponents]string{"xx", "yy", "zz", "yz", "xz", "xy"}
)

//ReorderStress returns a new slice with the components of v, given in
//SourceStressOrder, arranged in TargetStressOrder. Each target component is
//looked up by name in the source order. Returns an error matching ErrShapeMismatch
//if v doesn't have StressComponents elements.
func ReorderStress(v []float64) ([]float64, error) {
	if len(v) != StressComponents {
		return nil, newError(ErrShapeMismatch, fmt.Sprintf("stress has %d components, expected %d", len(v), StressComponents), "ReorderStress")
	}
	ret := make([]float64, StressComponents)
	for i, name := range TargetStressOrder {
		ret[i] = v[axisIndex(SourceStressOrder, name)]
	}
	return ret, nil
}

//axisIndex returns the position of name in order. Panics if
//it is not there, which means that the two orders don't have the same axes.
func axisIndex(order [StressComponents]string, name string) int {
	for i, v := range order {
		if v == name {
			return i
		}
	}
	panic("goMTP: stress axis " + name + " missing from the source order")
}
