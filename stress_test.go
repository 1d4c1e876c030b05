/*
 * stress_test.go, part of goMTP.
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
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestReorderStress(Te *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	out, err := ReorderStress(in)
	if err != nil {
		Te.Fatal(err)
	}
	expected := []float64{1, 2, 3, 5, 6, 4}
	if !floats.Equal(out, expected) {
		Te.Errorf("expected %v, got %v", expected, out)
	}
	if !floats.Equal(in, []float64{1, 2, 3, 4, 5, 6}) {
		Te.Errorf("the input was modified: %v", in)
	}
	for _, bad := range [][]float64{nil, {1, 2, 3}, {1, 2, 3, 4, 5, 6, 7}} {
		if _, err := ReorderStress(bad); !errors.Is(err, ErrShapeMismatch) {
			Te.Errorf("%d components should be a shape mismatch, got %v", len(bad), err)
		}
	}
}

//Every target axis must be in the source order.
func TestStressOrdersArePermutations(Te *testing.T) {
	for _, name := range TargetStressOrder {
		axisIndex(SourceStressOrder, name)
	}
}
