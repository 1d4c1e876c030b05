/*
 * elements.go, part of goMTP.
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
	"sort"
)

//Elements is a table of species. The position of a species in the table
//is the type code of its atoms in a cfg file.
type Elements []string

//ElementTable returns the sorted, duplicate-free list of the species present
//in any of the structures. The table is built for the whole pool, so type codes
//are consistent across all the blocks of a file. Returns an error matching
//ErrNoSpecies if no species are found.
func ElementTable(structures []*Structure) (Elements, error) {
	set := make(map[string]struct{})
	for _, s := range structures {
		if s == nil {
			continue
		}
		for _, at := range s.Atoms {
			set[at.Symbol] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil, newError(ErrNoSpecies, "no elements found in the structures", "ElementTable")
	}
	ret := make(Elements, 0, len(set))
	for k := range set {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret, nil
}

//Index returns the position of symbol in the table and true, or -1 and false
//if the symbol is not in the table. Tables given by the user need not be sorted;
//the position is always the one in the table as given.
func (E Elements) Index(symbol string) (int, bool) {
	for i, v := range E {
		if v == symbol {
			return i, true
		}
	}
	return -1, false
}

//TypeCodes returns the type code of each atom of s, or an error matching
//ErrUnknownSpecies for the first atom whose species is not in the table.
func (E Elements) TypeCodes(s Atomer) ([]int, error) {
	ret := make([]int, s.Len())
	for i := range ret {
		sym := s.Atom(i).Symbol
		t, ok := E.Index(sym)
		if !ok {
			return nil, newError(ErrUnknownSpecies, fmt.Sprintf("species %s of atom %d not in the element table %v", sym, i+1, []string(E)), "TypeCodes")
		}
		ret[i] = t
	}
	return ret, nil
}
