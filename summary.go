/*
 * summary.go, part of goMTP.
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
	"strings"

	"github.com/rmera/gomtp/histo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary contains some statistics of a pool of records.
type Summary struct {
	Structures    int
	Atoms         int
	ElementCounts map[string]int //atoms of each species in the whole pool
	EnergyPerAtom []float64      //one per record with an energy, in order
	Mean, StdDev  float64        //of EnergyPerAtom
	Min, Max      float64
}

//Summarize computes the Summary of the given records. Records without energy are
//counted, but don't contribute to the energy statistics.
func Summarize(records []*Record) *Summary {
	S := &Summary{ElementCounts: make(map[string]int)}
	for _, r := range records {
		if r == nil || r.Structure == nil {
			continue
		}
		S.Structures++
		S.Atoms += r.NumAtoms
		for _, at := range r.Structure.Atoms {
			S.ElementCounts[at.Symbol]++
		}
		if r.Energy != nil && r.NumAtoms > 0 {
			S.EnergyPerAtom = append(S.EnergyPerAtom, *r.Energy/float64(r.NumAtoms))
		}
	}
	if len(S.EnergyPerAtom) == 0 {
		return S
	}
	S.Mean, S.StdDev = stat.MeanStdDev(S.EnergyPerAtom, nil)
	if len(S.EnergyPerAtom) == 1 {
		S.StdDev = 0 //gonum gives NaN for a single value
	}
	S.Min = floats.Min(S.EnergyPerAtom)
	S.Max = floats.Max(S.EnergyPerAtom)
	return S
}

//Elements returns the species in the summary, sorted.
func (S *Summary) Elements() []string {
	ret := make([]string, 0, len(S.ElementCounts))
	for k := range S.ElementCounts {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Histogram returns a histogram of the energies per atom with bins evenly
//spaced bins between the minimum and maximum values. Returns nil if there are no energies.
func (S *Summary) Histogram(bins int) *histo.Data {
	if len(S.EnergyPerAtom) == 0 {
		return nil
	}
	raw := make([]float64, len(S.EnergyPerAtom))
	copy(raw, S.EnergyPerAtom)
	return histo.NewData(histo.Span(S.Min, S.Max, bins), raw)
}

func (S *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d structures, %d atoms\n", S.Structures, S.Atoms)
	els := S.Elements()
	counts := make([]string, 0, len(els))
	for _, e := range els {
		counts = append(counts, fmt.Sprintf("%s: %d", e, S.ElementCounts[e]))
	}
	fmt.Fprintf(&b, "atoms per element: %s\n", strings.Join(counts, ", "))
	if len(S.EnergyPerAtom) == 0 {
		b.WriteString("no energies")
		return b.String()
	}
	fmt.Fprintf(&b, "energy per atom: mean %.6f std %.6f min %.6f max %.6f (%d values)", S.Mean, S.StdDev, S.Min, S.Max, len(S.EnergyPerAtom))
	return b.String()
}
