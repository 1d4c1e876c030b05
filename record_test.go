/*
 * record_test.go, part of goMTP.
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
	"strings"
	"testing"

	v3 "github.com/rmera/gomtp/v3"
	"gonum.org/v1/gonum/mat"
)

//testStructure builds a structure with the given species, placing atom i at (i, 2i, 3i)
//in a cubic cell of side 10.
func testStructure(Te *testing.T, species ...string) *Structure {
	Te.Helper()
	atoms := make([]*Atom, 0, len(species))
	coords := make([]float64, 0, 3*len(species))
	for i, s := range species {
		atoms = append(atoms, &Atom{Symbol: s, Occupancy: 1})
		f := float64(i)
		coords = append(coords, f, 2*f, 3*f)
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		Te.Fatal(err)
	}
	lat, err := v3.NewMatrix([]float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	if err != nil {
		Te.Fatal(err)
	}
	s, err := NewStructure(atoms, c, lat)
	if err != nil {
		Te.Fatal(err)
	}
	return s
}

func TestNewStructure(Te *testing.T) {
	c, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	if _, err := NewStructure([]*Atom{{Symbol: "H"}}, c, nil); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("1 atom with 2 coordinates should be a shape mismatch, got %v", err)
	}
	if _, err := NewStructure(nil, nil, nil); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a structure without atoms should be a shape mismatch, got %v", err)
	}
	if _, err := NewStructure([]*Atom{{Symbol: "H"}, {}}, c, nil); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("an atom without species should be a shape mismatch, got %v", err)
	}
	s, err := NewStructure([]*Atom{{Symbol: "H"}, {Symbol: "He"}}, c, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Len() != 2 || strings.Join(s.Species(), ",") != "H,He" {
		Te.Errorf("unexpected structure %v", s.Species())
	}
}

func TestRecordDefaults(Te *testing.T) {
	s := testStructure(Te, "Si", "O", "O")
	r, err := NewRecord(s, nil, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r.NumAtoms != 3 {
		Te.Errorf("expected 3 atoms, got %d", r.NumAtoms)
	}
	if r.Energy == nil || *r.Energy != 0 {
		Te.Errorf("expected a zero energy, got %v", r.Energy)
	}
	if r.Forces.NVecs() != 3 || mat.Norm(r.Forces, 1) != 0 {
		Te.Errorf("expected 3 zero forces, got %v", r.Forces)
	}
	if len(r.Stress) != StressComponents {
		Te.Errorf("expected %d stress components, got %v", StressComponents, r.Stress)
	}
	for _, v := range r.Stress {
		if v != 0 {
			Te.Errorf("expected zero stress, got %v", r.Stress)
		}
	}
	//defaults must not be shared between records
	r2, _ := NewRecord(s, nil, nil, nil)
	r2.Forces.Set(0, 0, 1)
	r2.Stress[0] = 1
	if r.Forces.At(0, 0) != 0 || r.Stress[0] != 0 {
		Te.Error("records share their default labels")
	}
}

func TestRecordCopiesLabels(Te *testing.T) {
	s := testStructure(Te, "Al", "Al")
	f, _ := v3.NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	stress := []float64{1, 2, 3, 4, 5, 6}
	e := -3.5
	r, err := NewRecord(s, &e, f, stress)
	if err != nil {
		Te.Fatal(err)
	}
	f.Set(0, 0, 100)
	stress[0] = 100
	e = 100
	if r.Forces.At(0, 0) != 1 || r.Stress[0] != 1 || *r.Energy != -3.5 {
		Te.Error("the record shares data with the caller")
	}
}

func TestRecordShapeMismatch(Te *testing.T) {
	s := testStructure(Te, "Al", "Al")
	f, _ := v3.NewMatrix([]float64{1, 2, 3})
	_, err := NewRecord(s, nil, f, nil)
	if !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("1 force vector for 2 atoms should be a shape mismatch, got %v", err)
	}
	_, err = NewRecord(s, nil, nil, []float64{1, 2, 3})
	if !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a 3-element stress should be a shape mismatch, got %v", err)
	}
	if _, err = NewRecord(nil, nil, nil, nil); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a nil structure should be a shape mismatch, got %v", err)
	}
}

func TestPool(Te *testing.T) {
	structs := []*Structure{testStructure(Te, "H"), testStructure(Te, "H", "H")}
	f, _ := v3.NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	recs, err := Pool(structs, []*float64{Float(-1), nil}, []*v3.Matrix{nil, f}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(recs) != 2 {
		Te.Fatalf("expected 2 records, got %d", len(recs))
	}
	if *recs[0].Energy != -1 || *recs[1].Energy != 0 {
		Te.Errorf("unexpected energies %f %f", *recs[0].Energy, *recs[1].Energy)
	}
	if recs[1].Forces.At(1, 2) != 2 || recs[0].Forces.At(0, 0) != 0 {
		Te.Error("unexpected forces")
	}
	recs, err = Pool(structs, nil, nil, nil)
	if err != nil || len(recs) != 2 {
		Te.Errorf("a pool without labels should work, got %v", err)
	}
	recs, err = Pool(nil, nil, nil, nil)
	if err != nil || len(recs) != 0 {
		Te.Errorf("an empty pool should give no records and no error, got %v", err)
	}
}

func TestPoolErrors(Te *testing.T) {
	structs := []*Structure{testStructure(Te, "H"), testStructure(Te, "H", "H")}
	_, err := Pool(structs, []*float64{Float(1)}, nil, nil)
	if !errors.Is(err, ErrLengthMismatch) {
		Te.Errorf("1 energy for 2 structures should be a length mismatch, got %v", err)
	}
	_, err = Pool(structs, nil, nil, [][]float64{nil, nil, nil})
	if !errors.Is(err, ErrLengthMismatch) {
		Te.Errorf("3 stresses for 2 structures should be a length mismatch, got %v", err)
	}
	f, _ := v3.NewMatrix([]float64{1, 1, 1})
	_, err = Pool(structs, nil, []*v3.Matrix{nil, f}, nil)
	if !errors.Is(err, ErrShapeMismatch) {
		Te.Fatalf("1 force vector for 2 atoms should be a shape mismatch, got %v", err)
	}
	var e *CfgError
	if !errors.As(err, &e) {
		Te.Fatalf("expected a *CfgError, got %T", err)
	}
	deco := strings.Join(e.Decorate(""), " | ")
	if !strings.Contains(deco, "NewRecord") || !strings.Contains(deco, "structure 1") {
		Te.Errorf("the error should tell where it happened, got %q", deco)
	}
	if !e.Critical() {
		Te.Error("shape mismatches are critical")
	}
}
