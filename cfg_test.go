/*
 * cfg_test.go, part of goMTP.
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
	"strconv"
	"strings"
	"testing"

	v3 "github.com/rmera/gomtp/v3"
	"gonum.org/v1/gonum/floats"
)

var goldenBlock = []string{
	"BEGIN_CFG",
	" Size",
	"      2",
	" SuperCell",
	"         5.000000      0.000000      0.000000",
	"         0.000000      5.500000      0.000000",
	"         0.250000     -0.500000      6.000000",
	" AtomData:  id type       cartes_x      cartes_y      cartes_z           fx           fy           fz",
	"             1    1       0.000000      0.000000      0.000000     0.100000    -0.200000     0.300000",
	"             2    0       1.500000     -0.250000      2.000000     0.000000     0.000000    -1.000000",
	" Energy",
	"        -10.500000000000",
	" PlusStress:  xx          yy          zz          yz          xz          xy",
	"    1.000000    2.000000    3.000000    5.000000    6.000000    4.000000",
	"END_CFG",
}

func siliconOxide(Te *testing.T) *Record {
	Te.Helper()
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 1.5, -0.25, 2})
	lat, _ := v3.NewMatrix([]float64{5, 0, 0, 0, 5.5, 0, 0.25, -0.5, 6})
	s, err := NewStructure([]*Atom{{Symbol: "Si", Occupancy: 1}, {Symbol: "O", Occupancy: 1}}, coords, lat)
	if err != nil {
		Te.Fatal(err)
	}
	forces, _ := v3.NewMatrix([]float64{0.1, -0.2, 0.3, 0, 0, -1})
	r, err := NewRecord(s, Float(-10.5), forces, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	return r
}

func TestEncodeBlockGolden(Te *testing.T) {
	r := siliconOxide(Te)
	b, err := EncodeBlock(Elements{"O", "Si"}, r)
	if err != nil {
		Te.Fatal(err)
	}
	expected := strings.Join(goldenBlock, "\n")
	if b != expected {
		Te.Errorf("unexpected block.\nGot:\n%s\nExpected:\n%s", b, expected)
	}
	if strings.HasSuffix(b, "\n") {
		Te.Error("the block must not end with a newline")
	}
	dev, err := EncodeBlock(Elements{"O", "Si"}, r, &Options{Version: MLIPDev})
	if err != nil {
		Te.Fatal(err)
	}
	devLines := strings.Split(dev, "\n")
	if devLines[12] != " Stress:  xx          yy          zz          yz          xz          xy" {
		Te.Errorf("unexpected mlip-dev stress header %q", devLines[12])
	}
	if strings.Join(devLines[:12], "\n") != strings.Join(goldenBlock[:12], "\n") || devLines[13] != goldenBlock[13] {
		Te.Error("mlip-dev blocks should only differ in the stress header")
	}
}

func TestEncodeBlockDefaults(Te *testing.T) {
	r, err := NewRecord(testStructure(Te, "H", "H"), nil, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := EncodeBlock(Elements{"H"}, r)
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(b, "\n")
	if len(lines) != 15 {
		Te.Fatalf("expected 15 lines, got %d:\n%s", len(lines), b)
	}
	if strings.TrimSpace(lines[11]) != "0.000000000000" {
		Te.Errorf("expected a zero energy, got %q", lines[11])
	}
	for _, l := range lines[8:10] {
		for _, f := range strings.Fields(l)[5:] {
			if f != "0.000000" {
				Te.Errorf("expected zero forces, got %q", l)
			}
		}
	}
	if strings.Fields(lines[13])[0] != "0.000000" {
		Te.Errorf("expected a zero stress, got %q", lines[13])
	}
}

func TestEncodeBlockOmitsMissingSections(Te *testing.T) {
	r := siliconOxide(Te)
	r.Structure.Lattice = nil
	r.Energy = nil
	r.Stress = nil
	b, err := EncodeBlock(Elements{"O", "Si"}, r)
	if err != nil {
		Te.Fatal(err)
	}
	for _, sec := range []string{"SuperCell", "Energy", "Stress"} {
		if strings.Contains(b, sec) {
			Te.Errorf("the block should not have a %s section:\n%s", sec, b)
		}
	}
	if !strings.Contains(b, "AtomData") {
		Te.Errorf("the block should still have its atoms:\n%s", b)
	}
}

func TestEncodeBlockErrors(Te *testing.T) {
	r := siliconOxide(Te)
	b, err := EncodeBlock(Elements{"O"}, r)
	if !errors.Is(err, ErrUnknownSpecies) {
		Te.Errorf("Si is not in the table, expected ErrUnknownSpecies, got %v", err)
	}
	if b != "" {
		Te.Errorf("nothing should be returned on error, got %q", b)
	}
	r.Stress = []float64{1, 2}
	if _, err = EncodeBlock(Elements{"O", "Si"}, r); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a short stress should be a shape mismatch, got %v", err)
	}
	if _, err = EncodeBlock(Elements{"O", "Si"}, nil); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a nil record should be a shape mismatch, got %v", err)
	}
}

//parseAtoms reads the AtomData rows of a block back, using the fixed columns.
func parseAtoms(Te *testing.T, block string) (types []int, data [][]float64) {
	Te.Helper()
	lines := strings.Split(block, "\n")
	in := false
	for _, l := range lines {
		if strings.HasPrefix(l, " AtomData:") {
			in = true
			continue
		}
		if !in {
			continue
		}
		if strings.HasPrefix(l, " Energy") || strings.HasPrefix(l, "END_CFG") {
			break
		}
		cols := []int{0, 14, 19, 34, 48, 62, 75, 88, 101}
		if len(l) != cols[len(cols)-1] {
			Te.Fatalf("row with the wrong width %d: %q", len(l), l)
		}
		t, err := strconv.Atoi(strings.TrimSpace(l[cols[1]:cols[2]]))
		if err != nil {
			Te.Fatal(err)
		}
		types = append(types, t)
		row := make([]float64, 0, 6)
		for i := 2; i < len(cols)-1; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(l[cols[i]:cols[i+1]]), 64)
			if err != nil {
				Te.Fatal(err)
			}
			row = append(row, v)
		}
		data = append(data, row)
	}
	return types, data
}

func TestEncodeBlockColumns(Te *testing.T) {
	coords := []float64{1.2345671, -99.5, 0.0000004, 123.456789, 7, -0.333333333}
	forces := []float64{-12.3456789, 0.5, 3, 1e-7, -2.25, 999.999999}
	c, _ := v3.NewMatrix(coords)
	f, _ := v3.NewMatrix(forces)
	s, err := NewStructure([]*Atom{{Symbol: "Li"}, {Symbol: "Fe"}}, c, nil)
	if err != nil {
		Te.Fatal(err)
	}
	r, err := NewRecord(s, nil, f, nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := EncodeBlock(Elements{"Fe", "Li"}, r)
	if err != nil {
		Te.Fatal(err)
	}
	types, data := parseAtoms(Te, b)
	if len(types) != 2 || types[0] != 1 || types[1] != 0 {
		Te.Errorf("unexpected types %v", types)
	}
	for i, row := range data {
		expected := append(append([]float64{}, coords[3*i:3*i+3]...), forces[3*i:3*i+3]...)
		if !floats.EqualApprox(row, expected, 1e-6) {
			Te.Errorf("row %d: expected %v, got %v", i, expected, row)
		}
	}
}
