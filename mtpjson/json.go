/*
 * json.go, part of goMTP.
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

package mtpjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	mtp "github.com/rmera/gomtp"
	v3 "github.com/rmera/gomtp/v3"
)

//Error is the error type of this package. It matches mtp.ErrInvalidInput
//(or mtp.ErrIOFailure, for errors reading files) with errors.Is.
type Error struct {
	deco     []string
	kind     error
	Function string //which function gave the error
	Entry    int    //the entry of the training set with the problem, -1 if none.
	Message  string
	err      error
}

//NewError takes an error and some additional info to create an Error.
func NewError(function string, entry int, err error) *Error {
	return &Error{deco: []string{function}, kind: mtp.ErrInvalidInput, Function: function, Entry: entry, Message: err.Error(), err: err}
}

//Error implements the error interface
func (J *Error) Error() string {
	if J.Entry >= 0 {
		return fmt.Sprintf("goMTP/mtpjson: %s: entry %d: %s", J.Function, J.Entry, J.Message)
	}
	return fmt.Sprintf("goMTP/mtpjson: %s: %s", J.Function, J.Message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//Critical always returns true.
func (J *Error) Critical() bool { return true }

func (J *Error) Is(target error) bool { return target == J.kind }

func (J *Error) Unwrap() error { return J.err }

//A pymatgen species entry of a site.
type jsonSpecies struct {
	Element string  `json:"element"`
	Occu    float64 `json:"occu"`
}

type jsonSite struct {
	Species []jsonSpecies `json:"species"`
	XYZ     []float64     `json:"xyz"`
	Label   string        `json:"label"`
}

type jsonLattice struct {
	Matrix [][]float64 `json:"matrix"`
}

type jsonStructure struct {
	Lattice *jsonLattice `json:"lattice"`
	Sites   []jsonSite   `json:"sites"`
}

type jsonOutputs struct {
	Energy       *float64    `json:"energy"`
	Forces       [][]float64 `json:"forces"`
	Stress       []float64   `json:"stress"`
	VirialStress []float64   `json:"virial_stress"`
}

type jsonEntry struct {
	Structure *jsonStructure `json:"structure"`
	Outputs   jsonOutputs    `json:"outputs"`
}

//Dataset contains the structures of a training set and their labels, as
//parallel lists. A nil label means that it was not present in the input.
type Dataset struct {
	Structures []*mtp.Structure
	Energies   []*float64
	Forces     []*v3.Matrix
	Stresses   [][]float64
}

//Len returns the number of structures in the dataset.
func (D *Dataset) Len() int {
	return len(D.Structures)
}

//Pool builds the records for the dataset.
func (D *Dataset) Pool() ([]*mtp.Record, error) {
	return mtp.Pool(D.Structures, D.Energies, D.Forces, D.Stresses)
}

//Decode reads a JSON training set from r.
func Decode(r io.Reader) (*Dataset, error) {
	const funcname = "Decode"
	var entries []jsonEntry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, NewError(funcname, -1, err)
	}
	D := &Dataset{
		Structures: make([]*mtp.Structure, 0, len(entries)),
		Energies:   make([]*float64, 0, len(entries)),
		Forces:     make([]*v3.Matrix, 0, len(entries)),
		Stresses:   make([][]float64, 0, len(entries)),
	}
	for i, e := range entries {
		s, err := decodeStructure(e.Structure)
		if err != nil {
			return nil, NewError(funcname, i, err)
		}
		var forces *v3.Matrix
		if len(e.Outputs.Forces) > 0 {
			if forces, err = v3.FromRows(e.Outputs.Forces); err != nil {
				return nil, NewError(funcname, i, fmt.Errorf("forces: %w", err))
			}
		}
		stress := e.Outputs.Stress
		if stress == nil {
			stress = e.Outputs.VirialStress
		}
		if stress != nil && len(stress) != mtp.StressComponents {
			return nil, NewError(funcname, i, fmt.Errorf("stress has %d components, expected %d", len(stress), mtp.StressComponents))
		}
		D.Structures = append(D.Structures, s)
		D.Energies = append(D.Energies, e.Outputs.Energy)
		D.Forces = append(D.Forces, forces)
		D.Stresses = append(D.Stresses, stress)
	}
	return D, nil
}

//decodeStructure builds a structure from its pymatgen dictionary. Each site takes the
//species with the largest occupancy.
func decodeStructure(js *jsonStructure) (*mtp.Structure, error) {
	if js == nil {
		return nil, fmt.Errorf("no structure")
	}
	if len(js.Sites) == 0 {
		return nil, fmt.Errorf("structure without sites")
	}
	atoms := make([]*mtp.Atom, 0, len(js.Sites))
	coords := make([]float64, 0, 3*len(js.Sites))
	for i, site := range js.Sites {
		if len(site.Species) == 0 {
			return nil, fmt.Errorf("site %d has no species", i)
		}
		if len(site.XYZ) != 3 {
			return nil, fmt.Errorf("site %d has %d cartesian coordinates, expected 3", i, len(site.XYZ))
		}
		major := site.Species[0]
		for _, sp := range site.Species[1:] {
			if sp.Occu > major.Occu {
				major = sp
			}
		}
		if len(site.Species) > 1 {
			log.Printf("goMTP/mtpjson: disordered site %d, using %s (occupancy %.3f)", i, major.Element, major.Occu)
		}
		if major.Element == "" {
			return nil, fmt.Errorf("site %d has an empty species", i)
		}
		if _, ok := mtp.AtomicNumber(major.Element); !ok {
			log.Printf("goMTP/mtpjson: site %d: species %s is not an element", i, major.Element)
		}
		atoms = append(atoms, &mtp.Atom{Symbol: major.Element, Label: site.Label, Occupancy: major.Occu})
		coords = append(coords, site.XYZ...)
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, err
	}
	var lattice *v3.Matrix
	if js.Lattice != nil && js.Lattice.Matrix != nil {
		if lattice, err = v3.FromRows(js.Lattice.Matrix); err != nil {
			return nil, fmt.Errorf("lattice: %w", err)
		}
	}
	return mtp.NewStructure(atoms, c, lattice)
}

//ReadFile reads a JSON training set from the file name. Files ending in .zst or .zstd are
//decompressed with zstd, files ending in .gz with gzip.
func ReadFile(name string) (*Dataset, error) {
	const funcname = "ReadFile"
	f, err := os.Open(name)
	if err != nil {
		return nil, ioError(funcname, err)
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, ioError(funcname, err)
		}
		defer zr.Close()
		r = zr
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, ioError(funcname, err)
		}
		defer gr.Close()
		r = gr
	}
	D, err := Decode(r)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Decorate(funcname + " " + name)
		}
		return nil, err
	}
	return D, nil
}

func ioError(function string, err error) *Error {
	e := NewError(function, -1, err)
	e.kind = mtp.ErrIOFailure
	return e
}
