/*
 * cfg.go, part of goMTP.
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
	"strings"
)

//Version selects the flavor of the cfg format. They differ only in the
//header of the stress section.
type Version int

const (
	MLIP2   Version = iota //"PlusStress" header, the default.
	MLIPDev                //"Stress" header, used by the development version of MLIP.
)

func (V Version) String() string {
	switch V {
	case MLIPDev:
		return "mlip-dev"
	default:
		return "mlip-2"
	}
}

//ParseVersion returns the Version named by s ("mlip-2" or "mlip-dev").
//An empty string gives MLIP2.
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mlip-2", "mlip2":
		return MLIP2, nil
	case "mlip-dev", "mlipdev":
		return MLIPDev, nil
	}
	return MLIP2, newError(ErrInvalidInput, fmt.Sprintf("unknown cfg version %q", s), "ParseVersion")
}

//Options for encoding and writing cfg files. The zero value is usable.
type Options struct {
	Version          Version
	Workers          int    //goroutines used to encode blocks. 1 or less means sequential.
	Compression      string //"" (guess from the file name), "none", "zstd" or "gzip".
	CompressionLevel int    //0 means the default level of the compressor.
}

//Only the first options are used.
func getOptions(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return new(Options)
}

//Formats of the cfg file. The widths are the ones MLIP parses, do not change them.
const (
	cfgBegin       = "BEGIN_CFG"
	cfgEnd         = "END_CFG"
	sizeFmt        = "%7d"
	cellFmt        = "%17.6f%14.6f%14.6f"
	atomHeaderFmt  = "%14s%5s%15s%14s%14s%13s%13s%13s"
	atomFmt        = "%14d%5d%15.6f%14.6f%14.6f%13.6f%13.6f%13.6f"
	energyFmt      = "%24.12f"
	stressFmt      = "%12.6f%12.6f%12.6f%12.6f%12.6f%12.6f"
	plusStressHFmt = "%16s%12s%12s%12s%12s%12s"
	devStressHFmt  = "%12s%12s%12s%12s%12s%12s"
)

//block holds everything needed to write a record, already validated.
type block struct {
	r       *Record
	types   []int
	stress  []float64 //in TargetStressOrder
	version Version
}

//cfgSection is one step of the encoding of a block. Steps are applied in
//the order of cfgSections, and each is skipped if its data is missing.
type cfgSection struct {
	name    string
	present func(b *block) bool
	lines   func(b *block, dst []string) []string
}

var cfgSections = []cfgSection{
	{
		name:    "Size",
		present: func(b *block) bool { return true },
		lines: func(b *block, dst []string) []string {
			return append(dst, " Size", fmt.Sprintf(sizeFmt, b.r.NumAtoms))
		},
	},
	{
		name:    "SuperCell",
		present: func(b *block) bool { return b.r.Structure.Lattice != nil },
		lines: func(b *block, dst []string) []string {
			dst = append(dst, " SuperCell")
			lat := b.r.Structure.Lattice
			for i := 0; i < 3; i++ {
				dst = append(dst, fmt.Sprintf(cellFmt, lat.At(i, 0), lat.At(i, 1), lat.At(i, 2)))
			}
			return dst
		},
	},
	{
		name:    "AtomData",
		present: func(b *block) bool { return b.r.Forces != nil },
		lines: func(b *block, dst []string) []string {
			dst = append(dst, fmt.Sprintf(atomHeaderFmt, "AtomData:  id", "type", "cartes_x", "cartes_y", "cartes_z", "fx", "fy", "fz"))
			c := b.r.Structure.Coords
			f := b.r.Forces
			for i, t := range b.types {
				dst = append(dst, fmt.Sprintf(atomFmt, i+1, t, c.At(i, 0), c.At(i, 1), c.At(i, 2), f.At(i, 0), f.At(i, 1), f.At(i, 2)))
			}
			return dst
		},
	},
	{
		name:    "Energy",
		present: func(b *block) bool { return b.r.Energy != nil },
		lines: func(b *block, dst []string) []string {
			return append(dst, " Energy", fmt.Sprintf(energyFmt, *b.r.Energy))
		},
	},
	{
		name:    "Stress",
		present: func(b *block) bool { return b.stress != nil },
		lines: func(b *block, dst []string) []string {
			t := TargetStressOrder
			if b.version == MLIPDev {
				dst = append(dst, fmt.Sprintf(devStressHFmt, "Stress:  "+t[0], t[1], t[2], t[3], t[4], t[5]))
			} else {
				dst = append(dst, fmt.Sprintf(plusStressHFmt, "PlusStress:  "+t[0], t[1], t[2], t[3], t[4], t[5]))
			}
			s := b.stress
			return append(dst, fmt.Sprintf(stressFmt, s[0], s[1], s[2], s[3], s[4], s[5]))
		},
	},
}

//newBlock validates r against the element table and prepares it for encoding.
func newBlock(elements Elements, r *Record, version Version) (*block, error) {
	const caller = "newBlock"
	if r == nil || r.Structure == nil {
		return nil, newError(ErrShapeMismatch, "nil record or structure", caller)
	}
	s := r.Structure
	if r.NumAtoms != s.Len() || s.Coords == nil || s.Coords.NVecs() != s.Len() {
		return nil, newError(ErrShapeMismatch, fmt.Sprintf("record claims %d atoms, structure has %d", r.NumAtoms, s.Len()), caller)
	}
	if r.Forces != nil && r.Forces.NVecs() != r.NumAtoms {
		return nil, newError(ErrShapeMismatch, fmt.Sprintf("%d force vectors for %d atoms", r.Forces.NVecs(), r.NumAtoms), caller)
	}
	b := &block{r: r, version: version}
	var err error
	if b.types, err = elements.TypeCodes(s); err != nil {
		return nil, errDecorate(err, caller)
	}
	if r.Stress != nil {
		if b.stress, err = ReorderStress(r.Stress); err != nil {
			return nil, errDecorate(err, caller)
		}
	}
	return b, nil
}

//String renders the block. It can't fail, as all was checked by newBlock.
func (b *block) String() string {
	lines := make([]string, 0, b.r.NumAtoms+16)
	lines = append(lines, cfgBegin)
	for _, sec := range cfgSections {
		if sec.present(b) {
			lines = sec.lines(b, lines)
		}
	}
	lines = append(lines, cfgEnd)
	return strings.Join(lines, "\n")
}

//EncodeBlock returns the BEGIN_CFG...END_CFG block for r, without a trailing newline.
//The type of each atom is the position of its species in elements. Nothing is
//returned if any atom has a species not in elements (the error matches ErrUnknownSpecies)
//or if the labels don't match the structure (ErrShapeMismatch). Only the Version
//of the options is used.
func EncodeBlock(elements Elements, r *Record, opts ...*Options) (string, error) {
	o := getOptions(opts)
	b, err := newBlock(elements, r, o.Version)
	if err != nil {
		return "", errDecorate(err, "EncodeBlock")
	}
	return b.String(), nil
}
