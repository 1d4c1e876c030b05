/*
 * errors.go, part of goMTP.
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
	"fmt"
	"strings"
)

// Sentinel errors, one per kind of failure. Every *CfgError matches exactly
// one of them with errors.Is.
var (
	// ErrShapeMismatch: a label doesn't have the shape its structure requires.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrLengthMismatch: parallel label lists and the structure list differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNoSpecies: the element table is empty.
	ErrNoSpecies = errors.New("no species given")

	// ErrUnknownSpecies: an atom's species is not in the element table.
	ErrUnknownSpecies = errors.New("unknown species")

	// ErrIOFailure: the cfg file could not be written.
	ErrIOFailure = errors.New("I/O failure")

	// ErrInvalidInput: input data could not be understood.
	ErrInvalidInput = errors.New("invalid input")
)

//CfgError is the error type returned by this package. It fulfills the Error interface.
//All CfgErrors are critical: nothing in goMTP retries.
type CfgError struct {
	kind     error
	message  string
	filename string //the output or input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error //the underlying cause, if any.
}

func newError(kind error, message string, caller string) *CfgError {
	return &CfgError{kind: kind, message: message, deco: []string{caller}, critical: true}
}

func (E *CfgError) Error() string {
	var b strings.Builder
	b.WriteString("goMTP: ")
	b.WriteString(E.kind.Error())
	if E.filename != "" {
		fmt.Fprintf(&b, " (file %s)", E.filename)
	}
	if E.message != "" {
		b.WriteString(": ")
		b.WriteString(E.message)
	}
	if E.err != nil {
		b.WriteString(": ")
		b.WriteString(E.err.Error())
	}
	return b.String()
}

//Decorate adds dec to the decoration slice of the error and returns the resulting slice.
//If dec is empty, it just returns the current decoration.
func (E *CfgError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

//Critical returns true if the error is critical, false otherwise
func (E *CfgError) Critical() bool { return E.critical }

//FileName returns the file associated to the error, if any.
func (E *CfgError) FileName() string { return E.filename }

//Kind returns the sentinel error matching E.
func (E *CfgError) Kind() error { return E.kind }

//Is allows errors.Is to match E against its sentinel.
func (E *CfgError) Is(target error) bool { return target == E.kind }

func (E *CfgError) Unwrap() error { return E.err }

//errDecorate decorates err with the caller's name if err fulfills the Error interface.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
