/*
 * errors.go, part of gomolara.
 *
 * Copyright 2024 The gomolara authors
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

package molara

import "fmt"

//Errer is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error, without
//changing its type or wrapping it around something else. Each Decorate call
//returns the current "decoration" slice of strings. The slice should contain
//a list of the functions in the calling stack, plus, for each function, any
//relevant information, or nothing. If information is added to an element of
//the slice, it should be in the format: "FunctionName: Extra info"
type Errer interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//Error is the concrete error type for the library. All fatal conditions
//(an unsupported shell kind, a coefficient vector of the wrong length) are
//critical: this is a pure-computation library, so nothing is retried.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func newError(critical bool, format string, a ...interface{}) Error {
	return Error{message: fmt.Sprintf(format, a...), critical: critical}
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice. An empty dec only retrieves the
//current slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that err implements Errer and decorates it with the
//caller's name before returning it. Using it on any other error is a bug in
//this library, and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Errer)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It does satisfy the error interface,
//but for returned errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilMolecule   = PanicMsg("gomolara: nil Molecule")
	ErrNilOrbital    = PanicMsg("gomolara: nil MolecularOrbital")
	ErrShortScratch  = PanicMsg("gomolara: scratch slice too short for shell components")
	ErrShellNotReady = PanicMsg("gomolara: shell used before normalization")
)
