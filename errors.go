/*
 * errors.go, part of gocrystal
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package crystal

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows adding and retrieving info as an
//error travels up the calling stack. Each Decorate call returns the current
//decoration slice; passing an empty string only queries it. Each element
//should be a function name, optionally as "FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
	//Critical reports whether the error signals a malformed calculation that
	//must abort, as opposed to a degraded-but-usable condition.
	Critical() bool
}

//CError is the concrete error used by the root package.
type CError struct {
	message  string
	deco     []string
	critical bool
}

//NewError builds a CError. Most of the library builds CError literals
//directly; this is for callers outside the library.
func NewError(message string, critical bool, deco ...string) CError {
	return CError{message, deco, critical}
}

func (err CError) Error() string {
	return err.message
}

//Decorate adds dec to the decoration slice, unless it is empty, and returns
//the current slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error aborts the calculation.
func (err CError) Critical() bool {
	return err.critical
}
