/*
 * errors.go, part of gomol.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package mdl

import (
	"errors"
	"fmt"
)

var (
	//ErrUnsupportedFormat is returned for molfiles that are not in the V2000 format.
	ErrUnsupportedFormat = errors.New("unsupported molfile format")

	//ErrMalformedInput is returned for short headers, missing lines, and fields
	//that are too short or can't be decoded.
	ErrMalformedInput = errors.New("malformed molfile")
)

//Error is the error type returned by the reader. It fulfills chem.Error.
//It unwraps to the kind of failure (ErrUnsupportedFormat, ErrMalformedInput or
//chem.ErrNotFound) and to its cause, if any.
type Error struct {
	line  int //0-based, within the record
	msg   string
	kind  error
	cause error
	deco  []string
}

func (err *Error) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("mdl: line %d: %v: %s: %v", err.line, err.kind, err.msg, err.cause)
	}
	return fmt.Sprintf("mdl: line %d: %v: %s", err.line, err.kind, err.msg)
}

//Line returns the 0-based number, within the record, of the line where the problem was found.
func (err *Error) Line() int { return err.line }

//Unwrap allows errors.Is to match both the kind of the error and its cause.
func (err *Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newError(kind error, cause error, line int, caller, format string, args ...interface{}) *Error {
	return &Error{line: line, msg: fmt.Sprintf(format, args...), kind: kind, cause: cause, deco: []string{caller}}
}
