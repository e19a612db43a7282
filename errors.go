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

package chem

import (
	"errors"
	"fmt"
)

var (
	//ErrNotFound signals a referential-integrity violation: an atom, bond or
	//element that is not where the caller assumed it was.
	ErrNotFound = errors.New("not found")

	//ErrSelfBond is returned when both ends of a requested bond are the same atom.
	ErrSelfBond = errors.New("bond endpoints are the same atom")

	//ErrInvalidRing is returned when a ring can't be built from the given atoms.
	ErrInvalidRing = errors.New("invalid ring")
)

// CError is the error type returned by the molecule graph. It implements Error
// and unwraps to one of the sentinel errors of this package.
type CError struct {
	msg  string
	kind error
	deco []string
}

func (err *CError) Error() string {
	return fmt.Sprintf("%v: %s", err.kind, err.msg)
}

// Unwrap returns the sentinel error describing the kind of failure.
func (err *CError) Unwrap() error { return err.kind }

// Decorate adds new information to the error
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newCError(kind error, caller, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

//errDecorate decorates err with the caller's name, if err implements Error.
//Other errors, and nil, are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
