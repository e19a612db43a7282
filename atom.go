/*
 * atom.go, part of gomol.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is an atom in a molecule. The exported fields can be freely changed,
// the relations (molecule, bonds, rings) only through the Molecule methods.
type Atom struct {
	Element *Element //may be an isotope
	Coords  r3.Vec
	Charge  int
	Radical Radical
	Valence int

	id    int    //local ID, unique in the molecule
	mol   uint64 //ID of the owning molecule, 0 if free
	bonds []*Bond
	rings []*Ring
}

// NewAtom returns a free atom of element el.
func NewAtom(el *Element) *Atom {
	return &Atom{Element: el}
}

// ID returns the local ID of the atom in its molecule.
func (A *Atom) ID() int {
	return A.id
}

// MoleculeID returns the ID of the molecule that owns the atom, or 0 if
// the atom is free.
func (A *Atom) MoleculeID() uint64 {
	return A.mol
}

// Symbol returns the symbol of the element of the atom, or an empty string
// if the element is not set.
func (A *Atom) Symbol() string {
	if A.Element == nil {
		return ""
	}
	return A.Element.Symbol
}

// Bonds returns a copy of the list of bonds the atom is part of.
func (A *Atom) Bonds() []*Bond {
	ret := make([]*Bond, len(A.bonds))
	copy(ret, A.bonds)
	return ret
}

// Rings returns a copy of the list of rings the atom is part of.
func (A *Atom) Rings() []*Ring {
	ret := make([]*Ring, len(A.rings))
	copy(ret, A.rings)
	return ret
}

// Neighbors returns the atoms bonded to A.
func (A *Atom) Neighbors() []*Atom {
	ret := make([]*Atom, 0, len(A.bonds))
	for _, b := range A.bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

// Degree returns the number of bonds of the atom.
func (A *Atom) Degree() int {
	return len(A.bonds)
}

// InRing returns true if the atom is part of at least one ring.
func (A *Atom) InRing() bool {
	return len(A.rings) > 0
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s%d", A.Symbol(), A.id)
}

//ref identifies the atom in error messages as molecule->atom.
func (A *Atom) ref() string {
	if A == nil {
		return "nil"
	}
	return fmt.Sprintf("%d->%d", A.mol, A.id)
}

func dropRing(rings []*Ring, r *Ring) []*Ring {
	for i, v := range rings {
		if v == r {
			return append(rings[:i], rings[i+1:]...)
		}
	}
	return rings
}
