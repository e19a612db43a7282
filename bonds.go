/*
 * bonds.go, part of gomol.
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

import "fmt"

// Bond joins two different atoms of the same molecule.
type Bond struct {
	Order  BondOrder
	Stereo BondStereo

	id    int
	mol   uint64
	at1   *Atom
	at2   *Atom
	rings []*Ring
}

// ID returns the local ID of the bond in its molecule.
func (B *Bond) ID() int {
	return B.id
}

// MoleculeID returns the ID of the molecule the bond belongs to, or 0 if the bond
// has been broken.
func (B *Bond) MoleculeID() uint64 {
	return B.mol
}

// Atom1 returns the first atom of the bond.
func (B *Bond) Atom1() *Atom {
	return B.at1
}

// Atom2 returns the second atom of the bond.
func (B *Bond) Atom2() *Atom {
	return B.at2
}

// Cross returns the atom bonded to origin through B.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.at1 {
		return B.at2
	}
	if origin == B.at2 {
		return B.at1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

// Contains returns true if a is one of the atoms of the bond.
func (B *Bond) Contains(a *Atom) bool {
	return a != nil && (a == B.at1 || a == B.at2)
}

// Rings returns a copy of the list of rings the bond is part of.
func (B *Bond) Rings() []*Ring {
	ret := make([]*Ring, len(B.rings))
	copy(ret, B.rings)
	return ret
}

// InRing returns true if the bond is part of at least one ring.
func (B *Bond) InRing() bool {
	return len(B.rings) > 0
}

func (B *Bond) String() string {
	return fmt.Sprintf("%v-%v (%v)", B.at1, B.at2, B.Order)
}

func (B *Bond) ref() string {
	if B == nil {
		return "nil"
	}
	return fmt.Sprintf("%d->%d", B.mol, B.id)
}

//return the slice with bond b removed
func dropBond(bonds []*Bond, b *Bond) []*Bond {
	for i, v := range bonds {
		if v == b {
			return append(bonds[:i], bonds[i+1:]...)
		}
	}
	return bonds
}
