/*
 * chem.go, part of gomol.
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
	"sync/atomic"
)

//last global molecule ID handed out.
var molecules uint64

//atomPair is the canonical key for the bond between two atoms
//of the same molecule: the smaller local ID goes first.
type atomPair struct {
	lo, hi int
}

func pairOf(a1, a2 *Atom) atomPair {
	if a1.id < a2.id {
		return atomPair{a1.id, a2.id}
	}
	return atomPair{a2.id, a1.id}
}

/**Type Molecule**/

// Molecule is a graph of atoms, bonds and rings. It owns all of them: they can only be
// created and destroyed through the methods of the molecule.
// Atoms, bonds and rings are kept in arenas where the slot of an entity is
// its local ID minus one. Removing an entity leaves its slot empty, so local
// IDs are never reused.
// A Molecule is not safe for concurrent mutation.
type Molecule struct {
	VendorID string //the identifier in the first line of the header, if any
	Program  string
	Comment  string

	id    uint64
	atoms []*Atom
	bonds []*Bond
	rings []*Ring

	natoms int
	nbonds int
	nrings int

	//running local IDs
	peakA int
	peakB int
	peakR int

	pairs    map[atomPair]*Bond
	tags     map[string]string
	tagNames []string
}

// NewMolecule returns an empty molecule with a new, process-wide unique ID.
// It is safe to call from several goroutines.
func NewMolecule() *Molecule {
	M := new(Molecule)
	M.id = atomic.AddUint64(&molecules, 1)
	M.pairs = make(map[atomPair]*Bond)
	M.tags = make(map[string]string)
	return M
}

// ID returns the global ID of the molecule. It doesn't change during
// the lifetime of the molecule.
func (M *Molecule) ID() uint64 {
	return M.id
}

// Equal returns true if both molecules have the same ID.
func (M *Molecule) Equal(o *Molecule) bool {
	if M == nil || o == nil {
		return M == o
	}
	return M.id == o.id
}

func (M *Molecule) String() string {
	return fmt.Sprintf("Molecule %d: %d atoms, %d bonds, %d rings", M.id, M.natoms, M.nbonds, M.nrings)
}

// Atom returns the atom with local ID id, or nil if there is no such atom.
func (M *Molecule) Atom(id int) *Atom {
	if id < 1 || id > len(M.atoms) {
		return nil
	}
	return M.atoms[id-1]
}

// Bond returns the bond with local ID id, or nil if there is no such bond.
func (M *Molecule) Bond(id int) *Bond {
	if id < 1 || id > len(M.bonds) {
		return nil
	}
	return M.bonds[id-1]
}

// Ring returns the ring with local ID id, or nil if there is no such ring.
func (M *Molecule) Ring(id int) *Ring {
	if id < 1 || id > len(M.rings) {
		return nil
	}
	return M.rings[id-1]
}

//owns returns true if a is one of the atoms of M.
func (M *Molecule) owns(a *Atom) bool {
	return a != nil && a.mol == M.id && M.Atom(a.id) == a
}

func (M *Molecule) ownsBond(b *Bond) bool {
	return b != nil && b.mol == M.id && M.Bond(b.id) == b
}

// BondBetween returns the bond between a1 and a2, or nil if they are not bonded.
// Both atoms must belong to the molecule, otherwise an error wrapping ErrNotFound is returned.
func (M *Molecule) BondBetween(a1, a2 *Atom) (*Bond, error) {
	if !M.owns(a1) || !M.owns(a2) {
		return nil, newCError(ErrNotFound, "BondBetween", "at least one of the atoms does not belong to molecule %d; atoms: %s, %s", M.id, a1.ref(), a2.ref())
	}
	return M.bondBetween(a1, a2), nil
}

//bondBetween skips the membership checks.
func (M *Molecule) bondBetween(a1, a2 *Atom) *Bond {
	return M.pairs[pairOf(a1, a2)]
}

// NumAtoms returns the number of atoms in the molecule.
func (M *Molecule) NumAtoms() int {
	return M.natoms
}

// NumBonds returns the number of bonds in the molecule.
func (M *Molecule) NumBonds() int {
	return M.nbonds
}

// NumRings returns the number of rings in the molecule.
func (M *Molecule) NumRings() int {
	return M.nrings
}

// NumDoubleBonds returns the number of double bonds in the molecule.
func (M *Molecule) NumDoubleBonds() int {
	return M.countBonds(BondDouble)
}

// NumTripleBonds returns the number of triple bonds in the molecule.
func (M *Molecule) NumTripleBonds() int {
	return M.countBonds(BondTriple)
}

func (M *Molecule) countBonds(order BondOrder) int {
	c := 0
	for _, b := range M.bonds {
		if b != nil && b.Order == order {
			c++
		}
	}
	return c
}

// Atoms returns the atoms of the molecule, in the order they were added.
// The slice is a copy: later changes to the molecule are not reflected in it.
func (M *Molecule) Atoms() []*Atom {
	ret := make([]*Atom, 0, M.natoms)
	for _, a := range M.atoms {
		if a != nil {
			ret = append(ret, a)
		}
	}
	return ret
}

// Bonds returns a copy of the list of bonds of the molecule.
func (M *Molecule) Bonds() []*Bond {
	ret := make([]*Bond, 0, M.nbonds)
	for _, b := range M.bonds {
		if b != nil {
			ret = append(ret, b)
		}
	}
	return ret
}

// Rings returns a copy of the list of rings of the molecule.
func (M *Molecule) Rings() []*Ring {
	ret := make([]*Ring, 0, M.nrings)
	for _, r := range M.rings {
		if r != nil {
			ret = append(ret, r)
		}
	}
	return ret
}

// AddAtom adds a to the molecule and gives it the next local atom ID. The rest
// of the state of the atom is not changed. Adding an atom that already
// belongs to the molecule, or a nil atom, does nothing.
// An atom can't be moved between molecules in one step: if a belongs to
// another molecule, it must first be removed from it with RemoveAtom. Otherwise
// an error wrapping ErrNotFound is returned.
func (M *Molecule) AddAtom(a *Atom) error {
	if a == nil || M.owns(a) {
		return nil
	}
	if a.mol != 0 {
		return newCError(ErrNotFound, "AddAtom", "atom %s is not free to join molecule %d; remove it from its molecule first", a.ref(), M.id)
	}
	M.peakA++
	a.mol = M.id
	a.id = M.peakA
	M.atoms = append(M.atoms, a)
	M.natoms++
	return nil
}

// AddBond bonds a1 and a2 with the given order, and returns the bond. Both atoms
// must belong to the molecule. If they are already bonded, the existing bond is returned
// and nothing is changed.
func (M *Molecule) AddBond(a1, a2 *Atom, order BondOrder) (*Bond, error) {
	if !M.owns(a1) || !M.owns(a2) {
		return nil, newCError(ErrNotFound, "AddBond", "one of the atoms in the bond does not exist in molecule %d; atoms: %s, %s", M.id, a1.ref(), a2.ref())
	}
	if a1 == a2 {
		return nil, newCError(ErrSelfBond, "AddBond", "atom %s in molecule %d", a1.ref(), M.id)
	}
	if b := M.bondBetween(a1, a2); b != nil {
		return b, nil
	}
	M.peakB++
	b := &Bond{id: M.peakB, mol: M.id, at1: a1, at2: a2, Order: order}
	M.bonds = append(M.bonds, b)
	M.nbonds++
	M.pairs[pairOf(a1, a2)] = b
	a1.bonds = append(a1.bonds, b)
	a2.bonds = append(a2.bonds, b)
	return b, nil
}

// BreakBond removes b from the molecule. Both atoms forget the bond, and every
// ring b is part of is removed as well.
func (M *Molecule) BreakBond(b *Bond) error {
	if !M.ownsBond(b) {
		return newCError(ErrNotFound, "BreakBond", "bond %s is not in molecule %d", b.ref(), M.id)
	}
	M.breakBond(b)
	return nil
}

//breakBond bypasses the membership check.
func (M *Molecule) breakBond(b *Bond) {
	b.at1.bonds = dropBond(b.at1.bonds, b)
	b.at2.bonds = dropBond(b.at2.bonds, b)
	//removeRing changes b.rings, so we iterate over a copy.
	for _, r := range b.Rings() {
		M.removeRing(r)
	}
	delete(M.pairs, pairOf(b.at1, b.at2))
	M.bonds[b.id-1] = nil
	M.nbonds--
	b.mol = 0
}

// RemoveAtom removes a from the molecule, breaking first all its bonds (and, with them,
// the rings the atom is part of). Afterwards, the atom is free and can be added to
// another molecule.
func (M *Molecule) RemoveAtom(a *Atom) error {
	if !M.owns(a) {
		return newCError(ErrNotFound, "RemoveAtom", "atom %s is not in molecule %d", a.ref(), M.id)
	}
	M.removeAtom(a)
	return nil
}

func (M *Molecule) removeAtom(a *Atom) {
	for _, b := range a.Bonds() {
		M.breakBond(b)
	}
	M.atoms[a.id-1] = nil
	M.natoms--
	a.mol = 0
}

//Data items

// Tag returns the value of the data item name, and whether it was present.
func (M *Molecule) Tag(name string) (string, bool) {
	v, ok := M.tags[name]
	return v, ok
}

// SetTag sets the data item name to value.
func (M *Molecule) SetTag(name, value string) {
	if _, ok := M.tags[name]; !ok {
		M.tagNames = append(M.tagNames, name)
	}
	M.tags[name] = value
}

// Tags returns a copy of the data items of the molecule.
func (M *Molecule) Tags() map[string]string {
	ret := make(map[string]string, len(M.tags))
	for k, v := range M.tags {
		ret[k] = v
	}
	return ret
}

// TagNames returns the names of the data items in the order they were first set.
func (M *Molecule) TagNames() []string {
	ret := make([]string, len(M.tagNames))
	copy(ret, M.tagNames)
	return ret
}
