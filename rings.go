/*
 * rings.go, part of gomol.
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

// Ring is a cycle of atoms in a molecule, together with the bonds that close it.
// Rings are found by ring-perception code outside this package and stored
// with Molecule.AddRing. A ring disappears as soon as any of its bonds is broken.
type Ring struct {
	id    int
	mol   uint64
	atoms []*Atom
	bonds []*Bond //bonds[i] joins atoms[i] and atoms[i+1], the last one closes the ring
}

// ID returns the local ID of the ring in its molecule.
func (R *Ring) ID() int {
	return R.id
}

// MoleculeID returns the ID of the molecule the ring belongs to, or 0 if
// the ring has been removed.
func (R *Ring) MoleculeID() uint64 {
	return R.mol
}

// Size returns the number of atoms in the ring.
func (R *Ring) Size() int {
	return len(R.atoms)
}

// Atoms returns a copy of the ordered list of atoms of the ring.
func (R *Ring) Atoms() []*Atom {
	ret := make([]*Atom, len(R.atoms))
	copy(ret, R.atoms)
	return ret
}

// Bonds returns a copy of the list of bonds of the ring.
func (R *Ring) Bonds() []*Bond {
	ret := make([]*Bond, len(R.bonds))
	copy(ret, R.bonds)
	return ret
}

// ContainsBond returns true if b is one of the bonds of the ring.
func (R *Ring) ContainsBond(b *Bond) bool {
	for _, v := range R.bonds {
		if v == b {
			return true
		}
	}
	return false
}

// AddRing stores the ring formed by atoms, in that order. There must be a bond
// between each pair of consecutive atoms, and between the last and the first one.
// The ring is registered in all its atoms and bonds.
func (M *Molecule) AddRing(atoms []*Atom) (*Ring, error) {
	if len(atoms) < 3 {
		return nil, newCError(ErrInvalidRing, "AddRing", "a ring needs at least 3 atoms, got %d", len(atoms))
	}
	seen := make(map[*Atom]bool, len(atoms))
	for _, a := range atoms {
		if !M.owns(a) {
			return nil, newCError(ErrNotFound, "AddRing", "atom %s is not in molecule %d", a.ref(), M.id)
		}
		if seen[a] {
			return nil, newCError(ErrInvalidRing, "AddRing", "atom %s appears twice", a.ref())
		}
		seen[a] = true
	}
	bonds := make([]*Bond, len(atoms))
	for i, a := range atoms {
		next := atoms[(i+1)%len(atoms)]
		b := M.bondBetween(a, next)
		if b == nil {
			return nil, newCError(ErrNotFound, "AddRing", "no bond between atoms %s and %s", a.ref(), next.ref())
		}
		bonds[i] = b
	}
	M.peakR++
	r := &Ring{id: M.peakR, mol: M.id, atoms: make([]*Atom, len(atoms)), bonds: bonds}
	copy(r.atoms, atoms)
	for _, a := range r.atoms {
		a.rings = append(a.rings, r)
	}
	for _, b := range r.bonds {
		b.rings = append(b.rings, r)
	}
	M.rings = append(M.rings, r)
	M.nrings++
	return r, nil
}

//Rings are broken only indirectly, through one of their bonds, so this
//is not exported.
func (M *Molecule) removeRing(r *Ring) {
	for _, a := range r.atoms {
		a.rings = dropRing(a.rings, r)
	}
	for _, b := range r.bonds {
		b.rings = dropRing(b.rings, r)
	}
	M.rings[r.id-1] = nil
	M.nrings--
	r.mol = 0
}
