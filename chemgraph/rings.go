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

package chemgraph

import (
	"fmt"

	chem "github.com/rmera/gomol"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

//PerceiveRings finds a cycle basis for m (Paton's algorithm, as implemented in
//gonum) and stores each cycle in m as a ring. The number of rings
//found is the cyclomatic number of the molecule, but the rings are
//not guaranteed to be the smallest ones.
//Rings already stored in m are not removed, so PerceiveRings should be
//called only once per molecule.
func PerceiveRings(m *chem.Molecule) ([]*chem.Ring, error) {
	T := TopologyFromMolecule(m)
	var ret []*chem.Ring
	for _, c := range topo.UndirectedCyclesIn(T) {
		atoms := cycleAtoms(c)
		if len(atoms) < 3 {
			continue
		}
		r, err := m.AddRing(atoms)
		if err != nil {
			return ret, fmt.Errorf("PerceiveRings: molecule %d: %w", m.ID(), err)
		}
		ret = append(ret, r)
	}
	return ret, nil
}

//cycleAtoms converts a gonum cycle to a list of atoms. gonum repeats
//the first node at the end of the cycle, we don't.
func cycleAtoms(c []graph.Node) []*chem.Atom {
	if len(c) > 1 && c[0].ID() == c[len(c)-1].ID() {
		c = c[:len(c)-1]
	}
	atoms := make([]*chem.Atom, 0, len(c))
	for _, n := range c {
		atoms = append(atoms, n.(*Atom).Atom)
	}
	return atoms
}

//Fragments returns the connected components of m, each as a list of atoms.
func Fragments(m *chem.Molecule) [][]*chem.Atom {
	cc := topo.ConnectedComponents(TopologyFromMolecule(m))
	ret := make([][]*chem.Atom, 0, len(cc))
	for _, c := range cc {
		frag := make([]*chem.Atom, 0, len(c))
		for _, n := range c {
			frag = append(frag, n.(*Atom).Atom)
		}
		ret = append(ret, frag)
	}
	return ret
}
