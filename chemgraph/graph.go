/*
 * graph.go, part of gomol.
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

//Package chemgraph presents molecules as gonum graphs, so the gonum graph
//algorithms can be used on them. Ring perception and fragment detection are
//built on top of that.
package chemgraph

import (
	chem "github.com/rmera/gomol"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

//Atom is a graph node. Its ID is the local ID of the atom.
type Atom struct {
	*chem.Atom
}

func (A *Atom) ID() int64 {
	return int64(A.Atom.ID())
}

//Bond is an undirected graph edge.
type Bond struct {
	*chem.Bond
	from, to *Atom
}

func (B *Bond) From() graph.Node {
	return B.from
}

func (B *Bond) To() graph.Node {
	return B.to
}

//ReversedEdge returns a new edge with the ends swapped. The receiver is not changed.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, from: B.to, to: B.from}
}

//Weight returns the bond order, so multiple bonds are "longer" for the
//weighted gonum algorithms. Bonds with no defined order weight 1.
func (B *Bond) Weight() float64 {
	if B.Order < chem.BondSingle || B.Order > chem.BondTriple {
		return 1
	}
	return float64(B.Order)
}

//Topology implements gonum's graph.Undirected and graph.WeightedUndirected
//for a molecule. It is a snapshot: changes to the molecule after the Topology is built
//are not seen.
type Topology struct {
	mol   *chem.Molecule
	atoms map[int64]*Atom
	order []graph.Node //atoms in molecule order
	adj   map[int64]map[int64]*Bond
	nbrs  map[int64][]graph.Node //neighbors in bond order
}

var (
	_ graph.Undirected         = (*Topology)(nil)
	_ graph.WeightedUndirected = (*Topology)(nil)
)

//TopologyFromMolecule builds a Topology for the current state of m.
func TopologyFromMolecule(m *chem.Molecule) *Topology {
	T := &Topology{
		mol:   m,
		atoms: make(map[int64]*Atom, m.NumAtoms()),
		order: make([]graph.Node, 0, m.NumAtoms()),
		adj:   make(map[int64]map[int64]*Bond, m.NumAtoms()),
		nbrs:  make(map[int64][]graph.Node, m.NumAtoms()),
	}
	for _, a := range m.Atoms() {
		n := &Atom{a}
		T.atoms[n.ID()] = n
		T.order = append(T.order, n)
		T.adj[n.ID()] = make(map[int64]*Bond)
	}
	for _, b := range m.Bonds() {
		e := &Bond{Bond: b, from: T.atoms[int64(b.Atom1().ID())], to: T.atoms[int64(b.Atom2().ID())]}
		T.adj[e.from.ID()][e.to.ID()] = e
		T.adj[e.to.ID()][e.from.ID()] = e
		T.nbrs[e.from.ID()] = append(T.nbrs[e.from.ID()], e.to)
		T.nbrs[e.to.ID()] = append(T.nbrs[e.to.ID()], e.from)
	}
	return T
}

//Molecule returns the molecule the topology was built from.
func (T *Topology) Molecule() *chem.Molecule {
	return T.mol
}

func (T *Topology) Node(id int64) graph.Node {
	a, ok := T.atoms[id]
	if !ok {
		return nil
	}
	return a
}

func (T *Topology) Nodes() graph.Nodes {
	return iterator.NewOrderedNodes(T.order)
}

func (T *Topology) From(id int64) graph.Nodes {
	nbrs := T.nbrs[id]
	if len(nbrs) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(nbrs)
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	_, ok := T.adj[xid][yid]
	return ok
}

//Edge returns the edge from uid to vid, or nil.
func (T *Topology) Edge(uid, vid int64) graph.Edge {
	b := T.bond(uid, vid)
	if b == nil {
		return nil
	}
	return b
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	return T.Edge(xid, yid)
}

func (T *Topology) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	b := T.bond(uid, vid)
	if b == nil {
		return nil
	}
	return b
}

func (T *Topology) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return T.WeightedEdge(xid, yid)
}

//Weight returns the weight of the bond between xid and yid. The weight
//of a node with itself is 0. For unbonded atoms, ok is false.
func (T *Topology) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		_, ok := T.atoms[xid]
		return 0, ok
	}
	b := T.bond(xid, yid)
	if b == nil {
		return 0, false
	}
	return b.Weight(), true
}

//bond returns the bond between uid and vid, oriented from uid to vid.
func (T *Topology) bond(uid, vid int64) *Bond {
	b, ok := T.adj[uid][vid]
	if !ok {
		return nil
	}
	if b.from.ID() == uid {
		return b
	}
	return b.ReversedEdge().(*Bond)
}
