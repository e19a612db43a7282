/*
 * atomicdata.go, part of gomol.
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

// Element contains the data for a chemical element or one of its isotopes.
type Element struct {
	Symbol     string
	Number     int     //atomic number
	Mass       float64 //standard atomic weight
	Covrad     float64 //covalent radius, A
	Vdwrad     float64 //van der Waals radius, A
	Valence    float64 //default valence
	MaxBonds   int     //0 means undefined
	MassNumber int     //0 for the natural isotopic mixture
}

// Copy returns a copy of the element.
func (E *Element) Copy() *Element {
	if E == nil {
		return nil
	}
	e := *E
	return &e
}

func (E *Element) String() string {
	if E.MassNumber != 0 {
		return fmt.Sprintf("%d%s", E.MassNumber, E.Symbol)
	}
	return E.Symbol
}

//Masses and radii: common "bio-elements" and the usual organic set.
//Covalent radii from Cordero et al., 2008 (DOI:10.1039/B801115J)
//vdW radii from 10.1021/j100785a001 and 10.1021/jp8111556,
//metal radii from 10.1023/A:1011625728803
var elements = map[string]Element{
	"H":  {Symbol: "H", Number: 1, Mass: 1.008, Covrad: 0.31, Vdwrad: 1.10, Valence: 1, MaxBonds: 1},
	"He": {Symbol: "He", Number: 2, Mass: 4.0026, Covrad: 0.28, Vdwrad: 1.40, Valence: 0},
	"Li": {Symbol: "Li", Number: 3, Mass: 6.94, Covrad: 1.28, Vdwrad: 1.82, Valence: 1},
	"Be": {Symbol: "Be", Number: 4, Mass: 9.012, Covrad: 0.96, Vdwrad: 1.53, Valence: 2},
	"B":  {Symbol: "B", Number: 5, Mass: 10.81, Covrad: 0.84, Vdwrad: 1.92, Valence: 3},
	"C":  {Symbol: "C", Number: 6, Mass: 12.01, Covrad: 0.76, Vdwrad: 1.70, Valence: 4, MaxBonds: 4},
	"N":  {Symbol: "N", Number: 7, Mass: 14.01, Covrad: 0.71, Vdwrad: 1.55, Valence: 3},
	"O":  {Symbol: "O", Number: 8, Mass: 16.00, Covrad: 0.66, Vdwrad: 1.52, Valence: 2, MaxBonds: 2},
	"F":  {Symbol: "F", Number: 9, Mass: 18.998, Covrad: 0.57, Vdwrad: 1.47, Valence: 1, MaxBonds: 1},
	"Na": {Symbol: "Na", Number: 11, Mass: 22.99, Covrad: 1.66, Vdwrad: 2.27, Valence: 1},
	"Mg": {Symbol: "Mg", Number: 12, Mass: 24.30, Covrad: 1.41, Vdwrad: 1.73, Valence: 2},
	"Al": {Symbol: "Al", Number: 13, Mass: 26.98, Covrad: 1.21, Vdwrad: 1.84, Valence: 3},
	"Si": {Symbol: "Si", Number: 14, Mass: 28.08, Covrad: 1.11, Vdwrad: 2.10, Valence: 4},
	"P":  {Symbol: "P", Number: 15, Mass: 30.97, Covrad: 1.07, Vdwrad: 1.80, Valence: 3},
	"S":  {Symbol: "S", Number: 16, Mass: 32.06, Covrad: 1.05, Vdwrad: 1.80, Valence: 2},
	"Cl": {Symbol: "Cl", Number: 17, Mass: 35.45, Covrad: 1.02, Vdwrad: 1.75, Valence: 1},
	"K":  {Symbol: "K", Number: 19, Mass: 39.1, Covrad: 2.03, Vdwrad: 2.75, Valence: 1},
	"Ca": {Symbol: "Ca", Number: 20, Mass: 40.08, Covrad: 1.76, Vdwrad: 2.31, Valence: 2},
	"Cr": {Symbol: "Cr", Number: 24, Mass: 51.996, Covrad: 1.39, Vdwrad: 1.97, Valence: 3},
	"Mn": {Symbol: "Mn", Number: 25, Mass: 54.94, Covrad: 1.61, Vdwrad: 1.96, Valence: 2}, //hs
	"Fe": {Symbol: "Fe", Number: 26, Mass: 55.84, Covrad: 1.52, Vdwrad: 1.96, Valence: 2}, //hs
	"Co": {Symbol: "Co", Number: 27, Mass: 58.93, Covrad: 1.50, Vdwrad: 1.95, Valence: 2}, //hs
	"Cu": {Symbol: "Cu", Number: 29, Mass: 63.55, Covrad: 1.32, Vdwrad: 2.00, Valence: 2},
	"Zn": {Symbol: "Zn", Number: 30, Mass: 65.38, Covrad: 1.22, Vdwrad: 2.02, Valence: 2},
	"Se": {Symbol: "Se", Number: 34, Mass: 78.96, Covrad: 1.20, Vdwrad: 1.90, Valence: 2},
	"Br": {Symbol: "Br", Number: 35, Mass: 79.904, Covrad: 1.20, Vdwrad: 1.83, Valence: 1, MaxBonds: 1},
	"I":  {Symbol: "I", Number: 53, Mass: 126.90, Covrad: 1.39, Vdwrad: 1.98, Valence: 1, MaxBonds: 1},
}

type table struct{}

// DefaultTable returns the built-in PeriodicTable. It only knows the
// elements usually found in organic and biological molecules.
func DefaultTable() PeriodicTable {
	return table{}
}

func (t table) Element(symbol string) (*Element, error) {
	e, ok := elements[symbol]
	if !ok {
		return nil, newCError(ErrNotFound, "Element", "unknown element symbol %q", symbol)
	}
	return &e, nil
}

// Isotope returns a copy of the element with MassNumber set to n.
func (t table) Isotope(symbol string, n int) (*Element, error) {
	e, err := t.Element(symbol)
	if err != nil {
		return nil, errDecorate(err, "Isotope")
	}
	if n <= 0 {
		return nil, newCError(ErrNotFound, "Isotope", "no isotope %d for element %s", n, symbol)
	}
	e.MassNumber = n
	return e, nil
}
