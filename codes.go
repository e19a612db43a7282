/*
 * codes.go, part of gomol.
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

// BondOrder is the order of a bond. The numeric values are the
// MDL bond type codes.
type BondOrder int

const (
	BondUndefined BondOrder = iota
	BondSingle
	BondDouble
	BondTriple
	BondAromatic
	BondSingleOrDouble
	BondSingleOrAromatic
	BondDoubleOrAromatic
	BondAny
)

var bondOrderNames = [...]string{"undefined", "single", "double", "triple", "aromatic",
	"single-or-double", "single-or-aromatic", "double-or-aromatic", "any"}

func (B BondOrder) String() string {
	if B < 0 || int(B) >= len(bondOrderNames) {
		return fmt.Sprintf("BondOrder(%d)", int(B))
	}
	return bondOrderNames[B]
}

// BondOrderOf returns the bond order for the MDL bond type code.
func BondOrderOf(code int) (BondOrder, error) {
	if code < int(BondSingle) || code > int(BondAny) {
		return BondUndefined, fmt.Errorf("BondOrderOf: unknown bond type code %d", code)
	}
	return BondOrder(code), nil
}

// BondStereo describes the spatial arrangement of a bond, independently of its order.
type BondStereo int

const (
	StereoNone BondStereo = iota
	StereoUp
	StereoDown
	StereoUpOrDown
	StereoUnspecified     //explicitly unspecified double bond
	StereoCisTransUnknown //double bond, either cis or trans
)

var stereoNames = [...]string{"none", "up", "down", "up-or-down", "unspecified", "cis-trans-unknown"}

func (S BondStereo) String() string {
	if S < 0 || int(S) >= len(stereoNames) {
		return fmt.Sprintf("BondStereo(%d)", int(S))
	}
	return stereoNames[S]
}

// Radical is the unpaired-electron state of an atom. The values are the ones
// used in the MDL "M  RAD" property.
type Radical int

const (
	RadicalNone Radical = iota
	RadicalSinglet
	RadicalDoublet
	RadicalTriplet
)

var radicalNames = [...]string{"none", "singlet", "doublet", "triplet"}

func (R Radical) String() string {
	if R < 0 || int(R) >= len(radicalNames) {
		return fmt.Sprintf("Radical(%d)", int(R))
	}
	return radicalNames[R]
}

// RadicalOf returns the radical state for the MDL radical code.
func RadicalOf(code int) (Radical, error) {
	if code < int(RadicalNone) || code > int(RadicalTriplet) {
		return RadicalNone, fmt.Errorf("RadicalOf: unknown radical code %d", code)
	}
	return Radical(code), nil
}
