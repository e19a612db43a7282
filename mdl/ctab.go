/*
 * ctab.go, part of gomol.
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
	"math"
	"strings"

	chem "github.com/rmera/gomol"
	"gonum.org/v1/gonum/spatial/r3"
)

//Column ranges, 0-based and half-open, of the fields in the CTAB lines.
const (
	cntAtoms0, cntAtoms1 = 0, 3
	cntBonds0, cntBonds1 = 3, 6

	atX0, atX1     = 0, 10
	atY0, atY1     = 10, 20
	atZ0, atZ1     = 20, 30
	atSym0, atSym1 = 31, 34
	atIso0, atIso1 = 34, 36
	atChg0, atChg1 = 36, 39
	atVal0, atVal1 = 48, 51

	bdA10, bdA11         = 0, 3
	bdA20, bdA21         = 3, 6
	bdOrd0, bdOrd1       = 6, 9
	bdStereo0, bdStereo1 = 9, 12
)

//chargeCodes maps the charge field of the atom block to formal charges.
//Code 4 is a doublet radical, and does not change the charge.
var chargeCodes = map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 5: -1, 6: -2, 7: -3}

const radicalCode = 4

//ctab reads the counts line and the atom and bond blocks. It leaves the
//cursor on the first line after the bond block.
func (p *parser) ctab() error {
	start := p.cur
	counts := strings.TrimRight(p.lines[p.cur], " \t")
	if !strings.HasSuffix(counts, version) {
		return newError(ErrUnsupportedFormat, nil, p.cur, "ctab", "the counts line doesn't end with %s: %q", version, counts)
	}
	natoms, err := p.intField(cntAtoms0, cntAtoms1, "atom count")
	if err != nil {
		return err
	}
	nbonds, err := p.intField(cntBonds0, cntBonds1, "bond count")
	if err != nil {
		return err
	}
	if natoms < 0 || nbonds < 0 {
		return newError(ErrMalformedInput, nil, p.cur, "ctab", "negative atom or bond count")
	}
	if last := p.cur + natoms + nbonds; last >= len(p.lines) {
		return newError(ErrMalformedInput, nil, len(p.lines), "ctab", "%d atoms and %d bonds declared, but the record ends at line %d", natoms, nbonds, len(p.lines))
	}
	if p.skipCtab {
		p.cur += natoms + nbonds + 1
		return nil
	}
	for i := 0; i < natoms; i++ {
		p.cur++
		if err := p.atom(); err != nil {
			return err
		}
	}
	for i := 0; i < nbonds; i++ {
		p.cur++
		if err := p.bond(); err != nil {
			return err
		}
	}
	p.cur++
	p.hook(SectionCtab, start, p.cur)
	return nil
}

func (p *parser) atom() error {
	//the valence field is the last one we read.
	if _, err := p.field(atVal0, atVal1, "valence"); err != nil {
		return err
	}
	sym, _ := p.field(atSym0, atSym1, "symbol")
	el, err := p.r.table.Element(sym)
	if err != nil {
		return newError(ErrMalformedInput, err, p.cur, "atom", "unknown element %q", sym)
	}
	isof, _ := p.field(atIso0, atIso1, "mass difference")
	if isof != "" && isof != "0" {
		off, err := p.intField(atIso0, atIso1, "mass difference")
		if err != nil {
			return err
		}
		n := int(math.Round(el.Valence)) + off
		el, err = p.r.table.Isotope(sym, n)
		if err != nil {
			return newError(ErrMalformedInput, err, p.cur, "atom", "no isotope %d for %s", n, sym)
		}
	}
	a := chem.NewAtom(el)
	var c [3]float64
	cols := [3][2]int{{atX0, atX1}, {atY0, atY1}, {atZ0, atZ1}}
	for i, col := range cols {
		if c[i], err = p.floatField(col[0], col[1], "coordinate"); err != nil {
			return err
		}
	}
	a.Coords = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	code, err := p.intField(atChg0, atChg1, "charge")
	if err != nil {
		return err
	}
	if code == radicalCode {
		a.Radical = chem.RadicalDoublet
	} else {
		a.Charge = chargeCodes[code] //unknown codes leave the atom neutral
	}
	if a.Valence, err = p.intField(atVal0, atVal1, "valence"); err != nil {
		return err
	}
	if err := p.m.AddAtom(a); err != nil {
		return newError(ErrMalformedInput, err, p.cur, "atom", "can't add atom")
	}
	return nil
}

func (p *parser) bond() error {
	i1, err := p.intField(bdA10, bdA11, "first atom")
	if err != nil {
		return err
	}
	i2, err := p.intField(bdA20, bdA21, "second atom")
	if err != nil {
		return err
	}
	code, err := p.intField(bdOrd0, bdOrd1, "bond type")
	if err != nil {
		return err
	}
	order, err := chem.BondOrderOf(code)
	if err != nil {
		return newError(ErrMalformedInput, err, p.cur, "bond", "bad bond type")
	}
	scode, err := p.optIntField(bdStereo0, bdStereo1, "stereo")
	if err != nil {
		return err
	}
	a1, a2 := p.m.Atom(i1), p.m.Atom(i2)
	if a1 == nil || a2 == nil {
		return newError(chem.ErrNotFound, nil, p.cur, "bond", "bond %d-%d refers to a missing atom (%d atoms read)", i1, i2, p.m.NumAtoms())
	}
	b, err := p.m.AddBond(a1, a2, order)
	if err != nil {
		return newError(ErrMalformedInput, err, p.cur, "bond", "can't add bond %d-%d", i1, i2)
	}
	b.Stereo = stereo(order, scode)
	return nil
}

//stereo decodes the stereo field of a bond line. The meaning of the code
//depends on the bond order.
func stereo(order chem.BondOrder, code int) chem.BondStereo {
	switch order {
	case chem.BondSingle:
		switch code {
		case 1:
			return chem.StereoUp
		case 4:
			return chem.StereoUpOrDown
		case 6:
			return chem.StereoDown
		}
	case chem.BondDouble:
		switch code {
		case 0:
			return chem.StereoUnspecified
		case 3:
			return chem.StereoCisTransUnknown
		}
	}
	return chem.StereoNone
}
