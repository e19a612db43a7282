/*
 * reader.go, part of gomol.
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
	"strconv"
	"strings"

	chem "github.com/rmera/gomol"
)

const (
	//RecordDelimiter ends a record in an SD file.
	RecordDelimiter = "$$$$"
	//EndMarker ends the properties block.
	EndMarker = "M  END"

	version = "V2000"
	chg     = "M  CHG"
	iso     = "M  ISO"
	rad     = "M  RAD"
)

//Section identifies the parts of a molfile record that can be skipped and hooked.
type Section int

const (
	SectionCtab Section = iota
	SectionProperties
	SectionTags
	numSections
)

func (S Section) String() string {
	switch S {
	case SectionCtab:
		return "ctab"
	case SectionProperties:
		return "properties"
	case SectionTags:
		return "tags"
	}
	return "Section(" + strconv.Itoa(int(S)) + ")"
}

//Hook is called after a section has been read, with the lines of the section and the
//molecule being built. The lines must not be modified. The hook can change the
//molecule freely.
type Hook func(lines []string, m *chem.Molecule)

//V2000Reader reads molfile records in the V2000 format.
//A reader can parse several records at the same time, as long as its hooks are
//not changed meanwhile, and the hooks themselves are safe for concurrent use.
type V2000Reader struct {
	table chem.PeriodicTable
	hooks [numSections]Hook
}

//NewV2000Reader returns a reader that will look up elements and isotopes in
//table. If table is nil, chem.DefaultTable() is used.
func NewV2000Reader(table chem.PeriodicTable) *V2000Reader {
	if table == nil {
		table = chem.DefaultTable()
	}
	return &V2000Reader{table: table}
}

//SetHook registers h for the section s, replacing the previous hook. A nil
//h clears the hook. It panics if s is not a valid section.
func (R *V2000Reader) SetHook(s Section, h Hook) {
	if s < 0 || s >= numSections {
		panic("mdl: SetHook: invalid section " + s.String())
	}
	R.hooks[s] = h
}

//Hook returns the hook registered for s, or nil.
func (R *V2000Reader) Hook(s Section) Hook {
	if s < 0 || s >= numSections {
		return nil
	}
	return R.hooks[s]
}

//parser holds the state of one call to Parse.
type parser struct {
	r     *V2000Reader
	lines []string
	cur   int //current line
	m     *chem.Molecule

	skipCtab  bool
	skipProps bool
	skipTags  bool
}

//Parse builds a molecule from the lines of one record. The skip flags
//allow ignoring the contents of the corresponding sections. Properties refer to
//atoms by their position in the CTAB, so if skipProps is false, the CTAB is read
//regardless of skipCtab.
//If any part of the record can't be read, Parse returns a nil molecule
//and an error.
func (R *V2000Reader) Parse(lines []string, skipCtab, skipProps, skipTags bool) (*chem.Molecule, error) {
	if !skipProps {
		skipCtab = false
	}
	p := &parser{
		r:         R,
		lines:     lines,
		m:         chem.NewMolecule(),
		skipCtab:  skipCtab,
		skipProps: skipProps,
		skipTags:  skipTags,
	}
	for _, f := range []func() error{p.header, p.ctab, p.props, p.tags} {
		if err := f(); err != nil {
			if e, ok := err.(*Error); ok {
				e.Decorate("Parse")
			}
			return nil, err
		}
	}
	return p.m, nil
}

func (p *parser) hook(s Section, from, to int) {
	h := p.r.hooks[s]
	if h == nil || to <= from {
		return
	}
	h(p.lines[from:to], p.m)
}

//header reads the first 3 lines and leaves the cursor on the counts line.
func (p *parser) header() error {
	if len(p.lines) < 4 {
		return newError(ErrMalformedInput, nil, len(p.lines), "header", "the header needs 4 lines, the record has %d", len(p.lines))
	}
	p.m.VendorID = strings.TrimSpace(p.lines[0])
	p.m.Program = strings.TrimSpace(p.lines[1])
	p.m.Comment = strings.TrimSpace(p.lines[2])
	p.cur = 3
	return nil
}

//field returns the trimmed contents of columns [lo,hi) of the current line.
//It fails if the line is shorter than hi.
func (p *parser) field(lo, hi int, name string) (string, error) {
	s := p.lines[p.cur]
	if len(s) < hi {
		return "", newError(ErrMalformedInput, nil, p.cur, "field", "line too short for the %s field (columns %d-%d): %q", name, lo+1, hi, s)
	}
	return strings.TrimSpace(s[lo:hi]), nil
}

func (p *parser) intField(lo, hi int, name string) (int, error) {
	f, err := p.field(lo, hi, name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(f)
	if err != nil {
		return 0, newError(ErrMalformedInput, err, p.cur, "intField", "bad %s field", name)
	}
	return i, nil
}

func (p *parser) floatField(lo, hi int, name string) (float64, error) {
	f, err := p.field(lo, hi, name)
	if err != nil {
		return 0, err
	}
	x, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, newError(ErrMalformedInput, err, p.cur, "floatField", "bad %s field", name)
	}
	return x, nil
}

//optIntField is like intField, but the field may be cut short by the end
//of the line. A missing or blank field gives 0.
func (p *parser) optIntField(lo, hi int, name string) (int, error) {
	s := p.lines[p.cur]
	if len(s) <= lo {
		return 0, nil
	}
	if len(s) < hi {
		hi = len(s)
	}
	f := strings.TrimSpace(s[lo:hi])
	if f == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(f)
	if err != nil {
		return 0, newError(ErrMalformedInput, err, p.cur, "optIntField", "bad %s field", name)
	}
	return i, nil
}
