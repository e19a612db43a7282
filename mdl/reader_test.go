/*
 * reader_test.go, part of gomol.
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

package mdl_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gomol"
	"github.com/rmera/gomol/mdl"
)

func counts(natoms, nbonds int) string {
	return fmt.Sprintf("%3d%3d  0  0  0  0  0  0  0  0999 V2000", natoms, nbonds)
}

func atomLine(x, y, z float64, sym string, iso, chg, valence int) string {
	return fmt.Sprintf("%10.4f%10.4f%10.4f %-3s%2d%3d%3d%3d%3d%3d", x, y, z, sym, iso, chg, 0, 0, 0, valence)
}

func bondLine(a1, a2, order, stereo int) string {
	return fmt.Sprintf("%3d%3d%3d%3d", a1, a2, order, stereo)
}

//propLine builds an "M  XXX" line from (atom, value) pairs.
func propLine(prefix string, pairs ...int) string {
	s := fmt.Sprintf("%s%3d", prefix, len(pairs)/2)
	for _, v := range pairs {
		s += fmt.Sprintf("%4d", v)
	}
	return s
}

func header(name string) []string {
	return []string{name, "  gomol   10172614002D", "a comment"}
}

//ethanol returns a 3-atom, 2-bond record without properties or tags.
func ethanol() []string {
	lines := header("ethanol")
	return append(lines,
		counts(3, 2),
		atomLine(0, 0, 0, "C", 0, 0, 0),
		atomLine(1.54, 0, 0, "C", 0, 0, 0),
		atomLine(2.0, 1.4, -0.5, "O", 0, 0, 0),
		bondLine(1, 2, 1, 0),
		bondLine(2, 3, 1, 0),
	)
}

//full returns a record with all the sections.
// 0-2 header, 3 counts, 4-5 atoms, 6 bond, 7-8 properties, 9 end marker,
// 10-14 tags, 15 delimiter.
func full() []string {
	lines := header("formate")
	return append(lines,
		counts(2, 1),
		atomLine(0, 0, 0, "C", 0, 0, 0),
		atomLine(1.2, 0, 0, "O", 0, 0, 0),
		bondLine(1, 2, 2, 0),
		propLine("M  CHG", 2, -1),
		"M  ZZZ  1   1   1",
		mdl.EndMarker,
		">  <ID>  (1)",
		"42",
		"",
		"> <NOTES>",
		"first",
		mdl.RecordDelimiter,
	)
}

func TestParseBasic(t *testing.T) {
	r := mdl.NewV2000Reader(nil)
	m, err := r.Parse(ethanol(), false, false, false)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 3, m.NumAtoms())
	assert.Equal(t, 2, m.NumBonds())
	assert.Equal(t, 0, m.NumRings())
	assert.Equal(t, "ethanol", m.VendorID)
	assert.Equal(t, "gomol   10172614002D", m.Program)
	assert.Equal(t, "a comment", m.Comment)

	o := m.Atom(3)
	require.NotNil(t, o)
	assert.Equal(t, "O", o.Symbol())
	assert.InDelta(t, 2.0, o.Coords.X, 1e-6)
	assert.InDelta(t, 1.4, o.Coords.Y, 1e-6)
	assert.InDelta(t, -0.5, o.Coords.Z, 1e-6)
	b, err := m.BondBetween(m.Atom(2), o)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, chem.BondSingle, b.Order)
	assert.Equal(t, chem.StereoNone, b.Stereo)
	assert.Empty(t, m.Tags())
}

func TestParseBlankVendor(t *testing.T) {
	lines := ethanol()
	lines[0] = "   "
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	require.NoError(t, err)
	assert.Equal(t, "", m.VendorID)
}

func TestChargeCodes(t *testing.T) {
	cases := []struct {
		code    int
		charge  int
		radical chem.Radical
	}{
		{0, 0, chem.RadicalNone},
		{1, 3, chem.RadicalNone},
		{2, 2, chem.RadicalNone},
		{3, 1, chem.RadicalNone},
		{4, 0, chem.RadicalDoublet},
		{5, -1, chem.RadicalNone},
		{6, -2, chem.RadicalNone},
		{7, -3, chem.RadicalNone},
		{9, 0, chem.RadicalNone},
	}
	r := mdl.NewV2000Reader(nil)
	for _, c := range cases {
		t.Run(fmt.Sprintf("code%d", c.code), func(t *testing.T) {
			lines := append(header("x"), counts(1, 0), atomLine(0, 0, 0, "N", 0, c.code, 4))
			m, err := r.Parse(lines, false, false, false)
			require.NoError(t, err)
			a := m.Atom(1)
			assert.Equal(t, c.charge, a.Charge)
			assert.Equal(t, c.radical, a.Radical)
			assert.Equal(t, 4, a.Valence)
		})
	}
}

func TestStereo(t *testing.T) {
	cases := []struct {
		order, code int
		want        chem.BondStereo
	}{
		{1, 0, chem.StereoNone},
		{1, 1, chem.StereoUp},
		{1, 4, chem.StereoUpOrDown},
		{1, 6, chem.StereoDown},
		{1, 3, chem.StereoNone},
		{2, 0, chem.StereoUnspecified},
		{2, 3, chem.StereoCisTransUnknown},
		{2, 1, chem.StereoNone},
		{3, 1, chem.StereoNone},
		{4, 0, chem.StereoNone},
	}
	r := mdl.NewV2000Reader(nil)
	for _, c := range cases {
		lines := append(header("x"), counts(2, 1),
			atomLine(0, 0, 0, "C", 0, 0, 0),
			atomLine(1, 0, 0, "C", 0, 0, 0),
			bondLine(1, 2, c.order, c.code))
		m, err := r.Parse(lines, false, false, false)
		require.NoError(t, err)
		b := m.Bond(1)
		assert.Equal(t, c.want, b.Stereo, "order %d stereo code %d", c.order, c.code)
		assert.Equal(t, chem.BondOrder(c.order), b.Order)
	}
}

func TestShortBondLine(t *testing.T) {
	lines := append(header("x"), counts(2, 1),
		atomLine(0, 0, 0, "C", 0, 0, 0),
		atomLine(1, 0, 0, "C", 0, 0, 0),
		"  1  2  2")
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	require.NoError(t, err)
	assert.Equal(t, chem.StereoUnspecified, m.Bond(1).Stereo)
}

func TestProperties(t *testing.T) {
	lines := append(header("x"), counts(3, 0),
		atomLine(0, 0, 0, "C", 0, 0, 0),
		atomLine(1, 0, 0, "N", 0, 0, 0),
		atomLine(2, 0, 0, "O", 0, 0, 0),
		propLine("M  CHG", 2, 1, 3, -1),
		propLine("M  ISO", 1, 13),
		propLine("M  RAD", 1, 3),
		mdl.EndMarker)
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Atom(1).Charge)
	assert.Equal(t, 1, m.Atom(2).Charge)
	assert.Equal(t, -1, m.Atom(3).Charge)
	assert.Equal(t, 13, m.Atom(1).Element.MassNumber)
	assert.Equal(t, "C", m.Atom(1).Symbol())
	assert.Equal(t, chem.RadicalTriplet, m.Atom(1).Radical)
}

func TestPropertiesUnknownAtom(t *testing.T) {
	lines := append(ethanol(), propLine("M  CHG", 9, 1), mdl.EndMarker)
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	assert.Nil(t, m)
	require.ErrorIs(t, err, chem.ErrNotFound)
	var merr *mdl.Error
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, 9, merr.Line())
}

func TestBadRadical(t *testing.T) {
	lines := append(ethanol(), propLine("M  RAD", 1, 7), mdl.EndMarker)
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, mdl.ErrMalformedInput)
}

func TestBondUnknownAtom(t *testing.T) {
	lines := ethanol()
	lines[8] = bondLine(2, 7, 1, 0)
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, chem.ErrNotFound)
}

func TestUnsupportedFormat(t *testing.T) {
	lines := ethanol()
	lines[3] = "  0  0  0     0  0            999 V3000"
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, mdl.ErrUnsupportedFormat)

	//trailing blanks are fine
	lines = ethanol()
	lines[3] += "   "
	_, err = mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	assert.NoError(t, err)
}

func TestMalformed(t *testing.T) {
	shortAtom := ethanol()
	shortAtom[5] = shortAtom[5][:35]
	badCoord := ethanol()
	badCoord[4] = "    abcdef" + badCoord[4][10:]
	badOrder := ethanol()
	badOrder[7] = bondLine(1, 2, 9, 0)
	selfBond := ethanol()
	selfBond[7] = bondLine(1, 1, 1, 0)
	badElement := ethanol()
	badElement[6] = atomLine(0, 0, 0, "Xx", 0, 0, 0)
	noValence := ethanol()
	noValence[4] = noValence[4][:45]
	badValence := ethanol()
	badValence[4] = badValence[4][:48] + "  x"
	badCount := ethanol()
	badCount[3] = "  a  2  0  0  0  0  0  0  0  0999 V2000"

	cases := map[string][]string{
		"short header":    ethanol()[:3],
		"missing lines":   ethanol()[:7],
		"short atom line": shortAtom,
		"no valence":      noValence,
		"bad valence":     badValence,
		"bad coordinate":  badCoord,
		"bad bond order":  badOrder,
		"self bond":       selfBond,
		"unknown element": badElement,
		"bad atom count":  badCount,
	}
	r := mdl.NewV2000Reader(nil)
	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := r.Parse(lines, false, false, false)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, mdl.ErrMalformedInput)
		})
	}
}

func TestTags(t *testing.T) {
	lines := append(ethanol(), mdl.EndMarker,
		"> <NAME>",
		"ethanol",
		"",
		"",
		">  <SYNONYMS> (7)",
		"ethyl alcohol",
		"grain alcohol",
		"> <EMPTY>",
		mdl.RecordDelimiter,
		"> <AFTER>",
		"ignored")
	m, err := mdl.NewV2000Reader(nil).Parse(lines, false, false, false)
	require.NoError(t, err)
	v, ok := m.Tag("NAME")
	assert.True(t, ok)
	assert.Equal(t, "ethanol", v)
	v, _ = m.Tag("SYNONYMS")
	assert.Equal(t, "ethyl alcohol\ngrain alcohol", v)
	v, ok = m.Tag("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = m.Tag("AFTER")
	assert.False(t, ok)
	assert.Equal(t, []string{"NAME", "SYNONYMS", "EMPTY"}, m.TagNames())
}

func TestHooks(t *testing.T) {
	lines := full()
	r := mdl.NewV2000Reader(nil)
	got := make(map[mdl.Section][]string)
	for _, s := range []mdl.Section{mdl.SectionCtab, mdl.SectionProperties, mdl.SectionTags} {
		s := s
		r.SetHook(s, func(l []string, m *chem.Molecule) {
			got[s] = append([]string(nil), l...)
		})
	}
	r.SetHook(mdl.SectionCtab, func(l []string, m *chem.Molecule) {
		got[mdl.SectionCtab] = append([]string(nil), l...)
		assert.Equal(t, 2, m.NumAtoms())
		assert.Equal(t, 0, m.Atom(2).Charge, "properties are read after the CTAB")
	})
	m, err := r.Parse(lines, false, false, false)
	require.NoError(t, err)
	assert.Equal(t, lines[3:7], got[mdl.SectionCtab])
	assert.Equal(t, lines[7:9], got[mdl.SectionProperties])
	assert.Equal(t, lines[10:15], got[mdl.SectionTags])
	assert.Equal(t, -1, m.Atom(2).Charge)
	id, _ := m.Tag("ID")
	assert.Equal(t, "42", id)
	notes, _ := m.Tag("NOTES")
	assert.Equal(t, "first", notes)

	r.SetHook(mdl.SectionCtab, nil)
	assert.Nil(t, r.Hook(mdl.SectionCtab))
	assert.NotNil(t, r.Hook(mdl.SectionTags))
	got = make(map[mdl.Section][]string)
	_, err = r.Parse(lines, false, false, false)
	require.NoError(t, err)
	_, called := got[mdl.SectionCtab]
	assert.False(t, called, "a cleared hook was called")
	assert.Len(t, got, 2)
}

func TestHookChangesMolecule(t *testing.T) {
	r := mdl.NewV2000Reader(nil)
	r.SetHook(mdl.SectionCtab, func(l []string, m *chem.Molecule) {
		m.SetTag("CTAB_LINES", fmt.Sprint(len(l)))
	})
	m, err := r.Parse(ethanol(), false, false, false)
	require.NoError(t, err)
	v, _ := m.Tag("CTAB_LINES")
	assert.Equal(t, "6", v)
}

func TestHooksEmptySections(t *testing.T) {
	lines := append(ethanol(), mdl.EndMarker, mdl.RecordDelimiter)
	r := mdl.NewV2000Reader(nil)
	called := make(map[mdl.Section]bool)
	for _, s := range []mdl.Section{mdl.SectionProperties, mdl.SectionTags} {
		s := s
		r.SetHook(s, func([]string, *chem.Molecule) { called[s] = true })
	}
	_, err := r.Parse(lines, false, false, false)
	require.NoError(t, err)
	assert.Empty(t, called)
}

func TestSkip(t *testing.T) {
	lines := full()
	r := mdl.NewV2000Reader(nil)
	called := make(map[mdl.Section]bool)
	for _, s := range []mdl.Section{mdl.SectionCtab, mdl.SectionProperties, mdl.SectionTags} {
		s := s
		r.SetHook(s, func([]string, *chem.Molecule) { called[s] = true })
	}

	//properties need the CTAB
	m, err := r.Parse(lines, true, false, true)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumAtoms())
	assert.Equal(t, -1, m.Atom(2).Charge)
	assert.Empty(t, m.Tags())
	assert.Equal(t, map[mdl.Section]bool{mdl.SectionCtab: true, mdl.SectionProperties: true}, called)

	called = make(map[mdl.Section]bool)
	m, err = r.Parse(lines, true, true, false)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumAtoms())
	assert.Equal(t, 0, m.NumBonds())
	id, ok := m.Tag("ID")
	assert.True(t, ok)
	assert.Equal(t, "42", id)
	assert.Equal(t, map[mdl.Section]bool{mdl.SectionTags: true}, called)

	called = make(map[mdl.Section]bool)
	m, err = r.Parse(lines, false, true, true)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumAtoms())
	assert.Equal(t, 0, m.Atom(2).Charge)
	assert.Equal(t, map[mdl.Section]bool{mdl.SectionCtab: true}, called)
}

func TestSkipStillChecksLines(t *testing.T) {
	_, err := mdl.NewV2000Reader(nil).Parse(ethanol()[:6], true, true, true)
	assert.ErrorIs(t, err, mdl.ErrMalformedInput)
}

type isoCall struct {
	symbol string
	n      int
}

//recTable records the isotope requests.
type recTable struct {
	chem.PeriodicTable
	calls []isoCall
}

func (t *recTable) Isotope(symbol string, n int) (*chem.Element, error) {
	t.calls = append(t.calls, isoCall{symbol, n})
	return t.PeriodicTable.Isotope(symbol, n)
}

func TestIsotopeField(t *testing.T) {
	table := &recTable{PeriodicTable: chem.DefaultTable()}
	lines := append(header("x"), counts(3, 0),
		atomLine(0, 0, 0, "C", 1, 0, 0),
		atomLine(1, 0, 0, "O", 0, 0, 0),
		atomLine(2, 0, 0, "N", 0, 0, 0),
		propLine("M  ISO", 2, 18),
		mdl.EndMarker)
	m, err := mdl.NewV2000Reader(table).Parse(lines, false, false, false)
	require.NoError(t, err)
	//the mass difference is added to the default valence of the element.
	//A difference of 0 is no isotope at all.
	assert.Equal(t, []isoCall{{"C", 5}, {"O", 18}}, table.calls)
	assert.Equal(t, 5, m.Atom(1).Element.MassNumber)
	assert.Equal(t, 18, m.Atom(2).Element.MassNumber)
	n, err := chem.DefaultTable().Element("N")
	require.NoError(t, err)
	assert.Equal(t, n.MassNumber, m.Atom(3).Element.MassNumber)
}

func TestConcurrentParse(t *testing.T) {
	r := mdl.NewV2000Reader(nil)
	lines := full()
	const n = 16
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := r.Parse(lines, false, false, false)
			if assert.NoError(t, err) {
				ids[i] = m.ID()
			}
		}(i)
	}
	wg.Wait()
	seen := make(map[uint64]bool)
	for _, id := range ids {
		assert.NotZero(t, id)
		assert.False(t, seen[id], "repeated molecule ID %d", id)
		seen[id] = true
	}
}
