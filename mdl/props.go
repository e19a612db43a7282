/*
 * props.go, part of gomol.
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
	"strings"

	chem "github.com/rmera/gomol"
)

//props reads the properties block, up to the end marker or the end of the record,
//and leaves the cursor after the end marker. When skipped, it still looks for
//the end marker, so the tags can be found.
func (p *parser) props() error {
	start := p.cur
	for ; p.cur < len(p.lines); p.cur++ {
		s := p.lines[p.cur]
		if strings.HasPrefix(s, EndMarker) {
			break
		}
		if p.skipProps {
			continue
		}
		for _, prefix := range []string{chg, iso, rad} {
			if strings.HasPrefix(s, prefix) {
				if err := p.prop(prefix); err != nil {
					return err
				}
				break
			}
		}
	}
	end := p.cur
	if p.cur < len(p.lines) {
		p.cur++
	}
	if !p.skipProps {
		p.hook(SectionProperties, start, end)
	}
	return nil
}

//prop reads one CHG, ISO or RAD line: a count, followed by that many
//(atom, value) pairs, 8 columns each.
func (p *parser) prop(prefix string) error {
	n, err := p.intField(6, 9, "entry count")
	if err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		o := 10 + 8*k
		id, err := p.intField(o, o+3, "atom")
		if err != nil {
			return err
		}
		v, err := p.intField(o+4, o+7, "value")
		if err != nil {
			return err
		}
		a := p.m.Atom(id)
		if a == nil {
			return newError(chem.ErrNotFound, nil, p.cur, "prop", "%s entry for missing atom %d", prefix, id)
		}
		switch prefix {
		case chg:
			a.Charge = v
		case iso:
			el, err := p.r.table.Isotope(a.Symbol(), v)
			if err != nil {
				return newError(ErrMalformedInput, err, p.cur, "prop", "no isotope %d for %s", v, a.Symbol())
			}
			a.Element = el
		case rad:
			r, err := chem.RadicalOf(v)
			if err != nil {
				return newError(ErrMalformedInput, err, p.cur, "prop", "bad radical for atom %d", id)
			}
			a.Radical = r
		}
	}
	return nil
}

//tags reads the data items up to the record delimiter, or the end of the record.
//The value of an item is made of the non-blank lines after its name, joined by
//newlines.
func (p *parser) tags() error {
	start := p.cur
	var name string
	var values []string
	open := false
	flush := func() {
		if open {
			p.m.SetTag(name, strings.Join(values, "\n"))
		}
	}
	for ; p.cur < len(p.lines); p.cur++ {
		s := strings.TrimSpace(p.lines[p.cur])
		if strings.HasPrefix(s, RecordDelimiter) {
			break
		}
		if s == "" || p.skipTags {
			continue
		}
		if n, ok := fieldName(s); ok {
			flush()
			name, values, open = n, nil, true
			continue
		}
		if open {
			values = append(values, s)
		}
	}
	if p.skipTags {
		return nil
	}
	flush()
	p.hook(SectionTags, start, p.cur)
	return nil
}

//fieldName returns the name in a data header line such as ">  <NAME>  (1)".
func fieldName(s string) (string, bool) {
	if s[0] != '>' {
		return "", false
	}
	i := strings.IndexByte(s, '<')
	if i < 0 {
		return "", false
	}
	j := strings.IndexByte(s[i+1:], '>')
	if j < 0 {
		return "", false
	}
	return s[i+1 : i+1+j], true
}
