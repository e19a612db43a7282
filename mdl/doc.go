/*
 * doc.go, part of gomol.
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

/*
Package mdl reads MDL molfiles in the V2000 format into chem.Molecule objects.

A record is given as a slice of lines (see the sdf package for splitting
an SD file in records). The record is read in four sections, in order:
header, connection table (CTAB: the counts line plus the atom and bond blocks),
properties (up to "M  END") and data items, or tags (up to "$$$$").
Any of the last three can be skipped. A function (Hook) can be registered for
each section, and is called with the lines of the section once it has been read.

Parsing is all or nothing: if any line can't be decoded, no molecule is returned.
*/
package mdl
