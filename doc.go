/*
 * doc.go, part of gomol.
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
Package chem is the main package of gomol. It provides a molecular graph
(atoms, bonds and rings) that keeps itself consistent under modification.

	**gomol capabilities**

	Molecules are created with NewMolecule, and get a process-wide unique ID.

	Atoms, bonds and rings are owned by their molecule and have small local IDs
	that are never reused, even after the entity is removed.

	Removing an atom breaks its bonds. Breaking a bond destroys every ring
	that contains it.

	Rings are stored, not found: ring perception lives in the chemgraph package.

	MDL V2000 molfiles are read by the mdl package, SD files are iterated
	by the sdf package, and parsed records can be stored in SQLite with molstore.

The lists returned by the Atoms, Bonds and Rings methods (of molecules, atoms, bonds and rings)
are copies, so later changes to the molecule don't show up in them.
*/
package chem
