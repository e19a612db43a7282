/*
 * interfaces.go, part of gomol.
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

// PeriodicTable gives element data by symbol. Readers use it to turn
// the symbols found in a file into Elements.
type PeriodicTable interface {

	//Element returns the element with the given symbol, or an error
	//wrapping ErrNotFound if the symbol is unknown.
	Element(symbol string) (*Element, error)

	//Isotope returns the variant of the element with the given symbol
	//that corresponds to n.
	Isotope(symbol string, n int) (*Element, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// Errors in this library also work with errors.Is and errors.As, so the sentinels
// (ErrNotFound and friends) can be checked for.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller to the "decoration" slice and returns it. If passed an empty string, it just returns the current value.
}
