// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is the error type used throughout the project. Errors are
// created with the Errorf() function, which looks and feels like the
// Errorf() function from the fmt package.
//
// The difference with a curated error is that the pattern string used in its
// creation can be recalled. The Is() and Has() functions use this to test
// whether an error was created from a specific pattern - either at the head
// of the error (Is) or anywhere in the chain of wrapped errors (Has).
//
// Packages that want their errors to be identifiable in this way should
// export the pattern string alongside the functions that return errors made
// from it. For example, the hardware/memory package exports AddressError.
package curated
