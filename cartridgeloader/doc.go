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

// Package cartridgeloader is responsible for getting ROM data from disk and
// into the emulated machine. Create a Loader with NewLoader(), Load() it and
// pass it to the AttachCartridge() function of the hardware package.
//
// The SHA1 hash of the loaded data is recorded by Load(). It is useful for
// identifying which of many similarly named ROM dumps is actually being
// run.
package cartridgeloader
