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

// Package logger is the central log for the entire application. There is
// only one log and there is no need for more than one.
//
// Log entries are tagged with the name of the part of the application that
// created them. Entries are kept in memory and written out on demand with
// the Write() or Tail() functions; or they can be echoed to an io.Writer as
// they arrive with SetEcho().
//
// The emulation core does not write to the log. Failures in the core are
// returned as errors and it is for the caller to decide whether they are
// logged.
package logger
