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

package colorterm

import (
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		ct.TermPrint("%s* %s%s\n", ansiRed, s, ansiNormal)
	case terminal.StyleFeedback:
		ct.TermPrint("%s%s%s\n", ansiYellow, s, ansiNormal)
	case terminal.StyleLog:
		ct.TermPrint("%s%s%s\n", ansiDim, s, ansiNormal)
	default:
		ct.TermPrint("%s\n", s)
	}
}
