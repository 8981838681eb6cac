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
	"os"
	"unicode"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// control characters seen in cbreak mode.
const (
	keyInterrupt = 0x03 // ctrl-c
	keyBackspace = 0x7f
	keyCtrlH     = 0x08
	keyEsc       = 0x1b
	keyCarriage  = 0x0d
	keyNewline   = 0x0a
)

// TermRead implements the terminal.Input interface. The terminal is put in
// cbreak mode for the duration of the read so that editing keys can be
// handled as they arrive.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, sigChan chan os.Signal) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	ct.TermPrint(ansiClearLine)
	ct.TermPrint("%s%s%s", ansiBold, prompt.Content, ansiNormal)

	input := make([]rune, 0, 255)
	history := len(ct.commandHistory)

	for {
		select {
		case <-sigChan:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)
		default:
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case keyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyCarriage, keyNewline:
			ct.TermPrint("\n")
			s := string(input)
			if len(s) > 0 {
				ct.commandHistory = append(ct.commandHistory, s)
			}
			return s, nil

		case keyBackspace, keyCtrlH:
			if len(input) > 0 {
				input = input[:len(input)-1]
				ct.TermPrint("\b \b")
			}

		case keyEsc:
			// a csi sequence. the only ones of interest are cursor up and
			// cursor down, used to walk the command history
			b, err := ct.reader.ReadByte()
			if err != nil {
				return "", err
			}
			if b != '[' {
				continue
			}
			b, err = ct.reader.ReadByte()
			if err != nil {
				return "", err
			}

			switch b {
			case 'A': // up
				if history > 0 {
					history--
					input = input[:0]
					input = append(input, []rune(ct.commandHistory[history])...)
					ct.redrawInput(prompt, input)
				}
			case 'B': // down
				if history < len(ct.commandHistory)-1 {
					history++
					input = input[:0]
					input = append(input, []rune(ct.commandHistory[history])...)
					ct.redrawInput(prompt, input)
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, r)
				ct.TermPrint("%c", r)
			}
		}
	}
}

func (ct *ColorTerminal) redrawInput(prompt terminal.Prompt, input []rune) {
	ct.TermPrint(ansiClearLine)
	ct.TermPrint("%s%s%s%s", ansiBold, prompt.Content, ansiNormal, string(input))
}
