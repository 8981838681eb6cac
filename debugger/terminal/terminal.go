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

// Package terminal defines the operations required by the command line
// interface to the debugger. Two implementations are provided: colorterm,
// for use when the debugger is attached to a real terminal, and plainterm
// as a fallback for everything else.
package terminal

import (
	"os"
)

// UserInterrupt is returned by TermRead() when the user has interrupted
// input, with ctrl-c for example.
const UserInterrupt = "user interrupt"

// Style identifies the category of text being printed. Terminal
// implementations are free to ignore styles they cannot display.
type Style int

// List of terminal styles.
const (
	StyleOutput Style = iota
	StyleFeedback
	StyleLog
	StyleError
)

// Prompt is the text shown when the terminal is waiting for input.
type Prompt struct {
	Content string
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input, without the trailing
	// newline. Signals arriving on the sigChan while waiting should cause
	// TermRead to return an error created from the UserInterrupt pattern.
	TermRead(prompt Prompt, sigChan chan os.Signal) (string, error)

	// IsInteractive returns true if input is coming from a user rather
	// than a script or pipe.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible.
	CleanUp()
}
