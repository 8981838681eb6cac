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

package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	c8   *hardware.Chip8
	dsm  *disassembly.Disassembly
	term terminal.Terminal

	breakpoints map[uint16]bool

	// signals from the operating system, checked while running and while
	// waiting for input
	sigChan chan os.Signal

	// the debugger stays in its input loop until this is true
	quit bool
}

// NewDebugger creates a new debugger, using the supplied terminal for all
// interaction.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		c8:          hardware.NewChip8(),
		term:        term,
		breakpoints: make(map[uint16]bool),
		sigChan:     make(chan os.Signal, 1),
	}
	return dbg, nil
}

// Start the main debugger sequence with the cartridge in the named file.
func (dbg *Debugger) Start(filename string) error {
	cartload := cartridgeloader.NewLoader(filename)
	if err := cartload.Load(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	if err := dbg.c8.AttachCartridge(cartload); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dsm, err := disassembly.FromCartridge(cartload)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	dbg.dsm = dsm

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.sigChan, os.Interrupt)
	defer signal.Stop(dbg.sigChan)

	return dbg.inputLoop()
}

// prompt assembles the terminal prompt from the current PC and, if
// available, the disassembled instruction at that address.
func (dbg *Debugger) prompt() terminal.Prompt {
	e, err := dbg.dsm.Entry(dbg.c8.CPU.PC)
	if err != nil {
		return terminal.Prompt{Content: fmt.Sprintf("[ $%03x ] > ", dbg.c8.CPU.PC)}
	}
	return terminal.Prompt{Content: fmt.Sprintf("[ $%03x : %s ] > ", e.Address, e.Mnemonic)}
}

func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt(), dbg.sigChan)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.term.TermPrintLine(terminal.StyleFeedback, "use QUIT to leave the debugger")
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// step a single instruction and report the result.
func (dbg *Debugger) step() error {
	if err := dbg.c8.Step(keypad.State(0)); err != nil {
		return err
	}
	dbg.term.TermPrintLine(terminal.StyleOutput, dbg.c8.CPU.LastResult.String())
	return nil
}

// run frames until a breakpoint is reached, an execution error occurs or the
// user interrupts.
func (dbg *Debugger) run() error {
	for {
		select {
		case <-dbg.sigChan:
			dbg.term.TermPrintLine(terminal.StyleFeedback, "interrupted")
			return nil
		default:
		}

		atBreak := false
		err := dbg.c8.FrameWithHook(keypad.State(0), func() (bool, error) {
			if dbg.breakpoints[dbg.c8.CPU.PC] {
				atBreak = true
				return false, nil
			}
			return true, nil
		})
		if err != nil {
			return err
		}

		if atBreak {
			dbg.term.TermPrintLine(terminal.StyleFeedback,
				fmt.Sprintf("break at $%03x", dbg.c8.CPU.PC))
			return nil
		}
	}
}
