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
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

// mockTerm records output and has nothing to say.
type mockTerm struct {
	lines []string
}

func (m *mockTerm) Initialise() error   { return nil }
func (m *mockTerm) CleanUp()            {}
func (m *mockTerm) IsInteractive() bool { return false }

func (m *mockTerm) TermPrintLine(_ terminal.Style, s string) {
	m.lines = append(m.lines, s)
}
func (m *mockTerm) TermRead(_ terminal.Prompt, _ chan os.Signal) (string, error) {
	return "", nil
}

func newTestDebugger(t *testing.T, program []uint8) (*Debugger, *mockTerm) {
	t.Helper()

	term := &mockTerm{}
	dbg, err := NewDebugger(term)
	test.ExpectedSuccess(t, err)

	cartload := cartridgeloader.Loader{Filename: "test.ch8", Data: program}
	err = dbg.c8.AttachCartridge(cartload)
	test.ExpectedSuccess(t, err)
	dbg.dsm = disassembly.FromData(program)

	return dbg, term
}

func TestStepCommand(t *testing.T) {
	dbg, _ := newTestDebugger(t, []uint8{0x60, 0xff, 0x12, 0x02})

	err := dbg.parseInput("STEP")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dbg.c8.CPU.V[0x00], 0xff)
	test.Equate(t, dbg.c8.CPU.PC, int(memory.OriginAddr)+2)

	// empty input is also a step
	err = dbg.parseInput("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dbg.c8.CPU.PC, int(memory.OriginAddr)+2)

	// counted step
	err = dbg.parseInput("step 3")
	test.ExpectedSuccess(t, err)
}

func TestBreakCommand(t *testing.T) {
	dbg, _ := newTestDebugger(t, []uint8{
		0x60, 0x01, // V0 = 1
		0x70, 0x01, // V0 += 1
		0x12, 0x02, // loop to the add
	})

	err := dbg.parseInput("BREAK $204")
	test.ExpectedSuccess(t, err)

	err = dbg.parseInput("RUN")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dbg.c8.CPU.PC, 0x204)
	test.Equate(t, dbg.c8.CPU.V[0x00], 0x02)

	err = dbg.parseInput("CLEAR")
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(dbg.breakpoints), 0)
}

func TestBadInput(t *testing.T) {
	dbg, _ := newTestDebugger(t, []uint8{0x12, 0x00})

	err := dbg.parseInput("WOBBLE")
	test.ExpectedFailure(t, err)
	if !curated.Is(err, UnknownCommand) {
		t.Errorf("expected an UnknownCommand error (%v)", err)
	}

	err = dbg.parseInput("BREAK pudding")
	test.ExpectedFailure(t, err)
	if !curated.Is(err, BadArgument) {
		t.Errorf("expected a BadArgument error (%v)", err)
	}

	err = dbg.parseInput("STEP -1")
	test.ExpectedFailure(t, err)
}

func TestInspectionCommands(t *testing.T) {
	dbg, term := newTestDebugger(t, []uint8{0x12, 0x00})

	for _, c := range []string{"CPU", "MEM", "MEM $200", "DISPLAY", "DISASM", "BREAK", "HELP"} {
		err := dbg.parseInput(c)
		test.ExpectedSuccess(t, err)
	}
	if len(term.lines) == 0 {
		t.Error("inspection commands produced no output")
	}
}
