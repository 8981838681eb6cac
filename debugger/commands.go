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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// error patterns returned when parsing debugger input.
const (
	UnknownCommand = "debugger: unknown command (%s)"
	BadArgument    = "debugger: %s: bad argument (%s)"
)

const helpText = `BREAK [address]  set a breakpoint, or list breakpoints
CLEAR            remove all breakpoints
CPU              show the machine registers
DISASM           show the program disassembly
DISPLAY          show the display buffer
HELP             this help
LOG              show recent log entries
MEM [address]    show memory (default: around PC)
QUIT             leave the debugger
RESET            reset the machine
RUN              run until breakpoint or interrupt (ctrl-c)
STEP [n]         execute n instructions (default: 1)`

func (dbg *Debugger) parseInput(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		// empty input repeats the most useful command
		return dbg.step()
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	switch command {
	case "HELP":
		dbg.term.TermPrintLine(terminal.StyleFeedback, helpText)

	case "STEP":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf(BadArgument, command, args[0])
			}
		}
		for i := 0; i < n; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
		}

	case "RUN":
		return dbg.run()

	case "BREAK":
		if len(args) == 0 {
			if len(dbg.breakpoints) == 0 {
				dbg.term.TermPrintLine(terminal.StyleFeedback, "no breakpoints")
			}
			for addr := range dbg.breakpoints {
				dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break $%03x", addr))
			}
			return nil
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(BadArgument, command, args[0])
		}
		dbg.breakpoints[addr] = true
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break $%03x", addr))

	case "CLEAR":
		dbg.breakpoints = make(map[uint16]bool)
		dbg.term.TermPrintLine(terminal.StyleFeedback, "breakpoints cleared")

	case "CPU":
		dbg.term.TermPrintLine(terminal.StyleOutput, dbg.c8.CPU.String())
		dbg.term.TermPrintLine(terminal.StyleOutput,
			fmt.Sprintf("DT=%#02x ST=%#02x", dbg.c8.Timer.Delay, dbg.c8.Timer.Sound))

	case "MEM":
		addr := dbg.c8.CPU.PC
		if len(args) > 0 {
			var err error
			addr, err = parseAddress(args[0])
			if err != nil {
				return curated.Errorf(BadArgument, command, args[0])
			}
		}
		dbg.printMemory(addr)

	case "DISPLAY":
		dbg.term.TermPrintLine(terminal.StyleOutput, dbg.c8.Video.String())

	case "DISASM":
		s := &strings.Builder{}
		dbg.dsm.Write(s)
		dbg.printLines(terminal.StyleOutput, s.String())

	case "LOG":
		s := &strings.Builder{}
		logger.Tail(s, 10)
		dbg.printLines(terminal.StyleLog, s.String())

	case "RESET":
		if err := dbg.c8.Reset(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case "QUIT":
		dbg.quit = true

	default:
		return curated.Errorf(UnknownCommand, toks[0])
	}

	return nil
}

// parseAddress accepts hexadecimal addresses with an optional $ or 0x
// prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	addr, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	if addr >= memory.MemorySize {
		return 0, fmt.Errorf("address out of range")
	}
	return uint16(addr), nil
}

// printMemory shows 64 bytes of memory starting at the supplied address, 8
// bytes to a row.
func (dbg *Debugger) printMemory(addr uint16) {
	for row := 0; row < 8; row++ {
		base := addr + uint16(row*8)
		if int(base) >= memory.MemorySize {
			break
		}

		s := &strings.Builder{}
		s.WriteString(fmt.Sprintf("$%03x ", base))
		for i := uint16(0); i < 8; i++ {
			d, err := dbg.c8.Mem.Read(base + i)
			if err != nil {
				break
			}
			s.WriteString(fmt.Sprintf(" %02x", d))
		}
		dbg.term.TermPrintLine(terminal.StyleOutput, s.String())
	}
}

func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}
