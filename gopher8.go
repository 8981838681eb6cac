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

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// #mainthread. SDL window creation and servicing must happen here, which is
// why playmode.Play() is called directly and not from a goroutine.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	logEcho := md.AddBool("log", false, "echo log entries to stderr as they happen")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	if *logEcho {
		logger.SetEcho(os.Stderr)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 12, "window scale factor")
	wavFile := md.AddString("wav", "", "record audio to wav file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if md.GetArg(0) == "" {
		return fmt.Errorf("no cartridge file specified")
	}

	return playmode.Play(md.GetArg(0), *scale, *wavFile)
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if md.GetArg(0) == "" {
		return fmt.Errorf("no cartridge file specified")
	}

	var term terminal.Terminal

	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to PLAIN\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	return dbg.Start(md.GetArg(0))
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if md.GetArg(0) == "" {
		return fmt.Errorf("no cartridge file specified")
	}

	dsm, err := disassembly.FromCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return err
	}
	dsm.Write(md.Output)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profileCPU := md.AddBool("profile-cpu", false, "write cpu profile")
	profileMem := md.AddBool("profile-mem", false, "write memory profile")
	useStatsview := md.AddBool("statsview", false, "run the statsview server")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if md.GetArg(0) == "" {
		return fmt.Errorf("no cartridge file specified")
	}

	if *useStatsview {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available. rebuild with the statsview build constraint")
		}
		statsview.Launch(md.Output)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	return performance.Check(md.Output, cartload, *duration, *profileCPU, *profileMem)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintf(md.Output, "  %s\n", rev)
	}

	return nil
}
