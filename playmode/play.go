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

// Package playmode sets the emulation running with the SDL gui, for normal
// use. No debugging features are available; the debugger package provides
// those.
package playmode

import (
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// PlayError is the error pattern for all errors originating in the playmode
// package.
const PlayError = "playmode: %v"

// the display refreshes at 60Hz
const frameDuration = time.Second / 60

// Play sets the emulation running. The function returns when the user quits
// (with the window close button, the ESC key or an interrupt signal) or on
// an emulation error.
//
// If wavFile is not empty the machine's audio output is also written to the
// named file.
//
// MUST ONLY be called from the #mainthread.
func Play(filename string, scale int, wavFile string) error {
	cartload := cartridgeloader.NewLoader(filename)
	if err := cartload.Load(); err != nil {
		return curated.Errorf(PlayError, err)
	}

	scr, err := sdlplay.NewSdlPlay(scale)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.Destroy()

	c8 := hardware.NewChip8()
	if err := c8.AttachCartridge(cartload); err != nil {
		return curated.Errorf(PlayError, err)
	}

	var wav *wavwriter.WavWriter
	if wavFile != "" {
		wav, err = wavwriter.New(wavFile)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		defer func() {
			_ = wav.EndMixing()
		}()
	}

	guiChannel := make(chan gui.Event, 32)
	scr.SetEventChannel(guiChannel)

	// we need to end cleanly when ctrl-c is pressed. redirect interrupt
	// signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var keys keypad.State

	tck := time.NewTicker(frameDuration)
	defer tck.Stop()

	for {
		select {
		case <-intChan:
			return nil
		case <-tck.C:
		}

		// service the SDL event queue and drain anything it forwarded
		scr.Service()
		for drained := false; !drained; {
			select {
			case ev := <-guiChannel:
				switch ev.ID {
				case gui.EventQuit:
					return nil
				case gui.EventKeypad:
					data := ev.Data.(gui.EventDataKeypad)
					if data.Down {
						keys.Press(data.Key)
					} else {
						keys.Release(data.Key)
					}
				}
			default:
				drained = true
			}
		}

		if err := c8.Frame(keys); err != nil {
			return curated.Errorf(PlayError, err)
		}

		if err := scr.Draw(c8.Video); err != nil {
			return curated.Errorf(PlayError, err)
		}

		beep := c8.Timer.Beep()
		scr.Beep(beep)
		if wav != nil {
			wav.Frame(beep)
		}
	}
}
