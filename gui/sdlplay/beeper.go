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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate = 44100

	// the pitch of the tone, in Hz. the original machines produced a single
	// fixed tone; the exact pitch varied between machines
	toneFreq = 440

	toneAmplitude = 24
)

// beeper produces the machine's single fixed tone through an SDL audio
// device. audio is queued rather than generated in a callback; the queue is
// topped up every frame for as long as the tone is playing.
type beeper struct {
	dev sdl.AudioDeviceID

	// one tenth of a second of square wave
	buf []byte

	playing bool
}

func newBeeper() (*beeper, error) {
	// prerequisite: SDL_INIT_AUDIO must be included in the call to
	// sdl.Init()
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  1024,
	}

	var actualSpec sdl.AudioSpec

	dev, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}

	snd := &beeper{dev: dev}

	snd.buf = make([]byte, sampleRate/10)
	period := sampleRate / toneFreq
	for i := range snd.buf {
		if (i/(period/2))%2 == 0 {
			snd.buf[i] = 128 + toneAmplitude
		} else {
			snd.buf[i] = 128 - toneAmplitude
		}
	}

	return snd, nil
}

// beep is called once per frame with the current state of the sound timer.
func (snd *beeper) beep(on bool) {
	if !on {
		if snd.playing {
			sdl.PauseAudioDevice(snd.dev, true)
			sdl.ClearQueuedAudio(snd.dev)
			snd.playing = false
		}
		return
	}

	// keep enough audio queued to ride out an uneven frame rate
	if sdl.GetQueuedAudioSize(snd.dev) < uint32(len(snd.buf)) {
		_ = sdl.QueueAudio(snd.dev, snd.buf)
	}

	if !snd.playing {
		sdl.PauseAudioDevice(snd.dev, false)
		snd.playing = true
	}
}

func (snd *beeper) destroy() {
	sdl.CloseAudioDevice(snd.dev)
}
