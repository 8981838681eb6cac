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

// Package wavwriter allows writing of the machine's audio output to disk as
// a WAV file. Note that audio data is buffered in memory in its entirety,
// and written to disk on program end. It is therefore probably only suitable
// for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// WavFile is the error pattern for all errors originating in the wavwriter
// package.
const WavFile = "wavwriter: %v"

const (
	sampleRate = 44100
	bitDepth   = 16

	// the pitch of the tone, matching the tone produced by the gui
	toneFreq = 440

	toneAmplitude = 8000

	// samples appended for every frame of emulation, assuming 60Hz
	samplesPerFrame = sampleRate / 60
)

// WavWriter accumulates one frame of audio at a time, to be written to disk
// with EndMixing().
type WavWriter struct {
	filename string
	buffer   []int

	// position in the square wave, carried across frames so the tone is
	// continuous
	phase int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, sampleRate),
	}
	return aw, nil
}

// Frame appends one frame's worth of audio. The beep argument is the state
// of the machine's sound timer for the frame.
func (aw *WavWriter) Frame(beep bool) {
	period := sampleRate / toneFreq

	for i := 0; i < samplesPerFrame; i++ {
		if !beep {
			aw.buffer = append(aw.buffer, 0)
			continue
		}

		if (aw.phase/(period/2))%2 == 0 {
			aw.buffer = append(aw.buffer, toneAmplitude)
		} else {
			aw.buffer = append(aw.buffer, -toneAmplitude)
		}
		aw.phase++
	}
}

// EndMixing writes the accumulated audio to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavFile, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WavFile, err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavFile, err)
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Close(); err != nil {
		return curated.Errorf(WavFile, err)
	}

	return nil
}
