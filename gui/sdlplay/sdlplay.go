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

// Package sdlplay is the SDL implementation of the gui.GUI interface.
package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL is the error pattern for all errors originating in the sdlplay
// package.
const SDL = "sdlplay: %v"

// bytes per pixel in the texture. RGBA
const pixelDepth = 4

// pixel colours. the classic green-on-black phosphor look
var pixelOn = [3]byte{0x00, 0xff, 0x42}
var pixelOff = [3]byte{0x0a, 0x0a, 0x0a}

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects the SDL event queue with the parent process
	eventChannel chan gui.Event

	// all audio is handled by the beeper type
	snd *beeper

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. it is equal to Width * Height * pixelDepth
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type.
//
// MUST ONLY be called from the #mainthread.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	scr := &SdlPlay{}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	var err error

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// texture is the size of the display buffer. the renderer scales it to
	// fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(video.Width), int32(video.Height))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = newBeeper()
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(eventChannel chan gui.Event) {
	scr.eventChannel = eventChannel
}

// Draw implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Draw(vid *video.Video) error {
	i := 0
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			col := pixelOff
			if vid.Pixel(x, y) {
				col = pixelOn
			}
			scr.pixels[i] = col[0]
			scr.pixels[i+1] = col[1]
			scr.pixels[i+2] = col[2]
			i += pixelDepth
		}
	}

	if err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth); err != nil {
		return curated.Errorf(SDL, err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SDL, err)
	}
	scr.renderer.Present()

	return nil
}

// Beep implements the gui.GUI interface.
func (scr *SdlPlay) Beep(on bool) {
	scr.snd.beep(on)
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Destroy() {
	scr.snd.destroy()
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
