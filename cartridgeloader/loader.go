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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// error patterns returned by the cartridgeloader package.
const (
	FileError = "cartridgeloader: %v"
	EmptyFile = "cartridgeloader: file is empty (%s)"
)

// Loader is used to specify the ROM file to attach to the machine.
//
// CHIP-8 ROM files have no header or structure of any kind. The file is a
// raw stream of big-endian 16 bit instructions, copied into memory verbatim.
type Loader struct {
	// filename of the ROM to load
	Filename string

	// hash of the loaded data. empty until a successful call to Load()
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the ROM filename, suitable for
// window titles and log entries.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// Load the ROM file from disk. An empty file or a file too large for the
// machine's memory is an error; the machine cannot be used with it.
func (cl *Loader) Load() error {
	data, err := os.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyFile, cl.Filename)
	}

	if len(data) > memory.MemorySize-memory.OriginAddr {
		return curated.Errorf(FileError,
			curated.Errorf(memory.ProgramTooLarge, len(data), memory.MemorySize-memory.OriginAddr))
	}

	cl.Data = data
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}
