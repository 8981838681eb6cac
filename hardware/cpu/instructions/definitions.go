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

package instructions

// Operation identifies the semantics of a decoded instruction, not its raw
// encoding. Exactly one Operation exists per instruction in the CHIP-8
// instruction set.
type Operation int

// List of defined operations. The comment alongside each value is the
// conventional encoding, where n is a nibble of the address or count, x and y
// are register indices and kk is an immediate byte.
const (
	Sys                  Operation = iota // 0000
	ClearScreen                           // 00E0
	Return                                // 00EE
	Jump                                  // 1nnn
	Call                                  // 2nnn
	SkipEqualValue                        // 3xkk
	SkipNotEqualValue                     // 4xkk
	SkipEqualRegister                     // 5xy0
	LoadValue                             // 6xkk
	AddValue                              // 7xkk
	LoadRegister                          // 8xy0
	Or                                    // 8xy1
	And                                   // 8xy2
	Xor                                   // 8xy3
	AddRegister                           // 8xy4
	SubRegister                           // 8xy5
	ShiftRight                            // 8xy6
	SubRegisterReverse                    // 8xy7
	ShiftLeft                             // 8xyE
	SkipNotEqualRegister                  // 9xy0
	LoadIndex                             // Annn
	JumpOffset                            // Bnnn
	Random                                // Cxkk
	Draw                                  // Dxyn
	SkipKeyPressed                        // Ex9E
	SkipKeyNotPressed                     // ExA1
	LoadFromDelayTimer                    // Fx07
	WaitKey                               // Fx0A
	LoadDelayTimer                        // Fx15
	LoadSoundTimer                        // Fx18
	AddIndex                              // Fx1E
	LoadFontAddress                       // Fx29
	StoreBCD                              // Fx33
	StoreRegisters                        // Fx55
	LoadRegisters                         // Fx65
)

// Definition describes one instruction class: its operation, the mnemonic
// used by the disassembler and the debugger, and its nominal execution time.
type Definition struct {
	Operation Operation

	// the mnemonic is the CHIPPER/CHIP-48 style assembly name
	Mnemonic string

	// nominal execution time in microseconds. instruction classes have
	// historically different costs, with Draw by far the most expensive
	Cost int
}

// definitions is indexed by Operation. order must match the Operation
// enumeration above.
var definitions = []Definition{
	{Sys, "SYS", 40},
	{ClearScreen, "CLS", 109},
	{Return, "RET", 105},
	{Jump, "JP", 105},
	{Call, "CALL", 105},
	{SkipEqualValue, "SE", 55},
	{SkipNotEqualValue, "SNE", 55},
	{SkipEqualRegister, "SE", 73},
	{LoadValue, "LD", 27},
	{AddValue, "ADD", 45},
	{LoadRegister, "LD", 200},
	{Or, "OR", 200},
	{And, "AND", 200},
	{Xor, "XOR", 200},
	{AddRegister, "ADD", 200},
	{SubRegister, "SUB", 200},
	{ShiftRight, "SHR", 200},
	{SubRegisterReverse, "SUBN", 200},
	{ShiftLeft, "SHL", 200},
	{SkipNotEqualRegister, "SNE", 73},
	{LoadIndex, "LD", 55},
	{JumpOffset, "JP", 105},
	{Random, "RND", 164},
	{Draw, "DRW", 3812},
	{SkipKeyPressed, "SKP", 73},
	{SkipKeyNotPressed, "SKNP", 73},
	{LoadFromDelayTimer, "LD", 45},
	{WaitKey, "LD", 100},
	{LoadDelayTimer, "LD", 45},
	{LoadSoundTimer, "LD", 45},
	{AddIndex, "ADD", 86},
	{LoadFontAddress, "LD", 91},
	{StoreBCD, "LD", 927},
	{StoreRegisters, "LD", 605},
	{LoadRegisters, "LD", 605},
}
