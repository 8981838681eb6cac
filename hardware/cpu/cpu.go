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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/random"
)

// CPU implements the register file and instruction semantics of the CHIP-8.
type CPU struct {
	// the general purpose registers. V[VF] is the flag register
	V [NumRegisters]uint8

	// the index register, used for memory addressing
	I uint16

	// the program counter. always even-aligned during normal execution
	PC uint16

	// the call stack and stack pointer. SP is the number of entries in use
	Stack [StackDepth]uint16
	SP    uint8

	mem *memory.Memory
	vid *video.Video
	tmr *timer.Timer
	rnd *random.Random

	// last result. valid after the first call to ExecuteInstruction() since
	// the last reset
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, vid *video.Video, tmr *timer.Timer, rnd *random.Random) *CPU {
	mc := &CPU{
		mem: mem,
		vid: vid,
		tmr: tmr,
		rnd: rnd,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := fmt.Sprintf("PC=%03x I=%03x SP=%d\n", mc.PC, mc.I, mc.SP)
	for i := 0; i < NumRegisters; i++ {
		s += fmt.Sprintf("V%X=%02x ", i, mc.V[i])
		if i == 7 {
			s += "\n"
		}
	}
	return s
}

// Reset reinitialises all registers and loads PC with the program origin
// address.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.OriginAddr
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.LastResult.Reset()
}

// ExecuteInstruction performs one fetch-decode-execute pass: the instruction
// at PC is fetched from memory, decoded and applied to the machine state.
// The keys argument is the keypad state for the current frame; it is read by
// the key instructions and not retained.
//
// Returns the time consumed by the instruction in microseconds. The caller
// uses this to pace the emulation.
//
// Execution is atomic: the instruction either completes fully or an error is
// returned and the machine should be considered dead. There is no attempt to
// skip or repair a bad instruction - silently skipping corrupts downstream
// state in ways that are invisible until much later.
func (mc *CPU) ExecuteInstruction(keys keypad.State) (int, error) {
	// fetch
	opcode, err := mc.mem.ReadWord(mc.PC)
	if err != nil {
		return 0, err
	}

	// decode
	ins, err := instructions.Decode(opcode)
	if err != nil {
		return 0, err
	}

	// note address and advance PC before execution. flow instructions
	// overwrite PC; skip instructions advance it further; a waiting WaitKey
	// winds it back
	address := mc.PC
	mc.PC += 2

	// execute. dispatch is exhaustive over the Operation enumeration
	switch ins.Def.Operation {
	case instructions.Sys:
		// machine language execution. a no-op on an interpreter

	case instructions.ClearScreen:
		mc.vid.Clear()

	case instructions.Return:
		if err := mc.pop(); err != nil {
			return 0, err
		}

	case instructions.Jump:
		mc.PC = ins.NNN

	case instructions.Call:
		if err := mc.push(); err != nil {
			return 0, err
		}
		mc.PC = ins.NNN

	case instructions.SkipEqualValue:
		if mc.V[ins.X] == ins.KK {
			mc.PC += 2
		}

	case instructions.SkipNotEqualValue:
		if mc.V[ins.X] != ins.KK {
			mc.PC += 2
		}

	case instructions.SkipEqualRegister:
		if mc.V[ins.X] == mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.LoadValue:
		mc.V[ins.X] = ins.KK

	case instructions.AddValue:
		// wraps modulo 256. no carry flag for the immediate form
		mc.V[ins.X] += ins.KK

	case instructions.LoadRegister:
		mc.V[ins.X] = mc.V[ins.Y]

	case instructions.Or:
		mc.V[ins.X] |= mc.V[ins.Y]

	case instructions.And:
		mc.V[ins.X] &= mc.V[ins.Y]

	case instructions.Xor:
		mc.V[ins.X] ^= mc.V[ins.Y]

	case instructions.AddRegister:
		r := uint16(mc.V[ins.X]) + uint16(mc.V[ins.Y])
		mc.V[ins.X] = uint8(r)
		mc.V[VF] = uint8(r >> 8)

	case instructions.SubRegister:
		// VF is 1 when there is NO borrow
		f := uint8(0)
		if mc.V[ins.X] >= mc.V[ins.Y] {
			f = 1
		}
		mc.V[ins.X] -= mc.V[ins.Y]
		mc.V[VF] = f

	case instructions.ShiftRight:
		f := mc.V[ins.X] & 0x01
		mc.V[ins.X] >>= 1
		mc.V[VF] = f

	case instructions.SubRegisterReverse:
		f := uint8(0)
		if mc.V[ins.Y] >= mc.V[ins.X] {
			f = 1
		}
		mc.V[ins.X] = mc.V[ins.Y] - mc.V[ins.X]
		mc.V[VF] = f

	case instructions.ShiftLeft:
		f := mc.V[ins.X] >> 7
		mc.V[ins.X] <<= 1
		mc.V[VF] = f

	case instructions.SkipNotEqualRegister:
		if mc.V[ins.X] != mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.LoadIndex:
		mc.I = ins.NNN

	case instructions.JumpOffset:
		mc.PC = ins.NNN + uint16(mc.V[0])

	case instructions.Random:
		mc.V[ins.X] = uint8(mc.rnd.Intn(256)) & ins.KK

	case instructions.Draw:
		sprite := make([]uint8, ins.N)
		for i := uint16(0); i < uint16(ins.N); i++ {
			sprite[i], err = mc.mem.Read(mc.I + i)
			if err != nil {
				return 0, err
			}
		}
		mc.V[VF] = 0
		if mc.vid.DrawSprite(mc.V[ins.X], mc.V[ins.Y], sprite) {
			mc.V[VF] = 1
		}

	case instructions.SkipKeyPressed:
		if keys.IsPressed(mc.V[ins.X]) {
			mc.PC += 2
		}

	case instructions.SkipKeyNotPressed:
		if !keys.IsPressed(mc.V[ins.X]) {
			mc.PC += 2
		}

	case instructions.LoadFromDelayTimer:
		mc.V[ins.X] = mc.tmr.Delay

	case instructions.WaitKey:
		// not a true blocking wait. if no key is down the PC is wound back
		// so the instruction is fetched again on the next pass, leaving the
		// caller's loop - and the timers - live
		if k, ok := keys.AnyPressed(); ok {
			mc.V[ins.X] = k
		} else {
			mc.PC -= 2
		}

	case instructions.LoadDelayTimer:
		mc.tmr.Delay = mc.V[ins.X]

	case instructions.LoadSoundTimer:
		mc.tmr.Sound = mc.V[ins.X]

	case instructions.AddIndex:
		// the index register is allowed to leave the addressable range
		// here. any subsequent access through it will error loudly
		mc.I += uint16(mc.V[ins.X])

	case instructions.LoadFontAddress:
		mc.I = memory.FontAddress(mc.V[ins.X])

	case instructions.StoreBCD:
		d := mc.V[ins.X]
		if err := mc.mem.Write(mc.I, d/100); err != nil {
			return 0, err
		}
		if err := mc.mem.Write(mc.I+1, d/10%10); err != nil {
			return 0, err
		}
		if err := mc.mem.Write(mc.I+2, d%10); err != nil {
			return 0, err
		}

	case instructions.StoreRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			if err := mc.mem.Write(mc.I+i, mc.V[i]); err != nil {
				return 0, err
			}
		}

	case instructions.LoadRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			mc.V[i], err = mc.mem.Read(mc.I + i)
			if err != nil {
				return 0, err
			}
		}
	}

	mc.LastResult = execution.Result{
		Address:     address,
		Instruction: ins,
		Cost:        ins.Def.Cost,
		Valid:       true,
	}

	return ins.Def.Cost, nil
}
