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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type testMachine struct {
	mc   *cpu.CPU
	mem  *memory.Memory
	vid  *video.Video
	tmr  *timer.Timer
	tick int64
}

func (tm *testMachine) Tick() int64 {
	return tm.tick
}

// step one instruction with no keys pressed, failing the test on error.
func (tm *testMachine) step(t *testing.T) {
	t.Helper()
	_, err := tm.mc.ExecuteInstruction(keypad.State(0))
	if err != nil {
		t.Fatalf("unexpected execution error: %s", err)
	}
	tm.tick++
}

func newTestMachine(t *testing.T, program ...uint8) *testMachine {
	t.Helper()

	tm := &testMachine{
		mem: memory.NewMemory(),
		vid: video.NewVideo(),
		tmr: timer.NewTimer(),
	}

	rnd := random.NewRandom(tm)
	rnd.ZeroSeed = true
	tm.mc = cpu.NewCPU(tm.mem, tm.vid, tm.tmr, rnd)

	if err := tm.mem.LoadProgram(program); err != nil {
		t.Fatalf("unexpected load error: %s", err)
	}

	return tm
}

func TestAddWithCarry(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0xff, // LD V0, $ff
		0x61, 0x02, // LD V1, $02
		0x80, 0x14, // ADD V0, V1
	)
	tm.step(t)
	tm.step(t)
	tm.step(t)

	// register results wrap modulo 256
	test.Equate(t, tm.mc.V[0], 0x01)
	test.Equate(t, tm.mc.V[cpu.VF], 1)

	// VF reflects only the most recent operation
	tm2 := newTestMachine(t,
		0x60, 0x01, // LD V0, $01
		0x61, 0x02, // LD V1, $02
		0x80, 0x14, // ADD V0, V1
	)
	tm2.mc.V[cpu.VF] = 1
	tm2.step(t)
	tm2.step(t)
	tm2.step(t)
	test.Equate(t, tm2.mc.V[0], 0x03)
	test.Equate(t, tm2.mc.V[cpu.VF], 0)
}

func TestAddValueHasNoCarry(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0xff, // LD V0, $ff
		0x70, 0x02, // ADD V0, $02
	)
	tm.step(t)
	tm.step(t)

	// the immediate form wraps but does not touch VF
	test.Equate(t, tm.mc.V[0], 0x01)
	test.Equate(t, tm.mc.V[cpu.VF], 0)
}

func TestSubtractBorrowConvention(t *testing.T) {
	// VF is 1 when no borrow occurs
	tm := newTestMachine(t,
		0x60, 0x05, // LD V0, $05
		0x61, 0x03, // LD V1, $03
		0x80, 0x15, // SUB V0, V1
	)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0x02)
	test.Equate(t, tm.mc.V[cpu.VF], 1)

	// and 0 when a borrow occurs, with the result wrapping
	tm = newTestMachine(t,
		0x60, 0x03, // LD V0, $03
		0x61, 0x05, // LD V1, $05
		0x80, 0x15, // SUB V0, V1
	)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0xfe)
	test.Equate(t, tm.mc.V[cpu.VF], 0)
}

func TestSubtractReverse(t *testing.T) {
	// SUBN uses the same convention with the operands reversed
	tm := newTestMachine(t,
		0x60, 0x03, // LD V0, $03
		0x61, 0x05, // LD V1, $05
		0x80, 0x17, // SUBN V0, V1
	)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0x02)
	test.Equate(t, tm.mc.V[cpu.VF], 1)
}

func TestShifts(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0x05, // LD V0, $05
		0x80, 0x06, // SHR V0
		0x61, 0x81, // LD V1, $81
		0x81, 0x0e, // SHL V1
	)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0x02)
	test.Equate(t, tm.mc.V[cpu.VF], 1)

	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.V[1], 0x02)
	test.Equate(t, tm.mc.V[cpu.VF], 1)
}

func TestLogicalOperators(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0xf0, // LD V0, $f0
		0x61, 0x9f, // LD V1, $9f
		0x80, 0x11, // OR V0, V1
		0x62, 0xf0, // LD V2, $f0
		0x82, 0x12, // AND V2, V1
		0x63, 0xf0, // LD V3, $f0
		0x83, 0x13, // XOR V3, V1
	)
	for i := 0; i < 7; i++ {
		tm.step(t)
	}
	test.Equate(t, tm.mc.V[0], 0xff)
	test.Equate(t, tm.mc.V[2], 0x90)
	test.Equate(t, tm.mc.V[3], 0x6f)
}

func TestSkips(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0x10, // LD V0, $10
		0x30, 0x10, // SE V0, $10 (skips)
		0x61, 0xff, // LD V1, $ff (skipped)
		0x40, 0x10, // SNE V0, $10 (does not skip)
		0x62, 0x22, // LD V2, $22
		0x63, 0x10, // LD V3, $10
		0x50, 0x30, // SE V0, V3 (skips)
		0x64, 0xff, // LD V4, $ff (skipped)
		0x90, 0x30, // SNE V0, V3 (does not skip)
		0x65, 0x33, // LD V5, $33
	)
	for i := 0; i < 8; i++ {
		tm.step(t)
	}
	test.Equate(t, tm.mc.V[1], 0x00)
	test.Equate(t, tm.mc.V[2], 0x22)
	test.Equate(t, tm.mc.V[4], 0x00)
	test.Equate(t, tm.mc.V[5], 0x33)
}

func TestJump(t *testing.T) {
	tm := newTestMachine(t,
		0x12, 0x04, // JP $204
		0x60, 0xff, // LD V0, $ff (never executed)
		0x61, 0x01, // LD V1, $01
	)
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0204)

	// the instruction at the jump target is the next to execute
	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0x00)
	test.Equate(t, tm.mc.V[1], 0x01)
}

func TestJumpOffset(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0x06, // LD V0, $06
		0xb2, 0x00, // JP V0, $200
	)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0206)
}

func TestCallReturn(t *testing.T) {
	tm := newTestMachine(t,
		0x22, 0x06, // $200: CALL $206
		0x61, 0x02, // $202: LD V1, $02
		0x00, 0x00, // $204: SYS
		0x60, 0x01, // $206: LD V0, $01
		0x00, 0xee, // $208: RET
	)

	tm.step(t)
	test.Equate(t, tm.mc.PC, 0x0206)
	test.Equate(t, int(tm.mc.SP), 1)

	tm.step(t) // LD V0, $01
	tm.step(t) // RET

	// return restores PC to the instruction after the call and the stack
	// depth to its pre-call value
	test.Equate(t, tm.mc.PC, 0x0202)
	test.Equate(t, int(tm.mc.SP), 0)

	tm.step(t)
	test.Equate(t, tm.mc.V[0], 0x01)
	test.Equate(t, tm.mc.V[1], 0x02)
}

func TestStackOverflow(t *testing.T) {
	// a subroutine that calls itself forever
	tm := newTestMachine(t,
		0x22, 0x00, // CALL $200
	)

	var err error
	for i := 0; i < cpu.StackDepth; i++ {
		_, err = tm.mc.ExecuteInstruction(keypad.State(0))
		test.ExpectedSuccess(t, err)
	}

	// the seventeenth nested call must fail rather than corrupt memory
	_, err = tm.mc.ExecuteInstruction(keypad.State(0))
	if test.ExpectedFailure(t, err) {
		test.ExpectedSuccess(t, curated.Is(err, cpu.StackOverflow))
	}
}

func TestStackUnderflow(t *testing.T) {
	tm := newTestMachine(t,
		0x00, 0xee, // RET with an empty stack
	)
	_, err := tm.mc.ExecuteInstruction(keypad.State(0))
	if test.ExpectedFailure(t, err) {
		test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
	}
}

func TestUnknownOpcode(t *testing.T) {
	tm := newTestMachine(t,
		0xff, 0xff,
	)
	_, err := tm.mc.ExecuteInstruction(keypad.State(0))
	if test.ExpectedFailure(t, err) {
		test.ExpectedSuccess(t, curated.Is(err, instructions.UnknownOpcode))
	}

	// a failed execution does not advance PC
	test.Equate(t, tm.mc.PC, uint16(memory.OriginAddr))
}

func TestBCD(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0xfe, // LD V0, $fe (254)
		0xa3, 0x00, // LD I, $300
		0xf0, 0x33, // LD B, V0
	)
	tm.step(t)
	tm.step(t)
	tm.step(t)

	d, _ := tm.mem.Read(0x0300)
	test.Equate(t, d, 2)
	d, _ = tm.mem.Read(0x0301)
	test.Equate(t, d, 5)
	d, _ = tm.mem.Read(0x0302)
	test.Equate(t, d, 4)
}

func TestStoreLoadRegisters(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0x0a, // LD V0, $0a
		0x61, 0x0b, // LD V1, $0b
		0x62, 0x0c, // LD V2, $0c
		0xa3, 0x00, // LD I, $300
		0xf2, 0x55, // LD [I], V2
	)
	for i := 0; i < 5; i++ {
		tm.step(t)
	}

	// the dump is inclusive of Vx
	for i, v := range []uint8{0x0a, 0x0b, 0x0c} {
		d, _ := tm.mem.Read(uint16(0x0300 + i))
		test.Equate(t, d, v)
	}

	// and a load restores the same registers
	tm2 := newTestMachine(t,
		0xa3, 0x00, // LD I, $300
		0xf2, 0x65, // LD V2, [I]
	)
	tm2.mem.Write(0x0300, 0x11)
	tm2.mem.Write(0x0301, 0x22)
	tm2.mem.Write(0x0302, 0x33)
	tm2.step(t)
	tm2.step(t)
	test.Equate(t, tm2.mc.V[0], 0x11)
	test.Equate(t, tm2.mc.V[1], 0x22)
	test.Equate(t, tm2.mc.V[2], 0x33)
	test.Equate(t, tm2.mc.V[3], 0x00)
}

func TestFontAddressAndDraw(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0x00, // LD V0, $00
		0xf0, 0x29, // LD F, V0
		0xd1, 0x15, // DRW V1, V1, $5
	)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.I, memory.FontAddress(0))

	tm.step(t)
	test.Equate(t, tm.mc.V[cpu.VF], 0)

	// the top row of the zero glyph is $f0: four lit pixels
	for x := 0; x < 4; x++ {
		test.Equate(t, tm.vid.Pixel(x, 0), true)
	}
	test.Equate(t, tm.vid.Pixel(4, 0), false)
}

func TestRandomMask(t *testing.T) {
	tm := newTestMachine(t,
		0xc0, 0x0f, // RND V0, $0f
	)
	tm.step(t)

	// whatever was drawn, the mask limits it to the low nibble
	test.Equate(t, tm.mc.V[0]&0xf0, 0)
}

func TestTimerInstructions(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0x3c, // LD V0, $3c
		0xf0, 0x15, // LD DT, V0
		0xf0, 0x18, // LD ST, V0
		0xf1, 0x07, // LD V1, DT
	)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.tmr.Delay, 0x3c)
	test.Equate(t, tm.tmr.Sound, 0x3c)

	// moving a value to or from a timer does not advance time
	tm.step(t)
	test.Equate(t, tm.mc.V[1], 0x3c)
}

func TestKeySkips(t *testing.T) {
	tm := newTestMachine(t,
		0x60, 0x05, // LD V0, $05
		0xe0, 0x9e, // SKP V0
		0x61, 0x01, // LD V1, $01
		0xe0, 0xa1, // SKNP V0
		0x62, 0x02, // LD V2, $02
	)

	var keys keypad.State
	keys.Press(0x05)

	tm.step(t)
	_, err := tm.mc.ExecuteInstruction(keys)
	test.ExpectedSuccess(t, err)

	// key 5 is down so the SKP consumed the first LD
	test.Equate(t, tm.mc.PC, 0x0206)

	_, err = tm.mc.ExecuteInstruction(keys)
	test.ExpectedSuccess(t, err)
	tm.step(t)
	test.Equate(t, tm.mc.V[1], 0x00)
	test.Equate(t, tm.mc.V[2], 0x02)
}

func TestWaitKey(t *testing.T) {
	tm := newTestMachine(t,
		0xf0, 0x0a, // LD V0, K
	)

	// with no key down the PC does not advance. the instruction still
	// consumes time so a waiting machine drains its frame budget normally
	cost, err := tm.mc.ExecuteInstruction(keypad.State(0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, tm.mc.PC, uint16(memory.OriginAddr))
	if cost <= 0 {
		t.Error("expected WaitKey to consume time while waiting")
	}

	_, err = tm.mc.ExecuteInstruction(keypad.State(0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, tm.mc.PC, uint16(memory.OriginAddr))

	var keys keypad.State
	keys.Press(0x0b)
	_, err = tm.mc.ExecuteInstruction(keys)
	test.ExpectedSuccess(t, err)
	test.Equate(t, tm.mc.PC, uint16(memory.OriginAddr+2))
	test.Equate(t, tm.mc.V[0], 0x0b)
}

func TestDrawOutsideMemory(t *testing.T) {
	// a draw through an index register pointing past the end of memory is
	// an error, never a wrap
	tm := newTestMachine(t,
		0xaf, 0xff, // LD I, $fff
		0xd0, 0x02, // DRW V0, V0, $2
	)
	tm.step(t)
	_, err := tm.mc.ExecuteInstruction(keypad.State(0))
	if test.ExpectedFailure(t, err) {
		test.ExpectedSuccess(t, curated.Is(err, memory.AddressError))
	}
}
