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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestOperandExtraction(t *testing.T) {
	ins, err := instructions.Decode(0xd45f)
	test.ExpectedSuccess(t, err)
	if ins.Def.Operation != instructions.Draw {
		t.Error("expected Draw operation")
	}
	test.Equate(t, ins.X, 4)
	test.Equate(t, ins.Y, 5)
	test.Equate(t, ins.N, 0x0f)

	ins, err = instructions.Decode(0x2abc)
	test.ExpectedSuccess(t, err)
	if ins.Def.Operation != instructions.Call {
		t.Error("expected Call operation")
	}
	test.Equate(t, ins.NNN, uint16(0x0abc))

	ins, err = instructions.Decode(0x63ff)
	test.ExpectedSuccess(t, err)
	if ins.Def.Operation != instructions.LoadValue {
		t.Error("expected LoadValue operation")
	}
	test.Equate(t, ins.X, 3)
	test.Equate(t, ins.KK, 0xff)
}

func TestUnknownOpcodes(t *testing.T) {
	for _, opcode := range []uint16{
		0xffff, // no Fxff operation
		0x0001, // a 0nnn machine language call
		0x00ef,
		0x5001, // 5xy0 with a non-zero trailing nibble
		0x9005,
		0x8008, // no such arithmetic sub-operation
		0x800f,
		0xe000,
		0xe19f,
		0xf000,
		0xf1ff,
	} {
		_, err := instructions.Decode(opcode)
		if test.ExpectedFailure(t, err) {
			test.ExpectedSuccess(t, curated.Is(err, instructions.UnknownOpcode))
		}
	}
}

// decode must be total: no input value should cause a panic
func TestDecodeIsTotal(t *testing.T) {
	for opcode := 0; opcode <= 0xffff; opcode++ {
		_, _ = instructions.Decode(uint16(opcode))
	}
}

func TestMnemonics(t *testing.T) {
	for _, c := range []struct {
		opcode   uint16
		mnemonic string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x1200, "JP $200"},
		{0x2abc, "CALL $abc"},
		{0x3c10, "SE VC, $10"},
		{0x8ab4, "ADD VA, VB"},
		{0x8126, "SHR V1"},
		{0xa300, "LD I, $300"},
		{0xb123, "JP V0, $123"},
		{0xc207, "RND V2, $07"},
		{0xd125, "DRW V1, V2, $5"},
		{0xe39e, "SKP V3"},
		{0xf30a, "LD V3, K"},
		{0xf533, "LD B, V5"},
		{0xf655, "LD [I], V6"},
		{0xf765, "LD V7, [I]"},
	} {
		ins, err := instructions.Decode(c.opcode)
		test.ExpectedSuccess(t, err)
		test.Equate(t, ins.Mnemonic(), c.mnemonic)
	}
}
