// This file is part of hack-vm - https://github.com/IvanIvanov/Hack-VM
//
// Copyright 2011 Ivan Vladimirov Ivanov
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/IvanIvanov/Hack-VM/asm"
	"github.com/IvanIvanov/Hack-VM/vm"
)

// machine is a minimal Hack CPU, just big enough to execute the
// instruction forms the code generator emits. It exists to check the
// observable effect of generated code, most importantly the net effect of
// the calling convention, without a real Hack emulator.
type machine struct {
	t    *testing.T
	ram  map[int]int
	a, d int
	pc   int
	code []string       // label definitions stripped
	sym  map[string]int // labels to code indices, data symbols to RAM
	next int            // next free RAM cell for data symbols
}

func newMachine(t *testing.T, lines []string) *machine {
	m := &machine{
		t:    t,
		ram:  make(map[int]int),
		sym:  map[string]int{"SP": vm.SP},
		next: vm.StaticBase,
	}
	for _, l := range lines {
		if strings.HasPrefix(l, "(") {
			m.sym[strings.Trim(l, "()")] = len(m.code)
			continue
		}
		m.code = append(m.code, l)
	}
	return m
}

func (m *machine) load(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if v, ok := m.sym[s]; ok {
		return v
	}
	m.sym[s] = m.next
	m.next++
	return m.sym[s]
}

func (m *machine) eval(comp string) int {
	mem := m.ram[m.a]
	switch comp {
	case "0":
		return 0
	case "A":
		return m.a
	case "D":
		return m.d
	case "M":
		return mem
	case "-M":
		return -mem
	case "!M":
		return ^mem
	case "M+1":
		return mem + 1
	case "M-1":
		return mem - 1
	case "A-1":
		return m.a - 1
	case "D+M", "M+D":
		return m.d + mem
	case "M-D":
		return mem - m.d
	case "D-M":
		return m.d - mem
	case "D&M":
		return m.d & mem
	case "D|M":
		return m.d | mem
	case "D+A":
		return m.d + m.a
	case "D-A":
		return m.d - m.a
	}
	m.t.Fatalf("machine: unknown computation %q", comp)
	return 0
}

func (m *machine) step() {
	ins := m.code[m.pc]
	if rest, ok := strings.CutPrefix(ins, "@"); ok {
		m.a = m.load(rest)
		m.pc++
		return
	}
	if dest, comp, ok := strings.Cut(ins, "="); ok {
		v := m.eval(comp)
		switch dest {
		case "A":
			m.a = v
		case "D":
			m.d = v
		case "M":
			m.ram[m.a] = v
		default:
			m.t.Fatalf("machine: unknown destination in %q", ins)
		}
		m.pc++
		return
	}
	if comp, jump, ok := strings.Cut(ins, ";"); ok {
		v := m.eval(comp)
		taken := false
		switch jump {
		case "JMP":
			taken = true
		case "JEQ":
			taken = v == 0
		case "JNE":
			taken = v != 0
		case "JGT":
			taken = v > 0
		case "JLT":
			taken = v < 0
		default:
			m.t.Fatalf("machine: unknown jump in %q", ins)
		}
		if taken {
			m.pc = m.a
		} else {
			m.pc++
		}
		return
	}
	m.t.Fatalf("machine: cannot execute %q", ins)
}

// run executes until pc reaches stop or falls off the code, bounded by a
// step budget so a broken jump cannot hang the test.
func (m *machine) run(stop int) {
	for steps := 0; m.pc != stop && m.pc < len(m.code); steps++ {
		if steps > 100000 {
			m.t.Fatal("machine: step budget exhausted")
		}
		m.step()
	}
}

// The full calling convention, executed: calling a function must leave the
// stack exactly one slot above the pre-argument top, holding the result,
// with all four saved base pointers restored to their pre-call values.
func TestCallReturnBalance(t *testing.T) {
	p := asm.Program{
		Name: "CallTest",
		Lines: []string{
			"function Main.run 0", // 0
			"push constant 41",    // 1
			"call Main.inc 1",     // 2
			"label END",           // 3
			"goto END",            // 4
			"function Main.inc 1", // 5
			"push argument 0",     // 6
			"push constant 1",     // 7
			"add",                 // 8
			"return",              // 9
		},
	}
	lines, err := asm.AssembleProgram(p)
	if err != nil {
		t.Fatal(err)
	}

	m := newMachine(t, lines)
	m.ram[vm.SP] = vm.StackBase
	m.ram[vm.LCL] = 777
	m.ram[vm.ARG] = 888
	m.ram[vm.THIS] = 999
	m.ram[vm.THAT] = 1111

	m.pc = m.sym["Main.run"]
	m.run(m.sym["Main.run$END"])

	if got := m.ram[vm.SP]; got != vm.StackBase+1 {
		t.Errorf("SP = %d, want %d", got, vm.StackBase+1)
	}
	if got := m.ram[vm.StackBase]; got != 42 {
		t.Errorf("result = %d, want 42", got)
	}
	saved := map[string]struct{ reg, want int }{
		"LCL":  {vm.LCL, 777},
		"ARG":  {vm.ARG, 888},
		"THIS": {vm.THIS, 999},
		"THAT": {vm.THAT, 1111},
	}
	for name, s := range saved {
		if got := m.ram[s.reg]; got != s.want {
			t.Errorf("%s = %d, want %d", name, got, s.want)
		}
	}
}

// Nested calls: the convention must compose.
func TestCallReturnNested(t *testing.T) {
	p := asm.Program{
		Name: "Nest",
		Lines: []string{
			"function Main.run 0",
			"push constant 5",
			"call Main.twice 1",
			"label END",
			"goto END",
			"function Main.twice 0",
			"push argument 0",
			"call Main.inc 1",
			"push argument 0",
			"call Main.inc 1",
			"add",
			"return",
			"function Main.inc 0",
			"push argument 0",
			"push constant 1",
			"add",
			"return",
		},
	}
	lines, err := asm.AssembleProgram(p)
	if err != nil {
		t.Fatal(err)
	}

	m := newMachine(t, lines)
	m.ram[vm.SP] = vm.StackBase
	m.pc = m.sym["Main.run"]
	m.run(m.sym["Main.run$END"])

	// twice(5) = inc(5) + inc(5) = 12
	if got := m.ram[vm.StackBase]; got != 12 {
		t.Errorf("result = %d, want 12", got)
	}
	if got := m.ram[vm.SP]; got != vm.StackBase+1 {
		t.Errorf("SP = %d, want %d", got, vm.StackBase+1)
	}
}

// Comparison results are all ones for true and all zeros for false.
func TestComparisonValues(t *testing.T) {
	tests := []struct {
		x, y int
		op   string
		want int
	}{
		{3, 5, "lt", -1},
		{5, 3, "lt", 0},
		{5, 3, "gt", -1},
		{3, 5, "gt", 0},
		{7, 7, "eq", -1},
		{7, 8, "eq", 0},
	}
	for _, tc := range tests {
		p := asm.Program{
			Name: "Cmp",
			Lines: []string{
				"push constant " + strconv.Itoa(tc.x),
				"push constant " + strconv.Itoa(tc.y),
				tc.op,
			},
		}
		lines, err := asm.AssembleProgram(p)
		if err != nil {
			t.Fatal(err)
		}
		m := newMachine(t, lines)
		m.ram[vm.SP] = vm.StackBase
		m.run(len(m.code))

		if got := m.ram[vm.StackBase]; got != tc.want {
			t.Errorf("%d %s %d = %d, want %d", tc.x, tc.op, tc.y, got, tc.want)
		}
		if got := m.ram[vm.SP]; got != vm.StackBase+1 {
			t.Errorf("%d %s %d: SP = %d, want %d",
				tc.x, tc.op, tc.y, got, vm.StackBase+1)
		}
	}
}

// Stack transfer through every segment kind.
func TestPushPopRoundTrip(t *testing.T) {
	p := asm.Program{
		Name: "Move",
		Lines: []string{
			"push constant 21",
			"pop temp 2",
			"push temp 2",
			"pop static 0",
			"push static 0",
			"pop this 1",
			"push this 1",
			"pop pointer 0",
		},
	}
	lines, err := asm.AssembleProgram(p)
	if err != nil {
		t.Fatal(err)
	}
	m := newMachine(t, lines)
	m.ram[vm.SP] = vm.StackBase
	m.ram[vm.THIS] = 1000
	m.run(len(m.code))

	if got := m.ram[vm.TempBase+2]; got != 21 {
		t.Errorf("temp 2 = %d, want 21", got)
	}
	if got := m.ram[m.sym["Move.0"]]; got != 21 {
		t.Errorf("static 0 = %d, want 21", got)
	}
	if got := m.ram[1001]; got != 21 {
		t.Errorf("this 1 = %d, want 21", got)
	}
	// pop pointer 0 rewrites THIS itself
	if got := m.ram[vm.THIS]; got != 21 {
		t.Errorf("pointer 0 = %d, want 21", got)
	}
	if got := m.ram[vm.SP]; got != vm.StackBase {
		t.Errorf("SP = %d, want %d", got, vm.StackBase)
	}
}
