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

package asm

import (
	"fmt"
	"strconv"

	"github.com/IvanIvanov/Hack-VM/vm"
)

// DefaultEntry is the function the bootstrap sequence transfers control to.
const DefaultEntry = "Sys.init"

// bootstrapSite names the synthetic call site of the bootstrap sequence.
// Return-address labels for real calls embed the source file name and the
// instruction position; the bootstrap call has neither, so it gets its own
// namespace that no source-derived label can collide with.
const bootstrapSite = "__bootstrap"

// Generate translates one instruction into Hack assembly.
//
// Generate is a pure function of its four arguments: file is the name of
// the source program, fn the enclosing function, and pos the 0-based
// position of the instruction within its file. Every generated label
// derives from (file, pos) or from (fn, label name), never from generator
// state, so repeated calls are reproducible and instructions can be
// generated in any order.
//
// OpEmpty and OpError generate nothing; the assembler rejects programs
// containing OpError before code generation starts.
func Generate(in vm.Instruction, file, fn string, pos int) []string {
	switch in.Op {
	case vm.OpAdd:
		return binary("M=D+M")
	case vm.OpSub:
		// order sensitive: second-from-top minus top
		return binary("M=M-D")
	case vm.OpAnd:
		return binary("M=D&M")
	case vm.OpOr:
		return binary("M=D|M")
	case vm.OpNeg:
		return unary("M=-M")
	case vm.OpNot:
		return unary("M=!M")
	case vm.OpEq:
		return comparison("JEQ", file, pos)
	case vm.OpGt:
		// the condition is computed as top minus second, which flips
		// the sign: "greater" branches on negative, "less" on positive
		return comparison("JLT", file, pos)
	case vm.OpLt:
		return comparison("JGT", file, pos)
	case vm.OpPush:
		return push(in, file)
	case vm.OpPop:
		return pop(in, file)
	case vm.OpLabel:
		return []string{"(" + scoped(fn, in.Name) + ")"}
	case vm.OpGoto:
		return []string{"@" + scoped(fn, in.Name), "0;JMP"}
	case vm.OpIfGoto:
		return []string{
			"@SP", "M=M-1", "A=M", "D=M",
			"@" + scoped(fn, in.Name), "D;JNE",
		}
	case vm.OpFunction:
		return function(in)
	case vm.OpCall:
		return call(in.Name, in.Index, returnLabel(file, pos))
	case vm.OpReturn:
		return unwind()
	case vm.OpEmpty, vm.OpError:
		return nil
	}
	return nil
}

// Bootstrap returns the fixed prologue that sets the stack pointer to the
// base of the stack region and calls the entry function with no arguments.
func Bootstrap(entry string) []string {
	out := []string{
		"@" + strconv.Itoa(vm.StackBase), "D=A",
		"@" + strconv.Itoa(vm.SP), "M=D",
	}
	return append(out, call(entry, 0, bootstrapSite+"$return-address")...)
}

// scoped qualifies a user label by its enclosing function, so identical
// label text in two functions never collides. Function names themselves
// are the global namespace and stay unqualified.
func scoped(fn, name string) string {
	return fn + "$" + name
}

func returnLabel(file string, pos int) string {
	return fmt.Sprintf("%s$%d$return-address", file, pos)
}

// binary pops the top of the stack into D and combines it with the new
// top in place. The stack shrinks by one.
func binary(op string) []string {
	return []string{"@SP", "M=M-1", "A=M", "D=M", "A=A-1", op}
}

// unary rewrites the top of the stack in place.
func unary(op string) []string {
	return []string{"@SP", "A=M", "A=A-1", op}
}

// comparison pops two values, branches on top-minus-second, and leaves
// all ones for true or all zeros for false in the vacated slot. The two
// labels derive from (file, pos), which is unique per occurrence across
// the whole linked program.
func comparison(jump, file string, pos int) []string {
	branch := fmt.Sprintf("%s$%d$branch", file, pos)
	end := fmt.Sprintf("%s$%d$end", file, pos)
	return []string{
		"@SP", "M=M-1", "A=M", "D=M", "A=A-1", "D=D-M",
		"@" + branch, "D;" + jump,
		"@SP", "A=M-1", "M=0",
		"@" + end, "0;JMP",
		"(" + branch + ")",
		"@SP", "A=M-1", "M=0", "M=!M",
		"(" + end + ")",
	}
}

// pushD writes D to the stack top and bumps the stack pointer.
func pushD() []string {
	return []string{"@SP", "A=M", "M=D", "@SP", "M=M+1"}
}

func push(in vm.Instruction, file string) []string {
	switch {
	case in.Seg == vm.Constant:
		return append([]string{"@" + strconv.Itoa(in.Index), "D=A"}, pushD()...)
	case in.Seg.Indirect():
		return append([]string{
			"@" + strconv.Itoa(in.Seg.Base()), "D=M",
			"@" + strconv.Itoa(in.Index), "A=D+A", "D=M",
		}, pushD()...)
	default:
		return append([]string{"@" + direct(in, file), "D=M"}, pushD()...)
	}
}

func pop(in vm.Instruction, file string) []string {
	if !in.Seg.Indirect() {
		return []string{
			"@SP", "M=M-1", "A=M", "D=M",
			"@" + direct(in, file), "M=D",
		}
	}
	// The destination address is computed and parked in R13 before the
	// value comes off the stack: computing it needs the segment base
	// pointer in D, and the pop needs D too.
	return []string{
		"@" + strconv.Itoa(in.Seg.Base()), "D=M",
		"@" + strconv.Itoa(in.Index), "D=D+A",
		"@" + strconv.Itoa(vm.R13), "M=D",
		"@SP", "M=M-1", "A=M", "D=M",
		"@" + strconv.Itoa(vm.R13), "A=M", "M=D",
	}
}

// direct renders the address of a directly addressed slot: a RAM address
// for temp and pointer, a per-file symbol for static.
func direct(in vm.Instruction, file string) string {
	if in.Seg == vm.Static {
		return fmt.Sprintf("%s.%d", file, in.Index)
	}
	return strconv.Itoa(in.Seg.Base() + in.Index)
}

// function emits the function's global label and zero-initializes its
// local slots by pushing the constant 0 once per local.
func function(in vm.Instruction) []string {
	out := []string{"(" + in.Name + ")"}
	for i := 0; i < in.Index; i++ {
		out = append(out, "@0", "D=A", "@SP", "M=M+1", "A=M-1", "M=D")
	}
	return out
}

// call emits the caller side of the calling convention: push the return
// address and the four segment base pointers, point ARG at the first
// argument, point LCL at the top of the stack, and jump to the callee.
// The return-address label is defined immediately after the jump.
func call(name string, argc int, ret string) []string {
	out := []string{"@" + ret, "D=A", "@SP", "M=M+1", "A=M-1", "M=D"}
	for _, reg := range [...]int{vm.LCL, vm.ARG, vm.THIS, vm.THAT} {
		out = append(out,
			"@"+strconv.Itoa(reg), "D=M",
			"@SP", "M=M+1", "A=M-1", "M=D",
		)
	}
	return append(out,
		"@"+strconv.Itoa(vm.SP), "D=M",
		"@"+strconv.Itoa(argc+5), "D=D-A",
		"@"+strconv.Itoa(vm.ARG), "M=D",
		"@"+strconv.Itoa(vm.SP), "D=M",
		"@"+strconv.Itoa(vm.LCL), "M=D",
		"@"+name, "0;JMP",
		"("+ret+")",
	)
}

// unwind emits the callee side of return. THAT and THIS are restored
// before ARG and LCL: the saved slots are addressed through the frame
// base cached in R13, the result write and the new SP go through ARG, and
// LCL is the very pointer being replaced. The return address is fetched
// into R14 up front because the result overwrites the slot it could share
// with *ARG when the callee has no arguments.
func unwind() []string {
	out := []string{
		// frame base and return address into the scratch cells
		"@" + strconv.Itoa(vm.LCL), "D=M",
		"@" + strconv.Itoa(vm.R13), "M=D",
		"@" + strconv.Itoa(vm.R13), "D=M",
		"@5", "D=D-A", "A=D", "D=M",
		"@" + strconv.Itoa(vm.R14), "M=D",
		// pop the result into the caller's stack slot
		"@SP", "M=M-1", "A=M", "D=M",
		"@" + strconv.Itoa(vm.ARG), "A=M", "M=D",
		// SP = ARG + 1
		"@" + strconv.Itoa(vm.ARG), "D=M",
		"@1", "D=D+A",
		"@" + strconv.Itoa(vm.SP), "M=D",
	}
	restore := [...]int{vm.THAT, vm.THIS, vm.ARG, vm.LCL}
	for i, reg := range restore {
		out = append(out,
			"@"+strconv.Itoa(vm.R13), "D=M",
			"@"+strconv.Itoa(i+1), "D=D-A",
			"A=D", "D=M",
			"@"+strconv.Itoa(reg), "M=D",
		)
	}
	return append(out, "@"+strconv.Itoa(vm.R14), "A=M", "0;JMP")
}
