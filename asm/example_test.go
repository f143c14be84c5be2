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
	"fmt"

	"github.com/IvanIvanov/Hack-VM/asm"
)

// Translating a tiny program: the stack transfers expand to stack writes
// through the D register, add pops into D and combines in place.
func ExampleAssembleProgram() {
	p := asm.Program{
		Name: "Main",
		Lines: []string{
			"// adds two constants",
			"push constant 2",
			"push constant 3",
			"add",
		},
	}
	lines, err := asm.AssembleProgram(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range lines {
		fmt.Println(l)
	}
	// Output:
	// @2
	// D=A
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
	// @3
	// D=A
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
	// @SP
	// M=M-1
	// A=M
	// D=M
	// A=A-1
	// M=D+M
}

// Generate is a pure function: the decorated position makes the labels,
// not hidden counters.
func ExampleGenerate() {
	in := asm.ParseLine("push temp 2")
	for _, l := range asm.Generate(in, "Main", "Main.main", 4) {
		fmt.Println(l)
	}
	// Output:
	// @7
	// D=M
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
}
