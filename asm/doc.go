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

// Package asm translates Hack Virtual Machine programs into Hack assembly.
//
// The VM language is the one defined in chapters 7 and 8 of "The Elements
// of Computing Systems": a stack machine with eight memory segments,
// structured control flow and a function calling convention, lowered here
// to assembly for a machine with a single data register (D), a single
// address register (A) and no native stack.
//
// Accepted commands, one per line:
//
//	command			stack	description
//	-------			-----	-----------------------------------------------
//	add			xy-z	y added to x
//	sub			xy-z	y subtracted from x
//	neg			x-y	arithmetic negation of x
//	eq			xy-b	true (all ones) if x == y, else false (zero)
//	gt			xy-b	true if x > y
//	lt			xy-b	true if x < y
//	and			xy-z	bitwise and
//	or			xy-z	bitwise or
//	not			x-y	bitwise complement
//	push <segment> <n>	-x	push the n-th value of segment
//	pop <segment> <n>	x-	pop into the n-th slot of segment
//	label <name>		-	define a label, scoped to the current function
//	goto <name>		-	unconditional jump to a scoped label
//	if-goto <name>		b-	jump when the popped value is non-zero
//	function <name> <k>	-	function entry point with k local variables
//	call <name> <n>		..-x	call a function on n pushed arguments
//	return			x-	return to the caller with the popped result
//
// Segments:
//
//	argument, local, this, that	per-frame, addressed through a base
//					pointer rebound by call and return
//	pointer, temp			fixed RAM cells (3 and 5 upward)
//	static				per-file variables, emitted as symbols
//					of the form <file>.<n>
//	constant			literal values; push only
//
// Comments run from "//" to the end of the line. Label and function
// identifiers match [A-Za-z_.:][A-Za-z0-9_.:]*. Indices are non-negative
// decimal literals.
//
// Parsing never fails on a line: unrecognized lines are collected while
// scanning the whole file and reported together as an ErrAsm, one entry
// per line with its file name and 1-based line number.
//
// Code generation is stateless. Labels that must be unique per occurrence
// (comparison branches, call return addresses) are derived from the file
// name and the instruction's position in it; user labels are qualified by
// their enclosing function. Two translations of the same input are
// byte-identical, and files can be translated in any order or in
// parallel.
//
// The calling convention stores a five-word frame per call (return
// address and the saved local, argument, this and that base pointers),
// places the callee's argument segment under the frame, and unwinds it on
// return through the two scratch cells RAM[13] and RAM[14]. Executing a
// return without a matching frame on the stack is undefined: callers must
// guarantee frame well-formedness, the generated code does not check it.
package asm
