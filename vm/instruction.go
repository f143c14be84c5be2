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

package vm

import "strconv"

// Op identifies an instruction variant. The set is closed: the parser
// produces no other values, and the code generator switches over all of
// them exhaustively.
type Op int

// Hack Virtual Machine instruction variants.
const (
	OpAdd Op = iota
	OpSub
	OpNeg
	OpEq
	OpGt
	OpLt
	OpAnd
	OpOr
	OpNot
	OpPush
	OpPop
	OpLabel
	OpGoto
	OpIfGoto
	OpFunction
	OpCall
	OpReturn

	// OpEmpty marks a line that produced no instruction (blank or
	// comment-only). OpError marks a line that matched no grammar; the
	// offending text is kept for diagnostics. Both consume a position
	// slot so that instruction numbering stays stable.
	OpEmpty
	OpError
)

var opNames = [...]string{
	"add",
	"sub",
	"neg",
	"eq",
	"gt",
	"lt",
	"and",
	"or",
	"not",
	"push",
	"pop",
	"label",
	"goto",
	"if-goto",
	"function",
	"call",
	"return",
	"empty",
	"error",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// Instruction is one parsed VM command. It is a flat tagged record: Op
// selects the variant and the operand fields that apply to it, all other
// fields are zero.
type Instruction struct {
	Op    Op
	Seg   Segment // push, pop
	Index int     // push/pop index, function local count, call argument count
	Name  string  // label, goto, if-goto, function and call symbol
	Text  string  // offending text of an OpError line, comments stripped
}
