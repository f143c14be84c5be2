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

// Hack RAM layout. The five virtual registers occupy the bottom of RAM,
// followed by the temp segment, two scratch cells used by generated code,
// and the static variable area. The global stack grows from StackBase.
const (
	SP   = 0 // stack pointer, addresses the next free stack slot
	LCL  = 1 // base pointer of the local segment
	ARG  = 2 // base pointer of the argument segment
	THIS = 3 // base pointer of the this segment
	THAT = 4 // base pointer of the that segment

	PointerBase = 3  // pointer 0 is THIS, pointer 1 is THAT
	TempBase    = 5  // temp 0..7 live at RAM[5..12]
	R13         = 13 // scratch: pop destination address, return frame base
	R14         = 14 // scratch: return address
	StaticBase  = 16 // static variables are allocated from here

	StackBase = 256 // initial stack pointer value
)

// Segment names a logical storage region referenced by push and pop.
type Segment int

// The segment vocabulary. The set is closed: a push or pop naming
// anything else is a malformed line.
const (
	Argument Segment = iota
	Local
	Static
	Constant
	This
	That
	Pointer
	Temp
)

// segmentNames lists the recognized segment names, indexed by Segment.
var segmentNames = [...]string{
	"argument",
	"local",
	"static",
	"constant",
	"this",
	"that",
	"pointer",
	"temp",
}

func (s Segment) String() string {
	if s < 0 || int(s) >= len(segmentNames) {
		return "segment(" + strconv.Itoa(int(s)) + ")"
	}
	return segmentNames[s]
}

// SegmentByName resolves a source-text segment name. It reports false for
// any name outside the closed vocabulary.
func SegmentByName(name string) (Segment, bool) {
	for i, n := range &segmentNames {
		if n == name {
			return Segment(i), true
		}
	}
	return 0, false
}

// Indirect reports whether s is addressed through a base pointer held in
// RAM rather than at a fixed address. Indirect segments are per-frame:
// call and return rebind their base pointers.
func (s Segment) Indirect() bool {
	switch s {
	case Argument, Local, This, That:
		return true
	}
	return false
}

// Base returns the fixed RAM address backing s: the base-pointer register
// for the indirect segments, the first cell of the segment for pointer and
// temp, and the start of the static area for static. Constant has no
// backing storage and returns -1.
func (s Segment) Base() int {
	switch s {
	case Argument:
		return ARG
	case Local:
		return LCL
	case This:
		return THIS
	case That:
		return THAT
	case Pointer:
		return PointerBase
	case Temp:
		return TempBase
	case Static:
		return StaticBase
	}
	return -1
}
