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
	"regexp"
	"strconv"
	"strings"

	"github.com/IvanIvanov/Hack-VM/vm"
)

// commentMarker starts a line comment. Everything from the marker to the
// end of the line is ignored.
const commentMarker = "//"

// keywordOps maps the commands that are a bare keyword to their variant.
// These grammars are mutually exclusive by exact match, so a single lookup
// replaces ordered trial parsing.
var keywordOps = map[string]vm.Op{
	"add":    vm.OpAdd,
	"sub":    vm.OpSub,
	"neg":    vm.OpNeg,
	"eq":     vm.OpEq,
	"gt":     vm.OpGt,
	"lt":     vm.OpLt,
	"and":    vm.OpAnd,
	"or":     vm.OpOr,
	"not":    vm.OpNot,
	"return": vm.OpReturn,
}

// grammars are the shape-based parse attempts, tried in order. Order only
// matters in that all of them run before ParseLine falls back to OpError.
var grammars = []func([]string) (vm.Instruction, bool){
	parsePush,
	parsePop,
	parseLabel,
	parseGoto,
	parseIfGoto,
	parseFunction,
	parseCall,
}

// labelRE is the identifier grammar shared by labels and function names.
var labelRE = regexp.MustCompile(`^[A-Za-z_.:][A-Za-z0-9_.:]*$`)

// ParseLine converts one source line into an Instruction. It never fails:
// blank and comment-only lines parse as OpEmpty and lines matching no
// grammar parse as OpError, so a whole file can be scanned and all errors
// reported together.
func ParseLine(line string) vm.Instruction {
	text := trimLine(line)
	if text == "" {
		return vm.Instruction{Op: vm.OpEmpty}
	}
	if op, ok := keywordOps[text]; ok {
		return vm.Instruction{Op: op}
	}
	fields := strings.Fields(text)
	for _, g := range grammars {
		if in, ok := g(fields); ok {
			return in
		}
	}
	return vm.Instruction{Op: vm.OpError, Text: text}
}

// trimLine strips a trailing comment and surrounding whitespace.
func trimLine(line string) string {
	if i := strings.Index(line, commentMarker); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// parseIndex accepts non-negative decimal literals only: no sign, no hex.
func parseIndex(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func parsePush(f []string) (vm.Instruction, bool) {
	if len(f) != 3 || f[0] != "push" {
		return vm.Instruction{}, false
	}
	seg, ok := vm.SegmentByName(f[1])
	if !ok {
		return vm.Instruction{}, false
	}
	n, ok := parseIndex(f[2])
	if !ok {
		return vm.Instruction{}, false
	}
	return vm.Instruction{Op: vm.OpPush, Seg: seg, Index: n}, true
}

func parsePop(f []string) (vm.Instruction, bool) {
	if len(f) != 3 || f[0] != "pop" {
		return vm.Instruction{}, false
	}
	seg, ok := vm.SegmentByName(f[1])
	if !ok || seg == vm.Constant {
		// constants are not addressable storage
		return vm.Instruction{}, false
	}
	n, ok := parseIndex(f[2])
	if !ok {
		return vm.Instruction{}, false
	}
	return vm.Instruction{Op: vm.OpPop, Seg: seg, Index: n}, true
}

func parseLabel(f []string) (vm.Instruction, bool) {
	return parseJump(f, "label", vm.OpLabel)
}

func parseGoto(f []string) (vm.Instruction, bool) {
	return parseJump(f, "goto", vm.OpGoto)
}

func parseIfGoto(f []string) (vm.Instruction, bool) {
	return parseJump(f, "if-goto", vm.OpIfGoto)
}

func parseJump(f []string, keyword string, op vm.Op) (vm.Instruction, bool) {
	if len(f) != 2 || f[0] != keyword || !labelRE.MatchString(f[1]) {
		return vm.Instruction{}, false
	}
	return vm.Instruction{Op: op, Name: f[1]}, true
}

func parseFunction(f []string) (vm.Instruction, bool) {
	return parseProc(f, "function", vm.OpFunction)
}

func parseCall(f []string) (vm.Instruction, bool) {
	return parseProc(f, "call", vm.OpCall)
}

func parseProc(f []string, keyword string, op vm.Op) (vm.Instruction, bool) {
	if len(f) != 3 || f[0] != keyword || !labelRE.MatchString(f[1]) {
		return vm.Instruction{}, false
	}
	n, ok := parseIndex(f[2])
	if !ok {
		return vm.Instruction{}, false
	}
	return vm.Instruction{Op: op, Name: f[1], Index: n}, true
}
