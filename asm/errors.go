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
	"strings"
)

// LineError describes one source line that matched no instruction grammar.
type LineError struct {
	File string // program name
	Line int    // 1-based line number
	Text string // offending text, comments stripped
}

func (e LineError) String() string {
	return fmt.Sprintf("%s:%d: unrecognized instruction %q", e.File, e.Line, e.Text)
}

// ErrAsm is the aggregate parse failure for one or more programs. A whole
// file is scanned before failing, so every malformed line is reported, not
// just the first. Callers may type-assert an error returned by
// AssembleProgram or Link to ErrAsm to inspect individual entries.
type ErrAsm []LineError

func (e ErrAsm) Error() string {
	msgs := make([]string, len(e))
	for i, le := range e {
		msgs[i] = le.String()
	}
	return strings.Join(msgs, "\n")
}
