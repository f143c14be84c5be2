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

import "github.com/IvanIvanov/Hack-VM/vm"

// defaultFunction scopes labels that appear before the first function
// definition of a file.
const defaultFunction = "DEFAULT_FUNCTION"

// Program is one VM source file: a name (the file name stripped of
// directory and extension) and its raw lines. Programs are built once by
// the loader and never mutated.
type Program struct {
	Name  string
	Lines []string
}

// AssembleProgram translates a whole program into Hack assembly.
//
// Every line is parsed first; if any parsed as malformed, the returned
// error is an ErrAsm listing all of them and no code is generated.
// Otherwise each instruction is generated with the program name, its
// enclosing function (the nearest preceding function definition), and its
// 0-based position in the original line sequence. Blank and comment-only
// lines generate no code but still consume a position slot, so positions
// always agree with the source file.
func AssembleProgram(p Program) ([]string, error) {
	ins := make([]vm.Instruction, len(p.Lines))
	var errs ErrAsm
	for i, line := range p.Lines {
		ins[i] = ParseLine(line)
		if ins[i].Op == vm.OpError {
			errs = append(errs, LineError{File: p.Name, Line: i + 1, Text: ins[i].Text})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	var out []string
	fn := defaultFunction
	for pos, in := range ins {
		if in.Op == vm.OpFunction {
			// the function instruction encloses itself
			fn = in.Name
		}
		out = append(out, Generate(in, p.Name, fn, pos)...)
	}
	return out, nil
}

// Option configures Link.
type Option func(*linker)

type linker struct {
	bootstrap bool
	entry     string
}

// WithBootstrap makes Link prepend the bootstrap sequence, targeting the
// given entry function. An empty entry means DefaultEntry.
func WithBootstrap(entry string) Option {
	return func(l *linker) {
		l.bootstrap = true
		if entry != "" {
			l.entry = entry
		}
	}
}

// Link assembles every program and concatenates their output in input
// order. Programs are assembled independently, so a malformed line in one
// file does not hide errors in the others; the returned ErrAsm aggregates
// the diagnostics of all failed files and nothing is emitted if any file
// failed.
func Link(progs []Program, opts ...Option) ([]string, error) {
	l := linker{entry: DefaultEntry}
	for _, o := range opts {
		o(&l)
	}
	var out []string
	if l.bootstrap {
		out = append(out, Bootstrap(l.entry)...)
	}
	var errs ErrAsm
	for _, p := range progs {
		lines, err := AssembleProgram(p)
		if err != nil {
			errs = append(errs, err.(ErrAsm)...)
			continue
		}
		out = append(out, lines...)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
