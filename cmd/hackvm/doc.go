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

// The hackvm command translates Hack Virtual Machine programs into Hack
// assembly using the packages github.com/IvanIvanov/Hack-VM/asm and
// github.com/IvanIvanov/Hack-VM/vm.
//
// Usage:
//
//	hackvm [flags] path
//
// path names either a single .vm file or a directory; in the directory
// case every .vm file in it becomes part of the linked program, in
// directory order. Exactly one path must be given.
//
// Flags:
//
//	-debug
//		  enable debug diagnostics
//	-nobootstrap
//		  do not prepend the bootstrap sequence
//	-o filename
//		  write the assembly output to filename (default "out.asm")
//
// -debug: parse and I/O failures are printed with full cause chains, and
// the tool logs what it is doing.
//
// -nobootstrap: by default the output starts with a prologue that sets the
// stack pointer to 256 and calls Sys.init, which is what a complete Hack
// program expects. Translating a fragment for use with a test harness that
// sets up the stack itself requires suppressing the prologue.
//
// -o: the output file is only written when every input file translated
// cleanly; a failed run leaves any previous output file untouched.
//
// Unreadable files inside a directory are reported on stderr and skipped;
// malformed VM source is a hard error listing every offending line with
// its file name and line number.
package main
