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

// Package vm models the instruction set of the Hack virtual machine
// described in chapters 7 and 8 of "The Elements of Computing Systems"
// (https://www.nand2tetris.org/).
//
// The package is pure data: the closed set of instruction variants, the
// vocabulary of memory segments a push or pop may reference, and the fixed
// layout of the Hack RAM that backs those segments. Parsing VM source text
// and lowering instructions to Hack assembly live in package asm.
//
// The Hack machine itself has no stack, no call instruction and no frame
// pointer. Everything the VM promises on top of it - a global stack,
// function-local segments, a calling convention - is a convention over a
// handful of RAM cells, all of which are named here.
package vm
