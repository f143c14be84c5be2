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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/IvanIvanov/Hack-VM/asm"
)

var (
	outFileName string
	noBootstrap bool
	debug       bool
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] path\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "path must be a .vm file or a directory containing .vm files.\n\n")
	flag.PrintDefaults()
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func main() {
	flag.StringVar(&outFileName, "o", "out.asm", "write the assembly output to `filename`")
	flag.BoolVar(&noBootstrap, "nobootstrap", false, "do not prepend the bootstrap sequence")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Usage = usage

	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	progs, err := loadPrograms(flag.Arg(0))
	if err != nil {
		atExit(err)
	}

	var opts []asm.Option
	if !noBootstrap {
		opts = append(opts, asm.WithBootstrap(asm.DefaultEntry))
	}
	out, err := asm.Link(progs, opts...)
	if err != nil {
		atExit(err)
	}

	// nothing has been written so far: a failed run never leaves a
	// partial output file behind
	if err = writeAsm(outFileName, out); err != nil {
		atExit(err)
	}
	logrus.Debugf("wrote %d lines to %s", len(out), outFileName)
}
