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
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/IvanIvanov/Hack-VM/asm"
	"github.com/IvanIvanov/Hack-VM/internal/hvi"
)

// srcExt is the recognized VM source file extension.
const srcExt = ".vm"

// loadPrograms returns the programs found at path: the file itself, or
// every .vm entry of the directory. In the directory case an unreadable
// file is logged and skipped, so one bad file does not stop the build of
// the remaining ones.
func loadPrograms(path string) ([]asm.Program, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "load")
	}
	if !st.IsDir() {
		p, err := loadProgram(path)
		if err != nil {
			return nil, err
		}
		return []asm.Program{p}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "load")
	}
	var progs []asm.Program
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != srcExt {
			continue
		}
		p, err := loadProgram(filepath.Join(path, e.Name()))
		if err != nil {
			logrus.Warnf("skipping %s: %v", e.Name(), err)
			continue
		}
		progs = append(progs, p)
	}
	return progs, nil
}

func loadProgram(path string) (asm.Program, error) {
	if filepath.Ext(path) != srcExt {
		return asm.Program{}, errors.Errorf("%s: not a %s file", path, srcExt)
	}
	f, err := os.Open(path)
	if err != nil {
		return asm.Program{}, errors.Wrap(err, "load")
	}
	defer f.Close()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return asm.Program{}, errors.Wrap(err, path)
	}
	name := strings.TrimSuffix(filepath.Base(path), srcExt)
	return asm.Program{Name: name, Lines: lines}, nil
}

// writeAsm persists the assembly, one instruction or label per line.
func writeAsm(fileName string, lines []string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "write")
	}
	w := bufio.NewWriter(f)
	if err = hvi.WriteLines(w, lines); err != nil {
		f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "write")
	}
	return errors.Wrap(f.Close(), "write")
}
