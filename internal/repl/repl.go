// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package repl provides the rewrite pipeline and read/rewrite/print loop of the dedupplay command.
//
// It supports readline-style command editing. The loop reads statement lines
// until a blank line, rewrites the fragment as the body of a function and
// prints the result.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"fillmore-labs.com/strdedup/internal/run"
)

// REPL executes a read, rewrite, print loop until end of input.
func REPL(ctx context.Context, opts *run.Options) {
	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()

	for {
		if err := rep(ctx, rl, opts); err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Println(err)
				continue
			}

			break
		}
	}

	fmt.Println()
}

// rep reads, rewrites, and prints one fragment.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Rewrite errors are printed.
func rep(ctx context.Context, rl *readline.Instance, opts *run.Options) error {
	var fragment strings.Builder

	rl.SetPrompt(">>> ")

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) && fragment.Len() > 0 {
				break
			}

			return err
		}

		if strings.TrimSpace(line) == "" {
			if fragment.Len() == 0 {
				continue
			}

			break
		}

		rl.SetPrompt("... ")

		fragment.WriteString(line) // ignore error
		fragment.WriteByte('\n')   // ignore error
	}

	out, err := Fragment(ctx, fragment.String(), opts)
	if err != nil {
		PrintError(err)
		return nil
	}

	fmt.Print(out)

	return nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
