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

// The dedupplay command rewrites a single Go file, extracting repeated string literals.
//
// With a file argument or piped input it prints the rewritten source.
// With no argument on a terminal it starts an interactive loop reading
// statement fragments.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"fillmore-labs.com/strdedup/internal/config"
	"fillmore-labs.com/strdedup/internal/repl"
	"fillmore-labs.com/strdedup/internal/run"
)

var prefix = flag.String("prefix", run.DefaultPrefix, "base name of generated constants")

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("dedupplay: ")
	log.SetFlags(0)
	flag.Parse()

	opts := run.DefaultOptions()
	opts.Prefix = *prefix
	opts.Behavior.Enable(config.IncludeGenerated)

	if err := opts.Validate(); err != nil {
		log.Print(err)
		return 2
	}

	ctx := context.Background()

	var (
		filename string
		src      []byte
		err      error
	)

	switch {
	case flag.NArg() == 1:
		filename = flag.Arg(0)
		src, err = os.ReadFile(filename)

	case flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd())):
		fmt.Println("Enter Go statements, finish each fragment with a blank line.")
		repl.REPL(ctx, opts)

		return 0

	case flag.NArg() == 0:
		filename = "<stdin>"
		src, err = io.ReadAll(os.Stdin)

	default:
		log.Print("want at most one Go file name")
		return 2
	}

	if err != nil {
		log.Print(err)
		return 1
	}

	out, err := repl.Source(ctx, filename, src, opts)
	if err != nil {
		log.Print(err)
		return 1
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Print(err)
		return 1
	}

	return 0
}
