// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"

	"fillmore-labs.com/strdedup/internal/config"
)

// DefaultPrefix is the default prefix of generated constant names.
const DefaultPrefix = "_s"

// ErrInvalidPrefix is returned when the configured prefix is not a valid Go identifier.
var ErrInvalidPrefix = errors.New("invalid constant prefix")

// Options represent configuration options for the strdedup analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Prefix is the base name of generated constants, suffixed by 2, 3, … on collision.
	Prefix string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.Default(),
		Prefix:   DefaultPrefix,
	}
}

// Validate checks the options for consistency.
func (r *Options) Validate() error {
	if !token.IsIdentifier(r.Prefix) || r.Prefix == "_" {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, r.Prefix)
	}

	return nil
}

// LogValue implements [slog.LogValuer].
func (r *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("generated", r.Behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("suggest-fixes", r.Behavior.Enabled(config.SuggestFixes)),
		slog.String("prefix", r.Prefix),
	)
}
