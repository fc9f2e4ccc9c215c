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

package gclplugin

import strdedup "fillmore-labs.com/strdedup/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
	// SuggestFixes enables suggested fixes extracting the constants.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
	// Prefix sets the base name of generated constants.
	Prefix *string `json:"prefix,omitzero"`
}

// Options converts [Settings] into a list of [strdedup.Option] for the strdedup analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []strdedup.Option {
	var opts []strdedup.Option

	opts = appendOption(opts, s.Generated, strdedup.WithGenerated)
	opts = appendOption(opts, s.SuggestFixes, strdedup.WithSuggestFixes)
	opts = appendOption(opts, s.Prefix, strdedup.WithPrefix)

	return opts
}

// appendOption appends a non-nil setting to a [strdedup.Option] list.
func appendOption[T any](opts []strdedup.Option, value *T, constructor func(T) strdedup.Option) []strdedup.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
