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

package collision

import "fmt"

var _s = "package level"

func local() {
	_s2 := 1
	fmt.Println(_s, _s2, "hello world") // want `String literal "hello world" is used 2 times and can be extracted to constant '_s3'`
	fmt.Println("hello world")
}

func inner() {
	fmt.Println("hello world") // want `String literal "hello world" is used 2 times and can be extracted to constant '_s3'`
	{
		_s2 := "inner"
		fmt.Println(_s2, "hello world")
	}
}

func param(_s2 string) {
	fmt.Println(_s2, "hello world", "hello world") // want `String literal "hello world" is used 2 times and can be extracted to constant '_s3'`
}
