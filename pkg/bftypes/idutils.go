// Copyright © 2026 SongDrop, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package bftypes

import "github.com/aidarkhanov/nanoid"

// ShortID returns a random string of a fixed length, with a character set
// safe for use in log correlation fields
func ShortID() string {
	id, _ := nanoid.Generate(nanoid.DefaultAlphabet, 8)
	return id
}
