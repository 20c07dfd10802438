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

package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestExpand(t *testing.T) {
	str := Expand(context.Background(), MsgConfigFailed, "insert1")
	assert.Equal(t, "Failed to read config: insert1", str)
}

func TestExpandWithCode(t *testing.T) {
	str := ExpandWithCode(context.Background(), MsgConfigFailed, "insert1")
	assert.Equal(t, "BF10101: Failed to read config: insert1", str)
}

func TestExpandRequestedLang(t *testing.T) {
	ctx := WithLang(context.Background(), language.AmericanEnglish)
	str := Expand(ctx, MsgConfigFailed, "insert1")
	assert.Equal(t, "Failed to read config: insert1", str)
}

func TestGetStatusHint(t *testing.T) {
	code, ok := GetStatusHint(string(MsgMissingRequiredField))
	assert.True(t, ok)
	assert.Equal(t, 400, code)
}

func TestGetStatusHintMissing(t *testing.T) {
	_, ok := GetStatusHint("BF99999")
	assert.False(t, ok)
}
