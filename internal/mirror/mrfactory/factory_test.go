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

package mrfactory

import (
	"context"
	"testing"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGetPluginHedera(t *testing.T) {
	config.Reset()
	InitPrefix(config.NewPluginConfig("mirror"))
	plugin, err := GetPlugin(context.Background(), "hedera")
	assert.NoError(t, err)
	assert.Equal(t, "hedera", plugin.Name())
}

func TestGetPluginUnknown(t *testing.T) {
	config.Reset()
	_, err := GetPlugin(context.Background(), "wrong")
	assert.Regexp(t, "BF10115", err)
}
