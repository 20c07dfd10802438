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

package pnfactory

import (
	"context"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/pinning/ipfs"
	"github.com/songdrop/badgeforge/internal/pinning/pinata"
	"github.com/songdrop/badgeforge/pkg/pinning"
)

var pluginsByName = map[string]func() pinning.Plugin{
	(*pinata.Pinata)(nil).Name(): func() pinning.Plugin { return &pinata.Pinata{} },
	(*ipfs.IPFS)(nil).Name():     func() pinning.Plugin { return &ipfs.IPFS{} },
}

// InitPrefix registers the configuration keys of every pinning plugin
func InitPrefix(prefix config.Prefix) {
	for name, plugin := range pluginsByName {
		plugin().InitPrefix(prefix.SubPrefix(name))
	}
}

// GetPlugin returns a new uninitialized instance of the named plugin
func GetPlugin(ctx context.Context, pluginType string) (pinning.Plugin, error) {
	plugin, ok := pluginsByName[pluginType]
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgUnknownPinningPlugin, pluginType)
	}
	return plugin(), nil
}
