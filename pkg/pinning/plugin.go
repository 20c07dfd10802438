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

// Package pinning defines the contract with the content-addressed
// pinning/storage service used to publish badge images and metadata.
package pinning

import (
	"context"
	"io"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

// Plugin is the interface implemented by each pinning plugin
type Plugin interface {
	bftypes.Named

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// Upload pins the supplied bytes, and returns the content identifier.
	//
	// Pinning is NOT guaranteed idempotent by the service, so callers must
	// not retry a failed upload automatically - a retry can produce a
	// second, different, pin.
	Upload(ctx context.Context, data io.Reader, filename, mimeType string) (cid string, err error)
}

// Capabilities is the supported featureset of the pinning interface
// implemented by the plugin, with the specified config
type Capabilities struct {
}
