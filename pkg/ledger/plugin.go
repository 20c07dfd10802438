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

// Package ledger defines the contract with the ledger that badge tokens
// are created, minted and burned on. One fixed operator identity and one
// fixed signing key perform all operations.
package ledger

import (
	"context"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

// Plugin is the interface implemented by each ledger plugin
type Plugin interface {
	bftypes.Named

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration. The operator
	// identity and signing key are resolved once here, and are immutable
	// for the life of the plugin.
	Init(ctx context.Context, prefix config.Prefix) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// TreasuryAccount returns the operator/treasury account identifier
	// that holds newly minted units
	TreasuryAccount() string

	// CreateToken creates a new non-fungible token definition. The
	// definition always has zero decimals, zero initial supply, and a
	// finite max supply of one, so a second mint on the same handle can
	// never succeed.
	//
	// No TokenHandle exists unless this returns successfully.
	CreateToken(ctx context.Context, def *bftypes.TokenDefinition) (*bftypes.TokenHandle, error)

	// MintToken mints the single unit under the handle, embedding the
	// token URI as the opaque on-chain metadata of the minted unit
	MintToken(ctx context.Context, handle *bftypes.TokenHandle, tokenURI string) (serial int64, err error)

	// BurnSerials burns the supplied serial numbers in one transaction,
	// and returns the settlement receipt status. The caller is
	// responsible for respecting the per-transaction serial count limit.
	BurnSerials(ctx context.Context, handle *bftypes.TokenHandle, serials []int64) (status string, err error)
}

// Capabilities is the supported featureset of the ledger interface
// implemented by the plugin, with the specified config
type Capabilities struct {
}
