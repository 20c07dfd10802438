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

package orchestrator

import (
	"context"

	"github.com/songdrop/badgeforge/internal/badge"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/ledger/llfactory"
	"github.com/songdrop/badgeforge/internal/mirror/mrfactory"
	"github.com/songdrop/badgeforge/internal/pinning/pnfactory"
	"github.com/songdrop/badgeforge/pkg/bftypes"
	"github.com/songdrop/badgeforge/pkg/ledger"
	"github.com/songdrop/badgeforge/pkg/mirror"
	"github.com/songdrop/badgeforge/pkg/pinning"
)

var (
	pinningConfig = config.NewPluginConfig("pinning")
	ledgerConfig  = config.NewPluginConfig("ledger")
	mirrorConfig  = config.NewPluginConfig("mirror")
)

// Orchestrator is the main interface behind the API, implementing the actions
type Orchestrator interface {
	Init(ctx context.Context) error

	// Generate renders a badge and writes it to the local output directory
	Generate(ctx context.Context, req *bftypes.BadgeRequest) (*bftypes.RenderedBadge, error)

	// Mint runs the full tokenization pipeline for one badge. The returned
	// pipeline is non-nil even on failure, recording the state reached.
	Mint(ctx context.Context, req *bftypes.BadgeRequest) (*bftypes.BadgePipeline, error)

	// BurnOne burns a single serial of a badge token
	BurnOne(ctx context.Context, tokenID string, serial int64) (*bftypes.BurnReceipt, error)

	// BurnAll burns every treasury-held serial of a badge token, in batches
	BurnAll(ctx context.Context, tokenID string) ([]*bftypes.BurnBatchResult, error)
}

type orchestrator struct {
	ctx        context.Context
	pinning    pinning.Plugin
	ledger     ledger.Plugin
	mirror     mirror.Plugin
	compositor *badge.Compositor
	metadata   *badge.MetadataBuilder
}

func NewOrchestrator() Orchestrator {
	o := &orchestrator{}

	// Initialize the config on all the factories
	pnfactory.InitPrefix(pinningConfig)
	llfactory.InitPrefix(ledgerConfig)
	mrfactory.InitPrefix(mirrorConfig)

	return o
}

func (o *orchestrator) Init(ctx context.Context) (err error) {
	o.ctx = ctx
	err = o.initPlugins(ctx)
	if err == nil {
		err = o.initComponents(ctx)
	}
	if err == nil {
		err = o.verifyInitialized(ctx)
	}
	return err
}

func (o *orchestrator) verifyInitialized(ctx context.Context) error {
	if o.pinning == nil || o.ledger == nil || o.mirror == nil || o.compositor == nil || o.metadata == nil {
		return i18n.NewError(ctx, i18n.MsgInitializationNilDepError)
	}
	return nil
}

func (o *orchestrator) initPlugins(ctx context.Context) (err error) {

	if o.pinning == nil {
		if o.pinning, err = o.initPinningPlugin(ctx); err != nil {
			return err
		}
	}

	if o.ledger == nil {
		if o.ledger, err = o.initLedgerPlugin(ctx); err != nil {
			return err
		}
	}

	if o.mirror == nil {
		if o.mirror, err = o.initMirrorPlugin(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (o *orchestrator) initComponents(ctx context.Context) (err error) {
	if o.compositor == nil {
		if o.compositor, err = badge.NewCompositor(ctx); err != nil {
			return err
		}
	}

	if o.metadata == nil {
		o.metadata = badge.NewMetadataBuilder()
	}
	return nil
}

func (o *orchestrator) initPinningPlugin(ctx context.Context) (pinning.Plugin, error) {
	pluginType := config.GetString(config.PinningType)
	plugin, err := pnfactory.GetPlugin(ctx, pluginType)
	if err != nil {
		return nil, err
	}
	err = plugin.Init(ctx, pinningConfig.SubPrefix(pluginType))
	return plugin, err
}

func (o *orchestrator) initLedgerPlugin(ctx context.Context) (ledger.Plugin, error) {
	pluginType := config.GetString(config.LedgerType)
	plugin, err := llfactory.GetPlugin(ctx, pluginType)
	if err != nil {
		return nil, err
	}
	err = plugin.Init(ctx, ledgerConfig.SubPrefix(pluginType))
	return plugin, err
}

func (o *orchestrator) initMirrorPlugin(ctx context.Context) (mirror.Plugin, error) {
	pluginType := config.GetString(config.MirrorType)
	plugin, err := mrfactory.GetPlugin(ctx, pluginType)
	if err != nil {
		return nil, err
	}
	err = plugin.Init(ctx, mirrorConfig.SubPrefix(pluginType))
	return plugin, err
}
