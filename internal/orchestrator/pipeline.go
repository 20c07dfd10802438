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
	"bytes"
	"context"
	"fmt"

	"github.com/songdrop/badgeforge/internal/badge"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

// Mint drives the pipeline through its states in strict order:
// render, pin the image, pin the metadata document, create the token
// definition, then mint the single unit. The first failure stops the
// run, and the partially-progressed pipeline is returned alongside the
// error so callers can see what was already committed off-process.
func (o *orchestrator) Mint(ctx context.Context, req *bftypes.BadgeRequest) (*bftypes.BadgePipeline, error) {
	pipeline := &bftypes.BadgePipeline{State: bftypes.StateCreated}

	rendered, err := o.compositor.Render(ctx, req)
	if err != nil {
		return pipeline, err
	}
	if len(rendered.Image) == 0 {
		return pipeline, i18n.NewError(ctx, i18n.MsgEmptyUpload, rendered.FileName)
	}

	imageName := badge.ImageFileName(req.Track)
	pipeline.ImageCID, err = o.pinning.Upload(ctx, bytes.NewReader(rendered.Image), imageName, "image/png")
	if err != nil {
		return pipeline, err
	}
	pipeline.State = bftypes.StateImageUploaded
	log.L(ctx).Infof("Badge image pinned: cid=%s", pipeline.ImageCID)

	metadata, err := o.metadata.Build(ctx, req.Artist, req.Track, req.Date, pipeline.ImageCID, "image/png")
	if err != nil {
		return pipeline, err
	}
	document, err := metadata.Document()
	if err != nil {
		return pipeline, err
	}
	pipeline.MetadataCID, err = o.pinning.Upload(ctx, bytes.NewReader(document), badge.MetadataFileName(req.Track), "application/json")
	if err != nil {
		return pipeline, err
	}
	pipeline.State = bftypes.StateMetadataUploaded
	log.L(ctx).Infof("Badge metadata pinned: cid=%s", pipeline.MetadataCID)

	handle, err := o.ledger.CreateToken(ctx, &bftypes.TokenDefinition{
		Name:      fmt.Sprintf("%s - %s", req.Artist, req.Track),
		Symbol:    config.GetString(config.LedgerTokenSymbol),
		Memo:      fmt.Sprintf("SongDrop badge for %s", req.Track),
		MaxSupply: 1,
	})
	if err != nil {
		return pipeline, err
	}
	pipeline.TokenID = handle.TokenID
	pipeline.State = bftypes.StateTokenCreated
	log.L(ctx).Infof("Badge token created: tokenId=%s", pipeline.TokenID)

	pipeline.TokenURI = fmt.Sprintf("ipfs://%s", pipeline.MetadataCID)
	pipeline.Serial, err = o.ledger.MintToken(ctx, handle, pipeline.TokenURI)
	if err != nil {
		return pipeline, err
	}
	pipeline.State = bftypes.StateMinted
	log.L(ctx).Infof("Badge minted: tokenId=%s serial=%d uri=%s", pipeline.TokenID, pipeline.Serial, pipeline.TokenURI)

	return pipeline, nil
}
