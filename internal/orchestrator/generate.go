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
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

func (o *orchestrator) Generate(ctx context.Context, req *bftypes.BadgeRequest) (*bftypes.RenderedBadge, error) {
	rendered, err := o.compositor.Render(ctx, req)
	if err != nil {
		return nil, err
	}

	outDir := config.GetString(config.BadgeOutputDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgBadgeWriteFailed, rendered.FileName)
	}
	outPath := filepath.Join(outDir, rendered.FileName)
	if err := ioutil.WriteFile(outPath, rendered.Image, 0644); err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgBadgeWriteFailed, rendered.FileName)
	}

	log.L(ctx).Infof("Generated badge '%s' (%d bytes)", outPath, len(rendered.Image))
	return rendered, nil
}
