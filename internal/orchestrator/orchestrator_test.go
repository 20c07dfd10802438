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
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/songdrop/badgeforge/internal/badge"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/restclient"
	"github.com/songdrop/badgeforge/mocks/ledgermocks"
	"github.com/songdrop/badgeforge/mocks/mirrormocks"
	"github.com/songdrop/badgeforge/mocks/pinningmocks"
	"github.com/songdrop/badgeforge/pkg/bftypes"
	"github.com/stretchr/testify/assert"
)

func testBackground(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: 120, G: 40, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	assert.NoError(t, err)
	return buf.Bytes()
}

func testRequest(t *testing.T) *bftypes.BadgeRequest {
	return &bftypes.BadgeRequest{
		Artist:     "65daysofstatic",
		Track:      "Radio Protector",
		Date:       "2024-01-01",
		Background: testBackground(t),
	}
}

func newTestOrchestrator(t *testing.T) (*orchestrator, *pinningmocks.Plugin, *ledgermocks.Plugin, *mirrormocks.Plugin) {
	config.Reset()
	config.Set(config.BadgeCanvasSize, 64)
	config.Set(config.BadgeLogoPath, "this-logo-does-not-exist.png")

	mp := &pinningmocks.Plugin{}
	ml := &ledgermocks.Plugin{}
	mm := &mirrormocks.Plugin{}
	compositor, err := badge.NewCompositor(context.Background())
	assert.NoError(t, err)
	return &orchestrator{
		ctx:        context.Background(),
		pinning:    mp,
		ledger:     ml,
		mirror:     mm,
		compositor: compositor,
		metadata:   badge.NewMetadataBuilder(),
	}, mp, ml, mm
}

func TestVerifyInitializedNilDep(t *testing.T) {
	o := &orchestrator{}
	err := o.verifyInitialized(context.Background())
	assert.Regexp(t, "BF10125", err)
}

func TestNewOrchestratorBadPlugins(t *testing.T) {
	config.Reset()
	o := NewOrchestrator()

	config.Set(config.PinningType, "wrong")
	err := o.Init(context.Background())
	assert.Regexp(t, "BF10113", err)

	config.Set(config.PinningType, "ipfs")
	pinningConfig.SubPrefix("ipfs").Set(restclient.HTTPConfigURL, "http://localhost:10000")
	config.Set(config.LedgerType, "wrong")
	err = o.Init(context.Background())
	assert.Regexp(t, "BF10114", err)
}

func TestInitPluginConfigFailure(t *testing.T) {
	config.Reset()
	o := NewOrchestrator()

	// pinata is the default, and has no API key configured
	err := o.Init(context.Background())
	assert.Regexp(t, "BF10116", err)
}

func TestInitComponentsWithMockedPlugins(t *testing.T) {
	config.Reset()
	config.Set(config.BadgeCanvasSize, 64)
	o := &orchestrator{
		pinning: &pinningmocks.Plugin{},
		ledger:  &ledgermocks.Plugin{},
		mirror:  &mirrormocks.Plugin{},
	}
	err := o.Init(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, o.compositor)
	assert.NotNil(t, o.metadata)
}
