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

package badge

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path"
	"sync"
	"testing"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/pkg/bftypes"
	"github.com/stretchr/testify/assert"
)

func testBackground(t *testing.T, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, c)
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
		Background: testBackground(t, color.RGBA{R: 40, G: 80, B: 160, A: 255}),
	}
}

func resetBadgeConf() {
	config.Reset()
	config.Set(config.BadgeCanvasSize, 128)
	config.Set(config.BadgeLogoPath, "this-logo-does-not-exist.png")
}

func TestRenderOK(t *testing.T) {
	resetBadgeConf()
	c, err := NewCompositor(context.Background())
	assert.NoError(t, err)

	badge, err := c.Render(context.Background(), testRequest(t))
	assert.NoError(t, err)
	assert.Regexp(t, `^badge-\d+\.png$`, badge.FileName)

	img, err := png.Decode(bytes.NewReader(badge.Image))
	assert.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestRenderDeterministicPixels(t *testing.T) {
	resetBadgeConf()
	c, err := NewCompositor(context.Background())
	assert.NoError(t, err)

	badge1, err := c.Render(context.Background(), testRequest(t))
	assert.NoError(t, err)
	badge2, err := c.Render(context.Background(), testRequest(t))
	assert.NoError(t, err)
	assert.Equal(t, badge1.Image, badge2.Image)
}

func TestRenderConcurrent(t *testing.T) {
	resetBadgeConf()
	c, err := NewCompositor(context.Background())
	assert.NoError(t, err)

	req := testRequest(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				badge, err := c.Render(context.Background(), req)
				assert.NoError(t, err)
				assert.NotEmpty(t, badge.Image)
			}
		}()
	}
	wg.Wait()
}

func TestRenderPixelsVaryWithText(t *testing.T) {
	resetBadgeConf()
	c, err := NewCompositor(context.Background())
	assert.NoError(t, err)

	req1 := testRequest(t)
	badge1, err := c.Render(context.Background(), req1)
	assert.NoError(t, err)

	req2 := testRequest(t)
	req2.Artist = "Someone Else"
	badge2, err := c.Render(context.Background(), req2)
	assert.NoError(t, err)
	assert.NotEqual(t, badge1.Image, badge2.Image)
}

func TestRenderPixelsVaryWithBackground(t *testing.T) {
	resetBadgeConf()
	c, err := NewCompositor(context.Background())
	assert.NoError(t, err)

	req1 := testRequest(t)
	badge1, err := c.Render(context.Background(), req1)
	assert.NoError(t, err)

	req2 := testRequest(t)
	req2.Background = testBackground(t, color.RGBA{R: 200, G: 30, B: 30, A: 255})
	badge2, err := c.Render(context.Background(), req2)
	assert.NoError(t, err)
	assert.NotEqual(t, badge1.Image, badge2.Image)
}

func TestRenderWithLogo(t *testing.T) {
	resetBadgeConf()
	tmpDir, err := ioutil.TempDir("", "badgeforge-logo")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)
	logoPath := path.Join(tmpDir, "logo.png")
	err = ioutil.WriteFile(logoPath, testBackground(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}), 0664)
	assert.NoError(t, err)
	config.Set(config.BadgeLogoPath, logoPath)

	withLogo, err := NewCompositor(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, withLogo.logo)

	badge, err := withLogo.Render(context.Background(), testRequest(t))
	assert.NoError(t, err)
	assert.NotNil(t, badge.Image)
}

func TestRenderLogoUnreadableSkipped(t *testing.T) {
	resetBadgeConf()
	tmpDir, err := ioutil.TempDir("", "badgeforge-logo")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)
	logoPath := path.Join(tmpDir, "logo.png")
	err = ioutil.WriteFile(logoPath, []byte("not an image"), 0664)
	assert.NoError(t, err)
	config.Set(config.BadgeLogoPath, logoPath)

	c, err := NewCompositor(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, c.logo)

	_, err = c.Render(context.Background(), testRequest(t))
	assert.NoError(t, err)
}

func TestRenderBadBackground(t *testing.T) {
	resetBadgeConf()
	c, err := NewCompositor(context.Background())
	assert.NoError(t, err)

	req := testRequest(t)
	req.Background = []byte("not an image at all")
	_, err = c.Render(context.Background(), req)
	assert.Regexp(t, "BF10112", err)
}
