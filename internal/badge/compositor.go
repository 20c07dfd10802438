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

// Package badge renders collectable badge images, and builds the metadata
// documents that describe them. Rendering is a pure function of its
// inputs - the only non-deterministic output is the time-based suggested
// filename, which never affects pixel content.
package badge

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	// Common raster formats accepted for the background
	_ "image/gif"
	_ "image/jpeg"

	"github.com/fogleman/gg"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/pkg/bftypes"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	titleFontSize    = 40
	subtitleFontSize = 28
	textMargin       = 40
	titleOffset      = 80
	subtitleOffset   = 40
	logoSize         = 100
	logoMargin       = 20
)

// Compositor renders badge images onto a fixed square canvas. The parsed
// fonts are immutable and shared; the font.Face rasterizers are not safe
// for concurrent use, so each Render creates its own.
type Compositor struct {
	size    int
	title   *opentype.Font
	caption *opentype.Font
	logo    image.Image
}

// NewCompositor reads the badge configuration, parses the embedded fonts,
// and performs the capability lookup for the optional logo overlay. A
// missing or unreadable logo is not an error - the overlay is skipped.
func NewCompositor(ctx context.Context) (*Compositor, error) {
	c := &Compositor{
		size: int(config.GetUint(config.BadgeCanvasSize)),
	}
	var err error
	if c.title, err = opentype.Parse(gobold.TTF); err == nil {
		c.caption, err = opentype.Parse(goregular.TTF)
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgFontLoadFailed)
	}
	c.logo = loadLogo(ctx, config.GetString(config.BadgeLogoPath))
	return c, nil
}

func newFace(f *opentype.Font, points float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func loadLogo(ctx context.Context, path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		log.L(ctx).Warnf("Logo not found at %s - skipping overlay", path)
		return nil
	}
	defer f.Close()
	logo, _, err := image.Decode(f)
	if err != nil {
		log.L(ctx).Warnf("Logo at %s is not a decodable image - skipping overlay", path)
		return nil
	}
	return logo
}

// Render produces the badge image for a request. The background is
// stretched to fill the canvas, a dark gradient is laid over the bottom
// fifth for text legibility, the title and collection date are drawn in
// white, and the logo (when available) is composited bottom-right.
func (c *Compositor) Render(ctx context.Context, req *bftypes.BadgeRequest) (*bftypes.RenderedBadge, error) {

	background, format, err := image.Decode(bytes.NewReader(req.Background))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgImageDecodeFailed)
	}
	if req.BackgroundType != "" {
		log.L(ctx).Debugf("Background decoded as %s (declared %s)", format, req.BackgroundType)
	}

	w := c.size
	h := c.size
	dc := gg.NewContext(w, h)
	dc.DrawImage(stretch(background, w, h), 0, 0)

	gradientHeight := h / 5
	gradient := gg.NewLinearGradient(0, float64(h-gradientHeight), 0, float64(h))
	gradient.AddColorStop(0, color.RGBA{0, 0, 0, 0})
	gradient.AddColorStop(1, color.RGBA{0, 0, 0, 178})
	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, float64(h-gradientHeight), float64(w), float64(gradientHeight))
	dc.Fill()

	titleFace, err := newFace(c.title, titleFontSize)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgFontLoadFailed)
	}
	captionFace, err := newFace(c.caption, subtitleFontSize)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgFontLoadFailed)
	}

	dc.SetColor(color.White)
	dc.SetFontFace(titleFace)
	dc.DrawString(fmt.Sprintf("%s – %s", req.Artist, req.Track), textMargin, float64(h-titleOffset))
	dc.SetFontFace(captionFace)
	dc.DrawString(fmt.Sprintf("Collected on %s", req.Date), textMargin, float64(h-subtitleOffset))

	if c.logo != nil {
		dc.DrawImage(stretch(c.logo, logoSize, logoSize), w-logoSize-logoMargin, h-logoSize-logoMargin)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgBadgeWriteFailed, "png")
	}

	return &bftypes.RenderedBadge{
		Image:    buf.Bytes(),
		FileName: fmt.Sprintf("badge-%d.png", time.Now().UnixNano()/int64(time.Millisecond)),
	}, nil
}

// stretch scales an image to exactly the target dimensions, distorting the
// aspect ratio where necessary (the canvas is always square)
func stretch(src image.Image, w, h int) image.Image {
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
