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

package apiserver

import (
	"context"
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

var dataURLPrefix = regexp.MustCompile(`(?i)^data:([a-z0-9.+-]+/[a-z0-9.+-]+);base64,`)

// resolveBadgeInput validates a badge request body and decodes its
// background image. The background accepts plain base64, and the data
// URL form browsers produce from a canvas or file reader.
func resolveBadgeInput(ctx context.Context, input *bftypes.BadgeInput) (*bftypes.BadgeRequest, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"artist", input.Artist},
		{"track", input.Track},
		{"date", input.Date},
		{"backgroundBase64", input.BackgroundBase64},
	} {
		if strings.TrimSpace(field.value) == "" {
			return nil, i18n.NewError(ctx, i18n.MsgMissingRequiredField, field.name)
		}
	}

	encoded := strings.TrimSpace(input.BackgroundBase64)
	backgroundType := "image/png"
	if m := dataURLPrefix.FindStringSubmatch(encoded); m != nil {
		backgroundType = m[1]
		encoded = encoded[len(m[0]):]
	}
	background, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgInvalidBackgroundImage)
	}

	return &bftypes.BadgeRequest{
		Artist:         input.Artist,
		Track:          input.Track,
		Date:           input.Date,
		Background:     background,
		BackgroundType: backgroundType,
	}, nil
}
