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
	"context"
	"fmt"
	"strings"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

// MetadataBuilder derives the canonical badge metadata document from the
// badge fields and the pinned image CID. It is pure: no network calls, no
// randomness, and byte-identical output for identical inputs.
type MetadataBuilder struct {
	GatewayBaseURL string
	License        string
	ExternalURL    string
}

// NewMetadataBuilder captures the provenance configuration once, so the
// builder itself stays a pure function of its arguments
func NewMetadataBuilder() *MetadataBuilder {
	return &MetadataBuilder{
		GatewayBaseURL: strings.TrimSuffix(config.GetString(config.BadgeGatewayBaseURL), "/"),
		License:        config.GetString(config.BadgeLicense),
		ExternalURL:    config.GetString(config.BadgeExternalURL),
	}
}

// Build maps the badge fields to the metadata document. Every field is
// required - an empty artist, track, date or image CID is a validation
// failure, never a partial document.
func (mb *MetadataBuilder) Build(ctx context.Context, artist, track, date, imageCID, mimeType string) (*bftypes.TokenMetadata, error) {
	for field, value := range map[string]string{
		"artist":   artist,
		"track":    track,
		"date":     date,
		"imageCid": imageCID,
	} {
		if value == "" {
			return nil, i18n.NewError(ctx, i18n.MsgMetadataFieldEmpty, field)
		}
	}
	return &bftypes.TokenMetadata{
		Name:        fmt.Sprintf("%s - %s", artist, track),
		Description: fmt.Sprintf("A unique SongDrop badge for %s by %s minted on %s.", track, artist, date),
		Image:       fmt.Sprintf("%s/%s", mb.GatewayBaseURL, imageCID),
		Type:        mimeType,
		Attributes: []bftypes.Attribute{
			{TraitType: "Artist", Value: artist},
			{TraitType: "Track", Value: track},
			{TraitType: "Date", Value: date},
		},
		Properties: bftypes.Properties{
			Creator:     artist,
			License:     mb.License,
			ExternalURL: mb.ExternalURL,
		},
	}, nil
}

// ImageFileName is the upload filename for the badge image
func ImageFileName(track string) string {
	return safeName(track) + ".png"
}

// MetadataFileName is the upload filename for the metadata document
func MetadataFileName(track string) string {
	return safeName(track) + "_metadata.json"
}

func safeName(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
