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
	"testing"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestBuildMetadata(t *testing.T) {
	config.Reset()
	mb := NewMetadataBuilder()

	md, err := mb.Build(context.Background(), "65daysofstatic", "Radio Protector", "2024-01-01", "QmImageCID", "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "65daysofstatic - Radio Protector", md.Name)
	assert.Equal(t, "A unique SongDrop badge for Radio Protector by 65daysofstatic minted on 2024-01-01.", md.Description)
	assert.Equal(t, "https://ipfs.io/ipfs/QmImageCID", md.Image)
	assert.Equal(t, "image/png", md.Type)
	assert.Equal(t, "Artist", md.Attributes[0].TraitType)
	assert.Equal(t, "Track", md.Attributes[1].TraitType)
	assert.Equal(t, "Date", md.Attributes[2].TraitType)
	assert.Equal(t, "65daysofstatic", md.Properties.Creator)
	assert.Equal(t, "CC BY-NC-SA 4.0", md.Properties.License)
	assert.Equal(t, "https://songdrop.xyz/", md.Properties.ExternalURL)
}

func TestBuildMetadataPure(t *testing.T) {
	config.Reset()
	mb := NewMetadataBuilder()

	md1, err := mb.Build(context.Background(), "a", "t", "2024-01-01", "Qm1", "image/png")
	assert.NoError(t, err)
	doc1, err := md1.Document()
	assert.NoError(t, err)

	md2, err := mb.Build(context.Background(), "a", "t", "2024-01-01", "Qm1", "image/png")
	assert.NoError(t, err)
	doc2, err := md2.Document()
	assert.NoError(t, err)

	assert.Equal(t, doc1, doc2)
}

func TestBuildMetadataMissingField(t *testing.T) {
	config.Reset()
	mb := NewMetadataBuilder()

	_, err := mb.Build(context.Background(), "", "t", "2024-01-01", "Qm1", "image/png")
	assert.Regexp(t, "BF10128", err)

	_, err = mb.Build(context.Background(), "a", "t", "2024-01-01", "", "image/png")
	assert.Regexp(t, "BF10128", err)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "Radio_Protector.png", ImageFileName("Radio Protector"))
	assert.Equal(t, "Radio_Protector_metadata.json", MetadataFileName("Radio  Protector"))
}
