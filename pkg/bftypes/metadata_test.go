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

package bftypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleMetadata() *TokenMetadata {
	return &TokenMetadata{
		Name:        "65daysofstatic - Radio Protector",
		Description: "A unique SongDrop badge for Radio Protector by 65daysofstatic minted on 2024-01-01.",
		Image:       "https://ipfs.io/ipfs/QmImageCID",
		Type:        "image/png",
		Attributes: []Attribute{
			{TraitType: "Artist", Value: "65daysofstatic"},
			{TraitType: "Track", Value: "Radio Protector"},
			{TraitType: "Date", Value: "2024-01-01"},
		},
		Properties: Properties{
			Creator:     "65daysofstatic",
			License:     "CC BY-NC-SA 4.0",
			ExternalURL: "https://songdrop.xyz/",
		},
	}
}

func TestDocumentDeterministic(t *testing.T) {
	m := sampleMetadata()
	doc1, err := m.Document()
	assert.NoError(t, err)
	doc2, err := sampleMetadata().Document()
	assert.NoError(t, err)
	assert.Equal(t, doc1, doc2)
}

func TestDocumentFieldOrder(t *testing.T) {
	doc, err := sampleMetadata().Document()
	assert.NoError(t, err)
	assert.Regexp(t, `(?s)"name".*"description".*"image".*"type".*"attributes".*"properties"`, string(doc))
	assert.Regexp(t, `(?s)"Artist".*"Track".*"Date"`, string(doc))
}
