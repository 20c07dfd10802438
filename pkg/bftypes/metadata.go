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

import "encoding/json"

// Attribute is one typed trait on the badge metadata. Order is significant
// and preserved exactly as built.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Properties are the provenance fields of the badge metadata
type Properties struct {
	Creator     string `json:"creator"`
	License     string `json:"license"`
	ExternalURL string `json:"external_url"`
}

// TokenMetadata is the canonical metadata document pinned alongside the
// badge image. It is derived deterministically from the badge request and
// the image CID, and never mutated after construction.
type TokenMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Type        string      `json:"type"`
	Attributes  []Attribute `json:"attributes"`
	Properties  Properties  `json:"properties"`
}

// Document serializes the metadata to the exact byte form that is pinned.
// Marshalling a fixed struct is deterministic, so the same inputs always
// produce byte-identical documents.
func (m *TokenMetadata) Document() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
