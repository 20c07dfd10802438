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

// Package bftypes defines the core data model shared between the API
// server, the orchestrator, and the plugins.
package bftypes

// BadgeRequest is a fully validated badge, ready for rendering.
// The background bytes are the decoded image payload, not base64. The
// background type is the mime type declared on the data URL, and is
// advisory only - the compositor sniffs the actual format.
type BadgeRequest struct {
	Artist         string `json:"artist"`
	Track          string `json:"track"`
	Date           string `json:"date"`
	Background     []byte `json:"-"`
	BackgroundType string `json:"backgroundType"`
}

// RenderedBadge is the output of the compositor. Immutable once produced.
// The suggested filename is time-based and only best-effort unique.
type RenderedBadge struct {
	Image    []byte `json:"-"`
	FileName string `json:"file"`
}

// TokenHandle identifies a created non-fungible token definition on the ledger
type TokenHandle struct {
	TokenID string `json:"tokenId"`
}

// TokenDefinition carries everything the ledger needs to create a badge token.
// Every badge token is a non-fungible definition with a finite supply of
// exactly one unit, so at most one mint can ever succeed per handle.
type TokenDefinition struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Memo      string `json:"memo"`
	MaxSupply int64  `json:"maxSupply"`
}
