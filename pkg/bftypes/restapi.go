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

// RESTError is the error body returned from all API errors
type RESTError struct {
	Error string `json:"error"`
}

// BadgeInput is the request body of the generate and mint endpoints.
// All fields are mandatory; the background is base64, with or without a
// data URL prefix.
type BadgeInput struct {
	Artist           string `json:"artist"`
	Track            string `json:"track"`
	Date             string `json:"date"`
	BackgroundBase64 string `json:"backgroundBase64"`
}

// BurnInput is the request body of the burn endpoint
type BurnInput struct {
	TokenID      string `json:"tokenId"`
	SerialNumber int64  `json:"serialNumber"`
}

// BurnAllInput is the request body of the burnAll endpoint
type BurnAllInput struct {
	TokenID string `json:"tokenId"`
}

// GenerateOutput is the success body of the generate endpoint
type GenerateOutput struct {
	Message string `json:"message"`
	File    string `json:"file"`
}

// MintOutput is the success body of the mint endpoint
type MintOutput struct {
	Message  string `json:"message"`
	TokenID  string `json:"tokenId"`
	TokenURI string `json:"tokenUri"`
}

// BurnOutput is the success body of the burn endpoint
type BurnOutput struct {
	Message      string `json:"message"`
	TokenID      string `json:"tokenId"`
	SerialNumber int64  `json:"serialNumber"`
	Status       string `json:"status"`
}

// BurnAllOutput is the success body of the burnAll endpoint
type BurnAllOutput struct {
	Message string             `json:"message"`
	Burned  []*BurnBatchResult `json:"burned,omitempty"`
}
