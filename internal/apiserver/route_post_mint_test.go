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
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/songdrop/badgeforge/pkg/bftypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPostMint(t *testing.T) {
	o, r := newTestAPIServer()
	input := goodBadgeInput()
	input.BackgroundBase64 = "data:image/png;base64," + input.BackgroundBase64
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(input)
	req := httptest.NewRequest("POST", "/api/v1/mint", &buf)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()

	o.On("Mint", mock.Anything, mock.Anything).Return(&bftypes.BadgePipeline{
		State:    bftypes.StateMinted,
		TokenID:  "0.0.5005",
		TokenURI: "ipfs://Qmmeta",
		Serial:   1,
	}, nil)
	r.ServeHTTP(res, req)

	assert.Equal(t, 200, res.Result().StatusCode)
	var output bftypes.MintOutput
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &output))
	assert.Equal(t, "0.0.5005", output.TokenID)
	assert.Equal(t, "ipfs://Qmmeta", output.TokenURI)
}

func TestPostMintBadBackground(t *testing.T) {
	_, r := newTestAPIServer()
	input := goodBadgeInput()
	input.BackgroundBase64 = "!!!"
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(input)
	req := httptest.NewRequest("POST", "/api/v1/mint", &buf)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()

	r.ServeHTTP(res, req)

	assert.Equal(t, 400, res.Result().StatusCode)
	assert.Regexp(t, "BF10111", res.Body.String())
}

func TestPostMintPipelineFailure(t *testing.T) {
	o, r := newTestAPIServer()
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(goodBadgeInput())
	req := httptest.NewRequest("POST", "/api/v1/mint", &buf)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()

	o.On("Mint", mock.Anything, mock.Anything).Return(&bftypes.BadgePipeline{
		State: bftypes.StateImageUploaded,
	}, assert.AnError)
	r.ServeHTTP(res, req)

	assert.Equal(t, 500, res.Result().StatusCode)
}
