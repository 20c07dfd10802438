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

package hederamirror

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/restclient"
	"github.com/stretchr/testify/assert"
)

var utConfPrefix = config.NewPluginConfig("hederamirror_unit_tests")

func resetConf() {
	config.Reset()
	m := &HederaMirror{}
	m.InitPrefix(utConfPrefix)
}

func initMocked(t *testing.T) *HederaMirror {
	m := &HederaMirror{}
	mockedClient := &http.Client{}
	httpmock.ActivateNonDefault(mockedClient)

	resetConf()
	utConfPrefix.Set(restclient.HTTPConfigURL, "http://localhost:12345")
	utConfPrefix.Set(restclient.HTTPCustomClient, mockedClient)

	err := m.Init(context.Background(), utConfPrefix)
	assert.NoError(t, err)
	return m
}

func TestInitMissingURL(t *testing.T) {
	m := &HederaMirror{}
	resetConf()
	utConfPrefix.Set(restclient.HTTPConfigURL, "")

	err := m.Init(context.Background(), utConfPrefix)
	assert.Regexp(t, "BF10116", err)
}

func TestHeldSerials(t *testing.T) {
	m := initMocked(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "http://localhost:12345/api/v1/accounts/0.0.1001/nfts",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "0.0.2002", req.URL.Query().Get("token.id"))
			return httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
				"nfts": []map[string]interface{}{
					{"serial_number": 1},
					{"serial_number": 2},
					{"serial_number": 5},
				},
			})(req)
		})

	serials, err := m.HeldSerials(context.Background(), "0.0.1001", "0.0.2002")
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5}, serials)
}

func TestHeldSerialsEmpty(t *testing.T) {
	m := initMocked(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "http://localhost:12345/api/v1/accounts/0.0.1001/nfts",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{"nfts": []interface{}{}}))

	serials, err := m.HeldSerials(context.Background(), "0.0.1001", "0.0.2002")
	assert.NoError(t, err)
	assert.Empty(t, serials)
}

func TestHeldSerialsFail(t *testing.T) {
	m := initMocked(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "http://localhost:12345/api/v1/accounts/0.0.1001/nfts",
		httpmock.NewJsonResponderOrPanic(500, map[string]interface{}{"error": "pop"}))

	_, err := m.HeldSerials(context.Background(), "0.0.1001", "0.0.2002")
	assert.Regexp(t, "BF10118", err)
}
