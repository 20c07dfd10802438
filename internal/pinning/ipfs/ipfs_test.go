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

package ipfs

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/restclient"
	"github.com/stretchr/testify/assert"
)

var utConfPrefix = config.NewPluginConfig("ipfs_unit_tests")

func resetConf() {
	config.Reset()
	i := &IPFS{}
	i.InitPrefix(utConfPrefix)
}

func TestInitMissingAPIURL(t *testing.T) {
	i := &IPFS{}
	resetConf()

	err := i.Init(context.Background(), utConfPrefix)
	assert.Regexp(t, "BF10116", err)
}

func TestInit(t *testing.T) {
	i := &IPFS{}
	resetConf()
	utConfPrefix.Set(restclient.HTTPConfigURL, "http://localhost:12345")

	err := i.Init(context.Background(), utConfPrefix)
	assert.NoError(t, err)
	assert.Equal(t, "ipfs", i.Name())
	assert.NotNil(t, i.Capabilities())
}

func TestUploadSuccess(t *testing.T) {
	i := &IPFS{}

	mockedClient := &http.Client{}
	httpmock.ActivateNonDefault(mockedClient)
	defer httpmock.DeactivateAndReset()

	resetConf()
	utConfPrefix.Set(restclient.HTTPConfigURL, "http://localhost:12345")
	utConfPrefix.Set(restclient.HTTPCustomClient, mockedClient)

	err := i.Init(context.Background(), utConfPrefix)
	assert.NoError(t, err)

	httpmock.RegisterResponder("POST", "http://localhost:12345/api/v0/add",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"Hash": "Qmf412jQZiuVUtdgnB36FXFX7xg5V6KEbSJ4dpQuhkLyfD",
		}))

	cid, err := i.Upload(context.Background(), bytes.NewReader([]byte(`hello world`)), "file.bin", "application/octet-stream")
	assert.NoError(t, err)
	assert.Equal(t, "Qmf412jQZiuVUtdgnB36FXFX7xg5V6KEbSJ4dpQuhkLyfD", cid)
}

func TestUploadFail(t *testing.T) {
	i := &IPFS{}

	mockedClient := &http.Client{}
	httpmock.ActivateNonDefault(mockedClient)
	defer httpmock.DeactivateAndReset()

	resetConf()
	utConfPrefix.Set(restclient.HTTPConfigURL, "http://localhost:12345")
	utConfPrefix.Set(restclient.HTTPCustomClient, mockedClient)

	err := i.Init(context.Background(), utConfPrefix)
	assert.NoError(t, err)

	httpmock.RegisterResponder("POST", "http://localhost:12345/api/v0/add",
		httpmock.NewJsonResponderOrPanic(500, map[string]interface{}{"error": "pop"}))

	_, err = i.Upload(context.Background(), bytes.NewReader([]byte(`hello world`)), "file.bin", "application/octet-stream")
	assert.Regexp(t, "BF10117", err)
}
