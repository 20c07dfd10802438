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
	"context"
	"encoding/json"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/internal/restclient"
	"github.com/songdrop/badgeforge/pkg/pinning"
)

// IPFS pins content directly on an IPFS node API
type IPFS struct {
	ctx          context.Context
	capabilities *pinning.Capabilities
	apiClient    *resty.Client
}

type ipfsUploadResponse struct {
	Name string      `json:"Name"`
	Hash string      `json:"Hash"`
	Size json.Number `json:"Size"`
}

func (i *IPFS) Name() string {
	return "ipfs"
}

func (i *IPFS) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix)
}

func (i *IPFS) Init(ctx context.Context, prefix config.Prefix) error {
	i.ctx = log.WithLogField(ctx, "pinning", "ipfs")
	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(restclient.HTTPConfigURL), "pinning.ipfs")
	}
	i.apiClient = restclient.New(i.ctx, prefix)
	i.capabilities = &pinning.Capabilities{}
	return nil
}

func (i *IPFS) Capabilities() *pinning.Capabilities {
	return i.capabilities
}

func (i *IPFS) Upload(ctx context.Context, data io.Reader, filename, mimeType string) (string, error) {
	var ipfsResponse ipfsUploadResponse
	res, err := i.apiClient.R().
		SetContext(ctx).
		SetFileReader("document", filename, data).
		SetResult(&ipfsResponse).
		Post("/api/v0/add")
	if err != nil || !res.IsSuccess() {
		return "", restclient.WrapRestErr(i.ctx, res, err, i18n.MsgPinningRESTErr)
	}
	log.L(ctx).Infof("IPFS published %s Size=%s", ipfsResponse.Hash, ipfsResponse.Size)
	return ipfsResponse.Hash, nil
}
