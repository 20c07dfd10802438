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
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/internal/restclient"
)

const (
	defaultMirrorURL = "https://testnet.mirrornode.hedera.com"
)

// HederaMirror reads current unit ownership from a Hedera mirror node.
// The mirror is eventually consistent: the serials it reports can change
// between the query and any transaction submitted afterwards.
type HederaMirror struct {
	ctx    context.Context
	client *resty.Client
}

type accountNFTsResponse struct {
	NFTs []struct {
		SerialNumber int64 `json:"serial_number"`
	} `json:"nfts"`
}

func (m *HederaMirror) Name() string {
	return "hedera"
}

func (m *HederaMirror) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix)
	prefix.AddKnownKey(restclient.HTTPConfigURL, defaultMirrorURL)
}

func (m *HederaMirror) Init(ctx context.Context, prefix config.Prefix) error {
	m.ctx = log.WithLogField(ctx, "mirror", "hedera")
	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(restclient.HTTPConfigURL), "mirror.hedera")
	}
	m.client = restclient.New(m.ctx, prefix)
	return nil
}

func (m *HederaMirror) HeldSerials(ctx context.Context, account, tokenID string) ([]int64, error) {
	var nftsResponse accountNFTsResponse
	res, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("token.id", tokenID).
		SetResult(&nftsResponse).
		Get(fmt.Sprintf("/api/v1/accounts/%s/nfts", account))
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(m.ctx, res, err, i18n.MsgMirrorRESTErr)
	}
	serials := make([]int64, 0, len(nftsResponse.NFTs))
	for _, nft := range nftsResponse.NFTs {
		serials = append(serials, nft.SerialNumber)
	}
	log.L(ctx).Infof("Mirror reports %d held serials for token %s", len(serials), tokenID)
	return serials, nil
}
