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

package pinata

import (
	"context"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/internal/restclient"
	"github.com/songdrop/badgeforge/pkg/pinning"
)

const (
	defaultAPIURL = "https://api.pinata.cloud"
)

const (
	// PinataConfAPIKey is the Pinata API key, sent as the pinata_api_key header
	PinataConfAPIKey = "apiKey"
	// PinataConfAPISecret is the Pinata API secret, sent as the pinata_secret_api_key header
	PinataConfAPISecret = "apiSecret"
)

// Pinata pins content through the Pinata pinning service. Uploads are not
// idempotent: pinning the same bytes twice may produce two pins.
type Pinata struct {
	ctx          context.Context
	capabilities *pinning.Capabilities
	client       *resty.Client
}

type pinFileResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

func (p *Pinata) Name() string {
	return "pinata"
}

func (p *Pinata) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix)
	prefix.AddKnownKey(restclient.HTTPConfigURL, defaultAPIURL)
	prefix.AddKnownKey(PinataConfAPIKey)
	prefix.AddKnownKey(PinataConfAPISecret)
}

func (p *Pinata) Init(ctx context.Context, prefix config.Prefix) error {
	p.ctx = log.WithLogField(ctx, "pinning", "pinata")
	if prefix.GetString(PinataConfAPIKey) == "" || prefix.GetString(PinataConfAPISecret) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(PinataConfAPIKey), "pinning.pinata")
	}
	p.client = restclient.New(p.ctx, prefix)
	p.client.SetHeader("pinata_api_key", prefix.GetString(PinataConfAPIKey))
	p.client.SetHeader("pinata_secret_api_key", prefix.GetString(PinataConfAPISecret))
	p.capabilities = &pinning.Capabilities{}
	return nil
}

func (p *Pinata) Capabilities() *pinning.Capabilities {
	return p.capabilities
}

func (p *Pinata) Upload(ctx context.Context, data io.Reader, filename, mimeType string) (string, error) {
	var pinResponse pinFileResponse
	res, err := p.client.R().
		SetContext(ctx).
		SetMultipartField("file", filename, mimeType, data).
		SetResult(&pinResponse).
		Post("/pinning/pinFileToIPFS")
	if err != nil || !res.IsSuccess() {
		return "", restclient.WrapRestErr(p.ctx, res, err, i18n.MsgPinningRESTErr)
	}
	log.L(ctx).Infof("Pinata pinned %s CID=%s Size=%d", filename, pinResponse.IpfsHash, pinResponse.PinSize)
	return pinResponse.IpfsHash, nil
}
