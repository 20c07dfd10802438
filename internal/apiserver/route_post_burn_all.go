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
	"net/http"
	"strings"

	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

var postBurnAll = &Route{
	Name:           "postBurnAll",
	Path:           "burnall",
	Aliases:        []string{"/burnAll", "/burnall"},
	Method:         http.MethodPost,
	JSONInputValue: func() interface{} { return &bftypes.BurnAllInput{} },
	JSONOutputCode: http.StatusOK,
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		input := r.Input.(*bftypes.BurnAllInput)
		if strings.TrimSpace(input.TokenID) == "" {
			return nil, i18n.NewError(r.Ctx, i18n.MsgMissingRequiredField, "tokenId")
		}
		burned, err := r.Or.BurnAll(r.Ctx, input.TokenID)
		if err != nil {
			return nil, err
		}
		message := "Burn complete"
		if len(burned) == 0 {
			message = "No NFTs to burn"
		}
		return &bftypes.BurnAllOutput{
			Message: message,
			Burned:  burned,
		}, nil
	},
}
