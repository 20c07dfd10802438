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

	"github.com/songdrop/badgeforge/pkg/bftypes"
)

var postGenerate = &Route{
	Name:           "postGenerate",
	Path:           "generate",
	Aliases:        []string{"/generate"},
	Method:         http.MethodPost,
	JSONInputValue: func() interface{} { return &bftypes.BadgeInput{} },
	JSONOutputCode: http.StatusOK,
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		req, err := resolveBadgeInput(r.Ctx, r.Input.(*bftypes.BadgeInput))
		if err != nil {
			return nil, err
		}
		rendered, err := r.Or.Generate(r.Ctx, req)
		if err != nil {
			return nil, err
		}
		return &bftypes.GenerateOutput{
			Message: "Badge generated",
			File:    rendered.FileName,
		}, nil
	},
}
