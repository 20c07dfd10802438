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
	"context"
	"net/http"

	"github.com/songdrop/badgeforge/internal/orchestrator"
)

// Route describes a REST route, and how the server should dispatch it
type Route struct {
	// Name is the unique name of the route, used in logging
	Name string
	// Path is the path of the route under /api/v1
	Path string
	// Aliases are additional absolute paths the route answers on
	Aliases []string
	// Method is the HTTP method
	Method string
	// JSONInputValue allocates the input struct the request body decodes into
	JSONInputValue func() interface{}
	// JSONOutputCode is the status code on success
	JSONOutputCode int
	// JSONHandler performs the operation
	JSONHandler func(r *APIRequest) (output interface{}, err error)
}

// APIRequest is the state passed to a route handler
type APIRequest struct {
	Ctx           context.Context
	Or            orchestrator.Orchestrator
	Req           *http.Request
	Input         interface{}
	SuccessStatus int
}

var routes = []*Route{
	postGenerate,
	postMint,
	postBurn,
	postBurnAll,
}
