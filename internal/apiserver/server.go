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
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/internal/orchestrator"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

var bfcodeExtractor = regexp.MustCompile(`^(BF\d+):`)

var apiConfigPrefix = config.NewPluginConfig("http")

// Server is the external interface for the API Server
type Server interface {
	Serve(ctx context.Context, o orchestrator.Orchestrator) error
}

type apiServer struct {
	apiTimeout     time.Duration
	apiMaxTimeout  time.Duration
	maxRequestSize int64
}

func InitConfig() {
	initHTTPConfPrefx(apiConfigPrefix, 5000)
}

func NewAPIServer() Server {
	return &apiServer{
		apiTimeout:     config.GetDuration(config.APIRequestTimeout),
		apiMaxTimeout:  config.GetDuration(config.APIRequestMaxTimeout),
		maxRequestSize: config.GetInt64(config.APIMaxRequestSize),
	}
}

// Serve is the main entry point for the API Server
func (as *apiServer) Serve(ctx context.Context, o orchestrator.Orchestrator) (err error) {
	httpErrChan := make(chan error)

	apiHTTPServer, err := newHTTPServer(ctx, "api", as.createMuxRouter(o), httpErrChan, apiConfigPrefix)
	if err != nil {
		return err
	}
	go apiHTTPServer.serveHTTP(ctx)

	return <-httpErrChan
}

func (as *apiServer) routeHandler(o orchestrator.Orchestrator, route *Route) http.HandlerFunc {
	return as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {

		var jsonInput interface{}
		if route.JSONInputValue != nil {
			jsonInput = route.JSONInputValue()
		}

		contentType := req.Header.Get("Content-Type")
		if req.Method != http.MethodGet && req.Method != http.MethodDelete {
			if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
				return 415, i18n.NewError(req.Context(), i18n.MsgInvalidContentType)
			}
			if jsonInput != nil {
				body := http.MaxBytesReader(res, req.Body, as.maxRequestSize)
				if err := json.NewDecoder(body).Decode(&jsonInput); err != nil {
					return 400, i18n.WrapError(req.Context(), err, i18n.MsgJSONDecodeFailed)
				}
			}
		}

		r := &APIRequest{
			Ctx:           req.Context(),
			Or:            o,
			Req:           req,
			Input:         jsonInput,
			SuccessStatus: route.JSONOutputCode,
		}
		output, err := route.JSONHandler(r)
		if err != nil {
			return 500, err
		}
		return as.handleOutput(req.Context(), res, r.SuccessStatus, output)
	})
}

func (as *apiServer) handleOutput(ctx context.Context, res http.ResponseWriter, status int, output interface{}) (int, error) {
	res.Header().Add("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(output); err != nil {
		err = i18n.WrapError(ctx, err, i18n.MsgResponseMarshalError)
		log.L(ctx).Errorf(err.Error())
		return 500, err
	}
	return status, nil
}

func (as *apiServer) getTimeout(req *http.Request) time.Duration {
	// Configure a server-side timeout on each request, to try and avoid cases where the API requester
	// times out, and we continue to churn indefinitely processing the request.
	// This is dependent on the context being passed down through to all blocking operations down the stack.
	reqTimeout := as.apiTimeout
	reqTimeoutHeader := req.Header.Get("Request-Timeout")
	if reqTimeoutHeader != "" {
		customTimeout, err := time.ParseDuration(reqTimeoutHeader)
		if err != nil {
			log.L(req.Context()).Warnf("Invalid Request-Timeout header '%s': %s", reqTimeoutHeader, err)
		} else {
			reqTimeout = customTimeout
			if reqTimeout > as.apiMaxTimeout {
				reqTimeout = as.apiMaxTimeout
			}
		}
	}
	return reqTimeout
}

func (as *apiServer) apiWrapper(handler func(res http.ResponseWriter, req *http.Request) (status int, err error)) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		reqTimeout := as.getTimeout(req)
		ctx, cancel := context.WithTimeout(req.Context(), reqTimeout)
		httpReqID := bftypes.ShortID()
		ctx = log.WithLogField(ctx, "httpreq", httpReqID)
		req = req.WithContext(ctx)
		defer cancel()

		// Wrap the request itself in a log wrapper, that gives minimal request/response and timing info
		l := log.L(ctx)
		l.Infof("--> %s %s", req.Method, req.URL.Path)
		startTime := time.Now()
		status, err := handler(res, req)
		durationMS := float64(time.Since(startTime)) / float64(time.Millisecond)
		if err != nil {

			// Routers don't need to tweak the status code when sending errors.
			// .. either the BF12345 error they raise is mapped to a status hint
			bfcodeExtract := bfcodeExtractor.FindStringSubmatch(err.Error())
			if len(bfcodeExtract) >= 2 {
				if statusHint, ok := i18n.GetStatusHint(bfcodeExtract[1]); ok {
					status = statusHint
				}
			}

			// If the context is done, we wrap in 408
			if status != http.StatusRequestTimeout {
				select {
				case <-ctx.Done():
					l.Errorf("Request failed and context is closed. Returning %d (overriding %d): %s", http.StatusRequestTimeout, status, err)
					status = http.StatusRequestTimeout
					err = i18n.WrapError(ctx, err, i18n.MsgRequestTimeout, httpReqID, durationMS)
				default:
				}
			}

			// ... or we default to 500
			if status < 300 {
				status = 500
			}
			l.Infof("<-- %s %s [%d] (%.2fms): %s", req.Method, req.URL.Path, status, durationMS, err)
			res.Header().Add("Content-Type", "application/json")
			res.WriteHeader(status)
			_ = json.NewEncoder(res).Encode(&bftypes.RESTError{
				Error: err.Error(),
			})
		} else {
			l.Infof("<-- %s %s [%d] (%.2fms)", req.Method, req.URL.Path, status, durationMS)
		}
	}
}

func (as *apiServer) notFoundHandler(res http.ResponseWriter, req *http.Request) (status int, err error) {
	res.Header().Add("Content-Type", "application/json")
	return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
}

func (as *apiServer) createMuxRouter(o orchestrator.Orchestrator) *mux.Router {
	r := mux.NewRouter()
	for _, route := range routes {
		handler := as.routeHandler(o, route)
		r.HandleFunc(fmt.Sprintf("/api/v1/%s", route.Path), handler).Methods(route.Method)
		for _, alias := range route.Aliases {
			r.HandleFunc(alias, handler).Methods(route.Method)
		}
	}
	r.NotFoundHandler = as.apiWrapper(as.notFoundHandler)
	return r
}
