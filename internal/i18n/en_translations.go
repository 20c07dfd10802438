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

package i18n

var (
	MsgConfigFailed              = ffm("BF10101", "Failed to read config: %s")
	MsgJSONDecodeFailed          = ffm("BF10102", "Failed to decode input JSON", 400)
	MsgAPIServerStartFailed      = ffm("BF10103", "Unable to start listener on %s: %s")
	MsgTLSConfigFailed           = ffm("BF10104", "Failed to initialize TLS configuration")
	MsgInvalidCAFile             = ffm("BF10105", "Invalid CA certificates file")
	MsgResponseMarshalError      = ffm("BF10106", "Failed to serialize response data", 500)
	Msg404NotFound               = ffm("BF10107", "Not found", 404)
	MsgInvalidContentType        = ffm("BF10108", "Invalid content type", 415)
	MsgRequestTimeout            = ffm("BF10109", "The request with id '%s' timed out after %.2fms", 408)
	MsgMissingRequiredField      = ffm("BF10110", "Field '%s' is required", 400)
	MsgInvalidBackgroundImage    = ffm("BF10111", "Background image is not valid base64 data", 400)
	MsgImageDecodeFailed         = ffm("BF10112", "Failed to decode background image")
	MsgUnknownPinningPlugin      = ffm("BF10113", "Unknown pinning plugin '%s'")
	MsgUnknownLedgerPlugin       = ffm("BF10114", "Unknown ledger plugin '%s'")
	MsgUnknownMirrorPlugin       = ffm("BF10115", "Unknown mirror plugin '%s'")
	MsgMissingPluginConfig       = ffm("BF10116", "Missing configuration '%s' for %s")
	MsgPinningRESTErr            = ffm("BF10117", "Error from pinning service: %s")
	MsgMirrorRESTErr             = ffm("BF10118", "Error from mirror node: %s")
	MsgLedgerInvalidAccount      = ffm("BF10119", "Invalid ledger account identifier '%s'")
	MsgLedgerInvalidKey          = ffm("BF10120", "Invalid ledger signing key")
	MsgLedgerInvalidToken        = ffm("BF10121", "Invalid token identifier '%s'", 400)
	MsgLedgerTxFailed            = ffm("BF10122", "Ledger %s transaction failed")
	MsgEmptyUpload               = ffm("BF10123", "Cannot upload an empty payload to '%s'")
	MsgBadgeWriteFailed          = ffm("BF10124", "Failed to write badge image '%s'")
	MsgInitializationNilDepError = ffm("BF10125", "Initialization error due to unmet dependency")
	MsgFontLoadFailed            = ffm("BF10126", "Failed to load badge fonts")
	MsgUnknownLedgerNetwork      = ffm("BF10127", "Unknown ledger network '%s'")
	MsgMetadataFieldEmpty        = ffm("BF10128", "Metadata field '%s' must not be empty", 400)
	MsgInvalidSerialNumber       = ffm("BF10129", "Serial number must be a positive integer", 400)
)
