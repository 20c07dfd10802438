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

package bftypes

// PipelineState is the named state of a badge tokenization pipeline.
// Each transition is triggered by successful completion of one external
// call. There is no rollback: a pipeline that fails part way through
// leaves the side effects of earlier states in place.
type PipelineState string

const (
	// StateCreated - nothing has been uploaded or submitted yet
	StateCreated PipelineState = "created"
	// StateImageUploaded - the badge image is pinned, and its CID is known
	StateImageUploaded PipelineState = "image_uploaded"
	// StateMetadataUploaded - the metadata document is pinned, and its CID is known
	StateMetadataUploaded PipelineState = "metadata_uploaded"
	// StateTokenCreated - the token definition exists on the ledger, with no minted units
	StateTokenCreated PipelineState = "token_created"
	// StateMinted - the single unit has been minted with the token URI as its on-chain metadata
	StateMinted PipelineState = "minted"
)

// BadgePipeline records the progress of one tokenization run. It is
// returned even when a stage fails, so the caller (and tests) can see
// exactly which state the run reached.
type BadgePipeline struct {
	State       PipelineState `json:"state"`
	ImageCID    string        `json:"imageCid,omitempty"`
	MetadataCID string        `json:"metadataCid,omitempty"`
	TokenID     string        `json:"tokenId,omitempty"`
	TokenURI    string        `json:"tokenUri,omitempty"`
	Serial      int64         `json:"serial,omitempty"`
}
