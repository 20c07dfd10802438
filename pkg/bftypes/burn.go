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

// BurnReceipt is the settlement outcome of a single-serial burn transaction
type BurnReceipt struct {
	TokenID string `json:"tokenId"`
	Serial  int64  `json:"serialNumber"`
	Status  string `json:"status"`
}

// BurnStatusFailed is recorded on a batch whose transaction did not reach
// a successful receipt
const BurnStatusFailed = "FAILED"

// BurnBatchResult is the tagged outcome of one batch within a batched burn.
// A failed batch carries the failure reason, and does not prevent later
// batches from being attempted.
type BurnBatchResult struct {
	Batch  []int64 `json:"batch"`
	Status string  `json:"status"`
	Error  string  `json:"error,omitempty"`
}

// Succeeded is true when the batch transaction reached a successful settlement receipt
func (r *BurnBatchResult) Succeeded() bool {
	return r.Status != BurnStatusFailed
}
