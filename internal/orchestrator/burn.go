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

package orchestrator

import (
	"context"

	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/pkg/bftypes"
)

func (o *orchestrator) BurnOne(ctx context.Context, tokenID string, serial int64) (*bftypes.BurnReceipt, error) {
	if serial <= 0 {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidSerialNumber)
	}
	handle := &bftypes.TokenHandle{TokenID: tokenID}
	status, err := o.ledger.BurnSerials(ctx, handle, []int64{serial})
	if err != nil {
		return nil, err
	}
	return &bftypes.BurnReceipt{
		TokenID: tokenID,
		Serial:  serial,
		Status:  status,
	}, nil
}

// BurnAll queries the mirror for every serial still held by the treasury
// account, then burns them in batches of the configured size. Batches are
// submitted sequentially. A failed batch is recorded in its result and
// does not stop the remaining batches.
func (o *orchestrator) BurnAll(ctx context.Context, tokenID string) ([]*bftypes.BurnBatchResult, error) {
	serials, err := o.mirror.HeldSerials(ctx, o.ledger.TreasuryAccount(), tokenID)
	if err != nil {
		return nil, err
	}

	results := make([]*bftypes.BurnBatchResult, 0, (len(serials)+9)/10)
	if len(serials) == 0 {
		log.L(ctx).Infof("No held serials to burn for token %s", tokenID)
		return results, nil
	}

	batchSize := config.GetInt(config.LedgerBurnBatchSize)
	if batchSize < 1 {
		batchSize = 1
	}

	handle := &bftypes.TokenHandle{TokenID: tokenID}
	for start := 0; start < len(serials); start += batchSize {
		end := start + batchSize
		if end > len(serials) {
			end = len(serials)
		}
		batch := serials[start:end]

		result := &bftypes.BurnBatchResult{Batch: batch}
		status, err := o.ledger.BurnSerials(ctx, handle, batch)
		if err != nil {
			log.L(ctx).Errorf("Burn batch %v of token %s failed: %s", batch, tokenID, err)
			result.Status = bftypes.BurnStatusFailed
			result.Error = err.Error()
		} else {
			result.Status = status
		}
		results = append(results, result)
	}
	return results, nil
}
