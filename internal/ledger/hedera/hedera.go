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

package hedera

import (
	"context"

	hiero "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/pkg/bftypes"
	"github.com/songdrop/badgeforge/pkg/ledger"
)

const (
	// HederaConfNetwork selects the named Hedera network (testnet/mainnet/previewnet)
	HederaConfNetwork = "network"
	// HederaConfOperator is the operator/treasury account, in shard.realm.num form
	HederaConfOperator = "operator"
	// HederaConfOperatorKey is the operator private key string
	HederaConfOperatorKey = "operatorKey"

	defaultNetwork = "testnet"
)

// Hedera drives badge token lifecycle transactions on a Hedera network.
// One operator account and one signing key, resolved at Init, perform
// every transaction. The account and key are immutable after Init, and
// the plugin holds no per-request state.
type Hedera struct {
	ctx          context.Context
	capabilities *ledger.Capabilities
	client       *hiero.Client
	operator     hiero.AccountID
	operatorKey  hiero.PrivateKey
}

func (h *Hedera) Name() string {
	return "hedera"
}

func (h *Hedera) InitPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(HederaConfNetwork, defaultNetwork)
	prefix.AddKnownKey(HederaConfOperator)
	prefix.AddKnownKey(HederaConfOperatorKey)
}

func (h *Hedera) Init(ctx context.Context, prefix config.Prefix) (err error) {
	h.ctx = log.WithLogField(ctx, "ledger", "hedera")

	operator := prefix.GetString(HederaConfOperator)
	if operator == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(HederaConfOperator), "ledger.hedera")
	}
	if h.operator, err = hiero.AccountIDFromString(operator); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgLedgerInvalidAccount, operator)
	}
	if h.operatorKey, err = hiero.PrivateKeyFromString(prefix.GetString(HederaConfOperatorKey)); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgLedgerInvalidKey)
	}

	switch network := prefix.GetString(HederaConfNetwork); network {
	case "testnet":
		h.client = hiero.ClientForTestnet()
	case "mainnet":
		h.client = hiero.ClientForMainnet()
	case "previewnet":
		h.client = hiero.ClientForPreviewnet()
	default:
		return i18n.NewError(ctx, i18n.MsgUnknownLedgerNetwork, network)
	}
	h.client.SetOperator(h.operator, h.operatorKey)
	h.capabilities = &ledger.Capabilities{}
	return nil
}

func (h *Hedera) Capabilities() *ledger.Capabilities {
	return h.capabilities
}

func (h *Hedera) TreasuryAccount() string {
	return h.operator.String()
}

func (h *Hedera) CreateToken(ctx context.Context, def *bftypes.TokenDefinition) (*bftypes.TokenHandle, error) {
	tx, err := hiero.NewTokenCreateTransaction().
		SetTokenName(def.Name).
		SetTokenSymbol(def.Symbol).
		SetTokenType(hiero.TokenTypeNonFungibleUnique).
		SetDecimals(0).
		SetInitialSupply(0).
		SetTreasuryAccountID(h.operator).
		SetSupplyType(hiero.TokenSupplyTypeFinite).
		SetMaxSupply(def.MaxSupply).
		SetSupplyKey(h.operatorKey.PublicKey()).
		SetTokenMemo(def.Memo).
		FreezeWith(h.client)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-create")
	}
	resp, err := tx.Sign(h.operatorKey).Execute(h.client)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-create")
	}
	receipt, err := resp.GetReceipt(h.client)
	tokenID, err := tokenIDFromReceipt(ctx, receipt, err)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Created token %s maxSupply=%d", tokenID, def.MaxSupply)
	return &bftypes.TokenHandle{TokenID: tokenID}, nil
}

// tokenIDFromReceipt extracts the new token ID from a settled create
// receipt. A settled receipt with no token ID is still a failure.
func tokenIDFromReceipt(ctx context.Context, receipt hiero.TransactionReceipt, err error) (string, error) {
	if err != nil {
		return "", i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-create")
	}
	if receipt.TokenID == nil {
		return "", i18n.NewError(ctx, i18n.MsgLedgerTxFailed, "token-create")
	}
	return receipt.TokenID.String(), nil
}

func (h *Hedera) MintToken(ctx context.Context, handle *bftypes.TokenHandle, tokenURI string) (int64, error) {
	tokenID, err := hiero.TokenIDFromString(handle.TokenID)
	if err != nil {
		return 0, i18n.WrapError(ctx, err, i18n.MsgLedgerInvalidToken, handle.TokenID)
	}
	tx, err := hiero.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetMetadata([]byte(tokenURI)).
		FreezeWith(h.client)
	if err != nil {
		return 0, i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-mint")
	}
	resp, err := tx.Sign(h.operatorKey).Execute(h.client)
	if err != nil {
		return 0, i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-mint")
	}
	receipt, err := resp.GetReceipt(h.client)
	serial, err := serialFromReceipt(ctx, receipt, err)
	if err != nil {
		return 0, err
	}
	log.L(ctx).Infof("Minted token %s serial=%d metadata=%s", handle.TokenID, serial, tokenURI)
	return serial, nil
}

// serialFromReceipt extracts the minted serial from a settled mint
// receipt. A settled receipt with no serials is still a failure.
func serialFromReceipt(ctx context.Context, receipt hiero.TransactionReceipt, err error) (int64, error) {
	if err != nil {
		return 0, i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-mint")
	}
	if len(receipt.SerialNumbers) == 0 {
		return 0, i18n.NewError(ctx, i18n.MsgLedgerTxFailed, "token-mint")
	}
	return receipt.SerialNumbers[0], nil
}

func (h *Hedera) BurnSerials(ctx context.Context, handle *bftypes.TokenHandle, serials []int64) (string, error) {
	tokenID, err := hiero.TokenIDFromString(handle.TokenID)
	if err != nil {
		return "", i18n.WrapError(ctx, err, i18n.MsgLedgerInvalidToken, handle.TokenID)
	}
	tx, err := hiero.NewTokenBurnTransaction().
		SetTokenID(tokenID).
		SetSerialNumbers(serials).
		FreezeWith(h.client)
	if err != nil {
		return "", i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-burn")
	}
	resp, err := tx.Sign(h.operatorKey).Execute(h.client)
	if err != nil {
		return "", i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-burn")
	}
	receipt, err := resp.GetReceipt(h.client)
	if err != nil {
		return "", i18n.WrapError(ctx, err, i18n.MsgLedgerTxFailed, "token-burn")
	}
	status := receipt.Status.String()
	log.L(ctx).Infof("Burned token %s serials=%v status=%s", handle.TokenID, serials, status)
	return status, nil
}
