// Package txadapter 负责外部 SDK 的交易格式与内部 core 结构之间的转换，
// 把 RPC 层的类型细节隔离在这一处。
package txadapter

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/client"

	"lending-client-sol/internal/logic/core"
	"lending-client-sol/internal/types"
)

// RpcChainClient 基于 JSON-RPC 节点实现同步管道的 ChainClient 协作方。
type RpcChainClient struct {
	c *client.Client
}

func NewRpcChainClient(endpoint string) *RpcChainClient {
	return &RpcChainClient{c: client.NewClient(endpoint)}
}

// ListSignatures 拉取钱包全部历史签名摘要（节点默认最新在前）。
func (r *RpcChainClient) ListSignatures(ctx context.Context, wallet types.Pubkey) ([]core.SignatureInfo, error) {
	sigs, err := r.c.GetSignaturesForAddress(ctx, wallet.String())
	if err != nil {
		return nil, fmt.Errorf("GetSignaturesForAddress failed: %w", err)
	}

	result := make([]core.SignatureInfo, 0, len(sigs))
	for _, s := range sigs {
		info := core.SignatureInfo{
			Signature: types.Signature(s.Signature),
			Slot:      s.Slot,
			Failed:    s.Err != nil,
		}
		if s.BlockTime != nil {
			info.BlockTime = *s.BlockTime
		}
		if s.Memo != nil {
			info.Memo = *s.Memo
		}
		result = append(result, info)
	}
	return result, nil
}

// FetchTransaction 获取单笔交易并转换为 core.ParsedTx。
// 节点无此记录时返回 (nil, nil)，调用方按缺失策略处理。
func (r *RpcChainClient) FetchTransaction(ctx context.Context, sig types.Signature) (*core.ParsedTx, error) {
	tx, err := r.c.GetTransaction(ctx, sig.String())
	if err != nil {
		return nil, fmt.Errorf("GetTransaction failed: %w", err)
	}
	if tx == nil {
		return nil, nil
	}
	return AdaptRpcTx(sig, tx)
}

// AdaptRpcTx 把 SDK 返回的交易转换为内部 ParsedTx。
// 只展开主指令：借贷程序的用户操作总是顶层调用，分类不需要 inner 指令。
func AdaptRpcTx(sig types.Signature, tx *client.Transaction) (*core.ParsedTx, error) {
	accountKeys := tx.Transaction.Message.Accounts

	keys := make([]types.Pubkey, len(accountKeys))
	for i, acc := range accountKeys {
		copy(keys[i][:], acc.Bytes())
	}

	msgInstrs := tx.Transaction.Message.Instructions
	instrs := make([]*core.ParsedInstruction, 0, len(msgInstrs))
	for _, ix := range msgInstrs {
		// v0 交易经 lookup table 装载的账户不在静态表内，索引越界的指令跳过；
		// 顶层借贷指令的 program id 总在静态表中，不受影响
		if ix.ProgramIDIndex < 0 || ix.ProgramIDIndex >= len(keys) {
			continue
		}
		accounts := make([]types.Pubkey, 0, len(ix.Accounts))
		for _, idx := range ix.Accounts {
			if idx < 0 || idx >= len(keys) {
				continue
			}
			accounts = append(accounts, keys[idx])
		}
		instrs = append(instrs, &core.ParsedInstruction{
			ProgramID: keys[ix.ProgramIDIndex],
			Accounts:  accounts,
			Data:      ix.Data,
		})
	}

	parsed := &core.ParsedTx{
		Signature:    sig,
		Slot:         tx.Slot,
		Instructions: instrs,
	}
	if tx.BlockTime != nil {
		parsed.BlockTime = *tx.BlockTime
	}
	if tx.Meta != nil {
		parsed.Fee = tx.Meta.Fee
		parsed.Failed = tx.Meta.Err != nil
		parsed.LogMessages = tx.Meta.LogMessages
	}
	return parsed, nil
}
