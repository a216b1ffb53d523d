package core

import (
	"lending-client-sol/internal/lending"
	"lending-client-sol/internal/types"
)

// SignatureInfo 表示签名列表接口返回的一条签名摘要（最新在前，顺序由节点定义）。
type SignatureInfo struct {
	Signature types.Signature
	Slot      uint64
	BlockTime int64 // Unix 秒，节点未返回时为 0
	Failed    bool  // 交易是否执行失败（err 非空）
	Memo      string
}

// ParsedInstruction 表示交易中的一条主指令，保持提交顺序与原始字节。
type ParsedInstruction struct {
	ProgramID types.Pubkey   // 指令调用的程序地址
	Accounts  []types.Pubkey // 账户列表，保持原始顺序
	Data      []byte         // 指令原始数据，首字节为操作码
}

// ParsedTx 表示一笔已获取完整内容的链上交易，是分类流程的输入。
type ParsedTx struct {
	Signature   types.Signature
	Slot        uint64
	BlockTime   int64
	Fee         uint64   // 手续费（lamports）
	Failed      bool     // meta.err 非空
	LogMessages []string // 程序执行日志

	// Instructions 为交易 message 中的主指令序列，按提交顺序排列。
	// 分类只看主指令：借贷程序的用户操作总是顶层调用。
	Instructions []*ParsedInstruction
}

// ClassifiedTx 表示一笔已判定调用了借贷程序的交易及其分类结果。
type ClassifiedTx struct {
	// Opcode 为主分类：按位置最靠前的已识别借贷指令
	Opcode lending.Opcode
	// Opcodes 为该交易中全部已识别借贷指令的操作码（按位置排列）。
	// 组合交易（一笔交易多条借贷指令）的完整信息保留在这里，展示层默认只用 Opcode。
	Opcodes []lending.Opcode

	Sig SignatureInfo
	Tx  *ParsedTx
}

// GroupByOpcode 按主分类操作码划分记录，供展示层逐类渲染。
// 每组内保持输入顺序。
func GroupByOpcode(records []*ClassifiedTx) map[lending.Opcode][]*ClassifiedTx {
	result := make(map[lending.Opcode][]*ClassifiedTx)
	for _, r := range records {
		result[r.Opcode] = append(result[r.Opcode], r)
	}
	return result
}
