package txadapter

import (
	"github.com/blocto/solana-go-sdk/common"
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"lending-client-sol/internal/lending"
)

// ToSDKInstruction 把已编码的借贷指令转换为 SDK 指令结构，供提交层组装交易并签名广播。
// 账户顺序与读写/签名标志逐位保留。
func ToSDKInstruction(ix lending.Instruction) sdktypes.Instruction {
	accounts := make([]sdktypes.AccountMeta, len(ix.Accounts))
	for i, acc := range ix.Accounts {
		accounts[i] = sdktypes.AccountMeta{
			PubKey:     common.PublicKeyFromBytes(acc.Pubkey[:]),
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		}
	}
	return sdktypes.Instruction{
		ProgramID: common.PublicKeyFromBytes(ix.ProgramID[:]),
		Accounts:  accounts,
		Data:      ix.Data,
	}
}
