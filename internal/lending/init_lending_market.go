package lending

import (
	"fmt"

	"github.com/near/borsh-go"

	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// initMarketPayload：u8 opcode + 32 字节 market owner 公钥
type initMarketPayload struct {
	Instruction uint8
	Owner       types.Pubkey
}

// InitLendingMarketInstruction 构造创建借贷市场的指令（opcode=0）。
// market owner 走 data 而非账户表：程序从参数中读取并写入市场账户。
//
//	0. `[writable]` Lending market account.
//	1. `[]` Quote currency SPL Token mint.
//	2. `[]` Rent sysvar
//	3. `[]` Token program id
func InitLendingMarketInstruction(
	marketOwner types.Pubkey,
	lendingMarket types.Pubkey,
	quoteTokenMint types.Pubkey,
) (Instruction, error) {
	data, err := borsh.Serialize(initMarketPayload{
		Instruction: uint8(OpInitLendingMarket),
		Owner:       marketOwner,
	})
	if err != nil {
		return Instruction{}, fmt.Errorf("encode %s data: %w", OpInitLendingMarket, err)
	}

	accounts := []AccountMeta{
		meta(lendingMarket, false, true),
		meta(quoteTokenMint, false, false),
		meta(consts.SysvarRent, false, false),
		meta(consts.TokenProgram, false, false),
	}
	return newInstruction(data, accounts), nil
}
