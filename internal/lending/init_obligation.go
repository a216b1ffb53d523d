package lending

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// InitObligationInstruction 构造创建债务仓位的指令（opcode=2）。
// 无数值参数，data 仅 1 字节操作码。
//
//	0. `[]` Deposit reserve account.
//	1. `[]` Borrow reserve account.
//	2. `[writable]` Obligation account - uninitialized
//	3. `[writable]` Obligation token mint - uninitialized
//	4. `[writable]` Obligation token output - uninitialized
//	5. `[]` Obligation token owner.
//	6. `[]` Lending market account.
//	7. `[]` Derived lending market authority.
//	8. `[]` Clock sysvar
//	9. `[]` Rent sysvar
//	10. `[]` Token program id
func InitObligationInstruction(
	depositReserve types.Pubkey,
	borrowReserve types.Pubkey,
	obligation types.Pubkey,
	obligationMint types.Pubkey,
	obligationTokenOutput types.Pubkey,
	obligationTokenOwner types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
) (Instruction, error) {
	data := []byte{byte(OpInitObligation)}

	accounts := []AccountMeta{
		meta(depositReserve, false, false),
		meta(borrowReserve, false, false),
		meta(obligation, false, true),
		meta(obligationMint, false, true),
		meta(obligationTokenOutput, false, true),
		meta(obligationTokenOwner, false, false),
		meta(lendingMarket, false, false),
		meta(lendingMarketAuthority, false, false),
		meta(consts.SysvarClock, false, false),
		meta(consts.SysvarRent, false, false),
		meta(consts.TokenProgram, false, false),
	}
	return newInstruction(data, accounts), nil
}
