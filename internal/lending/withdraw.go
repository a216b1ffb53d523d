package lending

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// WithdrawReserveLiquidityInstruction 构造从储备池赎回流动性的指令（opcode=4）。
// 输入为代表储备池份额的 collateral token，数量为链上最小单位。
//
//	0. `[writable]` Source collateral token account. $authority can transfer $collateral_amount
//	1. `[writable]` Destination liquidity token account.
//	2. `[writable]` Reserve account.
//	3. `[writable]` Reserve collateral SPL Token mint.
//	4. `[writable]` Reserve liquidity supply SPL Token account.
//	5. `[]` Lending market account.
//	6. `[]` Derived lending market authority.
//	7. `[]` User transfer authority ($authority).
//	8. `[]` Clock sysvar
//	9. `[]` Token program id
func WithdrawReserveLiquidityInstruction(
	collateralAmount uint64,
	from types.Pubkey,
	to types.Pubkey,
	reserveAccount types.Pubkey,
	collateralMint types.Pubkey,
	reserveSupply types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
) (Instruction, error) {
	data, err := encodeAmountData(OpWithdrawReserveLiquidity, collateralAmount)
	if err != nil {
		return Instruction{}, err
	}

	accounts := []AccountMeta{
		meta(from, false, true),
		meta(to, false, true),
		meta(reserveAccount, false, true),
		meta(collateralMint, false, true),
		meta(reserveSupply, false, true),
		meta(lendingMarket, false, false),
		meta(lendingMarketAuthority, false, false),
		meta(transferAuthority, true, false),
		meta(consts.SysvarClock, false, false),
		meta(consts.TokenProgram, false, false),
	}
	return newInstruction(data, accounts), nil
}
