package lending

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// DepositReserveLiquidityInstruction 构造向储备池存入流动性的指令（opcode=3）。
// liquidityAmount 为链上最小单位。账户表顺序为链上程序的硬性契约：
//
//	0. `[writable]` Source liquidity token account. $authority can transfer $liquidity_amount
//	1. `[writable]` Destination collateral token account.
//	2. `[writable]` Reserve account.
//	3. `[writable]` Reserve liquidity supply SPL Token account.
//	4. `[writable]` Reserve collateral SPL Token mint.
//	5. `[]` Lending market account.
//	6. `[]` Derived lending market authority.
//	7. `[]` User transfer authority ($authority).
//	8. `[]` Clock sysvar
//	9. `[]` Token program id
func DepositReserveLiquidityInstruction(
	liquidityAmount uint64,
	from types.Pubkey,
	to types.Pubkey,
	reserveAccount types.Pubkey,
	reserveSupply types.Pubkey,
	collateralMint types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
) (Instruction, error) {
	data, err := encodeAmountData(OpDepositReserveLiquidity, liquidityAmount)
	if err != nil {
		return Instruction{}, err
	}

	accounts := []AccountMeta{
		meta(from, false, true),
		meta(to, false, true),
		meta(reserveAccount, false, true),
		meta(reserveSupply, false, true),
		meta(collateralMint, false, true),
		meta(lendingMarket, false, false),
		meta(lendingMarketAuthority, false, false),
		meta(transferAuthority, true, false),
		meta(consts.SysvarClock, false, false),
		meta(consts.TokenProgram, false, false),
	}
	return newInstruction(data, accounts), nil
}
