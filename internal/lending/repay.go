package lending

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// RepayObligationLiquidityInstruction 构造还款指令（opcode=6），还入流动性并赎回抵押的 collateral。
// 债务余额由链上按利息重新计算。
//
//	0. `[writable]` Source liquidity token account, minted by repay reserve liquidity mint,
//	                  $authority can transfer $liquidity_amount
//	1. `[writable]` Destination collateral token account, minted by withdraw reserve collateral mint
//	2. `[writable]` Repay reserve account.
//	3. `[writable]` Repay reserve liquidity supply SPL Token account
//	4. `[]` Withdraw reserve account.
//	5. `[writable]` Withdraw reserve collateral supply SPL Token account
//	6. `[writable]` Obligation - initialized
//	7. `[writable]` Obligation token mint
//	8. `[writable]` Obligation token input
//	9. `[]` Lending market account.
//	10. `[]` Derived lending market authority.
//	11. `[]` User transfer authority ($authority).
//	12. `[]` Clock sysvar
//	13. `[]` Token program id
func RepayObligationLiquidityInstruction(
	liquidityAmount uint64,
	from types.Pubkey,
	to types.Pubkey,
	repayReserve types.Pubkey,
	repayReserveLiquiditySupply types.Pubkey,
	withdrawReserve types.Pubkey,
	withdrawReserveCollateralSupply types.Pubkey,
	obligation types.Pubkey,
	obligationMint types.Pubkey,
	obligationTokenInput types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
) (Instruction, error) {
	data, err := encodeAmountData(OpRepayObligationLiquidity, liquidityAmount)
	if err != nil {
		return Instruction{}, err
	}

	accounts := []AccountMeta{
		meta(from, false, true),
		meta(to, false, true),
		meta(repayReserve, false, true),
		meta(repayReserveLiquiditySupply, false, true),
		meta(withdrawReserve, false, false),
		meta(withdrawReserveCollateralSupply, false, true),
		meta(obligation, false, true),
		meta(obligationMint, false, true),
		meta(obligationTokenInput, false, true),
		meta(lendingMarket, false, false),
		meta(lendingMarketAuthority, false, false),
		meta(transferAuthority, true, false),
		meta(consts.SysvarClock, false, false),
		meta(consts.TokenProgram, false, false),
	}
	return newInstruction(data, accounts), nil
}
