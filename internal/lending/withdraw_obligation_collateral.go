package lending

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// WithdrawObligationCollateralInstruction 构造从债务仓位取回多余抵押的指令（opcode=10）。
// 取回后仓位必须仍然健康，由链上校验。
//
//	0. `[writable]` Source withdraw reserve collateral supply SPL Token account
//	1. `[writable]` Destination collateral token account, minted by withdraw reserve
//	                  collateral mint. $authority can transfer $collateral_amount
//	2. `[]` Withdraw reserve account.
//	3. `[]` Borrow reserve account.
//	4. `[writable]` Obligation
//	5. `[writable]` Obligation token mint
//	6. `[writable]` Obligation token input
//	7. `[]` Lending market account.
//	8. `[]` Derived lending market authority.
//	9. `[]` User transfer authority ($authority).
//	10. `[]` Dex market
//	11. `[]` Dex market order book side
//	12. `[]` Temporary memory
//	13. `[]` Clock sysvar
//	14. `[]` Token program id
func WithdrawObligationCollateralInstruction(
	collateralAmount uint64,
	from types.Pubkey,
	to types.Pubkey,
	withdrawReserve types.Pubkey,
	borrowReserve types.Pubkey,
	obligation types.Pubkey,
	obligationMint types.Pubkey,
	obligationTokenInput types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
	dexMarket types.Pubkey,
	dexOrderBookSide types.Pubkey,
	memory types.Pubkey,
) (Instruction, error) {
	data, err := encodeAmountData(OpWithdrawObligationCollateral, collateralAmount)
	if err != nil {
		return Instruction{}, err
	}

	accounts := []AccountMeta{
		meta(from, false, true),
		meta(to, false, true),
		meta(withdrawReserve, false, false),
		meta(borrowReserve, false, false),
		meta(obligation, false, true),
		meta(obligationMint, false, true),
		meta(obligationTokenInput, false, true),
		meta(lendingMarket, false, false),
		meta(lendingMarketAuthority, false, false),
		meta(transferAuthority, true, false),
		meta(dexMarket, false, false),
		meta(dexOrderBookSide, false, false),
		meta(memory, false, false),
		meta(consts.SysvarClock, false, false),
		meta(consts.TokenProgram, false, false),
	}
	return newInstruction(data, accounts), nil
}
