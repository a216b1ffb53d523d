package lending

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// LiquidateObligationInstruction 构造清算指令（opcode=7）：
// 替欠款人偿还流动性，按折扣价换取其抵押的 collateral。
// liquidityAmount 为偿还的流动性数量（链上最小单位）。
//
//	0. `[writable]` Source liquidity token account, minted by repay reserve liquidity mint,
//	                  $authority can transfer $liquidity_amount
//	1. `[writable]` Destination collateral token account, minted by withdraw reserve collateral mint
//	2. `[writable]` Repay reserve account.
//	3. `[writable]` Repay reserve liquidity supply SPL Token account
//	4. `[]` Withdraw reserve account.
//	5. `[writable]` Withdraw reserve collateral supply SPL Token account
//	6. `[writable]` Obligation
//	7. `[]` Lending market account.
//	8. `[]` Derived lending market authority.
//	9. `[]` User transfer authority ($authority).
//	10. `[]` Dex market
//	11. `[]` Dex market order book side
//	12. `[]` Temporary memory
//	13. `[]` Clock sysvar
//	14. `[]` Token program id
func LiquidateObligationInstruction(
	liquidityAmount uint64,
	from types.Pubkey,
	to types.Pubkey,
	repayReserve types.Pubkey,
	repayReserveLiquiditySupply types.Pubkey,
	withdrawReserve types.Pubkey,
	withdrawReserveCollateralSupply types.Pubkey,
	obligation types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
	dexMarket types.Pubkey,
	dexOrderBookSide types.Pubkey,
	memory types.Pubkey,
) (Instruction, error) {
	data, err := encodeAmountData(OpLiquidateObligation, liquidityAmount)
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
