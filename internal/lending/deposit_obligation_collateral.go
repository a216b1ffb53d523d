package lending

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// DepositObligationCollateralInstruction 构造向既有债务仓位追加抵押的指令（opcode=9）。
// 注意：该指令的账户表不含 Clock sysvar，与 Deposit/Withdraw 系列不同。
//
//	0. `[writable]` Source collateral token account, minted by deposit reserve collateral mint,
//	                  $authority can transfer $collateral_amount
//	1. `[writable]` Destination deposit reserve collateral supply SPL Token account
//	2. `[]` Deposit reserve account.
//	3. `[writable]` Obligation
//	4. `[writable]` Obligation token mint
//	5. `[writable]` Obligation token output
//	6. `[]` Lending market account.
//	7. `[]` Derived lending market authority.
//	8. `[]` User transfer authority ($authority).
//	9. `[]` Token program id
func DepositObligationCollateralInstruction(
	collateralAmount uint64,
	from types.Pubkey,
	to types.Pubkey,
	depositReserve types.Pubkey,
	obligation types.Pubkey,
	obligationMint types.Pubkey,
	obligationTokenOutput types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
) (Instruction, error) {
	data, err := encodeAmountData(OpDepositObligationCollateral, collateralAmount)
	if err != nil {
		return Instruction{}, err
	}

	accounts := []AccountMeta{
		meta(from, false, true),
		meta(to, false, true),
		meta(depositReserve, false, false),
		meta(obligation, false, true),
		meta(obligationMint, false, true),
		meta(obligationTokenOutput, false, true),
		meta(lendingMarket, false, false),
		meta(lendingMarketAuthority, false, false),
		meta(transferAuthority, true, false),
		meta(consts.TokenProgram, false, false),
	}
	return newInstruction(data, accounts), nil
}
