package lending

import (
	"fmt"

	"github.com/near/borsh-go"

	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// BorrowAmountType 表示借款指令中 amount 字段的口径。
type BorrowAmountType uint8

const (
	// LiquidityBorrowAmount 表示 amount 为希望借出的流动性数量
	LiquidityBorrowAmount BorrowAmountType = 0
	// CollateralDepositAmount 表示 amount 为抵押的 collateral 数量，借出量由市场价折算
	CollateralDepositAmount BorrowAmountType = 1
)

// borrowPayload：u8 opcode + LE u64 amount + u8 amountType，紧凑无填充
type borrowPayload struct {
	Instruction uint8
	Amount      uint64
	AmountType  uint8
}

// BorrowLiquidityInstruction 构造抵押借款指令（opcode=5）。债务以 obligation token 形式记账。
//
//	0. `[writable]` Source collateral token account, minted by deposit reserve collateral mint,
//	                  $authority can transfer $collateral_amount
//	1. `[writable]` Destination liquidity token account, minted by borrow reserve liquidity mint
//	2. `[]` Deposit reserve account.
//	3. `[writable]` Deposit reserve collateral supply SPL Token account
//	4. `[writable]` Borrow reserve account.
//	5. `[writable]` Borrow reserve liquidity supply SPL Token account.
//	6. `[writable]` Obligation
//	7. `[writable]` Obligation token mint
//	8. `[writable]` Obligation token output
//	9. `[]` Lending market account.
//	10. `[]` Derived lending market authority.
//	11. `[]` User transfer authority ($authority).
//	12. `[]` Dex market
//	13. `[]` Dex market order book side
//	14. `[]` Temporary memory
//	15. `[]` Clock sysvar
//	16. `[]` Token program id
func BorrowLiquidityInstruction(
	amount uint64,
	amountType BorrowAmountType,
	from types.Pubkey,
	to types.Pubkey,
	depositReserve types.Pubkey,
	depositReserveCollateralSupply types.Pubkey,
	borrowReserve types.Pubkey,
	borrowReserveLiquiditySupply types.Pubkey,
	obligation types.Pubkey,
	obligationMint types.Pubkey,
	obligationTokenOutput types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
	dexMarket types.Pubkey,
	dexOrderBookSide types.Pubkey,
	memory types.Pubkey,
) (Instruction, error) {
	data, err := borsh.Serialize(borrowPayload{
		Instruction: uint8(OpBorrowLiquidity),
		Amount:      amount,
		AmountType:  uint8(amountType),
	})
	if err != nil {
		return Instruction{}, fmt.Errorf("encode %s data: %w", OpBorrowLiquidity, err)
	}

	accounts := []AccountMeta{
		meta(from, false, true),
		meta(to, false, true),
		meta(depositReserve, false, false),
		meta(depositReserveCollateralSupply, false, true),
		meta(borrowReserve, false, true),
		meta(borrowReserveLiquiditySupply, false, true),
		meta(obligation, false, true),
		meta(obligationMint, false, true),
		meta(obligationTokenOutput, false, true),
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
