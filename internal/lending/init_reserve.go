package lending

import (
	"fmt"

	"github.com/near/borsh-go"

	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// ReserveFees 为储备池借款费率。BorrowFeeWad 为 Wad 定点数（1e18 = 100%）。
type ReserveFees struct {
	BorrowFeeWad      uint64
	HostFeePercentage uint8
}

// ReserveConfig 为储备池风控参数。全部定宽字段，随指令 data 原样上链：
// 利用率与各比率均为百分比整数（0-100），利率为年化百分比整数。
type ReserveConfig struct {
	OptimalUtilizationRate uint8
	LoanToValueRatio       uint8
	LiquidationBonus       uint8
	LiquidationThreshold   uint8
	MinBorrowRate          uint8
	OptimalBorrowRate      uint8
	MaxBorrowRate          uint8
	Fees                   ReserveFees
}

// initReservePayload：u8 opcode + LE u64 amount + 定宽 config，共 25 字节
type initReservePayload struct {
	Instruction     uint8
	LiquidityAmount uint64
	Config          ReserveConfig
}

// InitReserveInstruction 构造创建储备池的指令（opcode=1），同时存入初始流动性。
// dexMarket 仅非计价币储备需要，计价币储备传零值表示省略。
//
//	0. `[writable]` Source liquidity token account. $authority can transfer $liquidity_amount
//	1. `[writable]` Destination collateral token account - uninitialized
//	2. `[writable]` Reserve account - uninitialized
//	3. `[]` Reserve liquidity SPL Token mint
//	4. `[writable]` Reserve liquidity supply SPL Token account - uninitialized
//	5. `[writable]` Reserve collateral SPL Token mint - uninitialized
//	6. `[writable]` Reserve collateral token supply - uninitialized
//	7. `[writable]` Reserve collateral fees receiver - uninitialized
//	8. `[writable]` Lending market account.
//	9. `[signer]` Lending market owner.
//	10. `[]` Derived lending market authority.
//	11. `[]` User transfer authority ($authority).
//	12. `[]` Clock sysvar
//	13. `[]` Rent sysvar
//	14. `[]` Token program id
//	15. `[optional]` Serum DEX market account. Not required for quote currency reserves.
func InitReserveInstruction(
	liquidityAmount uint64,
	config ReserveConfig,
	from types.Pubkey,
	to types.Pubkey,
	reserveAccount types.Pubkey,
	liquidityMint types.Pubkey,
	liquiditySupply types.Pubkey,
	collateralMint types.Pubkey,
	collateralSupply types.Pubkey,
	collateralFeesReceiver types.Pubkey,
	lendingMarket types.Pubkey,
	lendingMarketOwner types.Pubkey,
	lendingMarketAuthority types.Pubkey,
	transferAuthority types.Pubkey,
	dexMarket types.Pubkey,
) (Instruction, error) {
	data, err := borsh.Serialize(initReservePayload{
		Instruction:     uint8(OpInitReserve),
		LiquidityAmount: liquidityAmount,
		Config:          config,
	})
	if err != nil {
		return Instruction{}, fmt.Errorf("encode %s data: %w", OpInitReserve, err)
	}

	accounts := []AccountMeta{
		meta(from, false, true),
		meta(to, false, true),
		meta(reserveAccount, false, true),
		meta(liquidityMint, false, false),
		meta(liquiditySupply, false, true),
		meta(collateralMint, false, true),
		meta(collateralSupply, false, true),
		meta(collateralFeesReceiver, false, true),
		meta(lendingMarket, false, true),
		meta(lendingMarketOwner, true, false),
		meta(lendingMarketAuthority, false, false),
		meta(transferAuthority, true, false),
		meta(consts.SysvarClock, false, false),
		meta(consts.SysvarRent, false, false),
		meta(consts.TokenProgram, false, false),
	}
	if !dexMarket.IsZero() {
		accounts = append(accounts, meta(dexMarket, false, false))
	}
	return newInstruction(data, accounts), nil
}
