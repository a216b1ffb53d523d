package lending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// pk 生成仅首字节不同的测试公钥，便于在账户表中按编号核对位置
func pk(b byte) types.Pubkey {
	var p types.Pubkey
	p[0] = b
	return p
}

func TestDepositInstructionData(t *testing.T) {
	ix, err := DepositReserveLiquidityInstruction(
		1_000_000,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8),
	)
	require.NoError(t, err)

	// data = u8 opcode + LE u64 amount，共 9 字节无填充
	assert.Equal(t, []byte{3, 0x40, 0x42, 0x0F, 0, 0, 0, 0, 0}, ix.Data)
	assert.Equal(t, consts.LendingProgram, ix.ProgramID)
}

func TestDepositInstructionAccounts(t *testing.T) {
	ix, err := DepositReserveLiquidityInstruction(
		1,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8),
	)
	require.NoError(t, err)
	require.Len(t, ix.Accounts, 10)

	expected := []AccountMeta{
		{pk(1), false, true},
		{pk(2), false, true},
		{pk(3), false, true},
		{pk(4), false, true},
		{pk(5), false, true},
		{pk(6), false, false},
		{pk(7), false, false},
		{pk(8), true, false},
		{consts.SysvarClock, false, false},
		{consts.TokenProgram, false, false},
	}
	assert.Equal(t, expected, ix.Accounts)
}

func TestWithdrawInstructionAccounts(t *testing.T) {
	ix, err := WithdrawReserveLiquidityInstruction(
		7,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8),
	)
	require.NoError(t, err)
	require.Len(t, ix.Accounts, 10)

	assert.Equal(t, []byte{4, 7, 0, 0, 0, 0, 0, 0, 0}, ix.Data)

	// Withdraw 与 Deposit 的账户表顺序不同：collateralMint 在 reserveSupply 之前
	expected := []AccountMeta{
		{pk(1), false, true},
		{pk(2), false, true},
		{pk(3), false, true},
		{pk(4), false, true},
		{pk(5), false, true},
		{pk(6), false, false},
		{pk(7), false, false},
		{pk(8), true, false},
		{consts.SysvarClock, false, false},
		{consts.TokenProgram, false, false},
	}
	assert.Equal(t, expected, ix.Accounts)
}

func TestBorrowInstructionPayload(t *testing.T) {
	ix, err := BorrowLiquidityInstruction(
		256, CollateralDepositAmount,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8), pk(9),
		pk(10), pk(11), pk(12), pk(13), pk(14), pk(15),
	)
	require.NoError(t, err)

	// borrow 比其他单参数指令多 1 字节 amountType，共 10 字节
	assert.Equal(t, []byte{5, 0, 1, 0, 0, 0, 0, 0, 0, 1}, ix.Data)
	require.Len(t, ix.Accounts, 17)

	// 账户表抽查：只读/可写与签名位
	assert.True(t, ix.Accounts[0].IsWritable)
	assert.False(t, ix.Accounts[2].IsWritable) // deposit reserve 只读
	assert.True(t, ix.Accounts[11].IsSigner)   // transfer authority
	assert.Equal(t, consts.SysvarClock, ix.Accounts[15].Pubkey)
	assert.Equal(t, consts.TokenProgram, ix.Accounts[16].Pubkey)
}

func TestRepayInstruction(t *testing.T) {
	ix, err := RepayObligationLiquidityInstruction(
		42,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8), pk(9),
		pk(10), pk(11), pk(12),
	)
	require.NoError(t, err)

	assert.Equal(t, byte(6), ix.Data[0])
	require.Len(t, ix.Accounts, 14)
	assert.True(t, ix.Accounts[11].IsSigner)
	assert.Equal(t, consts.SysvarClock, ix.Accounts[12].Pubkey)
	assert.Equal(t, consts.TokenProgram, ix.Accounts[13].Pubkey)
}

func TestDepositObligationCollateralAccounts(t *testing.T) {
	ix, err := DepositObligationCollateralInstruction(
		1,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8), pk(9),
	)
	require.NoError(t, err)

	assert.Equal(t, byte(9), ix.Data[0])
	require.Len(t, ix.Accounts, 10)

	// 该指令账户表不含 Clock sysvar，末位直接是 Token program
	assert.Equal(t, consts.TokenProgram, ix.Accounts[9].Pubkey)
	for _, acc := range ix.Accounts {
		assert.NotEqual(t, consts.SysvarClock, acc.Pubkey)
	}
	assert.True(t, ix.Accounts[8].IsSigner)
}

func TestWithdrawObligationCollateralAccounts(t *testing.T) {
	ix, err := WithdrawObligationCollateralInstruction(
		1,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8), pk(9),
		pk(10), pk(11), pk(12), pk(13),
	)
	require.NoError(t, err)

	assert.Equal(t, byte(10), ix.Data[0])
	require.Len(t, ix.Accounts, 15)
	assert.True(t, ix.Accounts[9].IsSigner)
	assert.Equal(t, consts.SysvarClock, ix.Accounts[13].Pubkey)
	assert.Equal(t, consts.TokenProgram, ix.Accounts[14].Pubkey)
}

func TestLiquidateInstruction(t *testing.T) {
	ix, err := LiquidateObligationInstruction(
		500,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8), pk(9),
		pk(10), pk(11), pk(12), pk(13),
	)
	require.NoError(t, err)

	assert.Equal(t, []byte{7, 0xF4, 1, 0, 0, 0, 0, 0, 0}, ix.Data)
	require.Len(t, ix.Accounts, 15)

	// withdraw reserve 只读，repay 侧可写
	assert.True(t, ix.Accounts[2].IsWritable)
	assert.False(t, ix.Accounts[4].IsWritable)
	assert.True(t, ix.Accounts[9].IsSigner) // transfer authority
	assert.Equal(t, consts.SysvarClock, ix.Accounts[13].Pubkey)
	assert.Equal(t, consts.TokenProgram, ix.Accounts[14].Pubkey)
}

func TestInitLendingMarketInstruction(t *testing.T) {
	owner := pk(0xEE)
	ix, err := InitLendingMarketInstruction(owner, pk(1), pk(2))
	require.NoError(t, err)

	// data = u8 opcode + 32 字节 owner 公钥
	require.Len(t, ix.Data, 33)
	assert.Equal(t, byte(0), ix.Data[0])
	assert.Equal(t, owner[:], ix.Data[1:])

	require.Len(t, ix.Accounts, 4)
	assert.True(t, ix.Accounts[0].IsWritable)
	assert.Equal(t, consts.SysvarRent, ix.Accounts[2].Pubkey)
	assert.Equal(t, consts.TokenProgram, ix.Accounts[3].Pubkey)
}

func TestInitReserveInstruction(t *testing.T) {
	config := ReserveConfig{
		OptimalUtilizationRate: 80,
		LoanToValueRatio:       50,
		LiquidationBonus:       5,
		LiquidationThreshold:   55,
		MinBorrowRate:          0,
		OptimalBorrowRate:      4,
		MaxBorrowRate:          30,
		Fees: ReserveFees{
			BorrowFeeWad:      10_000_000_000_000_000, // 1%
			HostFeePercentage: 20,
		},
	}
	ix, err := InitReserveInstruction(
		1, config,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8),
		pk(9), pk(10), pk(11), pk(12), pk(13),
	)
	require.NoError(t, err)

	// u8 + u64 + 7 个 u8 + u64 + u8，共 25 字节无填充
	require.Len(t, ix.Data, 25)
	assert.Equal(t, byte(1), ix.Data[0])
	assert.Equal(t, []byte{80, 50, 5, 55, 0, 4, 30}, ix.Data[9:16])

	require.Len(t, ix.Accounts, 16)
	assert.True(t, ix.Accounts[8].IsWritable) // lending market 初始化时可写
	assert.True(t, ix.Accounts[9].IsSigner)   // market owner
	assert.True(t, ix.Accounts[11].IsSigner)  // transfer authority
	assert.Equal(t, pk(13), ix.Accounts[15].Pubkey)

	// 计价币储备不带 dex market
	ix, err = InitReserveInstruction(
		1, config,
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8),
		pk(9), pk(10), pk(11), pk(12), types.Pubkey{},
	)
	require.NoError(t, err)
	assert.Len(t, ix.Accounts, 15)
}

func TestInitObligationInstruction(t *testing.T) {
	ix, err := InitObligationInstruction(
		pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8),
	)
	require.NoError(t, err)

	// 无数值参数：data 仅操作码
	assert.Equal(t, []byte{2}, ix.Data)
	require.Len(t, ix.Accounts, 11)
	assert.True(t, ix.Accounts[2].IsWritable)
	assert.False(t, ix.Accounts[0].IsWritable)
	assert.Equal(t, consts.SysvarClock, ix.Accounts[8].Pubkey)
	assert.Equal(t, consts.SysvarRent, ix.Accounts[9].Pubkey)
	assert.Equal(t, consts.TokenProgram, ix.Accounts[10].Pubkey)
}

// 相同参数必须产生字节级相同的指令：编码不依赖任何运行时状态
func TestInstructionDeterminism(t *testing.T) {
	build := func() Instruction {
		ix, err := DepositReserveLiquidityInstruction(
			999_999_999,
			pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8),
		)
		require.NoError(t, err)
		return ix
	}
	a, b := build(), build()
	assert.Equal(t, a.Data, b.Data)
	assert.Equal(t, a.Accounts, b.Accounts)
	assert.Equal(t, a.ProgramID, b.ProgramID)
}

// 调用方交换两个账户参数时，产出账户表也必须对应交换（位置即语义）
func TestAccountOrderFollowsArguments(t *testing.T) {
	ix1, err := DepositReserveLiquidityInstruction(1, pk(1), pk(2), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8))
	require.NoError(t, err)
	ix2, err := DepositReserveLiquidityInstruction(1, pk(2), pk(1), pk(3), pk(4), pk(5), pk(6), pk(7), pk(8))
	require.NoError(t, err)

	assert.Equal(t, ix1.Accounts[0].Pubkey, ix2.Accounts[1].Pubkey)
	assert.Equal(t, ix1.Accounts[1].Pubkey, ix2.Accounts[0].Pubkey)
	assert.Equal(t, ix1.Accounts[2:], ix2.Accounts[2:])
}
