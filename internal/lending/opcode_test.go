package lending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeLabel(t *testing.T) {
	cases := []struct {
		op    Opcode
		label string
		ok    bool
	}{
		{OpInitLendingMarket, "", false},
		{OpInitReserve, "", false},
		{OpInitObligation, "", false},
		{OpDepositReserveLiquidity, "Deposit", true},
		{OpWithdrawReserveLiquidity, "Withdraw", true},
		{OpBorrowLiquidity, "Borrow", true},
		{OpRepayObligationLiquidity, "Repay", true},
		{OpLiquidateObligation, "Liquidate", true},
		{OpAccrueReserveInterest, "", false},
		{OpDepositObligationCollateral, "DepositObligationCollateral", true},
		{OpWithdrawObligationCollateral, "WithdrawObligationCollateral", true},
		{Opcode(200), "", false}, // 未定义操作码
	}

	for _, c := range cases {
		label, ok := c.op.Label()
		assert.Equal(t, c.ok, ok, "opcode=%d", uint8(c.op))
		assert.Equal(t, c.label, label, "opcode=%d", uint8(c.op))
		assert.Equal(t, c.ok, c.op.Recognized(), "opcode=%d", uint8(c.op))
	}
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "Deposit", OpDepositReserveLiquidity.String())
	assert.Equal(t, "Opcode(8)", OpAccrueReserveInterest.String())
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("0")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	v, err = ParseAmount("18446744073709551615") // 2^64-1
	assert.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)

	// 负数、溢出、非整数均拒绝
	for _, bad := range []string{"-1", "18446744073709551616", "1.5", "abc", ""} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input=%q", bad)
	}
}
