package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/lending"
	"lending-client-sol/internal/logic/core"
)

func lendingIx(opcode byte) *core.ParsedInstruction {
	return &core.ParsedInstruction{
		ProgramID: consts.LendingProgram,
		Data:      []byte{opcode, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

func otherIx() *core.ParsedInstruction {
	return &core.ParsedInstruction{
		ProgramID: consts.TokenProgram,
		Data:      []byte{3},
	}
}

func tx(ixs ...*core.ParsedInstruction) *core.ParsedTx {
	return &core.ParsedTx{Signature: "sig", Instructions: ixs}
}

func TestClassifySingleLendingInstruction(t *testing.T) {
	op, ok := Classify(tx(lendingIx(3)))
	assert.True(t, ok)
	assert.Equal(t, lending.OpDepositReserveLiquidity, op)
}

func TestClassifyIgnoresOtherPrograms(t *testing.T) {
	// Token 程序指令首字节 3 不构成借贷 Deposit
	_, ok := Classify(tx(otherIx()))
	assert.False(t, ok)

	op, ok := Classify(tx(otherIx(), lendingIx(5), otherIx()))
	assert.True(t, ok)
	assert.Equal(t, lending.OpBorrowLiquidity, op)
}

func TestClassifyFirstRecognizedWins(t *testing.T) {
	// 位置 0 的借贷指令操作码未识别（InitReserve），位置 2 的 Repay 胜出
	op, ok := Classify(tx(lendingIx(1), otherIx(), lendingIx(6), lendingIx(3)))
	assert.True(t, ok)
	assert.Equal(t, lending.OpRepayObligationLiquidity, op)
}

func TestClassifyUnrecognizedOpcodes(t *testing.T) {
	// 借贷程序调用了但全是管理类指令：墓碑候选
	_, ok := Classify(tx(lendingIx(0), lendingIx(8)))
	assert.False(t, ok)
}

func TestClassifyEmptyInstructionData(t *testing.T) {
	empty := &core.ParsedInstruction{ProgramID: consts.LendingProgram}
	_, ok := Classify(tx(empty))
	assert.False(t, ok)

	op, ok := Classify(tx(empty, lendingIx(4)))
	assert.True(t, ok)
	assert.Equal(t, lending.OpWithdrawReserveLiquidity, op)
}

func TestClassifyNoInstructions(t *testing.T) {
	_, ok := Classify(tx())
	assert.False(t, ok)
}

func TestClassifyAllKeepsFullList(t *testing.T) {
	ops := ClassifyAll(tx(lendingIx(3), otherIx(), lendingIx(1), lendingIx(5)))
	assert.Equal(t, []lending.Opcode{
		lending.OpDepositReserveLiquidity,
		lending.OpBorrowLiquidity,
	}, ops)

	assert.Empty(t, ClassifyAll(tx(otherIx())))
}
