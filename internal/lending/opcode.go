package lending

import "fmt"

// Opcode 表示借贷程序指令的操作码（指令 data 的首字节）。
// 数值是链上 ABI 的一部分：新增指令只能追加，已有值永不重排。
type Opcode uint8

const (
	OpInitLendingMarket            Opcode = 0
	OpInitReserve                  Opcode = 1
	OpInitObligation               Opcode = 2
	OpDepositReserveLiquidity      Opcode = 3
	OpWithdrawReserveLiquidity     Opcode = 4
	OpBorrowLiquidity              Opcode = 5
	OpRepayObligationLiquidity     Opcode = 6
	OpLiquidateObligation          Opcode = 7
	OpAccrueReserveInterest        Opcode = 8
	OpDepositObligationCollateral  Opcode = 9
	OpWithdrawObligationCollateral Opcode = 10
)

// Label 返回操作码的展示名。仅客户端关心的子集有展示名；
// 其余操作码（如 InitReserve）对前端不可见，返回 ok=false。
func (op Opcode) Label() (string, bool) {
	switch op {
	case OpDepositReserveLiquidity:
		return "Deposit", true
	case OpWithdrawReserveLiquidity:
		return "Withdraw", true
	case OpBorrowLiquidity:
		return "Borrow", true
	case OpRepayObligationLiquidity:
		return "Repay", true
	case OpLiquidateObligation:
		return "Liquidate", true
	case OpDepositObligationCollateral:
		return "DepositObligationCollateral", true
	case OpWithdrawObligationCollateral:
		return "WithdrawObligationCollateral", true
	case OpInitLendingMarket, OpInitReserve, OpInitObligation, OpAccrueReserveInterest:
		return "", false
	default:
		return "", false
	}
}

// Recognized 判断操作码是否属于客户端展示的已识别子集。
// 未识别不是错误：分类阶段直接按"无关交易"处理。
func (op Opcode) Recognized() bool {
	_, ok := op.Label()
	return ok
}

func (op Opcode) String() string {
	if label, ok := op.Label(); ok {
		return label
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}
