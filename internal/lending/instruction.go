package lending

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/near/borsh-go"

	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/types"
)

// ErrInvalidAmount 表示数值参数非法（负数或超出 uint64 范围）。
// 属于本地编码错误，直接返回调用方，不做重试。
var ErrInvalidAmount = errors.New("lending: invalid amount")

// AccountMeta 表示指令账户表中的一个槽位。
// 账户在表中的位置即是链上程序识别账户的唯一依据，顺序属于 wire 契约。
type AccountMeta struct {
	Pubkey     types.Pubkey
	IsSigner   bool
	IsWritable bool
}

// Instruction 表示一条已编码完成的借贷程序指令。
// Data = 1 字节操作码 + 各数值参数的小端定宽编码，无填充、无长度前缀。
// 构造后不可变，由提交层消费一次。
type Instruction struct {
	ProgramID types.Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// ParseAmount 把用户输入的十进制数量（已折算为链上最小单位）解析为 uint64。
// 负数、非整数、超出 2^64-1 的输入均返回 ErrInvalidAmount。
func ParseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// amountPayload 是单 u64 参数指令的 data 布局（borsh 与原始 buffer-layout 字节一致：u8 + LE u64）
type amountPayload struct {
	Instruction uint8
	Amount      uint64
}

func encodeAmountData(op Opcode, amount uint64) ([]byte, error) {
	data, err := borsh.Serialize(amountPayload{
		Instruction: uint8(op),
		Amount:      amount,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s data: %w", op, err)
	}
	return data, nil
}

func meta(key types.Pubkey, signer, writable bool) AccountMeta {
	return AccountMeta{Pubkey: key, IsSigner: signer, IsWritable: writable}
}

func newInstruction(data []byte, accounts []AccountMeta) Instruction {
	return Instruction{
		ProgramID: consts.LendingProgram,
		Accounts:  accounts,
		Data:      data,
	}
}
