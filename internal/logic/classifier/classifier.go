// Package classifier 判定一笔交易是否调用了借贷程序，并给出操作码分类。
package classifier

import (
	"lending-client-sol/internal/consts"
	"lending-client-sol/internal/lending"
	"lending-client-sol/internal/logic/core"
)

// Classify 按提交顺序扫描主指令，只保留 ProgramID 等于借贷程序的指令，
// 取其中第一条首字节属于已识别操作码的指令作为分类结果。
// 无借贷指令或操作码均不识别时返回 ok=false（墓碑候选）。
//
// 同一交易含多条借贷指令时以位置最靠前的胜出，完整列表见 ClassifyAll。
func Classify(tx *core.ParsedTx) (lending.Opcode, bool) {
	for _, ix := range tx.Instructions {
		if !ix.ProgramID.Equals(consts.LendingProgram) {
			continue
		}
		if len(ix.Data) == 0 {
			continue
		}
		if op := lending.Opcode(ix.Data[0]); op.Recognized() {
			return op, true
		}
	}
	return 0, false
}

// ClassifyAll 返回交易中全部已识别借贷指令的操作码，按位置排列。
// 返回空切片表示该交易与借贷程序无关。
func ClassifyAll(tx *core.ParsedTx) []lending.Opcode {
	var ops []lending.Opcode
	for _, ix := range tx.Instructions {
		if !ix.ProgramID.Equals(consts.LendingProgram) || len(ix.Data) == 0 {
			continue
		}
		if op := lending.Opcode(ix.Data[0]); op.Recognized() {
			ops = append(ops, op)
		}
	}
	return ops
}
