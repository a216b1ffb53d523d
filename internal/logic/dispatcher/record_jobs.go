// Package dispatcher 把新分类出的记录编码为下游消息。
package dispatcher

import (
	"fmt"

	"lending-client-sol/internal/logic/core"
	"lending-client-sol/internal/mq"
	"lending-client-sol/internal/types"
	"lending-client-sol/internal/utils"
	"lending-client-sol/pb"
)

// 记录类型前缀（uint32，小端序写入消息头）
const RecordTypeLendingTx uint32 = 1

// BuildRecordJobs 把一批新分类记录编码为 Kafka 消息，按签名哈希选择分区。
func BuildRecordJobs(wallet types.Pubkey, records []*core.ClassifiedTx, topic string, partitions int) ([]*mq.RecordJob, error) {
	jobs := make([]*mq.RecordJob, 0, len(records))
	for _, r := range records {
		label, _ := r.Opcode.Label()
		msg := &pb.LendingTxRecord{
			Wallet:      wallet.String(),
			Signature:   r.Sig.Signature.String(),
			Opcode:      uint32(r.Opcode),
			Label:       label,
			Slot:        r.Tx.Slot,
			BlockTime:   r.Tx.BlockTime,
			FeeLamports: r.Tx.Fee,
			Failed:      r.Tx.Failed,
		}
		for _, op := range r.Opcodes {
			msg.Opcodes = append(msg.Opcodes, uint32(op))
		}

		value, err := utils.EncodeRecord(RecordTypeLendingTx, msg)
		if err != nil {
			return nil, fmt.Errorf("build record job for %s: %w", r.Sig.Signature.Short(), err)
		}
		jobs = append(jobs, &mq.RecordJob{
			Topic:     topic,
			Partition: utils.PartitionForSignature(r.Sig.Signature.String(), partitions),
			Key:       []byte(r.Sig.Signature),
			Value:     value,
		})
	}
	return jobs, nil
}
