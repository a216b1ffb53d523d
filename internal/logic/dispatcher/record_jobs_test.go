package dispatcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"lending-client-sol/internal/lending"
	"lending-client-sol/internal/logic/core"
	"lending-client-sol/internal/types"
	"lending-client-sol/internal/utils"
	"lending-client-sol/pb"
)

func TestBuildRecordJobs(t *testing.T) {
	var wallet types.Pubkey
	wallet[0] = 1

	sig := types.Signature(strings.Repeat("a", 88))
	records := []*core.ClassifiedTx{{
		Opcode:  lending.OpBorrowLiquidity,
		Opcodes: []lending.Opcode{lending.OpBorrowLiquidity, lending.OpDepositReserveLiquidity},
		Sig:     core.SignatureInfo{Signature: sig, Slot: 100},
		Tx: &core.ParsedTx{
			Signature: sig,
			Slot:      100,
			BlockTime: 1700000000,
			Fee:       5000,
		},
	}}

	jobs, err := BuildRecordJobs(wallet, records, "lending_tx_topic", 8)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "lending_tx_topic", job.Topic)
	assert.Equal(t, []byte(sig), job.Key)
	assert.GreaterOrEqual(t, job.Partition, int32(0))
	assert.Less(t, job.Partition, int32(8))

	recordType, body, err := utils.DecodeRecordType(job.Value)
	require.NoError(t, err)
	assert.Equal(t, RecordTypeLendingTx, recordType)

	var msg pb.LendingTxRecord
	require.NoError(t, proto.Unmarshal(body, &msg))
	assert.Equal(t, wallet.String(), msg.Wallet)
	assert.Equal(t, sig.String(), msg.Signature)
	assert.Equal(t, uint32(5), msg.Opcode)
	assert.Equal(t, []uint32{5, 3}, msg.Opcodes)
	assert.Equal(t, "Borrow", msg.Label)
	assert.Equal(t, uint64(100), msg.Slot)
	assert.Equal(t, int64(1700000000), msg.BlockTime)
	assert.Equal(t, uint64(5000), msg.FeeLamports)
	assert.False(t, msg.Failed)
}

func TestBuildRecordJobsEmpty(t *testing.T) {
	jobs, err := BuildRecordJobs(types.Pubkey{}, nil, "t", 8)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
