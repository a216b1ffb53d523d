package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"lending-client-sol/pb"
)

func TestEncodeRecordRoundTrip(t *testing.T) {
	msg := &pb.LendingTxRecord{
		Wallet:  "w1",
		Slot:    123,
		Opcodes: []uint32{5, 3},
	}

	data, err := EncodeRecord(7, msg)
	require.NoError(t, err)

	recordType, body, err := DecodeRecordType(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), recordType)

	var got pb.LendingTxRecord
	require.NoError(t, proto.Unmarshal(body, &got))
	assert.Equal(t, "w1", got.Wallet)
	assert.Equal(t, uint64(123), got.Slot)
	assert.Equal(t, []uint32{5, 3}, got.Opcodes)
}

// 确定性编码：相同消息必须产生相同字节序列
func TestEncodeRecordDeterministic(t *testing.T) {
	msg := &pb.LendingTxRecord{Wallet: "w1", Signature: "s1", Slot: 9}
	a, err := EncodeRecord(1, msg)
	require.NoError(t, err)
	b, err := EncodeRecord(1, msg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeRecordTypeTooShort(t *testing.T) {
	_, _, err := DecodeRecordType([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestPartitionForSignature(t *testing.T) {
	sig := strings.Repeat("x", 88) // base58 签名原文长度约 87-88

	// 同一签名总是同一分区，且落在合法范围内
	p1 := PartitionForSignature(sig, 8)
	p2 := PartitionForSignature(sig, 8)
	assert.Equal(t, p1, p2)
	assert.GreaterOrEqual(t, p1, int32(0))
	assert.Less(t, p1, int32(8))

	// 单分区直接返回 0
	assert.Equal(t, int32(0), PartitionForSignature(sig, 1))
	assert.Equal(t, int32(0), PartitionForSignature(sig, 0))

	// 过短输入退化为分区 0，不越界
	assert.Equal(t, int32(0), PartitionForSignature("short", 8))
}
