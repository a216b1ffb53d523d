package utils

import (
	"encoding/binary"
	"fmt"

	"google.golang.org/protobuf/proto"
)

// EncodeRecord 将 protobuf 消息编码为带记录类型前缀的二进制数据：
// - 前 4 字节为记录类型（uint32，小端序）
// - 后续为 protobuf 序列化数据（使用 MarshalAppend）
// 下游消费方先读类型再反序列化，保证 topic 内多种记录类型可共存。
func EncodeRecord(recordType uint32, msg proto.Message) ([]byte, error) {
	const extraBuffer = 32 // 多预留一些空间，降低 MarshalAppend 触发扩容的概率

	// 预估 protobuf 编码大小
	size := proto.Size(msg)

	// 分配缓冲区：
	// - 前 4 字节写入记录类型
	// - 后续用于 protobuf 编码追加
	buf := make([]byte, 4, 4+size+extraBuffer)
	binary.LittleEndian.PutUint32(buf[:4], recordType)

	opts := proto.MarshalOptions{Deterministic: true}
	result, err := opts.MarshalAppend(buf, msg)
	if err != nil {
		return nil, fmt.Errorf("EncodeRecord: marshal %T: %w", msg, err)
	}

	// 极小概率下 MarshalAppend 会触发扩容，导致前缀丢失，做防御性修正
	if &result[0] != &buf[0] {
		newBuf := make([]byte, 4, len(result)+4)
		binary.LittleEndian.PutUint32(newBuf[:4], recordType)
		result = append(newBuf, result[4:]...)
	}

	return result, nil
}

// DecodeRecordType 读取记录类型前缀，返回类型值与 protobuf 载荷部分。
func DecodeRecordType(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, fmt.Errorf("DecodeRecordType: data too short: %d", len(data))
	}
	return binary.LittleEndian.Uint32(data[:4]), data[4:], nil
}
