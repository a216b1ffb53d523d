package syncer

import (
	"fmt"

	"lending-client-sol/internal/types"
)

// RPC 操作名（TransportError.Op）
const (
	OpListSignatures   = "listSignatures"
	OpFetchTransaction = "fetchTransaction"
)

// TransportError 表示 RPC 协作方的传输失败。
// 同步整体可安全重试：缓存 append-only，重跑不会产生重复条目。
type TransportError struct {
	Op  string          // 失败的 RPC 操作
	Sig types.Signature // 单笔获取失败时的签名，列表失败时为空
	Err error
}

func (e *TransportError) Error() string {
	if e.Sig != "" {
		return fmt.Sprintf("syncer: %s %s: %v", e.Op, e.Sig.Short(), e.Err)
	}
	return fmt.Sprintf("syncer: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
