package types

// Signature 表示一笔链上交易的签名句柄（base58 原文）。
// 作为缓存 key 使用，必须逐字节精确比较：不截断、不重编码。
type Signature string

func (s Signature) String() string {
	return string(s)
}

func (s Signature) Equals(other Signature) bool {
	return s == other
}

// Short 返回签名的缩写形式，仅用于日志展示
func (s Signature) Short() string {
	if len(s) <= 12 {
		return string(s)
	}
	return string(s[:6]) + ".." + string(s[len(s)-6:])
}
