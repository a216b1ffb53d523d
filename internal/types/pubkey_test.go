package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyBase58RoundTrip(t *testing.T) {
	const s = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	p, err := TryPubkeyFromBase58(s)
	require.NoError(t, err)
	assert.Equal(t, s, p.String())
	assert.False(t, p.IsZero())
	assert.True(t, p.Equals(PubkeyFromBase58(s)))
}

func TestTryPubkeyFromBase58Invalid(t *testing.T) {
	// 非法字符
	_, err := TryPubkeyFromBase58("0OIl")
	assert.Error(t, err)

	// 长度不足 32 字节
	_, err = TryPubkeyFromBase58("abc")
	assert.Error(t, err)
}

func TestSignatureShort(t *testing.T) {
	long := Signature("5VERYLONGSIGNATURExxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")
	short := long.Short()
	assert.NotEqual(t, string(long), short)
	assert.LessOrEqual(t, len(short), 20)

	assert.Equal(t, "abc", Signature("abc").Short())
}
