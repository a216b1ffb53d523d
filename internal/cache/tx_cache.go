package cache

import (
	"errors"
	"fmt"
	"sync"

	"lending-client-sol/internal/logic/core"
	"lending-client-sol/internal/types"
)

// ErrDuplicateInsert 表示对同一签名重复写入。
// 缓存为 append-only：首次分类结果不可被推翻，重复写入属于程序不变量被破坏，视为致命错误。
var ErrDuplicateInsert = errors.New("cache: duplicate insert for signature")

// entry.record 为 nil 时表示墓碑："已检查过，与借贷程序无关"，
// 与"从未检查"（map 中无此 key）严格区分。
type entry struct {
	record *core.ClassifiedTx
}

// TxCache 是按签名索引的分类结果缓存，进程生命周期内只增不减、不过期。
// 一个实例只服务一个钱包；换钱包由调用方按钱包另建实例。
// 由同步管道独占写入，读取并发安全。
type TxCache struct {
	mu      sync.RWMutex
	entries map[types.Signature]entry
	order   []types.Signature // 写入顺序，决定 Records 的迭代顺序（非链上时间顺序）
}

func NewTxCache() *TxCache {
	return &TxCache{
		entries: make(map[types.Signature]entry),
	}
}

// Has 判断签名是否已有条目（分类记录或墓碑均算）。
func (c *TxCache) Has(sig types.Signature) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[sig]
	return ok
}

// Get 返回签名对应的条目：
// seen=false 表示从未检查；seen=true 且 record=nil 表示墓碑。
func (c *TxCache) Get(sig types.Signature) (record *core.ClassifiedTx, seen bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[sig]
	if !ok {
		return nil, false
	}
	return e.record, true
}

// PutRecord 写入一条分类记录，签名取自记录自身。
func (c *TxCache) PutRecord(record *core.ClassifiedTx) error {
	return c.put(record.Sig.Signature, record)
}

// PutTombstone 为已检查但与借贷程序无关的签名写入墓碑。
func (c *TxCache) PutTombstone(sig types.Signature) error {
	return c.put(sig, nil)
}

func (c *TxCache) put(sig types.Signature, record *core.ClassifiedTx) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[sig]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateInsert, sig.Short())
	}
	c.entries[sig] = entry{record: record}
	c.order = append(c.order, sig)
	return nil
}

// Records 返回全部分类记录（不含墓碑），按写入顺序排列。
func (c *TxCache) Records() []*core.ClassifiedTx {
	c.mu.RLock()
	defer c.mu.RUnlock()
	records := make([]*core.ClassifiedTx, 0, len(c.order))
	for _, sig := range c.order {
		if e := c.entries[sig]; e.record != nil {
			records = append(records, e.record)
		}
	}
	return records
}

// Len 返回条目总数（记录 + 墓碑）。
func (c *TxCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
