package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"lending-client-sol/internal/types"
)

// Manager 管理 Redis 中按钱包+签名维度的检查状态，供多实例部署时做幂等控制：
// 认领（SetNX 占位）→ 获取并分类 → 写入最终状态；同一签名全局只被获取一次。
// 单实例部署可不配置 Redis，传 nil Manager 即可（内存缓存已保证进程内幂等）。
type Manager struct {
	rdb *redis.Client
}

// Redis key 前缀
const sigPrefix = "lending:sig"

// TTL（可调）：最终状态长留，pending 占位短期过期以容忍实例崩溃
const (
	doneTTL    = 7 * 24 * time.Hour
	pendingTTL = 2 * time.Minute
)

func NewManager(rdb *redis.Client) *Manager {
	return &Manager{rdb: rdb}
}

func (m *Manager) key(wallet types.Pubkey, sig types.Signature) string {
	return fmt.Sprintf("%s:%s:%s", sigPrefix, wallet, sig)
}

// Status 查询签名的跨实例状态
func (m *Manager) Status(ctx context.Context, wallet types.Pubkey, sig types.Signature) (SigStatus, error) {
	val, err := m.rdb.Get(ctx, m.key(wallet, sig)).Int()
	switch {
	case err == redis.Nil:
		return SigUnknown, nil
	case err != nil:
		return SigUnknown, fmt.Errorf("redis get error: %w", err)
	case val == int(SigClassified):
		return SigClassified, nil
	case val == int(SigIrrelevant):
		return SigIrrelevant, nil
	case val == int(SigPending):
		return SigPending, nil
	default:
		return SigUnknown, nil // 容错处理
	}
}

// TryClaim 尝试认领签名（claim-before-fetch）。
// 返回 false 表示已有其它实例认领或已有最终结论，本实例应跳过获取。
func (m *Manager) TryClaim(ctx context.Context, wallet types.Pubkey, sig types.Signature) (bool, error) {
	ok, err := m.rdb.SetNX(ctx, m.key(wallet, sig), int(SigPending), pendingTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx error: %w", err)
	}
	return ok, nil
}

// MarkClassified 写入最终状态：已分类为借贷交易
func (m *Manager) MarkClassified(ctx context.Context, wallet types.Pubkey, sig types.Signature) error {
	return m.rdb.Set(ctx, m.key(wallet, sig), int(SigClassified), doneTTL).Err()
}

// MarkIrrelevant 写入最终状态：与借贷程序无关
func (m *Manager) MarkIrrelevant(ctx context.Context, wallet types.Pubkey, sig types.Signature) error {
	return m.rdb.Set(ctx, m.key(wallet, sig), int(SigIrrelevant), doneTTL).Err()
}

// Release 释放认领占位（获取失败时调用，让签名可被再次尝试）。
// 获取失败绝不能写成最终状态，否则会永久屏蔽后续重试。
func (m *Manager) Release(ctx context.Context, wallet types.Pubkey, sig types.Signature) error {
	return m.rdb.Del(ctx, m.key(wallet, sig)).Err()
}
