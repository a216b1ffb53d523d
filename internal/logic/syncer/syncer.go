// Package syncer 实现钱包历史交易的有界增量同步管道：
// 拉取签名列表 → 跳过已缓存 → 逐笔获取并分类 → 写入缓存。
package syncer

import (
	"context"
	"sync"
	"time"

	"lending-client-sol/internal/cache"
	"lending-client-sol/internal/logic/classifier"
	"lending-client-sol/internal/logic/core"
	"lending-client-sol/internal/types"
	"lending-client-sol/pkg/logger"
	"lending-client-sol/pkg/utils"
)

// ChainClient 是同步管道依赖的 RPC 协作方，仅两个操作。
type ChainClient interface {
	// ListSignatures 返回钱包全部历史签名摘要（最新在前，顺序由节点定义）
	ListSignatures(ctx context.Context, wallet types.Pubkey) ([]core.SignatureInfo, error)
	// FetchTransaction 获取单笔交易完整内容；节点无记录时返回 (nil, nil)
	FetchTransaction(ctx context.Context, sig types.Signature) (*core.ParsedTx, error)
}

// ClaimStore 是跨实例签名认领存储（progress.Manager 实现）。
// 单实例部署传 nil 即可：内存缓存已保证进程内幂等。
type ClaimStore interface {
	TryClaim(ctx context.Context, wallet types.Pubkey, sig types.Signature) (bool, error)
	MarkClassified(ctx context.Context, wallet types.Pubkey, sig types.Signature) error
	MarkIrrelevant(ctx context.Context, wallet types.Pubkey, sig types.Signature) error
	Release(ctx context.Context, wallet types.Pubkey, sig types.Signature) error
}

// Outcome 是一次 Sync 调用的结果。
type Outcome struct {
	Records    []*core.ClassifiedTx // 缓存中累计的全部分类记录（旧 + 新），写入顺序
	NewRecords []*core.ClassifiedTx // 本次新分类出的记录，供下游发布
	Examined   int                  // 本次实际检查（获取 + 分类）的签名数
}

// Syncer 驱动单个钱包的同步。缓存由上层构造并传入，Syncer 是其唯一写入方；
// 内部互斥锁保证同一钱包同时只有一趟同步在跑（后来者排队）。
type Syncer struct {
	wallet types.Pubkey
	client ChainClient
	cache  *cache.TxCache
	claims ClaimStore // 可为 nil：单实例部署不需要跨实例认领
	cfg    Config

	mu sync.Mutex
}

func New(wallet types.Pubkey, client ChainClient, c *cache.TxCache, claims ClaimStore, cfg Config) *Syncer {
	return &Syncer{
		wallet: wallet,
		client: client,
		cache:  c,
		claims: claims,
		cfg:    cfg.withDefaults(),
	}
}

// Records 返回缓存中当前累计的分类记录，不触发任何网络请求。
func (s *Syncer) Records() []*core.ClassifiedTx {
	return s.cache.Records()
}

// Sync 执行一次有界增量同步。
// 未设置钱包时直接返回现有记录；签名列表拉取失败则整次失败且不写缓存。
// 单笔获取/分类的失败处理由 Config 策略决定。
func (s *Syncer) Sync(ctx context.Context) (*Outcome, error) {
	if s.wallet.IsZero() {
		return &Outcome{Records: s.cache.Records()}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sigs, err := s.client.ListSignatures(ctx, s.wallet)
	if err != nil {
		return nil, &TransportError{Op: OpListSignatures, Err: err}
	}

	pending := s.collectPending(ctx, sigs)
	outcome := &Outcome{}

	if err := s.examine(ctx, pending, outcome); err != nil {
		return nil, err
	}

	outcome.Records = s.cache.Records()
	return outcome, nil
}

// collectPending 过滤出未缓存的签名，按节点返回顺序截断到单次上限。
// 配置了跨实例认领时，认领失败的签名跳过（另一实例已处理或正在处理）。
func (s *Syncer) collectPending(ctx context.Context, sigs []core.SignatureInfo) []core.SignatureInfo {
	pending := make([]core.SignatureInfo, 0, s.cfg.MaxPerSync)
	for _, si := range sigs {
		if len(pending) >= s.cfg.MaxPerSync {
			break
		}
		if s.cache.Has(si.Signature) {
			continue
		}
		if s.claims != nil {
			ok, err := s.claims.TryClaim(ctx, s.wallet, si.Signature)
			if err != nil {
				// Redis 故障不阻塞本地同步，降级为无认领模式
				logger.Warnf("[syncer] claim failed, proceeding without: wallet=%s sig=%s err=%v",
					s.wallet, si.Signature.Short(), err)
			} else if !ok {
				continue
			}
		}
		pending = append(pending, si)
	}
	return pending
}

type fetchResult struct {
	si  core.SignatureInfo
	tx  *core.ParsedTx
	err error
}

// examine 获取并分类 pending 中的每个签名，按列表顺序写缓存。
// FetchWorkers>1 时并发预取，但缓存写入仍按顺序进行且每签名恰好一次。
func (s *Syncer) examine(ctx context.Context, pending []core.SignatureInfo, outcome *Outcome) error {
	if len(pending) == 0 {
		return nil
	}

	var results []fetchResult
	if s.cfg.FetchWorkers > 1 {
		results = utils.ParallelMap(pending, s.cfg.FetchWorkers, func(si core.SignatureInfo) fetchResult {
			tx, err := s.client.FetchTransaction(ctx, si.Signature)
			return fetchResult{si: si, tx: tx, err: err}
		})
	} else {
		results = make([]fetchResult, 0, len(pending))
		for _, si := range pending {
			// 迭代之间允许取消：每次写缓存自包含，中断不破坏一致性。
			// 此时尚未落账任何结果，已获取和未获取的认领都要释放；
			// ctx 已取消，释放必须走独立 ctx 否则 Del 发不出去
			if err := ctx.Err(); err != nil {
				s.releaseDetached(pending)
				return err
			}
			tx, err := s.client.FetchTransaction(ctx, si.Signature)
			results = append(results, fetchResult{si: si, tx: tx, err: err})
			if err != nil && s.cfg.OnFetchError == AbortOnFetchError {
				break
			}
		}
	}

	for i, r := range results {
		if r.err != nil {
			s.releaseSafe(ctx, []core.SignatureInfo{r.si})
			terr := &TransportError{Op: OpFetchTransaction, Sig: r.si.Signature, Err: r.err}
			if s.cfg.OnFetchError == AbortOnFetchError {
				s.releaseSafe(ctx, pendingAfter(pending, i+1))
				return terr
			}
			// 跳过失败签名：不写缓存、不写墓碑，下次同步重试
			logger.Warnf("[syncer] fetch failed, skipped: wallet=%s sig=%s err=%v",
				s.wallet, r.si.Signature.Short(), r.err)
			continue
		}
		s.apply(ctx, r, outcome)
	}
	return nil
}

// apply 将一笔已获取的交易分类并写入缓存。
func (s *Syncer) apply(ctx context.Context, r fetchResult, outcome *Outcome) {
	outcome.Examined++

	if r.tx == nil {
		// 节点无此交易记录：与"获取失败"严格区分。
		// 策略为 RetryMissing 时不写任何条目，留待下次同步重试；
		// TombstoneMissing 则视为永久缺失，写墓碑。
		if s.cfg.OnMissing == TombstoneMissing {
			if err := s.cache.PutTombstone(r.si.Signature); err != nil {
				logger.Errorf("[syncer] tombstone insert failed: %v", err)
			}
			s.markIrrelevant(ctx, r.si.Signature)
		} else {
			s.release(ctx, []core.SignatureInfo{r.si})
		}
		return
	}

	if op, ok := classifier.Classify(r.tx); ok {
		record := &core.ClassifiedTx{
			Opcode:  op,
			Opcodes: classifier.ClassifyAll(r.tx),
			Sig:     r.si,
			Tx:      r.tx,
		}
		if err := s.cache.PutRecord(record); err != nil {
			logger.Errorf("[syncer] record insert failed: %v", err)
			return
		}
		outcome.NewRecords = append(outcome.NewRecords, record)
		if s.claims != nil {
			if err := s.claims.MarkClassified(ctx, s.wallet, r.si.Signature); err != nil {
				logger.Warnf("[syncer] mark classified failed: sig=%s err=%v", r.si.Signature.Short(), err)
			}
		}
		return
	}

	if err := s.cache.PutTombstone(r.si.Signature); err != nil {
		logger.Errorf("[syncer] tombstone insert failed: %v", err)
		return
	}
	s.markIrrelevant(ctx, r.si.Signature)
}

func (s *Syncer) markIrrelevant(ctx context.Context, sig types.Signature) {
	if s.claims == nil {
		return
	}
	if err := s.claims.MarkIrrelevant(ctx, s.wallet, sig); err != nil {
		logger.Warnf("[syncer] mark irrelevant failed: sig=%s err=%v", sig.Short(), err)
	}
}

const releaseTimeout = 3 * time.Second

// releaseSafe 释放认领；外部 ctx 已取消时改用独立 ctx（并发预取被取消时走这条路）。
func (s *Syncer) releaseSafe(ctx context.Context, sigs []core.SignatureInfo) {
	if ctx.Err() != nil {
		s.releaseDetached(sigs)
		return
	}
	s.release(ctx, sigs)
}

// releaseDetached 在外部 ctx 已取消后释放认领，用独立短超时 ctx 保证请求能发出。
func (s *Syncer) releaseDetached(sigs []core.SignatureInfo) {
	if s.claims == nil || len(sigs) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	s.release(ctx, sigs)
}

// release 释放未完成签名的跨实例认领占位，让它们可被再次尝试。
func (s *Syncer) release(ctx context.Context, sigs []core.SignatureInfo) {
	if s.claims == nil {
		return
	}
	for _, si := range sigs {
		if err := s.claims.Release(ctx, s.wallet, si.Signature); err != nil {
			logger.Warnf("[syncer] release claim failed: sig=%s err=%v", si.Signature.Short(), err)
		}
	}
}

func pendingAfter(pending []core.SignatureInfo, from int) []core.SignatureInfo {
	if from >= len(pending) {
		return nil
	}
	return pending[from:]
}
