package service

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"lending-client-sol/internal/logic/core"
	"lending-client-sol/internal/logic/dispatcher"
	"lending-client-sol/internal/mq"
	"lending-client-sol/internal/svc"
	"lending-client-sol/internal/types"
	"lending-client-sol/pkg/logger"
)

const defaultSendTimeout = 5 * time.Second

// HistorySyncService 周期性地对配置的每个钱包执行一次有界增量同步，
// 并把新分类出的记录发布到 Kafka（已配置时）。
// 单次同步最多检查 MaxPerSync 个签名，深历史钱包靠多轮追平。
type HistorySyncService struct {
	svcCtx   *svc.ServiceContext
	interval time.Duration
	stopChan chan struct{}
	ctx      context.Context
	cancel   func(err error)
}

func NewHistorySyncService(svcCtx *svc.ServiceContext) *HistorySyncService {
	intervalS := svcCtx.Config.SyncConf.IntervalS
	if intervalS <= 0 {
		intervalS = 30
	}
	ctx, cancel := context.WithCancelCause(context.Background())
	return &HistorySyncService{
		svcCtx:   svcCtx,
		interval: time.Duration(intervalS) * time.Second,
		stopChan: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *HistorySyncService) Start() {
	s.scheduleNext()
	<-s.stopChan
}

func (s *HistorySyncService) scheduleNext() {
	time.AfterFunc(s.interval, func() {
		s.syncAll()
		// 如果没有被 Stop，就继续调度
		select {
		case <-s.ctx.Done():
			return
		default:
			s.scheduleNext()
		}
	})
}

func (s *HistorySyncService) Stop() {
	s.cancel(errors.New("HistorySyncService stop"))
	select {
	case <-s.stopChan:
		// 已关闭，无需重复关闭
	default:
		close(s.stopChan)
	}
}

func (s *HistorySyncService) syncAll() {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[HistorySyncService] syncAll panic: %v\n%s", r, debug.Stack())
		}
	}()

	for _, wallet := range s.svcCtx.Wallets {
		if err := s.syncWallet(wallet); err != nil {
			logger.Warnf("[HistorySyncService] 同步失败: wallet=%s err=%v", wallet, err)
		}
		if s.ctx.Err() != nil {
			return
		}
	}
}

func (s *HistorySyncService) syncWallet(wallet types.Pubkey) error {
	sync, ok := s.svcCtx.Syncers[wallet]
	if !ok {
		return nil
	}

	start := time.Now()
	outcome, err := sync.Sync(s.ctx)
	if err != nil {
		return err
	}
	logger.Infof("[HistorySyncService] wallet=%s examined=%d new=%d total=%d 耗时=%v",
		wallet, outcome.Examined, len(outcome.NewRecords), len(outcome.Records), time.Since(start))

	if s.svcCtx.Producer == nil || len(outcome.NewRecords) == 0 {
		return nil
	}
	return s.publish(wallet, outcome.NewRecords)
}

// publish 把本轮新分类记录发布到 Kafka。发布失败只告警不中断同步：
// 缓存仍然持有记录，下游按签名 key 幂等，必要时下一轮不会重复分类但可由运维重放。
func (s *HistorySyncService) publish(wallet types.Pubkey, records []*core.ClassifiedTx) error {
	kafkaCfg := s.svcCtx.Config.KafkaProducerConf
	jobs, err := dispatcher.BuildRecordJobs(wallet, records, kafkaCfg.Topic, kafkaCfg.Partitions)
	if err != nil {
		return err
	}

	timeout := defaultSendTimeout
	if ms := s.svcCtx.Config.EventSendTimeoutMs; ms > 0 {
		timeout = time.Duration(ms) * time.Millisecond
	}

	okJobs, failed := mq.SendRecordJobs(s.ctx, s.svcCtx.Producer, jobs, timeout)
	if len(failed) > 0 {
		for _, f := range failed {
			logger.Warnf("[HistorySyncService] 记录发布失败: topic=%s key=%s err=%v",
				f.Job.Topic, string(f.Job.Key), f.Err)
		}
	}
	logger.Infof("[HistorySyncService] 记录发布完成: wallet=%s ok=%d failed=%d",
		wallet, len(okJobs), len(failed))
	return nil
}
