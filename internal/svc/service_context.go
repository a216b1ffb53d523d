package svc

import (
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"

	"lending-client-sol/internal/cache"
	"lending-client-sol/internal/config"
	"lending-client-sol/internal/logic/progress"
	"lending-client-sol/internal/logic/syncer"
	"lending-client-sol/internal/logic/txadapter"
	"lending-client-sol/internal/mq"
	"lending-client-sol/internal/types"
	"lending-client-sol/pkg/logger"
)

// ServiceContext 聚合同步服务依赖的共享资源。
// 每个钱包持有独立的缓存与 Syncer：缓存由这里构造并传入管道，进程生命周期内常驻。
type ServiceContext struct {
	Config   config.Config
	Client   *txadapter.RpcChainClient
	Claims   *progress.Manager // 可为 nil（未配置 Redis）
	Producer *kafka.Producer   // 可为 nil（未配置 Kafka）
	Syncers  map[types.Pubkey]*syncer.Syncer
	Wallets  []types.Pubkey // 配置顺序，供按序调度
}

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	if c.RpcConf.Endpoint == "" {
		return nil, fmt.Errorf("rpc endpoint is required")
	}

	wallets := make([]types.Pubkey, 0, len(c.Wallets))
	for _, s := range c.Wallets {
		w, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address %q: %w", s, err)
		}
		wallets = append(wallets, w)
	}

	client := txadapter.NewRpcChainClient(c.RpcConf.Endpoint)

	// 跨实例认领（可选）
	var claims *progress.Manager
	if c.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		claims = progress.NewManager(rdb)
	}

	// 记录发布（可选）
	var producer *kafka.Producer
	if c.KafkaProducerConf.Brokers != "" {
		p, err := mq.NewKafkaProducer(c.KafkaProducerConf)
		if err != nil {
			logger.Errorf("Kafka producer 初始化失败: %v", err)
			return nil, err
		}
		producer = p
	}

	syncCfg := c.SyncConf.ToSyncerConfig()

	// 注意不能把 nil 指针直接塞进接口参数，否则接口判空失效
	var claimStore syncer.ClaimStore
	if claims != nil {
		claimStore = claims
	}

	syncers := make(map[types.Pubkey]*syncer.Syncer, len(wallets))
	for _, w := range wallets {
		syncers[w] = syncer.New(w, client, cache.NewTxCache(), claimStore, syncCfg)
	}

	ctx := &ServiceContext{
		Config:   c,
		Client:   client,
		Claims:   claims,
		Producer: producer,
		Syncers:  syncers,
		Wallets:  wallets,
	}

	logger.Infof("服务上下文初始化完成: wallets=%d kafka=%v redis=%v",
		len(wallets), producer != nil, claims != nil)
	return ctx, nil
}

// Close 关闭服务上下文中的资源
func (ctx *ServiceContext) Close() {
	if ctx.Producer != nil {
		ctx.Producer.Close()
	}
}
