package config

import (
	"lending-client-sol/internal/logic/syncer"
	"lending-client-sol/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RpcConfig 表示 Solana JSON-RPC 节点配置
type RpcConfig struct {
	Endpoint string `yaml:"endpoint"` // 节点地址，例如 https://api.mainnet-beta.solana.com
}

// SyncConfig 表示历史交易同步配置
type SyncConfig struct {
	IntervalS    int    `yaml:"interval_s"`     // 每个钱包两次同步之间的间隔（秒）
	MaxPerSync   int    `yaml:"max_per_sync"`   // 单次同步最多新检查的签名数（默认 100）
	FetchWorkers int    `yaml:"fetch_workers"`  // 并发获取交易的 worker 数，<=1 为严格顺序
	OnFetchError string `yaml:"on_fetch_error"` // 单笔获取失败策略："skip"（默认）/ "abort"
	OnMissing    string `yaml:"on_missing"`     // 节点无记录策略："retry"（默认）/ "tombstone"
}

func (c *SyncConfig) ToSyncerConfig() syncer.Config {
	cfg := syncer.Config{
		MaxPerSync:   c.MaxPerSync,
		FetchWorkers: c.FetchWorkers,
	}
	if c.OnFetchError == "abort" {
		cfg.OnFetchError = syncer.AbortOnFetchError
	}
	if c.OnMissing == "tombstone" {
		cfg.OnMissing = syncer.TombstoneMissing
	}
	return cfg
}

// KafkaProducerConfig 表示记录发布相关配置；Brokers 为空时不启用发布
type KafkaProducerConfig struct {
	Brokers    string `yaml:"brokers"`    // Kafka broker 地址，多个用英文逗号分隔
	BatchSize  int    `yaml:"batch_size"` // 批处理大小（单位字节）
	LingerMs   int    `yaml:"linger_ms"`  // 批处理最大延迟（毫秒）
	Topic      string `yaml:"topic"`      // 借贷交易记录 topic
	Partitions int    `yaml:"partitions"` // topic 分区数
}

// Config 是主配置结构体，用于驱动钱包历史同步服务
type Config struct {
	LogConf           LogConfig           `yaml:"logger"`         // 日志配置
	RpcConf           RpcConfig           `yaml:"rpc"`            // RPC 节点配置
	SyncConf          SyncConfig          `yaml:"sync"`           // 同步管道配置
	KafkaProducerConf KafkaProducerConfig `yaml:"kafka_producer"` // 记录发布配置

	RedisAddr string `yaml:"redis_addr"` // Redis 地址，为空时不启用跨实例认领

	// Wallets 为需要持续同步的钱包地址列表（base58）。
	// 缓存按钱包各自独立：换钱包即换缓存实例。
	Wallets []string `yaml:"wallets"`

	// EventSendTimeoutMs 为单条记录发送到 Kafka 并等待 ack 的超时时间（毫秒）
	EventSendTimeoutMs int `yaml:"event_send_timeout_ms"`
}
