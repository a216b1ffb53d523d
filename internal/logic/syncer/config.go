package syncer

// FetchErrorPolicy 决定单笔交易获取失败时管道的行为。
type FetchErrorPolicy int

const (
	// SkipOnFetchError 跳过失败签名继续处理，失败签名不写缓存、下次同步重试（推荐）
	SkipOnFetchError FetchErrorPolicy = 0
	// AbortOnFetchError 在首个失败处中止本次同步（原始前端行为）
	AbortOnFetchError FetchErrorPolicy = 1
)

// MissingPolicy 决定节点查不到交易记录（非获取失败）时的行为。
type MissingPolicy int

const (
	// RetryMissing 不写条目，下次同步再查（缺失可能是节点数据暂时不全）
	RetryMissing MissingPolicy = 0
	// TombstoneMissing 视为永久缺失，写墓碑不再重查
	TombstoneMissing MissingPolicy = 1
)

const defaultMaxPerSync = 100

// Config 为同步管道的行为配置。零值即可用（上限 100、顺序获取、跳过失败、缺失重试）。
type Config struct {
	// MaxPerSync 为单次 Sync 最多新检查的签名数，控制单次调用的延迟与 RPC 压力
	MaxPerSync int
	// FetchWorkers 为并发获取交易的 worker 数，<=1 表示严格顺序获取
	FetchWorkers int

	OnFetchError FetchErrorPolicy
	OnMissing    MissingPolicy
}

func (c Config) withDefaults() Config {
	if c.MaxPerSync <= 0 {
		c.MaxPerSync = defaultMaxPerSync
	}
	if c.FetchWorkers <= 0 {
		c.FetchWorkers = 1
	}
	return c
}
