package progress

// SigStatus 表示某签名在跨实例维度的检查状态（Redis 编码值）
type SigStatus int

const (
	SigUnknown    SigStatus = 0 // Redis 不存在：从未被任何实例检查
	SigClassified SigStatus = 1 // 已分类为借贷交易
	SigIrrelevant SigStatus = 2 // 已检查，与借贷程序无关（墓碑）
	SigPending    SigStatus = 3 // 某实例已认领、正在获取中（claim-before-fetch 占位）
)

func (s SigStatus) String() string {
	switch s {
	case SigClassified:
		return "classified"
	case SigIrrelevant:
		return "irrelevant"
	case SigPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Done 表示该签名已有最终结论，不需要再次获取
func (s SigStatus) Done() bool {
	return s == SigClassified || s == SigIrrelevant
}
