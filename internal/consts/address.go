package consts

import "lending-client-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr  = "11111111111111111111111111111111"
	TokenProgramStr   = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	LendingProgramStr = "TokenLending1111111111111111111111111111111"

	// Sysvars（指令账户表中引用的系统变量账户）
	SysvarClockStr = "SysvarC1ock11111111111111111111111111111111"
	SysvarRentStr  = "SysvarRent111111111111111111111111111111111"
)

var (
	// Programs
	SystemProgram  = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram   = types.PubkeyFromBase58(TokenProgramStr)
	LendingProgram = types.PubkeyFromBase58(LendingProgramStr)

	// Sysvars
	SysvarClock = types.PubkeyFromBase58(SysvarClockStr)
	SysvarRent  = types.PubkeyFromBase58(SysvarRentStr)
)
