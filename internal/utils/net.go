package utils

import "net"

// GetLocalIP 返回本机的出网 IPv4 地址，仅用于 client.id 等标识用途，失败时返回 "unknown"。
func GetLocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "unknown"
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "unknown"
}
