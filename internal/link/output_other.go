//go:build !windows

// internal/link/output_other.go
package link

// 非 Windows 系统没有 ANSI 代码页，输出按 UTF-8 处理
func decodeOutput(b []byte) string {
	return decodeWithCodePage(b, 0)
}
