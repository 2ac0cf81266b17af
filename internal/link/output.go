// internal/link/output.go
package link

import (
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// 简体中文系统的代码页
const codePageGBK = 936

// decodeWithCodePage 把 cmd.exe 的输出按代码页转换为 UTF-8。
// 中文系统下 cmd 按 GBK 输出，直接当 UTF-8 打印会乱码。
func decodeWithCodePage(b []byte, cp uint32) string {
	if len(b) == 0 {
		return ""
	}
	if cp == codePageGBK {
		if decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(b); err == nil {
			return strings.TrimSpace(string(decoded))
		}
	}
	return strings.TrimSpace(string(b))
}
