//go:build windows

// internal/link/output_windows.go
package link

import "golang.org/x/sys/windows"

func decodeOutput(b []byte) string {
	return decodeWithCodePage(b, windows.GetACP())
}
