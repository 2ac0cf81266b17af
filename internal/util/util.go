package util

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// 定义颜色配置
var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// Stderr 是错误和警告信息的输出目标，测试中可以替换。
var Stderr io.Writer = os.Stderr

// 定义打印函数变量，错误和警告固定输出到 Stderr
var (
	WarningPrint = func(format string, a ...interface{}) {
		warningColor.Fprintf(Stderr, format, a...)
	}

	ErrorPrint = func(format string, a ...interface{}) {
		errorColor.Fprintf(Stderr, format, a...)
	}

	// SuccessPrint 输出到 w（通常是 cmd.OutOrStdout()）
	SuccessPrint = func(w io.Writer, format string, a ...interface{}) {
		successColor.Fprintf(w, format, a...)
	}
)
