// cmd/link.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dotlink/internal/config"
	"dotlink/internal/link"
	"dotlink/internal/util"
)

// runner 是创建链接时使用的命令执行器，测试中替换为假实现。
var runner link.Runner = link.ExecRunner{}

func runLink(cmd *cobra.Command, args []string) error {
	// 没有参数时只打印用法，按成功处理
	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "用法: %s <config_file>\n", cmd.Root().Name())
		return nil
	}

	specs, err := config.Load(args[0])
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		util.WarningPrint("配置文件 '%s' 中没有定义任何链接。\n", args[0])
		return nil
	}

	if err := link.NewCreator(runner).CreateAll(cmd.Context(), specs); err != nil {
		return err
	}

	util.SuccessPrint(cmd.OutOrStdout(), "已创建 %d 个链接。\n", len(specs))
	return nil
}
