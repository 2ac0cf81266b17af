// dotlink/cmd/root.go
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dotlink/internal/errors"
	"dotlink/internal/logging"
	"dotlink/internal/util"
)

var verbosity int

// rootCmd 读取配置文件并为其中的每个条目创建链接
var rootCmd = &cobra.Command{
	Use:   "dotlink <config_file>",
	Short: "根据 TOML 配置文件为 dotfile 创建硬链接或 junction",
	Long: `dotlink 读取一个 TOML 配置文件，为其中的每个条目调用 mklink 创建链接。

配置文件中每个表代表一个链接:

  [nvim]
  type = "dir"          # file 创建硬链接 (/H)，dir/directory/junction 创建 junction (/J)
  dot_path = 'D:\dotfiles\nvim'
  loc_path = 'C:\Users\me\AppData\Local\nvim'

链接按名称顺序依次创建，任何一个失败都会立即停止。
配置文件与子命令同名时 (如 list、help)，请写成 ./list 的形式。`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	// 在任何子命令执行之前初始化日志
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLogger(verbosity)
	},
	RunE: runLink,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "输出更详细的日志 (-v, -vv, -vvv)")
}

// errorPrefix 按出错的阶段给错误信息加上前缀。
func errorPrefix(err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrConfigIO, errors.ErrConfigParse:
		return "读取配置文件出错"
	case errors.ErrConfigSchema:
		return "解析配置文件出错"
	case errors.ErrLinkCreate:
		return "创建链接出错"
	default:
		return "错误"
	}
}

// run 执行命令并返回进程退出码，出错时在 stderr 打印带阶段前缀的信息。
func run(args []string) int {
	// SetArgs(nil) 会让 cobra 回退到 os.Args
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		util.ErrorPrint("%s: %v\n", errorPrefix(err), err)
		return 1
	}
	return 0
}

// Execute 是 main.main() 调用的入口。
func Execute() {
	if code := run(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}
