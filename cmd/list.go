// cmd/list.go
package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"dotlink/internal/config"
	"dotlink/internal/link"
)

// listCmd 列出配置文件中的所有链接，不做任何修改
var listCmd = &cobra.Command{
	Use:   "list <config_file>",
	Short: "列出配置文件中定义的链接",
	Long:  `读取并校验配置文件，以表格形式列出其中定义的所有链接及对应的 mklink 参数。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := config.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(specs) == 0 {
			fmt.Fprintln(out, "配置文件中没有定义任何链接。")
			return nil
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"名称", "类型", "参数", "dot_path", "loc_path"})
		table.SetAutoWrapText(false)

		for _, spec := range specs {
			table.Append([]string{
				spec.Name,
				spec.Kind.String(),
				link.Flag(spec.Kind),
				spec.SourcePath,
				spec.TargetPath,
			})
		}

		table.Render()
		fmt.Fprintf(out, "\n共 %d 个链接。\n", len(specs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
