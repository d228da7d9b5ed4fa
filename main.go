package main

import (
	"fmt"
	"os"

	"github.com/jing2uo/daybar/cmd"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:           "daybar",
		Short:         "Query adjusted daily bars from a market data snapshot",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	var cfgPath, dbType, dsn string
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML 配置文件路径 (可选)")
	rootCmd.PersistentFlags().StringVar(&dbType, "dbtype", "", "数据库类型: duckdb 或 clickhouse (默认 duckdb)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "数据库连接串")

	var symbol, date string
	var count int
	var fields []string
	var noSkip bool

	var barsCmd = &cobra.Command{
		Use:   "bars",
		Short: "Print adjusted history bars for one instrument",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Bars(cmd.BarsOptions{
				ConfigPath: cfgPath,
				DBType:     dbType,
				DSN:        dsn,
				Symbol:     symbol,
				Date:       date,
				Count:      count,
				Fields:     fields,
				NoSkip:     noSkip,
			})
		},
	}
	barsCmd.Flags().StringVar(&symbol, "symbol", "", "合约代码, 如 000001.XSHE (必填)")
	barsCmd.Flags().StringVar(&date, "date", "", "参考日期, YYYY-MM-DD (必填)")
	barsCmd.Flags().IntVar(&count, "count", 10, "返回的日线数量")
	barsCmd.Flags().StringSliceVar(&fields, "fields", nil, "字段筛选, 逗号分隔, 为空时返回全部")
	barsCmd.Flags().BoolVar(&noSkip, "no-skip-suspended", false, "不剔除停牌日")
	barsCmd.MarkFlagRequired("symbol")
	barsCmd.MarkFlagRequired("date")

	var symbols []string
	var all bool
	var output, format string

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export adjusted bars for many instruments",
		RunE: func(c *cobra.Command, args []string) error {
			if !all && len(symbols) == 0 {
				return fmt.Errorf("either --symbols or --all is required")
			}
			return cmd.Export(cmd.ExportOptions{
				ConfigPath: cfgPath,
				DBType:     dbType,
				DSN:        dsn,
				Symbols:    symbols,
				All:        all,
				Date:       date,
				Count:      count,
				Output:     output,
				Format:     format,
			})
		},
	}
	exportCmd.Flags().StringSliceVar(&symbols, "symbols", nil, "合约代码列表, 逗号分隔")
	exportCmd.Flags().BoolVar(&all, "all", false, "导出合约表里的全部合约")
	exportCmd.Flags().StringVar(&date, "date", "", "参考日期, YYYY-MM-DD (必填)")
	exportCmd.Flags().IntVar(&count, "count", 250, "每只合约导出的日线数量")
	exportCmd.Flags().StringVar(&output, "output", "", "输出目录 (必填)")
	exportCmd.Flags().StringVar(&format, "format", "csv", "输出格式: csv 或 parquet")
	exportCmd.MarkFlagRequired("date")
	exportCmd.MarkFlagRequired("output")

	var rangeCmd = &cobra.Command{
		Use:   "range",
		Short: "Print the available daily data range",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Range(cfgPath, dbType, dsn)
		},
	}

	rootCmd.AddCommand(barsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(rangeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "🛑 错误: %v\n", err)
		os.Exit(1)
	}
}
