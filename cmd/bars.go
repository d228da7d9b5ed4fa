package cmd

import (
	"fmt"
	"strings"

	"github.com/jing2uo/daybar/datasource"
	"github.com/jing2uo/daybar/model"
)

type BarsOptions struct {
	ConfigPath string
	DBType     string
	DSN        string
	Symbol     string
	Date       string
	Count      int
	Fields     []string
	NoSkip     bool
}

// Bars 查询并打印一只合约的前复权历史窗口
func Bars(opts BarsOptions) error {
	date, err := model.ParseDate(opts.Date)
	if err != nil {
		return err
	}

	repo, err := OpenRepository(opts.ConfigPath, opts.DBType, opts.DSN)
	if err != nil {
		return err
	}
	defer repo.Close()

	ds := datasource.New(repo)

	ins, err := FindInstrument(ds, opts.Symbol)
	if err != nil {
		return err
	}

	var fields []string
	if len(opts.Fields) > 0 {
		fields = opts.Fields
	}

	bars, err := ds.HistoryBars(ins, opts.Count, datasource.FrequencyDaily, fields, date, !opts.NoSkip)
	if err != nil {
		return err
	}
	if bars.Len() == 0 {
		fmt.Printf("📭 %s 在 %s 之前没有可用数据\n", opts.Symbol, model.FormatDate(date))
		return nil
	}

	fmt.Printf("📊 %s (%s) 截止 %s 共 %d 根日线\n",
		ins.OrderBookID, ins.Type, model.FormatDate(date), bars.Len())
	fmt.Printf("%-12s %s\n", "date", strings.Join(bars.Fields, "  "))
	for i := 0; i < bars.Len(); i++ {
		row := make([]string, 0, len(bars.Fields))
		for _, f := range bars.Fields {
			row = append(row, fmt.Sprintf("%.4f", bars.Cols[f][i]))
		}
		fmt.Printf("%-12s %s\n", model.FormatDate(bars.Dates[i]), strings.Join(row, "  "))
	}
	return nil
}
