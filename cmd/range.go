package cmd

import (
	"fmt"

	"github.com/jing2uo/daybar/datasource"
	"github.com/jing2uo/daybar/model"
)

// Range 打印快照数据的可用区间与交易日历边界
func Range(cfgPath, dbType, dsn string) error {
	repo, err := OpenRepository(cfgPath, dbType, dsn)
	if err != nil {
		return err
	}
	defer repo.Close()

	ds := datasource.New(repo)

	first, last, err := ds.AvailableDataRange(datasource.FrequencyDaily)
	if err != nil {
		return err
	}
	if first == 0 {
		fmt.Println("📭 快照库中没有基准指数数据")
		return nil
	}
	fmt.Printf("📅 日线数据区间: %s 至 %s\n", model.FormatDate(first), model.FormatDate(last))

	calendar, err := ds.GetTradingCalendar()
	if err != nil {
		return err
	}
	if len(calendar) > 0 {
		fmt.Printf("📆 交易日历: %s 至 %s，共 %d 个交易日\n",
			model.FormatDate(calendar[0]), model.FormatDate(calendar[len(calendar)-1]), len(calendar))
	}
	return nil
}
