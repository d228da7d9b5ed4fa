package model

import (
	"fmt"
	"time"
)

// 日期在模块内部统一用 uint64 的 YYYYMMDD 编码，
// 便于比较与二分查找；time.Time 只出现在存储边界和 CLI 入口。

// TimeToDate 把 time.Time 转为 YYYYMMDD 编码
func TimeToDate(t time.Time) uint64 {
	y, m, d := t.Date()
	return uint64(y)*10000 + uint64(m)*100 + uint64(d)
}

// DateToTime 把 YYYYMMDD 编码转回 time.Time（UTC 零点）
func DateToTime(d uint64) time.Time {
	return time.Date(int(d/10000), time.Month(d/100%100), int(d%100), 0, 0, 0, 0, time.UTC)
}

// ParseDate 解析 CLI 传入的日期，接受 YYYY-MM-DD 或 YYYYMMDD
func ParseDate(s string) (uint64, error) {
	for _, layout := range []string{"2006-01-02", "20060102"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeToDate(t), nil
		}
	}
	return 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or YYYYMMDD", s)
}

// FormatDate 把 YYYYMMDD 编码格式化为 YYYY-MM-DD
func FormatDate(d uint64) string {
	return fmt.Sprintf("%04d-%02d-%02d", d/10000, d/100%100, d%100)
}
