package model

// TenorForSpan 根据区间长度选择收益率曲线的期限档位，
// 取不超过区间天数的最长期限
func TenorForSpan(start, end uint64) string {
	days := int(DateToTime(end).Sub(DateToTime(start)).Hours() / 24)

	switch {
	case days < 30:
		return "0S"
	case days < 90:
		return "1M"
	case days < 180:
		return "3M"
	case days < 365:
		return "6M"
	case days < 730:
		return "1Y"
	case days < 1095:
		return "2Y"
	default:
		return "3Y"
	}
}
