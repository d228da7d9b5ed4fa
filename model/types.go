package model

// InstrumentType 合约类别，集合是封闭的，部署时即已确定
type InstrumentType string

const (
	TypeCS      InstrumentType = "CS"      // A股股票
	TypeINDX    InstrumentType = "INDX"    // 指数
	TypeFuture  InstrumentType = "Future"  // 期货
	TypeETF     InstrumentType = "ETF"     // 交易型开放式基金
	TypeLOF     InstrumentType = "LOF"     // 上市型开放式基金
	TypeFenjiA  InstrumentType = "FenjiA"  // 分级A
	TypeFenjiB  InstrumentType = "FenjiB"  // 分级B
	TypeFenjiMu InstrumentType = "FenjiMu" // 分级母基金
)

// Instrument 合约元数据，本模块只依赖 OrderBookID 和 Type 两个字段
type Instrument struct {
	OrderBookID      string
	Symbol           string
	Type             InstrumentType
	ListedDate       uint64
	DeListedDate     uint64
	RoundLot         float64
	UnderlyingSymbol string
}

// Bar 单根日线，Values 里只出现该类别实际存在的字段
type Bar struct {
	Datetime uint64
	Values   map[string]float64
}

// BarSeries 单只合约的全量日线，列式存储。
// Dates 严格升序且唯一，各列与 Dates 等长。加载完成后不再修改。
type BarSeries struct {
	Dates  []uint64
	Fields []string
	Cols   map[string][]float64
}

// DatetimeField 所有分区都有的日期列名
const DatetimeField = "datetime"

func (s *BarSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Dates)
}

// HasField 判断列是否存在，datetime 永远视为存在
func (s *BarSeries) HasField(name string) bool {
	if name == DatetimeField {
		return true
	}
	_, ok := s.Cols[name]
	return ok
}

// Slice 取 [lo, hi) 区间的视图，底层数组共享不复制
func (s *BarSeries) Slice(lo, hi int) *BarSeries {
	cols := make(map[string][]float64, len(s.Cols))
	for name, col := range s.Cols {
		cols[name] = col[lo:hi]
	}
	return &BarSeries{Dates: s.Dates[lo:hi], Fields: s.Fields, Cols: cols}
}

// Project 只保留给定字段。fields 为 nil 时原样返回。
// 仅做列筛选，底层数组仍然共享。
func (s *BarSeries) Project(fields []string) *BarSeries {
	if fields == nil {
		return s
	}
	kept := make([]string, 0, len(fields))
	cols := make(map[string][]float64, len(fields))
	for _, name := range fields {
		if name == DatetimeField {
			continue
		}
		if col, ok := s.Cols[name]; ok {
			kept = append(kept, name)
			cols[name] = col
		}
	}
	return &BarSeries{Dates: s.Dates, Fields: kept, Cols: cols}
}

// Row 取第 i 行，返回新 Bar，不暴露内部数组
func (s *BarSeries) Row(i int) *Bar {
	values := make(map[string]float64, len(s.Fields))
	for _, name := range s.Fields {
		values[name] = s.Cols[name][i]
	}
	return &Bar{Datetime: s.Dates[i], Values: values}
}

// FactorSeries 复权因子阶跃序列：StartDates 严格升序，
// 日期 d 生效的因子是最后一个 <= d 的断点对应的值
type FactorSeries struct {
	StartDates []uint64
	Factors    []float64
}

// Dividend 分红记录
type Dividend struct {
	OrderBookID      string
	AnnouncementDate uint64
	BookClosureDate  uint64
	ExDividendDate   uint64
	PayableDate      uint64
	CashBeforeTax    float64
	RoundLot         float64
}

// YieldCurvePoint 收益率曲线上的一个点（长表：日期 × 期限）
type YieldCurvePoint struct {
	Date  uint64
	Tenor string
	Rate  float64
}

// HedgeType 期货账户对冲属性
type HedgeType string

const (
	HedgeSpeculation HedgeType = "speculation"
	HedgeHedging     HedgeType = "hedging"
)

// FutureInfo 期货品种的保证金与手续费配置
type FutureInfo struct {
	UnderlyingSymbol          string
	MarginRate                float64
	CommissionType            string // by_money 或 by_volume
	OpenCommissionRatio       float64
	CloseCommissionRatio      float64
	CloseCommissionTodayRatio float64
}
