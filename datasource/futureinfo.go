package datasource

import (
	"fmt"

	"github.com/jing2uo/daybar/model"
)

// cnFutureInfo 国内期货品种的保证金与手续费表。
// 品种集合部署时固定，随交易所调整时整表更新。
var cnFutureInfo = map[string]map[model.HedgeType]model.FutureInfo{
	"IF": {
		model.HedgeSpeculation: {UnderlyingSymbol: "IF", MarginRate: 0.10, CommissionType: "by_money", OpenCommissionRatio: 0.000023, CloseCommissionRatio: 0.000023, CloseCommissionTodayRatio: 0.00069},
		model.HedgeHedging:     {UnderlyingSymbol: "IF", MarginRate: 0.20, CommissionType: "by_money", OpenCommissionRatio: 0.000023, CloseCommissionRatio: 0.000023, CloseCommissionTodayRatio: 0.00069},
	},
	"IC": {
		model.HedgeSpeculation: {UnderlyingSymbol: "IC", MarginRate: 0.12, CommissionType: "by_money", OpenCommissionRatio: 0.000023, CloseCommissionRatio: 0.000023, CloseCommissionTodayRatio: 0.00069},
		model.HedgeHedging:     {UnderlyingSymbol: "IC", MarginRate: 0.20, CommissionType: "by_money", OpenCommissionRatio: 0.000023, CloseCommissionRatio: 0.000023, CloseCommissionTodayRatio: 0.00069},
	},
	"IH": {
		model.HedgeSpeculation: {UnderlyingSymbol: "IH", MarginRate: 0.10, CommissionType: "by_money", OpenCommissionRatio: 0.000023, CloseCommissionRatio: 0.000023, CloseCommissionTodayRatio: 0.00069},
		model.HedgeHedging:     {UnderlyingSymbol: "IH", MarginRate: 0.20, CommissionType: "by_money", OpenCommissionRatio: 0.000023, CloseCommissionRatio: 0.000023, CloseCommissionTodayRatio: 0.00069},
	},
	"TF": {
		model.HedgeSpeculation: {UnderlyingSymbol: "TF", MarginRate: 0.012, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
		model.HedgeHedging:     {UnderlyingSymbol: "TF", MarginRate: 0.012, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
	},
	"T": {
		model.HedgeSpeculation: {UnderlyingSymbol: "T", MarginRate: 0.02, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
		model.HedgeHedging:     {UnderlyingSymbol: "T", MarginRate: 0.02, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
	},
	"CU": {
		model.HedgeSpeculation: {UnderlyingSymbol: "CU", MarginRate: 0.08, CommissionType: "by_money", OpenCommissionRatio: 0.00005, CloseCommissionRatio: 0.00005, CloseCommissionTodayRatio: 0.0001},
		model.HedgeHedging:     {UnderlyingSymbol: "CU", MarginRate: 0.08, CommissionType: "by_money", OpenCommissionRatio: 0.00005, CloseCommissionRatio: 0.00005, CloseCommissionTodayRatio: 0.0001},
	},
	"AL": {
		model.HedgeSpeculation: {UnderlyingSymbol: "AL", MarginRate: 0.08, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
		model.HedgeHedging:     {UnderlyingSymbol: "AL", MarginRate: 0.08, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
	},
	"AU": {
		model.HedgeSpeculation: {UnderlyingSymbol: "AU", MarginRate: 0.07, CommissionType: "by_volume", OpenCommissionRatio: 10, CloseCommissionRatio: 10, CloseCommissionTodayRatio: 0},
		model.HedgeHedging:     {UnderlyingSymbol: "AU", MarginRate: 0.07, CommissionType: "by_volume", OpenCommissionRatio: 10, CloseCommissionRatio: 10, CloseCommissionTodayRatio: 0},
	},
	"RB": {
		model.HedgeSpeculation: {UnderlyingSymbol: "RB", MarginRate: 0.09, CommissionType: "by_money", OpenCommissionRatio: 0.0001, CloseCommissionRatio: 0.0001, CloseCommissionTodayRatio: 0.0001},
		model.HedgeHedging:     {UnderlyingSymbol: "RB", MarginRate: 0.09, CommissionType: "by_money", OpenCommissionRatio: 0.0001, CloseCommissionRatio: 0.0001, CloseCommissionTodayRatio: 0.0001},
	},
	"MA": {
		model.HedgeSpeculation: {UnderlyingSymbol: "MA", MarginRate: 0.07, CommissionType: "by_volume", OpenCommissionRatio: 2, CloseCommissionRatio: 2, CloseCommissionTodayRatio: 6},
		model.HedgeHedging:     {UnderlyingSymbol: "MA", MarginRate: 0.07, CommissionType: "by_volume", OpenCommissionRatio: 2, CloseCommissionRatio: 2, CloseCommissionTodayRatio: 6},
	},
	"SR": {
		model.HedgeSpeculation: {UnderlyingSymbol: "SR", MarginRate: 0.06, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
		model.HedgeHedging:     {UnderlyingSymbol: "SR", MarginRate: 0.06, CommissionType: "by_volume", OpenCommissionRatio: 3, CloseCommissionRatio: 3, CloseCommissionTodayRatio: 0},
	},
	"M": {
		model.HedgeSpeculation: {UnderlyingSymbol: "M", MarginRate: 0.07, CommissionType: "by_volume", OpenCommissionRatio: 1.5, CloseCommissionRatio: 1.5, CloseCommissionTodayRatio: 0},
		model.HedgeHedging:     {UnderlyingSymbol: "M", MarginRate: 0.07, CommissionType: "by_volume", OpenCommissionRatio: 1.5, CloseCommissionRatio: 1.5, CloseCommissionTodayRatio: 0},
	},
}

// GetFutureInfo 按标的品种和对冲属性查保证金/手续费配置。
// 品种表是封闭集合，查不到说明部署配置有问题，直接报错。
func (d *DataSource) GetFutureInfo(ins *model.Instrument, hedgeType model.HedgeType) (*model.FutureInfo, error) {
	byHedge, ok := cnFutureInfo[ins.UnderlyingSymbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnderlying, ins.UnderlyingSymbol)
	}
	info, ok := byHedge[hedgeType]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownUnderlying, ins.UnderlyingSymbol, hedgeType)
	}
	return &info, nil
}
