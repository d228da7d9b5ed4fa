package datasource

import (
	"fmt"

	"github.com/jing2uo/daybar/model"
)

// partitionOf 把合约类别映射到日线分区。
// 类别集合封闭，不认识的类别直接报错而不是落到某个默认分区。
func partitionOf(t model.InstrumentType) (model.Partition, error) {
	switch t {
	case model.TypeCS:
		return model.PartitionStock, nil
	case model.TypeINDX:
		return model.PartitionIndex, nil
	case model.TypeFuture:
		return model.PartitionFuture, nil
	case model.TypeETF, model.TypeLOF, model.TypeFenjiA, model.TypeFenjiB, model.TypeFenjiMu:
		return model.PartitionFund, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// adjustmentExempt 期货与指数的结算价值语义下复权无意义
func adjustmentExempt(t model.InstrumentType) bool {
	return t == model.TypeFuture || t == model.TypeINDX
}
