package datasource

import (
	"errors"
	"testing"

	"github.com/jing2uo/daybar/model"
)

func TestPartitionOf(t *testing.T) {
	tests := []struct {
		typ  model.InstrumentType
		want model.Partition
	}{
		{model.TypeCS, model.PartitionStock},
		{model.TypeINDX, model.PartitionIndex},
		{model.TypeFuture, model.PartitionFuture},
		{model.TypeETF, model.PartitionFund},
		{model.TypeLOF, model.PartitionFund},
		{model.TypeFenjiA, model.PartitionFund},
		{model.TypeFenjiB, model.PartitionFund},
		{model.TypeFenjiMu, model.PartitionFund},
	}
	for _, tt := range tests {
		got, err := partitionOf(tt.typ)
		if err != nil {
			t.Fatalf("partitionOf(%s): unexpected error: %v", tt.typ, err)
		}
		if got != tt.want {
			t.Errorf("partitionOf(%s) = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestPartitionOfUnknownType(t *testing.T) {
	_, err := partitionOf("Bond")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestAdjustmentExempt(t *testing.T) {
	exempt := []model.InstrumentType{model.TypeFuture, model.TypeINDX}
	for _, typ := range exempt {
		if !adjustmentExempt(typ) {
			t.Errorf("adjustmentExempt(%s) = false, want true", typ)
		}
	}

	adjusted := []model.InstrumentType{
		model.TypeCS, model.TypeETF, model.TypeLOF,
		model.TypeFenjiA, model.TypeFenjiB, model.TypeFenjiMu,
	}
	for _, typ := range adjusted {
		if adjustmentExempt(typ) {
			t.Errorf("adjustmentExempt(%s) = true, want false", typ)
		}
	}
}
