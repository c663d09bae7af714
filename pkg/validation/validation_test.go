package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type amountRecord struct {
	Amount decimal.Decimal `validate:"decimal_gt=0"`
	Rate   decimal.Decimal `validate:"decimal_gte=0"`
}

func TestDecimalGT(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(amountRecord{Amount: decimal.NewFromInt(1)}))
	assert.Error(t, v.Struct(amountRecord{Amount: decimal.Zero}))
	assert.Error(t, v.Struct(amountRecord{Amount: decimal.NewFromInt(-5)}))
}

func TestDecimalGTE(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(amountRecord{Amount: decimal.NewFromInt(1), Rate: decimal.Zero}))
	assert.NoError(t, v.Struct(amountRecord{Amount: decimal.NewFromInt(1), Rate: decimal.NewFromFloat(3.5)}))
	assert.Error(t, v.Struct(amountRecord{Amount: decimal.NewFromInt(1), Rate: decimal.NewFromFloat(-0.1)}))
}
