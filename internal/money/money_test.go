package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyArithmetic(t *testing.T) {
	a := FromCents(3500)
	b := FromCents(1250)

	assert.Equal(t, int64(4750), a.Add(b).Cents())
	assert.Equal(t, int64(2250), a.Sub(b).Cents())
	assert.Equal(t, int64(-2250), b.Sub(a).Cents())
	assert.True(t, b.Sub(a).IsNegative())
}

func TestMoneyMulQty(t *testing.T) {
	unitPrice := FromCents(3500)

	assert.Equal(t, int64(10500), unitPrice.MulQty(3).Cents())
	assert.Equal(t, int64(0), unitPrice.MulQty(0).Cents())

	// Sums of per-unit multiplications must equal one big multiplication,
	// which only holds with exact integer arithmetic.
	var sum Money
	for i := 0; i < 7; i++ {
		sum = sum.Add(unitPrice.MulQty(1))
	}
	assert.Equal(t, unitPrice.MulQty(7), sum)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "35.00", FromCents(3500).String())
	assert.Equal(t, "0.05", FromCents(5).String())
	assert.Equal(t, "-12.30", FromCents(-1230).String())
}
