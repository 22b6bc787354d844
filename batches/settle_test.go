package batches

import (
	"testing"

	"mobitrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPaymentPartial(t *testing.T) {
	paid, remaining, status, err := ApplyPayment(300, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, paid)
	assert.Equal(t, 200.0, remaining)
	assert.Equal(t, models.BatchPartiallyPaid, status)
}

func TestApplyPaymentCompletes(t *testing.T) {
	paid, remaining, status, err := ApplyPayment(300, 0, 300)
	require.NoError(t, err)
	assert.Equal(t, 300.0, paid)
	assert.Equal(t, 0.0, remaining)
	assert.Equal(t, models.BatchCompletedPayment, status)
}

func TestApplyPaymentOverpayClampsRemaining(t *testing.T) {
	paid, remaining, status, err := ApplyPayment(300, 250, 100)
	require.NoError(t, err)
	assert.Equal(t, 350.0, paid)
	assert.Equal(t, 0.0, remaining, "remaining must be clamped at zero")
	assert.Equal(t, models.BatchCompletedPayment, status)
}

func TestApplyPaymentAccumulates(t *testing.T) {
	total := 300.0
	paid := 0.0
	var remaining float64
	var status string
	var err error

	for _, amount := range []float64{50, 100, 150} {
		paid, remaining, status, err = ApplyPayment(total, paid, amount)
		require.NoError(t, err)
	}
	assert.Equal(t, 300.0, paid)
	assert.Equal(t, 0.0, remaining)
	assert.Equal(t, models.BatchCompletedPayment, status)
}

func TestApplyPaymentRejectsNonPositive(t *testing.T) {
	for _, amount := range []float64{0, -1, -300} {
		_, _, _, err := ApplyPayment(300, 0, amount)
		assert.ErrorIs(t, err, ErrNonPositivePayment)
	}
}

func TestFormatBatchID(t *testing.T) {
	assert.Equal(t, "A001", FormatBatchID(1))
	assert.Equal(t, "A008", FormatBatchID(8))
	assert.Equal(t, "A042", FormatBatchID(42))
	assert.Equal(t, "A999", FormatBatchID(999))
	// past three digits the id simply grows
	assert.Equal(t, "A1000", FormatBatchID(1000))
}

func TestBatchIDsStrictlyIncreasing(t *testing.T) {
	prev := FormatBatchID(1)
	for seq := int64(2); seq < 100; seq++ {
		next := FormatBatchID(seq)
		assert.Greater(t, next, prev)
		prev = next
	}
}
