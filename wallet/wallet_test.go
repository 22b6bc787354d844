package wallet

import (
	"testing"

	"mobitrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	cases := []struct {
		txnType string
		amount  float64
		want    float64
	}{
		{models.TxnCredit, 300, 300},
		{models.TxnProfitAddition, 50, 50},
		{models.TxnDebit, 600, -600},
		{models.TxnProfitWithdrawal, 120, -120},
	}
	for _, c := range cases {
		got, err := SignedAmount(c.txnType, c.amount)
		require.NoError(t, err, c.txnType)
		assert.Equal(t, c.want, got, c.txnType)
	}
}

func TestSignedAmountRejectsNonPositive(t *testing.T) {
	for _, amount := range []float64{0, -10} {
		_, err := SignedAmount(models.TxnCredit, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestSignedAmountRejectsUnknownType(t *testing.T) {
	_, err := SignedAmount("transfer", 10)
	assert.ErrorIs(t, err, ErrUnknownTxnType)
}

// The balance after any sequence of transactions equals the sum of amounts
// signed by type.
func TestBalanceEqualsSignedSum(t *testing.T) {
	txns := []models.WalletTransaction{
		{Type: models.TxnCredit, Amount: 300},
		{Type: models.TxnDebit, Amount: 600},
		{Type: models.TxnCredit, Amount: 150},
		{Type: models.TxnProfitWithdrawal, Amount: 40},
		{Type: models.TxnProfitAddition, Amount: 90},
	}

	balance := 0.0
	for _, txn := range txns {
		delta, err := SignedAmount(txn.Type, txn.Amount)
		require.NoError(t, err)
		balance += delta
	}
	assert.InDelta(t, -100.0, balance, 1e-9)
}
