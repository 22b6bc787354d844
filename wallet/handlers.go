package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"mobitrack/models"
	"mobitrack/utils"

	"github.com/julienschmidt/httprouter"
)

// GetWallet returns the admin wallet's balance and transaction log, creating
// the wallet document on first access.
func GetWallet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	wal, err := GetOrCreate(ctx)
	if err != nil {
		log.Printf("GetWallet: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, wal)
}

// WithdrawProfit debits the wallet with a profit_withdrawal transaction.
func WithdrawProfit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Amount float64 `json:"amount"`
		Notes  string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be a positive number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	notes := body.Notes
	if notes == "" {
		notes = "No notes"
	}
	wal, err := RecordTransaction(ctx, models.WalletTransaction{
		Type:        models.TxnProfitWithdrawal,
		Amount:      body.Amount,
		Description: fmt.Sprintf("Profit withdrawn by %s (%s)", utils.GetUsernameFromRequest(r), notes),
	})
	if err != nil {
		log.Printf("WithdrawProfit: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, wal)
}
