package bookings

import (
	"testing"
	"time"

	"mobitrack/models"

	"github.com/stretchr/testify/assert"
)

func TestExportRow(t *testing.T) {
	created := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	b := models.Booking{
		ID:           "b-1",
		Username:     "asha",
		BookingDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		MobileModel:  "Galaxy S24",
		BookingPrice: 500,
		SellingPrice: 600,
		Platform:     "Amazon",
		Card:         "hdfc-1",
		Dealer:       "City Mobiles",
		Status:       models.StatusPaymentDone,
		CreatedAt:    created,
	}

	row := ExportRow(b)

	assert.Len(t, row, len(exportHeader))
	assert.Equal(t, "b-1", row[0])
	assert.Equal(t, "asha", row[1])
	assert.Equal(t, "2025-03-10", row[2])
	assert.Equal(t, "Galaxy S24", row[3])
	assert.Equal(t, "500.00", row[4])
	assert.Equal(t, "600.00", row[5])
	assert.Equal(t, "payment_done", row[9])
	assert.Equal(t, "false", row[10])
}
