package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func TestBuildUpdateUserCannotTouchDealerFields(t *testing.T) {
	req := UpdateRequest{
		Notes:              strPtr("all good"),
		Status:             strPtr("payment_done"),
		Dealer:             strPtr("Shady Phones Inc"),
		BookingID:          strPtr("ORD-999"),
		AssignedToDealerID: strPtr("dealer-1"),
		DealerAmount:       numPtr(9000),
	}

	set := BuildUpdate("user", req)

	assert.Equal(t, "all good", set["notes"])
	assert.NotContains(t, set, "status")
	assert.NotContains(t, set, "dealer")
	assert.NotContains(t, set, "bookingId")
	assert.NotContains(t, set, "assignedToDealerId")
	assert.NotContains(t, set, "dealerAmount")
}

func TestBuildUpdateAdminFields(t *testing.T) {
	req := UpdateRequest{
		SellingPrice:       numPtr(650),
		Status:             strPtr("delivered"),
		Dealer:             strPtr("City Mobiles"),
		BookingID:          strPtr("ORD-123"),
		AssignedToDealerID: strPtr("dealer-7"),
		DealerAmount:       numPtr(500),
		BookingAccount:     strPtr("acct-2"),
	}

	set := BuildUpdate("admin", req)

	assert.Equal(t, 650.0, set["sellingPrice"])
	assert.Equal(t, "delivered", set["status"])
	assert.Equal(t, "City Mobiles", set["dealer"])
	assert.Equal(t, "ORD-123", set["bookingId"])
	assert.Equal(t, "dealer-7", set["assignedToDealerId"])
	assert.Equal(t, 500.0, set["dealerAmount"])
	assert.Equal(t, "acct-2", set["bookingAccount"])
}

func TestBuildUpdateAdminCannotEditUserOnlyFields(t *testing.T) {
	req := UpdateRequest{
		MobileModel:  strPtr("Pixel 9"),
		BookingPrice: numPtr(123),
		Notes:        strPtr("note"),
	}

	set := BuildUpdate("admin", req)

	// the admin edit set matches the original endpoint: core purchase
	// fields stay user-owned
	assert.NotContains(t, set, "mobileModel")
	assert.NotContains(t, set, "bookingPrice")
	assert.Equal(t, "note", set["notes"])
}

func TestBuildUpdateOmitsAbsentFields(t *testing.T) {
	set := BuildUpdate("admin", UpdateRequest{})
	assert.Empty(t, set)
}

func TestBuildUpdateUnknownRoleGetsNothing(t *testing.T) {
	set := BuildUpdate("auditor", UpdateRequest{Notes: strPtr("x")})
	assert.Empty(t, set)
}
