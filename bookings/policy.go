package bookings

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateRequest carries every field the update endpoint accepts. Pointers
// distinguish "absent" from zero values.
type UpdateRequest struct {
	BookingDate        *time.Time `json:"bookingDate"`
	MobileModel        *string    `json:"mobileModel"`
	BookingPrice       *float64   `json:"bookingPrice"`
	SellingPrice       *float64   `json:"sellingPrice"`
	Platform           *string    `json:"platform"`
	Card               *string    `json:"card"`
	Notes              *string    `json:"notes"`
	Status             *string    `json:"status"`
	BookingAccount     *string    `json:"bookingAccount"`
	Dealer             *string    `json:"dealer"`
	BookingID          *string    `json:"bookingId"`
	AssignedToDealerID *string    `json:"assignedToDealerId"`
	DealerAmount       *float64   `json:"dealerAmount"`
}

// fieldPolicy is the per-role edit set, evaluated once per update. Fields
// outside the caller's set are dropped silently, never rejected.
var fieldPolicy = map[string]map[string]bool{
	"admin": {
		"sellingPrice":       true,
		"notes":              true,
		"status":             true,
		"bookingAccount":     true,
		"dealer":             true,
		"bookingId":          true,
		"assignedToDealerId": true,
		"dealerAmount":       true,
	},
	"user": {
		"bookingDate":  true,
		"mobileModel":  true,
		"bookingPrice": true,
		"sellingPrice": true,
		"platform":     true,
		"card":         true,
		"notes":        true,
	},
}

// BuildUpdate turns a request into a $set document containing only the
// fields present in the body and permitted for the role.
func BuildUpdate(role string, req UpdateRequest) bson.M {
	allowed := fieldPolicy[role]
	set := bson.M{}

	put := func(field string, present bool, value interface{}) {
		if present && allowed[field] {
			set[field] = value
		}
	}

	put("bookingDate", req.BookingDate != nil, deref(req.BookingDate))
	put("mobileModel", req.MobileModel != nil, deref(req.MobileModel))
	put("bookingPrice", req.BookingPrice != nil, deref(req.BookingPrice))
	put("sellingPrice", req.SellingPrice != nil, deref(req.SellingPrice))
	put("platform", req.Platform != nil, deref(req.Platform))
	put("card", req.Card != nil, deref(req.Card))
	put("notes", req.Notes != nil, deref(req.Notes))
	put("status", req.Status != nil, deref(req.Status))
	put("bookingAccount", req.BookingAccount != nil, deref(req.BookingAccount))
	put("dealer", req.Dealer != nil, deref(req.Dealer))
	put("bookingId", req.BookingID != nil, deref(req.BookingID))
	put("assignedToDealerId", req.AssignedToDealerID != nil, deref(req.AssignedToDealerID))
	put("dealerAmount", req.DealerAmount != nil, deref(req.DealerAmount))

	return set
}

func deref[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
