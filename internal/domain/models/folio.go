// internal/domain/models/folio.go
package models

import "github.com/shopspring/decimal"

// Folio is a guest's running bill for a stay.
type Folio struct {
	ID         int64           `json:"id"`
	GuestID    int64           `json:"guestId"`
	GuestName  string          `json:"guestName"`
	RoomNumber string          `json:"roomNumber"`
	OpenedAt   string          `json:"openedAt"`
	Status     string          `json:"status"` // PAID, PENDING, UNPAID
	Total      decimal.Decimal `json:"total"`
	Charges    []FolioCharge   `json:"charges"`
}

// FolioCharge is a single line posted to a folio.
type FolioCharge struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PostedAt    string          `json:"postedAt"`
}

// ChargesTotal sums the folio's charges. Used when the backend omits Total.
func (f Folio) ChargesTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range f.Charges {
		sum = sum.Add(c.Amount)
	}
	return sum
}
