// internal/domain/models/guest.go
package models

// Guest is a person staying (or who has stayed) at the hotel.
type Guest struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
}

// FullName joins first and last name for display.
func (g Guest) FullName() string { return joinName(g.FirstName, g.LastName) }

// Customer is a guest enrolled in the loyalty programme.
type Customer struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	LoyaltyLevelID   int64  `json:"loyaltyLevelId"`
	LoyaltyLevelName string `json:"loyaltyLevelName"` // denormalized by the backend
	Points           int64  `json:"points"`
}

// FullName joins first and last name for display.
func (c Customer) FullName() string { return joinName(c.FirstName, c.LastName) }

// Feedback is a guest's rating and comment.
type Feedback struct {
	ID        int64  `json:"id"`
	GuestID   int64  `json:"guestId"`
	GuestName string `json:"guestName"`
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"` // NEW, REVIEWED, RESOLVED
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
