// internal/domain/models/service.go
package models

import "github.com/shopspring/decimal"

// Service is something the hotel sells to guests (spa, laundry, airport pickup, ...).
type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"` // ACTIVE, INACTIVE
}

// ServiceRequest is a guest's order for a Service.
type ServiceRequest struct {
	ID          int64  `json:"id"`
	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	GuestID     int64  `json:"guestId"`
	GuestName   string `json:"guestName"`
	RoomNumber  string `json:"roomNumber"`
	RequestedAt string `json:"requestedAt"`
	Notes       string `json:"notes"`
	Status      string `json:"status"` // PENDING, ASSIGNED, IN_PROGRESS, COMPLETED, CANCELLED
}

// LoyaltyLevel is a tier of the loyalty programme.
type LoyaltyLevel struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	MinPoints       int64           `json:"minPoints"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Benefits        string          `json:"benefits"`
}

// Salary is one pay period for an employee.
type Salary struct {
	ID           int64           `json:"id"`
	EmployeeID   int64           `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Period       string          `json:"period"` // YYYY-MM
	Amount       decimal.Decimal `json:"amount"`
	PayDate      string          `json:"payDate"` // YYYY-MM-DD
	Status       string          `json:"status"`  // PAID, PENDING
}
