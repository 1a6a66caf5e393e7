package testutil

import (
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/shopspring/decimal"
)

// SampleFolio returns an unpaid folio with two charges.
func SampleFolio(id int64) models.Folio {
	return models.Folio{
		ID:         id,
		GuestID:    7,
		GuestName:  "Ana Souza",
		RoomNumber: "204",
		OpenedAt:   "2024-05-01T14:00:00Z",
		Status:     "UNPAID",
		Total:      decimal.RequireFromString("180.50"),
		Charges: []models.FolioCharge{
			{ID: 1, Description: "Room night", Amount: decimal.RequireFromString("150.00"), PostedAt: "2024-05-01T22:00:00Z"},
			{ID: 2, Description: "Minibar", Amount: decimal.RequireFromString("30.50"), PostedAt: "2024-05-02T08:30:00Z"},
		},
	}
}

// SampleGuest returns a guest record.
func SampleGuest(id int64) models.Guest {
	return models.Guest{
		ID:          id,
		FirstName:   "Ana",
		LastName:    "Souza",
		Email:       "ana@example.com",
		Phone:       "+55 11 5555-0100",
		Nationality: "BR",
		DateOfBirth: "1988-03-14",
	}
}

// SampleSalary returns a pending salary.
func SampleSalary(id int64) models.Salary {
	return models.Salary{
		ID:           id,
		EmployeeID:   3,
		EmployeeName: "Bo Lindqvist",
		Period:       "2024-04",
		Amount:       decimal.RequireFromString("2450.00"),
		PayDate:      "2024-05-05",
		Status:       "PENDING",
	}
}

// SampleHousekeepingRequest returns a pending cleaning request.
func SampleHousekeepingRequest(id int64) models.HousekeepingRequest {
	return models.HousekeepingRequest{
		ID:          id,
		RoomNumber:  "311",
		RequestType: "CLEANING",
		Notes:       "Extra towels",
		RequestedAt: "2024-05-02T09:15:00Z",
		Status:      "PENDING",
	}
}
