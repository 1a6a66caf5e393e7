// internal/domain/models/housekeeping.go
package models

// HousekeepingRequest asks for a room to be cleaned or serviced.
type HousekeepingRequest struct {
	ID                int64  `json:"id"`
	RoomNumber        string `json:"roomNumber"`
	RequestType       string `json:"requestType"`
	Notes             string `json:"notes"`
	AssignedStaffID   int64  `json:"assignedStaffId"`
	AssignedStaffName string `json:"assignedStaffName"`
	RequestedAt       string `json:"requestedAt"`
	Status            string `json:"status"` // PENDING, ASSIGNED, IN_PROGRESS, COMPLETED, CANCELLED
}

// HousekeepingSchedule is a planned cleaning slot for a room.
type HousekeepingSchedule struct {
	ID            int64  `json:"id"`
	RoomNumber    string `json:"roomNumber"`
	StaffID       int64  `json:"staffId"`
	StaffName     string `json:"staffName"`
	ScheduledDate string `json:"scheduledDate"` // YYYY-MM-DD
	Shift         string `json:"shift"`         // MORNING, AFTERNOON, NIGHT
	Status        string `json:"status"`        // SCHEDULED, IN_PROGRESS, COMPLETED, CANCELLED
}

// Schedule is a staff work shift.
type Schedule struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Role         string `json:"role"`
	ShiftDate    string `json:"shiftDate"` // YYYY-MM-DD
	StartTime    string `json:"startTime"` // HH:MM
	EndTime      string `json:"endTime"`   // HH:MM
	Status       string `json:"status"`    // SCHEDULED, COMPLETED, CANCELLED
}
