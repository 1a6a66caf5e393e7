// internal/domain/models/asset.go
package models

import "github.com/shopspring/decimal"

// Asset is a piece of hotel equipment or property tracked by the backend.
type Asset struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Location     string          `json:"location"`
	PurchaseDate string          `json:"purchaseDate"` // YYYY-MM-DD
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status"` // ACTIVE, IN_MAINTENANCE, RETIRED
}

// AuditReport is an internal audit performed on hotel operations.
type AuditReport struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Auditor   string `json:"auditor"`
	AuditDate string `json:"auditDate"` // YYYY-MM-DD
	Findings  string `json:"findings"`
	Status    string `json:"status"` // DRAFT, SUBMITTED, APPROVED, REJECTED
}
