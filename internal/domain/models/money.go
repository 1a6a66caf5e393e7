// internal/domain/models/money.go
package models

import "github.com/shopspring/decimal"

func init() {
	// The backend sends and expects amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
