package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description *string         `json:"description"`
	// CategoryID is a weak reference: deleting the category nulls it out
	// without touching the expense itself.
	CategoryID  *int      `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
}
