package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Income struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description *string         `json:"description"`
	IsRecurring bool            `json:"is_recurring"`
	CreatedAt   time.Time       `json:"created_at"`
}
