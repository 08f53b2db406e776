package util

import (
	"errors"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile("[a-z]").MatchString(password)
	hasUpper := regexp.MustCompile("[A-Z]").MatchString(password)
	hasDigit := regexp.MustCompile("[0-9]").MatchString(password)
	hasSpecial := regexp.MustCompile(`[^A-Za-z0-9]`).MatchString(password)

	return hasLower && hasUpper && hasDigit && hasSpecial
}

var (
	ErrInvalidAmount = errors.New("amount must be positive with at most 2 decimal places")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
)

// ValidateAmount enforces monetary precision: positive, at most two fractional
// digits, and within NUMERIC(10,2) range.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.Exponent() < -2 {
		return ErrInvalidAmount
	}
	if amount.Cmp(decimal.New(1, 8)) >= 0 { // 10^8 = max for NUMERIC(10,2)
		return ErrInvalidAmount
	}
	return nil
}

// ParseDate parses a calendar date with no time component.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
