package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last+tag@example.co.uk"}
	invalid := []string{"", "no-at.com", "a@b", "a b@c.com"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if !ValidatePassword("Str0ng!pass") {
		t.Error("expected strong password to pass")
	}
	weak := []string{"short1!", "alllowercase1!", "ALLUPPERCASE1!", "NoDigits!!", "NoSpecial11"}
	for _, password := range weak {
		if ValidatePassword(password) {
			t.Errorf("expected %q to fail", password)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		amount string
		ok     bool
	}{
		{"10.50", true},
		{"0.01", true},
		{"99999999.99", true},
		{"0", false},
		{"-5.00", false},
		{"1.005", false},
		{"100000000.00", false},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.amount)
		if err != nil {
			t.Fatalf("bad test amount %q: %v", tc.amount, err)
		}
		err = ValidateAmount(d)
		if tc.ok && err != nil {
			t.Errorf("%s: expected ok, got %v", tc.amount, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error", tc.amount)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2024 || int(d.Month()) != 2 || d.Day() != 29 {
		t.Fatalf("unexpected date: %s", d)
	}

	for _, bad := range []string{"", "2024-13-01", "01/02/2024", "2024-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
