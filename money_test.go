package cardfolio

import (
	"strings"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(20, "EUR"), "20.00"},
		{M(1234, "EUR"), "1,234.00"},
		{M(0.5, "USD"), "0.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); !strings.Contains(got, tt.want) {
			t.Errorf("%v.String() = %q want it to contain %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestMoneyAdd(t *testing.T) {
	got := M(20, "EUR").Add(M(0.5, "EUR"))
	if want := M(20.5, "EUR"); !got.Equal(want) {
		t.Errorf("Add() = %v want %v", got.Decimal(), want.Decimal())
	}
	// the empty currency is weak.
	if got := M(0, "").Add(M(3, "EUR")); got.Currency() != "EUR" {
		t.Errorf("Add() currency = %q want %q", got.Currency(), "EUR")
	}
}
