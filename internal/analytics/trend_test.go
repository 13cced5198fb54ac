package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChangePct(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     float64
	}{
		{"both zero", "0", "0", 0},
		{"zero baseline with activity", "250.00", "0", 100},
		{"growth", "60", "40", 50},
		{"decline", "40", "60", -33.33333333333333},
		{"collapse to zero", "0", "80", -100},
		{"unchanged", "12.5", "12.5", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := decimal.RequireFromString(tt.current)
			prev := decimal.RequireFromString(tt.previous)
			assert.InDelta(t, tt.want, ChangePct(cur, prev), 1e-9)
		})
	}
}

func TestChangePctInt(t *testing.T) {
	assert.InDelta(t, 50.0, ChangePctInt(3, 2), 1e-9)
	assert.InDelta(t, 100.0, ChangePctInt(5, 0), 1e-9)
	assert.InDelta(t, 0.0, ChangePctInt(0, 0), 1e-9)
}
