package analytics

import "github.com/shopspring/decimal"

// ChangePct returns the signed percentage change from previous to current.
// A zero baseline maps to 0 when the current value is also zero and to a
// fixed +100 otherwise; downstream consumers rely on that exact
// convention, so it must not be "corrected" to infinity or an error.
// The result is unrounded; display rounding belongs to the caller.
func ChangePct(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	f, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

// ChangePctInt is ChangePct over integer counts.
func ChangePctInt(current, previous int) float64 {
	return ChangePct(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
