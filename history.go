package cardfolio

import (
	"github.com/etnz/cardfolio/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	// HistoryLen is the number of samples in a synthetic history.
	HistoryLen = 6
	// HistoryStep is the number of days between two samples.
	HistoryStep = 30
)

var (
	minMultiplier  = decimal.RequireFromString("0.8")
	multiplierSpan = decimal.RequireFromString("0.6")
	minSampleValue = decimal.RequireFromString("0.5")
)

// Rand is the source of randomness used to synthesize histories.
//
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0,1.0).
	Float64() float64
}

// Sample is a single point of a value history.
type Sample struct {
	Date  date.Date       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// History is a chronological series of samples, oldest first.
type History []Sample

// SynthesizeHistory returns HistoryLen samples around current, one every
// HistoryStep days and ending today.
//
// Each sample is current times a multiplier drawn uniformly in [0.8, 1.4),
// rounded to the cent and never lower than 0.5.
func SynthesizeHistory(r Rand, current float64, today date.Date) History {
	cur := decimal.NewFromFloat(current)
	h := make(History, 0, HistoryLen)
	for i := HistoryLen - 1; i >= 0; i-- {
		multiplier := minMultiplier.Add(decimal.NewFromFloat(r.Float64()).Mul(multiplierSpan))
		v := decimal.Max(minSampleValue, cur.Mul(multiplier).Round(2))
		h = append(h, Sample{
			Date:  today.Add(-i * HistoryStep),
			Value: v,
		})
	}
	return h
}

// Values returns the sample values as floats, in chronological order.
func (h History) Values() []float64 {
	values := make([]float64, len(h))
	for i, s := range h {
		values[i] = s.Value.InexactFloat64()
	}
	return values
}

// Latest returns the most recent sample, or false for an empty history.
func (h History) Latest() (Sample, bool) {
	if len(h) == 0 {
		return Sample{}, false
	}
	return h[len(h)-1], true
}
