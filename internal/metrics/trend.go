package metrics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"finboard/internal/core"
)

const (
	Daily   TimeFrame = "daily"
	Weekly  TimeFrame = "weekly"
	Monthly TimeFrame = "monthly"
	Yearly  TimeFrame = "yearly"
)

// TimeFrame selects the bucket width for trend aggregation.
type TimeFrame string

var ErrInvalidTimeFrame = errors.New("invalid time frame")

// ParseTimeFrame returns the frame for a query value, defaulting to
// monthly for the empty string.
func ParseTimeFrame(s string) (TimeFrame, error) {
	switch TimeFrame(s) {
	case Daily, Weekly, Monthly, Yearly:
		return TimeFrame(s), nil
	case "":
		return Monthly, nil
	default:
		return "", ErrInvalidTimeFrame
	}
}

// TrendPoint is one time bucket with its income and expense sums.
type TrendPoint struct {
	Key     string     `json:"key"`
	Income  core.Money `json:"income"`
	Expense core.Money `json:"expense"`
}

// BucketKey computes the grouping key for a date. Weekly keys use
// week n = ceil((dayOfMonth + weekday) / 7) with Sunday as weekday 0.
func BucketKey(d core.Date, frame TimeFrame) string {
	switch frame {
	case Daily:
		return d.Key()
	case Weekly:
		week := (d.Day() + int(d.Weekday()) + 6) / 7
		return fmt.Sprintf("Week %d, %d", week, d.Year())
	case Yearly:
		return fmt.Sprintf("%d", d.Year())
	default:
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
	}
}

// TrendBuckets accumulates per-bucket income and expense sums. Buckets
// are returned chronologically, ordered by the earliest transaction in
// each bucket.
func TrendBuckets(txs []core.Transaction, frame TimeFrame) []TrendPoint {
	buckets := make(map[string]*TrendPoint)
	earliest := make(map[string]time.Time)

	for _, tx := range txs {
		key := BucketKey(tx.Date, frame)
		point, ok := buckets[key]
		if !ok {
			point = &TrendPoint{Key: key}
			buckets[key] = point
			earliest[key] = tx.Date.Time
		} else if tx.Date.Before(earliest[key]) {
			earliest[key] = tx.Date.Time
		}
		if tx.Type == core.Income {
			point.Income.Cents += tx.Amount.Cents
		} else {
			point.Expense.Cents += tx.Amount.Cents
		}
	}

	out := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := earliest[out[i].Key], earliest[out[j].Key]
		if ti.Equal(tj) {
			return out[i].Key < out[j].Key
		}
		return ti.Before(tj)
	})
	return out
}
