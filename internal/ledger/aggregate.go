package ledger

import (
	"sort"
	"time"

	"aqua-backend/internal/models"
	"aqua-backend/internal/timeutil"
)

// DefaultCommissionRate is applied when a lot entry omits the rate.
const DefaultCommissionRate = 5.0

// ComputeAmounts derives the stored monetary fields of a lot from its
// weight, price per kg and commission percentage.
// Invariant: payable + commission == total and total == weight * price.
func ComputeAmounts(weight, pricePerUnit, commissionRate float64) (total, commission, payable float64) {
	total = weight * pricePerUnit
	commission = total * commissionRate / 100
	payable = total - commission
	return total, commission, payable
}

// SpeciesStats accumulates one species bucket of a day's lots
type SpeciesStats struct {
	Species string  `json:"species"`
	Weight  float64 `json:"weight"`
	Amount  float64 `json:"amount"` // sum of total_amount
	Count   int     `json:"count"`
}

// BoatStats accumulates one boat bucket of a week's lots
type BoatStats struct {
	BoatID     int     `json:"boat_id"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
	Payable    float64 `json:"payable"`
	Count      int     `json:"count"`
}

// GrandTotals is the reduction of a lot collection to its three sums
type GrandTotals struct {
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
	Payable    float64 `json:"payable"`
}

// FilterByDay returns the lots whose creation time falls within the
// calendar day of date, [00:00:00, 23:59:59.999999999] inclusive, IST.
func FilterByDay(lots []*models.Lot, date time.Time) []*models.Lot {
	return filterBetween(lots, timeutil.StartOfDay(date), timeutil.EndOfDay(date))
}

// FilterByWeek returns the lots of the Sunday-through-Saturday week
// containing date, boundaries inclusive.
func FilterByWeek(lots []*models.Lot, date time.Time) []*models.Lot {
	return filterBetween(lots, timeutil.StartOfWeek(date), timeutil.EndOfWeek(date))
}

func filterBetween(lots []*models.Lot, start, end time.Time) []*models.Lot {
	out := make([]*models.Lot, 0, len(lots))
	for _, lot := range lots {
		if !lot.CreatedAt.Before(start) && !lot.CreatedAt.After(end) {
			out = append(out, lot)
		}
	}
	return out
}

// GroupBySpecies partitions lots into per-species buckets, summing
// weight and total amount. Buckets are ordered by descending weight,
// species name breaking ties so output is reproducible.
func GroupBySpecies(lots []*models.Lot) []SpeciesStats {
	buckets := make(map[string]*SpeciesStats)
	for _, lot := range lots {
		b, ok := buckets[lot.Species]
		if !ok {
			b = &SpeciesStats{Species: lot.Species}
			buckets[lot.Species] = b
		}
		b.Weight += lot.Weight
		b.Amount += lot.TotalAmount
		b.Count++
	}

	out := make([]SpeciesStats, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Species < out[j].Species
	})
	return out
}

// GroupByBoat partitions lots into per-boat buckets, summing revenue,
// commission and payable. Buckets are ordered by descending payable,
// boat id breaking ties. Lots referencing a deleted boat still get a
// bucket under their original boat id.
func GroupByBoat(lots []*models.Lot) []BoatStats {
	buckets := make(map[int]*BoatStats)
	for _, lot := range lots {
		b, ok := buckets[lot.BoatID]
		if !ok {
			b = &BoatStats{BoatID: lot.BoatID}
			buckets[lot.BoatID] = b
		}
		b.Revenue += lot.TotalAmount
		b.Commission += lot.CommissionAmount
		b.Payable += lot.PayableAmount
		b.Count++
	}

	out := make([]BoatStats, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Payable != out[j].Payable {
			return out[i].Payable > out[j].Payable
		}
		return out[i].BoatID < out[j].BoatID
	})
	return out
}

// Totals reduces a lot collection to its revenue, commission and
// payable sums
func Totals(lots []*models.Lot) GrandTotals {
	var t GrandTotals
	for _, lot := range lots {
		t.Revenue += lot.TotalAmount
		t.Commission += lot.CommissionAmount
		t.Payable += lot.PayableAmount
	}
	return t
}
