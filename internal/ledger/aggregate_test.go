package ledger

import (
	"testing"
	"time"

	"aqua-backend/internal/models"
	"aqua-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func makeLot(boatID int, species string, weight, price, rate float64, at time.Time) *models.Lot {
	total, commission, payable := ComputeAmounts(weight, price, rate)
	return &models.Lot{
		BoatID:           boatID,
		Species:          species,
		Weight:           weight,
		PricePerUnit:     price,
		CommissionRate:   rate,
		TotalAmount:      total,
		CommissionAmount: commission,
		PayableAmount:    payable,
		CreatedAt:        at,
	}
}

func TestComputeAmountsInvariants(t *testing.T) {
	cases := []struct{ weight, price, rate float64 }{
		{50, 400, 5},
		{30, 800, 5},
		{12.5, 333.33, 7.5},
		{0, 100, 10},
		{100, 0, 0},
	}
	for _, c := range cases {
		total, commission, payable := ComputeAmounts(c.weight, c.price, c.rate)
		assert.InDelta(t, c.weight*c.price, total, epsilon)
		assert.InDelta(t, total*c.rate/100, commission, epsilon)
		assert.InDelta(t, total, payable+commission, epsilon)
	}
}

func TestComputeAmountsKnownValues(t *testing.T) {
	total, commission, payable := ComputeAmounts(50, 400, 5)
	assert.InDelta(t, 20000.0, total, epsilon)
	assert.InDelta(t, 1000.0, commission, epsilon)
	assert.InDelta(t, 19000.0, payable, epsilon)

	total, commission, payable = ComputeAmounts(30, 800, 5)
	assert.InDelta(t, 24000.0, total, epsilon)
	assert.InDelta(t, 1200.0, commission, epsilon)
	assert.InDelta(t, 22800.0, payable, epsilon)
}

func TestFilterByDay(t *testing.T) {
	day := time.Date(2026, 8, 26, 14, 0, 0, 0, timeutil.IST) // a Wednesday
	inside := makeLot(1, "Prawns", 10, 100, 5, timeutil.StartOfDay(day))
	lastTick := makeLot(1, "Prawns", 10, 100, 5, timeutil.EndOfDay(day))
	dayBefore := makeLot(1, "Prawns", 10, 100, 5, timeutil.StartOfDay(day).Add(-time.Nanosecond))
	dayAfter := makeLot(1, "Prawns", 10, 100, 5, timeutil.EndOfDay(day).Add(time.Nanosecond))

	got := FilterByDay([]*models.Lot{inside, lastTick, dayBefore, dayAfter}, day)
	assert.Equal(t, []*models.Lot{inside, lastTick}, got)
}

func TestFilterByDayIdempotent(t *testing.T) {
	day := time.Date(2026, 8, 26, 9, 30, 0, 0, timeutil.IST)
	lots := []*models.Lot{
		makeLot(1, "Mackerel", 20, 250, 5, day),
		makeLot(2, "Prawns", 5, 900, 5, day.Add(2*time.Hour)),
		makeLot(1, "Sardine", 40, 80, 5, day.AddDate(0, 0, -1)),
	}

	once := FilterByDay(lots, day)
	twice := FilterByDay(once, day)
	assert.Equal(t, once, twice)
}

func TestFilterByWeekBoundaries(t *testing.T) {
	// 2026-08-23 is a Sunday
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, timeutil.IST)
	require.Equal(t, time.Sunday, sunday.Weekday())
	saturdayEnd := timeutil.EndOfWeek(sunday)
	nextSunday := sunday.AddDate(0, 0, 7)

	atStart := makeLot(1, "Tuna", 10, 100, 5, sunday)
	atEnd := makeLot(1, "Tuna", 10, 100, 5, saturdayEnd)
	next := makeLot(1, "Tuna", 10, 100, 5, nextSunday)

	lots := []*models.Lot{atStart, atEnd, next}

	thisWeek := FilterByWeek(lots, sunday.AddDate(0, 0, 3))
	assert.Equal(t, []*models.Lot{atStart, atEnd}, thisWeek)

	followingWeek := FilterByWeek(lots, nextSunday)
	assert.Equal(t, []*models.Lot{next}, followingWeek)
}

func TestGroupBySpecies(t *testing.T) {
	at := timeutil.Now()
	lots := []*models.Lot{
		makeLot(1, "Prawns", 10, 900, 5, at),
		makeLot(2, "Prawns", 15, 850, 5, at),
		makeLot(1, "Mackerel", 40, 120, 5, at),
	}

	stats := GroupBySpecies(lots)
	require.Len(t, stats, 2)

	// Sorted by descending weight
	assert.Equal(t, "Mackerel", stats[0].Species)
	assert.InDelta(t, 40.0, stats[0].Weight, epsilon)
	assert.Equal(t, 1, stats[0].Count)

	assert.Equal(t, "Prawns", stats[1].Species)
	assert.InDelta(t, 25.0, stats[1].Weight, epsilon)
	assert.InDelta(t, 10*900+15*850.0, stats[1].Amount, epsilon)
	assert.Equal(t, 2, stats[1].Count)
}

func TestGroupBySpeciesTieBreakByName(t *testing.T) {
	at := timeutil.Now()
	lots := []*models.Lot{
		makeLot(1, "Tuna", 10, 100, 5, at),
		makeLot(1, "Anchovy", 10, 100, 5, at),
	}

	stats := GroupBySpecies(lots)
	require.Len(t, stats, 2)
	assert.Equal(t, "Anchovy", stats[0].Species)
	assert.Equal(t, "Tuna", stats[1].Species)
}

func TestGroupByBoatScenario(t *testing.T) {
	at := timeutil.Now()
	lots := []*models.Lot{
		makeLot(1, "Prawns", 50, 400, 5, at),
		makeLot(1, "Mackerel", 30, 800, 5, at),
	}

	stats := GroupByBoat(lots)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].BoatID)
	assert.InDelta(t, 44000.0, stats[0].Revenue, epsilon)
	assert.InDelta(t, 2200.0, stats[0].Commission, epsilon)
	assert.InDelta(t, 41800.0, stats[0].Payable, epsilon)
	assert.Equal(t, 2, stats[0].Count)
}

func TestGroupByBoatMatchesTotals(t *testing.T) {
	at := timeutil.Now()
	lots := []*models.Lot{
		makeLot(1, "Prawns", 50, 400, 5, at),
		makeLot(2, "Tuna", 120, 300, 7, at),
		makeLot(3, "Sardine", 80, 60, 5, at),
		makeLot(2, "Mackerel", 25, 150, 10, at),
	}

	grand := Totals(lots)
	var revenue, commission, payable float64
	var count int
	for _, b := range GroupByBoat(lots) {
		revenue += b.Revenue
		commission += b.Commission
		payable += b.Payable
		count += b.Count
	}

	assert.InDelta(t, grand.Revenue, revenue, epsilon)
	assert.InDelta(t, grand.Commission, commission, epsilon)
	assert.InDelta(t, grand.Payable, payable, epsilon)
	assert.Equal(t, len(lots), count)
}

func TestGroupByBoatKeepsOrphanedBucket(t *testing.T) {
	at := timeutil.Now()
	// Boat 99 no longer exists in the registry; its lots must still
	// aggregate under id 99 rather than being dropped.
	lots := []*models.Lot{
		makeLot(99, "Prawns", 10, 500, 5, at),
		makeLot(1, "Tuna", 10, 500, 5, at),
	}

	stats := GroupByBoat(lots)
	require.Len(t, stats, 2)
	ids := []int{stats[0].BoatID, stats[1].BoatID}
	assert.Contains(t, ids, 99)
	assert.Contains(t, ids, 1)
}

func TestEmptyInputs(t *testing.T) {
	now := timeutil.Now()
	assert.Empty(t, FilterByDay(nil, now))
	assert.Empty(t, FilterByWeek(nil, now))
	assert.Empty(t, GroupBySpecies(nil))
	assert.Empty(t, GroupByBoat(nil))

	grand := Totals(nil)
	assert.Zero(t, grand.Revenue)
	assert.Zero(t, grand.Commission)
	assert.Zero(t, grand.Payable)
}
