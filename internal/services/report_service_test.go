package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"aqua-backend/internal/ledger"
	"aqua-backend/internal/models"
	"aqua-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportLotStore serves a fixed lot set through ListBetween
type fakeReportLotStore struct {
	lots []*models.Lot
}

func (f *fakeReportLotStore) ListBetween(_ context.Context, start, end time.Time) ([]*models.Lot, error) {
	var out []*models.Lot
	for _, l := range f.lots {
		if !l.CreatedAt.Before(start) && !l.CreatedAt.After(end) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeReportBoatStore struct {
	boats []*models.Boat
}

func (f *fakeReportBoatStore) List(_ context.Context) ([]*models.Boat, error) {
	return f.boats, nil
}

type fakeReportSettlementStore struct {
	settlements []*models.Settlement
}

func (f *fakeReportSettlementStore) ListByWeek(_ context.Context, weekStart time.Time) ([]*models.Settlement, error) {
	var out []*models.Settlement
	for _, s := range f.settlements {
		if s.WeekStart.Equal(weekStart) {
			out = append(out, s)
		}
	}
	return out, nil
}

func istDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseInIST(timeutil.DateTimeLayout, value)
	require.NoError(t, err)
	return parsed
}

func testLot(id, boatID int, species string, weight, price float64, createdAt time.Time) *models.Lot {
	total, commission, payable := ledger.ComputeAmounts(weight, price, ledger.DefaultCommissionRate)
	return &models.Lot{
		ID:               id,
		BoatID:           boatID,
		Species:          species,
		Weight:           weight,
		PricePerUnit:     price,
		CommissionRate:   ledger.DefaultCommissionRate,
		TotalAmount:      total,
		CommissionAmount: commission,
		PayableAmount:    payable,
		CreatedAt:        createdAt,
	}
}

// newReportTestService seeds a week of lots: two boats on Wednesday
// 2026-08-26 plus one lot from boat 1 on Monday, and one lot from a
// boat that was since deleted.
func newReportTestService(t *testing.T) *ReportService {
	t.Helper()

	lots := &fakeReportLotStore{lots: []*models.Lot{
		testLot(1, 1, "Pomfret", 50, 400, istDate(t, "2026-08-26 09:15:00")),
		testLot(2, 1, "Tuna", 30, 800, istDate(t, "2026-08-26 11:40:00")),
		testLot(3, 2, "Mackerel", 100, 120, istDate(t, "2026-08-26 10:05:00")),
		testLot(4, 1, "Pomfret", 20, 400, istDate(t, "2026-08-24 08:30:00")),
		testLot(5, 9, "Sardine", 60, 90, istDate(t, "2026-08-26 12:00:00")),
	}}
	boats := &fakeReportBoatStore{boats: []*models.Boat{
		{ID: 1, Name: "Sea Queen", OwnerName: "Ravi Kumar"},
		{ID: 2, Name: "Blue Pearl", OwnerName: "Anand Joseph"},
	}}
	settlements := &fakeReportSettlementStore{settlements: []*models.Settlement{
		{ID: 1, BoatID: 2, WeekStart: istDate(t, "2026-08-23 00:00:00")},
	}}

	return NewReportService(lots, boats, settlements)
}

func TestGetDailySummary(t *testing.T) {
	svc := newReportTestService(t)

	summary, err := svc.GetDailySummary(context.Background(), istDate(t, "2026-08-26 15:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-26", summary.Date)
	assert.Equal(t, 4, summary.Count) // Monday lot excluded

	// 20000 + 24000 + 12000 + 5400
	assert.InDelta(t, 61400, summary.Totals.Revenue, 0.001)
	assert.InDelta(t, 3070, summary.Totals.Commission, 0.001)
	assert.InDelta(t, 58330, summary.Totals.Payable, 0.001)

	// Species sorted by descending weight
	require.Len(t, summary.Species, 4)
	assert.Equal(t, "Mackerel", summary.Species[0].Species)
	assert.Equal(t, 100.0, summary.Species[0].Weight)
}

func TestDailySummaryResolvesBoatNames(t *testing.T) {
	svc := newReportTestService(t)

	summary, err := svc.GetDailySummary(context.Background(), istDate(t, "2026-08-26 15:00:00"))
	require.NoError(t, err)

	names := make(map[int]string)
	for _, lot := range summary.Lots {
		names[lot.BoatID] = lot.BoatName
	}
	assert.Equal(t, "Sea Queen", names[1])
	assert.Equal(t, "Blue Pearl", names[2])
	assert.Equal(t, UnknownBoatName, names[9]) // deleted boat
}

func TestGetWeeklySummary(t *testing.T) {
	svc := newReportTestService(t)

	summary, err := svc.GetWeeklySummary(context.Background(), istDate(t, "2026-08-26 15:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-23", summary.WeekStart)
	assert.Equal(t, "2026-08-29", summary.WeekEnd)
	assert.Equal(t, 5, summary.Count) // Monday lot included

	require.Len(t, summary.Boats, 3)

	// Sorted by descending payable: boat 1 (20000+24000+8000 revenue)
	byID := make(map[int]WeeklyBoatReport)
	for _, b := range summary.Boats {
		byID[b.BoatID] = b
	}

	boat1 := byID[1]
	assert.Equal(t, "Sea Queen", boat1.BoatName)
	assert.Equal(t, 3, boat1.Count)
	assert.InDelta(t, 52000, boat1.Revenue, 0.001)
	assert.InDelta(t, 49400, boat1.Payable, 0.001)
	assert.False(t, boat1.Settled)

	boat2 := byID[2]
	assert.True(t, boat2.Settled)

	ghost := byID[9]
	assert.Equal(t, UnknownBoatName, ghost.BoatName)
	assert.Equal(t, "", ghost.OwnerName)

	assert.InDelta(t, summary.Totals.Payable, summary.TotalPayable, 0.001)
}

func TestDailyShareMessage(t *testing.T) {
	svc := newReportTestService(t)

	msg, err := svc.DailyShareMessage(context.Background(), istDate(t, "2026-08-26 15:00:00"))
	require.NoError(t, err)

	assert.Contains(t, msg, "Daily Summary")
	assert.Contains(t, msg, "₹61,400")
	assert.Contains(t, msg, "Mackerel: 100kg")
	assert.Contains(t, msg, "Total Lots: 4")
}

func TestWeeklyBoatShareMessage(t *testing.T) {
	svc := newReportTestService(t)
	date := istDate(t, "2026-08-26 15:00:00")

	msg, err := svc.WeeklyBoatShareMessage(context.Background(), 1, date)
	require.NoError(t, err)
	assert.Contains(t, msg, "Sea Queen")
	assert.Contains(t, msg, "Ravi Kumar")
	assert.Contains(t, msg, "2026-08-23")
	assert.Contains(t, msg, "— AquaLedger")

	// Boat with no lots this week
	_, err = svc.WeeklyBoatShareMessage(context.Background(), 55, date)
	assert.Error(t, err)
}

func TestDailyCSV(t *testing.T) {
	svc := newReportTestService(t)

	data, err := svc.DailyCSV(context.Background(), istDate(t, "2026-08-26 15:00:00"))
	require.NoError(t, err)

	csv := string(data)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	assert.Contains(t, lines[0], "Lot ID")
	assert.Contains(t, csv, "Sea Queen")
	assert.Contains(t, csv, "TOTALS")
	assert.Contains(t, csv, "61400.00")
}

func TestWeeklyPDF(t *testing.T) {
	svc := newReportTestService(t)

	data, err := svc.WeeklyPDF(context.Background(), istDate(t, "2026-08-26 15:00:00"))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "0", formatINR(0))
	assert.Equal(t, "999", formatINR(999))
	assert.Equal(t, "1,000", formatINR(1000))
	assert.Equal(t, "61,400", formatINR(61400))
	assert.Equal(t, "12,34,567.5", formatINR(1234567.5))
	assert.Equal(t, "-1,00,000", formatINR(-100000))
}
