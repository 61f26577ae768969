package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"aqua-backend/internal/cache"
	"aqua-backend/internal/ledger"
	"aqua-backend/internal/models"
	"aqua-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// UnknownBoatName is shown for lots whose boat was deleted from the
// registry after the lot was recorded.
const UnknownBoatName = "Unknown Boat"

// LotDetail is a lot with its boat name resolved for display
type LotDetail struct {
	*models.Lot
	BoatName string `json:"boat_name"`
}

// DailySummary holds one calendar day's aggregated view
type DailySummary struct {
	Date    string                `json:"date"`
	Totals  ledger.GrandTotals    `json:"totals"`
	Species []ledger.SpeciesStats `json:"species"`
	Lots    []LotDetail           `json:"lots"`
	Count   int                   `json:"count"`
}

// WeeklyBoatReport is one boat's bucket of the weekly settlement view
type WeeklyBoatReport struct {
	ledger.BoatStats
	BoatName  string `json:"boat_name"`
	OwnerName string `json:"owner_name"`
	Settled   bool   `json:"settled"`
}

// WeeklySummary holds one Sunday-through-Saturday week's settlement view
type WeeklySummary struct {
	WeekStart    string             `json:"week_start"`
	WeekEnd      string             `json:"week_end"`
	Totals       ledger.GrandTotals `json:"totals"`
	TotalPayable float64            `json:"total_payable"`
	Boats        []WeeklyBoatReport `json:"boats"`
	Count        int                `json:"count"`
}

// ReportLotStore is the slice of the lot repository reports need
type ReportLotStore interface {
	ListBetween(ctx context.Context, start, end time.Time) ([]*models.Lot, error)
}

// ReportBoatStore is the slice of the boat repository reports need
type ReportBoatStore interface {
	List(ctx context.Context) ([]*models.Boat, error)
}

// ReportSettlementStore is the slice of the settlement repository reports need
type ReportSettlementStore interface {
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*models.Settlement, error)
}

// Archiver uploads finished reports to external storage
type Archiver interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

// ReportService builds the daily and weekly views over the lot ledger
type ReportService struct {
	LotRepo        ReportLotStore
	BoatRepo       ReportBoatStore
	SettlementRepo ReportSettlementStore
	archiver       Archiver
}

func NewReportService(lotRepo ReportLotStore, boatRepo ReportBoatStore, settlementRepo ReportSettlementStore) *ReportService {
	return &ReportService{
		LotRepo:        lotRepo,
		BoatRepo:       boatRepo,
		SettlementRepo: settlementRepo,
	}
}

// SetArchiver wires the optional S3-compatible report archive
func (s *ReportService) SetArchiver(a Archiver) {
	s.archiver = a
}

// boatIndex maps boat id to boat for name resolution
func (s *ReportService) boatIndex(ctx context.Context) (map[int]*models.Boat, error) {
	boats, err := s.BoatRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[int]*models.Boat, len(boats))
	for _, b := range boats {
		index[b.ID] = b
	}
	return index, nil
}

// GetDailySummary aggregates one calendar day of the ledger. Results
// are cached in Redis for 5 minutes and invalidated on lot writes.
func (s *ReportService) GetDailySummary(ctx context.Context, date time.Time) (*DailySummary, error) {
	dateStr := timeutil.FormatIST(date, timeutil.DateLayout)

	if data, ok := cache.GetCachedDailySummary(ctx, dateStr); ok {
		var summary DailySummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	lots, err := s.LotRepo.ListBetween(ctx, timeutil.StartOfDay(date), timeutil.EndOfDay(date))
	if err != nil {
		return nil, err
	}
	// The DB range query and the in-memory filter apply the same
	// boundaries; the filter stays so day membership has one definition
	lots = ledger.FilterByDay(lots, date)

	boats, err := s.boatIndex(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]LotDetail, 0, len(lots))
	for _, lot := range lots {
		name := UnknownBoatName
		if b, ok := boats[lot.BoatID]; ok {
			name = b.Name
		}
		details = append(details, LotDetail{Lot: lot, BoatName: name})
	}

	summary := &DailySummary{
		Date:    dateStr,
		Totals:  ledger.Totals(lots),
		Species: ledger.GroupBySpecies(lots),
		Lots:    details,
		Count:   len(lots),
	}

	if data, err := json.Marshal(summary); err == nil {
		cache.CacheDailySummary(ctx, dateStr, data)
	}

	return summary, nil
}

// GetWeeklySummary aggregates the Sunday-through-Saturday week
// containing date, with per-boat payables and settled flags.
func (s *ReportService) GetWeeklySummary(ctx context.Context, date time.Time) (*WeeklySummary, error) {
	weekStart := timeutil.StartOfWeek(date)
	weekEnd := timeutil.EndOfWeek(date)

	lots, err := s.LotRepo.ListBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	lots = ledger.FilterByWeek(lots, date)

	boats, err := s.boatIndex(ctx)
	if err != nil {
		return nil, err
	}

	settled := make(map[int]bool)
	settlements, err := s.SettlementRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	for _, st := range settlements {
		settled[st.BoatID] = true
	}

	stats := ledger.GroupByBoat(lots)
	reports := make([]WeeklyBoatReport, 0, len(stats))
	for _, bs := range stats {
		name, owner := UnknownBoatName, ""
		if b, ok := boats[bs.BoatID]; ok {
			name, owner = b.Name, b.OwnerName
		}
		reports = append(reports, WeeklyBoatReport{
			BoatStats: bs,
			BoatName:  name,
			OwnerName: owner,
			Settled:   settled[bs.BoatID],
		})
	}

	totals := ledger.Totals(lots)
	return &WeeklySummary{
		WeekStart:    timeutil.FormatIST(weekStart, timeutil.DateLayout),
		WeekEnd:      timeutil.FormatIST(weekEnd, timeutil.DateLayout),
		Totals:       totals,
		TotalPayable: totals.Payable,
		Boats:        reports,
		Count:        len(lots),
	}, nil
}

// DailyShareMessage renders the day's summary as the WhatsApp-style
// text the auctioneer forwards to traders. Human-readable only, not
// meant to be parsed back.
func (s *ReportService) DailyShareMessage(ctx context.Context, date time.Time) (string, error) {
	summary, err := s.GetDailySummary(ctx, date)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Daily Summary - %s*\n\n", timeutil.FormatIST(date, "Mon Jan 02 2006"))
	fmt.Fprintf(&b, "💰 Revenue: ₹%s\n", formatINR(summary.Totals.Revenue))
	fmt.Fprintf(&b, "🏷️ Commission: ₹%s\n", formatINR(summary.Totals.Commission))
	fmt.Fprintf(&b, "💵 Payable: ₹%s\n\n", formatINR(summary.Totals.Payable))
	b.WriteString("*Species Breakdown:*\n")
	for _, sp := range summary.Species {
		fmt.Fprintf(&b, "- %s: %gkg (₹%s)\n", sp.Species, sp.Weight, formatINR(sp.Amount))
	}
	fmt.Fprintf(&b, "\nTotal Lots: %d", summary.Count)

	return b.String(), nil
}

// WeeklyBoatShareMessage renders one boat's weekly settlement as
// shareable text
func (s *ReportService) WeeklyBoatShareMessage(ctx context.Context, boatID int, date time.Time) (string, error) {
	summary, err := s.GetWeeklySummary(ctx, date)
	if err != nil {
		return "", err
	}

	for _, boat := range summary.Boats {
		if boat.BoatID != boatID {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "📅 Weekly Settlement (%s - %s)\n", summary.WeekStart, summary.WeekEnd)
		fmt.Fprintf(&b, "⛵ %s — %s\n\n", boat.BoatName, boat.OwnerName)
		fmt.Fprintf(&b, "💰 Revenue: ₹%s\n", formatINR(boat.Revenue))
		fmt.Fprintf(&b, "🏷️ Commission: ₹%s\n", formatINR(boat.Commission))
		fmt.Fprintf(&b, "✅ Net Payable: ₹%s\n\n", formatINR(boat.Payable))
		fmt.Fprintf(&b, "Lots: %d\n\n— AquaLedger", boat.Count)
		return b.String(), nil
	}

	return "", fmt.Errorf("boat %d has no lots in week starting %s", boatID, summary.WeekStart)
}

// DailyCSV exports the day's lots as CSV
func (s *ReportService) DailyCSV(ctx context.Context, date time.Time) ([]byte, error) {
	summary, err := s.GetDailySummary(ctx, date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Lot ID", "Boat", "Species", "Weight (kg)", "Price/kg", "Commission %", "Total", "Commission", "Payable", "Time"})
	for _, lot := range summary.Lots {
		w.Write([]string{
			strconv.Itoa(lot.ID),
			lot.BoatName,
			lot.Species,
			strconv.FormatFloat(lot.Weight, 'f', 2, 64),
			strconv.FormatFloat(lot.PricePerUnit, 'f', 2, 64),
			strconv.FormatFloat(lot.CommissionRate, 'f', 1, 64),
			strconv.FormatFloat(lot.TotalAmount, 'f', 2, 64),
			strconv.FormatFloat(lot.CommissionAmount, 'f', 2, 64),
			strconv.FormatFloat(lot.PayableAmount, 'f', 2, 64),
			timeutil.FormatIST(lot.CreatedAt, timeutil.DateTimeLayout),
		})
	}
	w.Write([]string{})
	w.Write([]string{"", "", "", "", "", "TOTALS",
		strconv.FormatFloat(summary.Totals.Revenue, 'f', 2, 64),
		strconv.FormatFloat(summary.Totals.Commission, 'f', 2, 64),
		strconv.FormatFloat(summary.Totals.Payable, 'f', 2, 64),
		"",
	})

	w.Flush()
	return buf.Bytes(), w.Error()
}

// WeeklyPDF renders the week's settlement sheet as a PDF and, when an
// archiver is configured, uploads a copy in the background.
func (s *ReportService) WeeklyPDF(ctx context.Context, date time.Time) ([]byte, error) {
	summary, err := s.GetWeeklySummary(ctx, date)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "AquaLedger - Weekly Settlement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Week: %s to %s", summary.WeekStart, summary.WeekEnd), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(50, 7, "Boat", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Owner", "1", 0, "C", true, 0, "")
	pdf.CellFormat(15, 7, "Lots", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Revenue", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Commission", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Payable", "1", 0, "C", true, 0, "")
	pdf.CellFormat(10, 7, "Paid", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 10)
	for _, boat := range summary.Boats {
		name := boat.BoatName
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		owner := boat.OwnerName
		if len(owner) > 18 {
			owner = owner[:15] + "..."
		}
		paid := ""
		if boat.Settled {
			paid = "Yes"
		}
		pdf.CellFormat(50, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, owner, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, strconv.Itoa(boat.Count), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", boat.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("Rs. %.2f", boat.Commission), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("Rs. %.2f", boat.Payable), "1", 0, "R", false, 0, "")
		pdf.CellFormat(10, 6, paid, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Grand total
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(200, 255, 200)
	pdf.CellFormat(190, 10, fmt.Sprintf("Total Payable This Week: Rs. %.2f", summary.TotalPayable), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	if s.archiver != nil {
		key := fmt.Sprintf("reports/weekly/%s.pdf", summary.WeekStart)
		data := buf.Bytes()
		go func() {
			uploadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.archiver.Upload(uploadCtx, key, data, "application/pdf"); err != nil {
				log.Printf("[Report] Archive upload failed for %s: %v", key, err)
			}
		}()
	}

	return buf.Bytes(), nil
}

// formatINR renders an amount with Indian digit grouping, e.g.
// 1234567.5 -> 12,34,567.5
func formatINR(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	head := intPart[:len(intPart)-3]
	tail := intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(groups, ",") + "," + tail + fracPart
}
