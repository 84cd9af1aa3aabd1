package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"hotelrev/config"
	"hotelrev/models"
	"hotelrev/services/logger"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var uploadLogger = logger.NewDefaultLogger(logger.InfoLevel)

// Fixed column order of an actuals workbook. The first row is a header
// and is skipped.
const (
	colDate = iota
	colHotelCode
	colRevenueTY
	colRoomNightsTY
	colADRTY
	colSTLYRevenue
	colSTLYRoomNights
	colSTLYADR
	colResultsLYRevenue
	colResultsLYRoomNights
	colResultsLYADR
	uploadColumnCount
)

// UploadRow is one raw workbook row before hotel resolution.
type UploadRow struct {
	Row       int // 1-based workbook row, for error reporting
	Date      time.Time
	HotelCode string

	RevenueTY    *float64
	RoomNightsTY *int
	ADRTY        *float64

	STLYRevenue    *float64
	STLYRoomNights *int
	STLYADR        *float64

	ResultsLYRevenue    *float64
	ResultsLYRoomNights *int
	ResultsLYADR        *float64
}

// RowError is one rejected upload row. Row errors never abort the rest
// of the batch.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// UploadResult summarizes a processed actuals upload.
type UploadResult struct {
	Saved     int        `json:"saved"`
	RowErrors []RowError `json:"rowErrors,omitempty"`
	Warnings  []string   `json:"warnings,omitempty"`
}

var uploadDateLayouts = []string{"2006-01-02", "01-02-06", "1/2/06", "2006/01/02"}

func parseUploadDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", cell)
}

// parseMoney reads an optional numeric cell through decimal so currency
// strings like "1,234.50" survive the trip. Empty cells mean absent.
func parseMoney(cell string) (*float64, error) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if cell == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return nil, fmt.Errorf("unrecognized number %q", cell)
	}
	v := d.Round(2).InexactFloat64()
	return &v, nil
}

func parseCount(cell string) (*int, error) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if cell == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return nil, fmt.Errorf("unrecognized count %q", cell)
	}
	v := int(d.IntPart())
	return &v, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// ParseActualsWorkbook reads the first sheet of an xlsx stream into
// upload rows. Unparseable rows are collected as row errors while the
// rest continue.
func ParseActualsWorkbook(r io.Reader) ([]UploadRow, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rawRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read sheet %s: %w", sheets[0], err)
	}

	var rows []UploadRow
	var rowErrors []RowError

	for i, raw := range rawRows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		empty := true
		for _, cell := range raw {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row, err := parseUploadRow(rowNum, raw)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		rows = append(rows, row)
	}

	return rows, rowErrors, nil
}

func parseUploadRow(rowNum int, raw []string) (UploadRow, error) {
	row := UploadRow{Row: rowNum}

	date, err := parseUploadDate(cellAt(raw, colDate))
	if err != nil {
		return row, err
	}
	row.Date = date

	row.HotelCode = strings.TrimSpace(cellAt(raw, colHotelCode))
	if row.HotelCode == "" {
		return row, fmt.Errorf("missing hotel code")
	}

	if row.RevenueTY, err = parseMoney(cellAt(raw, colRevenueTY)); err != nil {
		return row, fmt.Errorf("revenue TY: %v", err)
	}
	if row.RoomNightsTY, err = parseCount(cellAt(raw, colRoomNightsTY)); err != nil {
		return row, fmt.Errorf("room nights TY: %v", err)
	}
	if row.ADRTY, err = parseMoney(cellAt(raw, colADRTY)); err != nil {
		return row, fmt.Errorf("ADR TY: %v", err)
	}
	if row.STLYRevenue, err = parseMoney(cellAt(raw, colSTLYRevenue)); err != nil {
		return row, fmt.Errorf("STLY revenue: %v", err)
	}
	if row.STLYRoomNights, err = parseCount(cellAt(raw, colSTLYRoomNights)); err != nil {
		return row, fmt.Errorf("STLY room nights: %v", err)
	}
	if row.STLYADR, err = parseMoney(cellAt(raw, colSTLYADR)); err != nil {
		return row, fmt.Errorf("STLY ADR: %v", err)
	}
	if row.ResultsLYRevenue, err = parseMoney(cellAt(raw, colResultsLYRevenue)); err != nil {
		return row, fmt.Errorf("results LY revenue: %v", err)
	}
	if row.ResultsLYRoomNights, err = parseCount(cellAt(raw, colResultsLYRoomNights)); err != nil {
		return row, fmt.Errorf("results LY room nights: %v", err)
	}
	if row.ResultsLYADR, err = parseMoney(cellAt(raw, colResultsLYADR)); err != nil {
		return row, fmt.Errorf("results LY ADR: %v", err)
	}

	return row, nil
}

// BuildActuals resolves hotel codes and turns upload rows into model
// rows plus advisory warnings. Rows naming an unknown hotel become row
// errors; the rest proceed.
func BuildActuals(rows []UploadRow, hotelsByCode map[string]models.Hotel, thresholds MetricThresholds, uploadedBy uint) ([]models.DailyActual, []RowError, []string) {
	var actuals []models.DailyActual
	var rowErrors []RowError
	var warnings []string

	for _, row := range rows {
		hotel, ok := hotelsByCode[row.HotelCode]
		if !ok {
			rowErrors = append(rowErrors, RowError{
				Row:     row.Row,
				Message: fmt.Sprintf("unknown hotel code %q", row.HotelCode),
			})
			continue
		}

		actual := models.DailyActual{
			HotelID:             hotel.ID,
			Date:                row.Date,
			RevenueTY:           row.RevenueTY,
			RoomNightsTY:        row.RoomNightsTY,
			ADRTY:               row.ADRTY,
			STLYRevenue:         row.STLYRevenue,
			STLYRoomNights:      row.STLYRoomNights,
			STLYADR:             row.STLYADR,
			ResultsLYRevenue:    row.ResultsLYRevenue,
			ResultsLYRoomNights: row.ResultsLYRoomNights,
			ResultsLYADR:        row.ResultsLYADR,
			UploadedBy:          uploadedBy,
		}

		m := thresholds.DeriveDaily(actual, hotel.TotalRooms)
		for _, flag := range m.Flags {
			warnings = append(warnings, FlagMessage(hotel.Code, row.Date, flag))
		}

		actuals = append(actuals, actual)
	}

	return actuals, rowErrors, warnings
}

// ProcessActualsUpload runs the full upload pipeline: parse, resolve,
// derive warnings, persist in one transaction, invalidate caches. Row
// errors are reported alongside the saved count; a storage failure
// aborts the batch entirely.
func ProcessActualsUpload(ctx context.Context, r io.Reader, uploadedBy uint) (UploadResult, error) {
	rows, parseErrors, err := ParseActualsWorkbook(r)
	if err != nil {
		return UploadResult{}, err
	}

	var hotels []models.Hotel
	if err := config.DB.Find(&hotels).Error; err != nil {
		return UploadResult{}, err
	}
	hotelsByCode := make(map[string]models.Hotel, len(hotels))
	for _, h := range hotels {
		hotelsByCode[h.Code] = h
	}

	actuals, buildErrors, warnings := BuildActuals(rows, hotelsByCode, DefaultThresholds(), uploadedBy)

	if err := SaveActualsBatch(actuals); err != nil {
		return UploadResult{}, err
	}

	if config.RedisClient != nil {
		// analytics caches span many hotels; drop them all after a bulk load
		_ = DeleteKeysByPattern(ctx, config.RedisClient, "analytics:*")
	}

	result := UploadResult{
		Saved:     len(actuals),
		RowErrors: append(parseErrors, buildErrors...),
		Warnings:  warnings,
	}
	uploadLogger.WithField("uploadedBy", uploadedBy).
		Info("actuals upload processed: %d saved, %d rejected, %d warnings",
			result.Saved, len(result.RowErrors), len(result.Warnings))
	return result, nil
}
