package services

import (
	"bytes"
	"testing"

	"hotelrev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{"Date", "HotelCode", "RevenueTY", "RoomNightsTY", "ADR_TY",
		"STLYRevenue", "STLYRoomNights", "STLY_ADR",
		"ResultsLYRevenue", "ResultsLYRoomNights", "ResultsLY_ADR"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseActualsWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"2025-06-01", "HAN01", "10000", "50", "200", "9000", "45", "180", "8500", "42", "175"},
		{"2025-06-02", "HAN01", "12,500.50", "60", "208.34", "", "", "", "", "", ""},
	})

	rows, rowErrors, err := ParseActualsWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, rows, 2)

	assert.Equal(t, "HAN01", rows[0].HotelCode)
	assert.Equal(t, day(2025, 6, 1), rows[0].Date)
	assert.Equal(t, 10000.0, *rows[0].RevenueTY)
	assert.Equal(t, 50, *rows[0].RoomNightsTY)
	assert.Equal(t, 180.0, *rows[0].STLYADR)

	// thousands separator parses; empty baseline cells stay nil
	assert.Equal(t, 12500.50, *rows[1].RevenueTY)
	assert.Nil(t, rows[1].STLYRevenue)
	assert.Nil(t, rows[1].ResultsLYADR)
}

func TestParseActualsWorkbookCollectsRowErrors(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"not-a-date", "HAN01", "1000", "10", "100", "", "", "", "", "", ""},
		{"2025-06-01", "", "1000", "10", "100", "", "", "", "", "", ""},
		{"2025-06-02", "HAN01", "abc", "10", "100", "", "", "", "", "", ""},
		{"2025-06-03", "HAN01", "1000", "10", "100", "", "", "", "", "", ""},
	})

	rows, rowErrors, err := ParseActualsWorkbook(buf)
	require.NoError(t, err)

	// bad rows are reported individually, the good row survives
	require.Len(t, rowErrors, 3)
	require.Len(t, rows, 1)
	assert.Equal(t, day(2025, 6, 3), rows[0].Date)

	assert.Equal(t, 2, rowErrors[0].Row)
	assert.Contains(t, rowErrors[0].Message, "unrecognized date")
	assert.Contains(t, rowErrors[1].Message, "missing hotel code")
	assert.Contains(t, rowErrors[2].Message, "revenue TY")
}

func TestParseActualsWorkbookSkipsEmptyRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"2025-06-01", "HAN01", "1000", "10", "100", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", "", "", "", ""},
	})

	rows, rowErrors, err := ParseActualsWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Len(t, rows, 1)
}

func TestBuildActualsResolvesHotelCodes(t *testing.T) {
	hotels := map[string]models.Hotel{
		"HAN01": hotelWithID(1, "HAN01", 100),
	}
	rows := []UploadRow{
		{Row: 2, Date: day(2025, 6, 1), HotelCode: "HAN01",
			RevenueTY: fptr(10000), RoomNightsTY: iptr(50), ADRTY: fptr(200)},
		{Row: 3, Date: day(2025, 6, 1), HotelCode: "NOPE",
			RevenueTY: fptr(5000)},
	}

	actuals, rowErrors, warnings := BuildActuals(rows, hotels, DefaultThresholds(), 9)

	require.Len(t, actuals, 1)
	assert.Equal(t, uint(1), actuals[0].HotelID)
	assert.Equal(t, uint(9), actuals[0].UploadedBy)

	require.Len(t, rowErrors, 1)
	assert.Equal(t, 3, rowErrors[0].Row)
	assert.Contains(t, rowErrors[0].Message, "unknown hotel code")
	assert.Empty(t, warnings)
}

func TestBuildActualsEmitsAdvisoryWarnings(t *testing.T) {
	hotels := map[string]models.Hotel{
		"HAN01": hotelWithID(1, "HAN01", 100),
	}
	rows := []UploadRow{
		// 150 room nights against 100 rooms
		{Row: 2, Date: day(2025, 6, 1), HotelCode: "HAN01",
			RevenueTY: fptr(30000), RoomNightsTY: iptr(150), ADRTY: fptr(200)},
	}

	actuals, rowErrors, warnings := BuildActuals(rows, hotels, DefaultThresholds(), 1)

	// warnings never block the row
	require.Len(t, actuals, 1)
	assert.Empty(t, rowErrors)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], FlagOccupancyExceeds)
}

func TestParseUploadDateLayouts(t *testing.T) {
	for _, cell := range []string{"2025-06-01", "2025/06/01", "6/1/25"} {
		got, err := parseUploadDate(cell)
		require.NoError(t, err, cell)
		assert.Equal(t, day(2025, 6, 1), got, cell)
	}

	_, err := parseUploadDate("June first")
	assert.Error(t, err)
}
