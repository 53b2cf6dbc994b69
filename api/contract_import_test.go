package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
)

func TestMapImportHeader(t *testing.T) {
	columns, err := mapImportHeader([]string{"Name", " position ", "END_DATE", "start_date", "notes"})
	require.NoError(t, err)
	require.Equal(t, 0, columns["name"])
	require.Equal(t, 1, columns["position"])
	require.Equal(t, 2, columns["end_date"])

	_, err = mapImportHeader([]string{"name", "position", "start_date"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "end_date")
}

func TestParseImportRow(t *testing.T) {
	columns, err := mapImportHeader([]string{
		"name", "position", "work_location", "contract_number",
		"start_date", "end_date", "duration", "compensation_pay_date", "notes",
	})
	require.NoError(t, err)

	arg, err := parseImportRow(columns, []string{
		"Budi Santoso", "Operator Produksi", "Jakarta", "PKWT/2026/001",
		"2026-01-01", "2026-12-31", "12 bulan", "2027-01-15", "perpanjangan pertama",
	})
	require.NoError(t, err)
	require.Equal(t, "Budi Santoso", arg.Name)
	require.Equal(t, "Operator Produksi", arg.Position)
	require.NotNil(t, arg.WorkLocation)
	require.Equal(t, "Jakarta", *arg.WorkLocation)
	require.Equal(t, "2026-01-01", arg.StartDate.Format("2006-01-02"))
	require.Equal(t, "2026-12-31", arg.EndDate.Format("2006-01-02"))
	require.NotNil(t, arg.CompensationPayDate)
	require.Equal(t, db.ContractStatusActive, arg.Status)
}

func TestParseImportRowMissingOptionalCells(t *testing.T) {
	columns, err := mapImportHeader([]string{"name", "position", "start_date", "end_date"})
	require.NoError(t, err)

	arg, err := parseImportRow(columns, []string{"Siti", "Admin", "2026-01-01", "2026-06-30"})
	require.NoError(t, err)
	require.Nil(t, arg.WorkLocation)
	require.Nil(t, arg.ContractNumber)
	require.Nil(t, arg.CompensationPayDate)
	require.Nil(t, arg.Notes)
}

func TestParseImportRowRejectsBadRows(t *testing.T) {
	columns, err := mapImportHeader([]string{"name", "position", "start_date", "end_date"})
	require.NoError(t, err)

	_, err = parseImportRow(columns, []string{"", "Admin", "2026-01-01", "2026-06-30"})
	require.Error(t, err)

	_, err = parseImportRow(columns, []string{"Siti", "Admin", "01/01/2026", "2026-06-30"})
	require.Error(t, err)

	// Short rows (trailing empty cells stripped by the XLSX reader) fail on
	// the missing mandatory date, not with an index panic.
	_, err = parseImportRow(columns, []string{"Siti", "Admin"})
	require.Error(t, err)
}

func TestReadCSVRows(t *testing.T) {
	input := "name,position,start_date,end_date\nBudi,Operator,2026-01-01,2026-12-31\n"
	rows, err := readCSVRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Budi", rows[1][0])
}
