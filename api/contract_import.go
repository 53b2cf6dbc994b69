package api

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/validator"
)

type importRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type importContractsResponse struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []importRowError `json:"errors"`
}

// importContracts bulk-loads contracts from an uploaded CSV or XLSX file.
// Rows are processed independently: a malformed row is reported and skipped,
// the rest of the file is still imported.
func (server *Server) importContracts(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("file is required: %w", err)))
		return
	}

	rows, err := readImportRows(fileHeader)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if len(rows) < 2 {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("file contains no data rows")))
		return
	}

	columns, err := mapImportHeader(rows[0])
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	resp := importContractsResponse{Errors: []importRowError{}}
	for i, row := range rows[1:] {
		rowNumber := i + 2 // 1-based, after the header

		arg, err := parseImportRow(columns, row)
		if err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, importRowError{Row: rowNumber, Reason: err.Error()})
			continue
		}

		if _, err := server.dbStore.CreateContract(context.Background(), arg); err != nil {
			log.Err(err).Int("row", rowNumber).Msg("failed to import contract row")
			resp.Failed++
			resp.Errors = append(resp.Errors, importRowError{Row: rowNumber, Reason: "database error"})
			continue
		}

		resp.Imported++
	}

	ctx.JSON(http.StatusOK, resp)
}

func readImportRows(fileHeader *multipart.FileHeader) ([][]string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		return readCSVRows(file)
	case ".xlsx":
		return readXLSXRows(file)
	default:
		return nil, errors.New("unsupported file type, expected .csv or .xlsx")
	}
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return rows, nil
}

func readXLSXRows(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XLSX: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("XLSX file contains no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX rows: %w", err)
	}

	return rows, nil
}

var importColumns = []string{
	"name",
	"position",
	"work_location",
	"contract_number",
	"start_date",
	"end_date",
	"duration",
	"compensation_pay_date",
	"notes",
}

// mapImportHeader resolves column positions by header name so files may
// order their columns freely. Only name, position and the two dates are
// mandatory.
func mapImportHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, cell := range header {
		columns[strings.ToLower(strings.TrimSpace(cell))] = i
	}

	for _, required := range []string{"name", "position", "start_date", "end_date"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	return columns, nil
}

func parseImportRow(columns map[string]int, row []string) (db.CreateContractParams, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	optional := func(name string) *string {
		if value := cell(name); value != "" {
			return &value
		}
		return nil
	}

	arg := db.CreateContractParams{
		Name:           cell("name"),
		Position:       cell("position"),
		WorkLocation:   optional("work_location"),
		ContractNumber: optional("contract_number"),
		Duration:       optional("duration"),
		Notes:          optional("notes"),
		Status:         db.ContractStatusActive,
	}

	if arg.Name == "" {
		return arg, errors.New("name is empty")
	}
	if arg.Position == "" {
		return arg, errors.New("position is empty")
	}

	var err error
	if arg.StartDate, err = validator.ValidateDate(cell("start_date")); err != nil {
		return arg, fmt.Errorf("start_date %w", err)
	}
	if arg.EndDate, err = validator.ValidateDate(cell("end_date")); err != nil {
		return arg, fmt.Errorf("end_date %w", err)
	}
	if payDate := cell("compensation_pay_date"); payDate != "" {
		parsed, err := validator.ValidateDate(payDate)
		if err != nil {
			return arg, fmt.Errorf("compensation_pay_date %w", err)
		}
		arg.CompensationPayDate = &parsed
	}

	return arg, nil
}
