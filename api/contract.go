package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/validator"
)

type contractRequest struct {
	Name                string  `json:"name"`
	Position            string  `json:"position"`
	WorkLocation        *string `json:"work_location"`
	ContractNumber      *string `json:"contract_number"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Duration            *string `json:"duration"`
	CompensationPayDate *string `json:"compensation_pay_date"`
	Status              string  `json:"status"`
	Notes               *string `json:"notes"`
}

type parsedContract struct {
	startDate           time.Time
	endDate             time.Time
	compensationPayDate *time.Time
	status              db.ContractStatus
}

func validateContractRequest(req *contractRequest) (parsed parsedContract, violations []*FieldViolation) {
	if err := validator.ValidateString(req.Name, 1, 200); err != nil {
		violations = append(violations, fieldViolation("name", err))
	}
	if err := validator.ValidateString(req.Position, 1, 200); err != nil {
		violations = append(violations, fieldViolation("position", err))
	}

	var err error
	if parsed.startDate, err = validator.ValidateDate(req.StartDate); err != nil {
		violations = append(violations, fieldViolation("start_date", err))
	}
	if parsed.endDate, err = validator.ValidateDate(req.EndDate); err != nil {
		violations = append(violations, fieldViolation("end_date", err))
	}
	if req.CompensationPayDate != nil && *req.CompensationPayDate != "" {
		payDate, err := validator.ValidateDate(*req.CompensationPayDate)
		if err != nil {
			violations = append(violations, fieldViolation("compensation_pay_date", err))
		} else {
			parsed.compensationPayDate = &payDate
		}
	}

	switch req.Status {
	case "":
		parsed.status = db.ContractStatusActive
	case string(db.ContractStatusActive), string(db.ContractStatusExpired), string(db.ContractStatusPending):
		parsed.status = db.ContractStatus(req.Status)
	default:
		violations = append(violations, fieldViolation("status", fmt.Errorf("must be one of Active, Expired, Pending")))
	}

	return parsed, violations
}

func (server *Server) createContract(ctx *gin.Context) {
	req := new(contractRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	parsed, violations := validateContractRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	arg := db.CreateContractParams{
		Name:                req.Name,
		Position:            req.Position,
		WorkLocation:        req.WorkLocation,
		ContractNumber:      req.ContractNumber,
		StartDate:           parsed.startDate,
		EndDate:             parsed.endDate,
		Duration:            req.Duration,
		CompensationPayDate: parsed.compensationPayDate,
		Status:              parsed.status,
		Notes:               req.Notes,
	}

	contract, err := server.dbStore.CreateContract(context.Background(), arg)
	if err != nil {
		log.Err(err).Msg("failed to create contract")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusCreated, contract)
}

func (server *Server) listContracts(ctx *gin.Context) {
	contracts, err := server.dbStore.ListContracts(context.Background())
	if err != nil {
		log.Err(err).Msg("failed to list contracts")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, contracts)
}

func (server *Server) getContract(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	contract, err := server.dbStore.GetContractByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("contract ID %d not found", id)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get contract")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, contract)
}

func (server *Server) updateContract(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req := new(contractRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	parsed, violations := validateContractRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	arg := db.UpdateContractParams{
		ID:                  id,
		Name:                req.Name,
		Position:            req.Position,
		WorkLocation:        req.WorkLocation,
		ContractNumber:      req.ContractNumber,
		StartDate:           parsed.startDate,
		EndDate:             parsed.endDate,
		Duration:            req.Duration,
		CompensationPayDate: parsed.compensationPayDate,
		Status:              parsed.status,
		Notes:               req.Notes,
	}

	contract, err := server.dbStore.UpdateContract(context.Background(), arg)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("contract ID %d not found", id)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to update contract")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, contract)
}

func (server *Server) deleteContract(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rowsAffected, err := server.dbStore.DeleteContract(context.Background(), id)
	if err != nil {
		log.Err(err).Msg("failed to delete contract")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}
	if rowsAffected == 0 {
		err = fmt.Errorf("contract ID %d not found", id)
		ctx.JSON(http.StatusNotFound, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Contract deleted successfully"})
}

func parseIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", ctx.Param("id"))
	}

	return id, nil
}
