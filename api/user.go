package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/util"
	"github.com/nandafir/pkwt-BE/internal/validator"
)

var errInvalidCaptcha = errors.New("invalid or expired CAPTCHA")

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(user db.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

type registerUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CaptchaID string `json:"captcha_id"`
	Captcha   string `json:"captcha"`
}

func validateRegisterUserRequest(req *registerUserRequest) (violations []*FieldViolation) {
	if err := validator.ValidateString(req.Name, 1, 100); err != nil {
		violations = append(violations, fieldViolation("name", err))
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		violations = append(violations, fieldViolation("email", err))
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		violations = append(violations, fieldViolation("password", err))
	}

	return violations
}

func (server *Server) registerUser(ctx *gin.Context) {
	req := new(registerUserRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if !server.captchaService.Verify(req.CaptchaID, req.Captcha) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errInvalidCaptcha))
		return
	}

	violations := validateRegisterUserRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("failed to hash password: %w", err)))
		return
	}

	arg := db.CreateUserParams{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	user, err := server.dbStore.CreateUser(context.Background(), arg)
	if err != nil {
		if db.IsUniqueViolation(err, db.UniqueEmailConstraint) {
			err = fmt.Errorf("email %s already exists", req.Email)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to create user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    newUserResponse(user),
	})
}

type loginUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CaptchaID string `json:"captcha_id"`
	Captcha   string `json:"captcha"`
}

type loginUserResponse struct {
	User                 userResponse `json:"user"`
	AccessToken          string       `json:"access_token"`
	AccessTokenExpiresAt time.Time    `json:"access_token_expires_at"`
}

func (server *Server) loginUser(ctx *gin.Context) {
	req := new(loginUserRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if !server.captchaService.Verify(req.CaptchaID, req.Captcha) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errInvalidCaptcha))
		return
	}

	user, err := server.dbStore.GetUserByEmail(context.Background(), req.Email)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = errors.New("invalid credentials")
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to find user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	err = util.CheckPassword(req.Password, user.HashedPassword)
	if err != nil {
		err = errors.New("invalid credentials")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(user.ID, server.config.AccessTokenDuration)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp := loginUserResponse{
		User:                 newUserResponse(user),
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
	}
	ctx.JSON(http.StatusOK, resp)
}
