package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type generateCaptchaResponse struct {
	CaptchaID string `json:"captcha_id"`
	Image     string `json:"image"`
}

func (server *Server) generateCaptcha(ctx *gin.Context) {
	id, image, err := server.captchaService.Generate()
	if err != nil {
		log.Err(err).Msg("failed to generate captcha")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, generateCaptchaResponse{
		CaptchaID: id,
		Image:     image,
	})
}
