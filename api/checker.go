package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// runChecker triggers one expiry-check cycle synchronously. It shares the
// single-flight guard with the hourly schedule: if a cycle is already
// running, nothing is executed and the caller gets a 409.
func (server *Server) runChecker(ctx *gin.Context) {
	report, ran := server.checkerDriver.RunNow(ctx.Request.Context())
	if !ran {
		err := errors.New("a check cycle is already running")
		ctx.JSON(http.StatusConflict, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Check cycle complete",
		"report":  report,
	})
}
