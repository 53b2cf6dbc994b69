package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
)

// Notifications are created only by the expiry checker; this API is the
// read side plus the two mutations the inbox allows, marking read and
// deleting.

const recentNotificationsLimit = 50

func (server *Server) listUnreadNotifications(ctx *gin.Context) {
	notifications, err := server.dbStore.ListUnreadNotifications(context.Background())
	if err != nil {
		log.Err(err).Msg("failed to list unread notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

func (server *Server) listAllNotifications(ctx *gin.Context) {
	notifications, err := server.dbStore.ListRecentNotifications(context.Background(), recentNotificationsLimit)
	if err != nil {
		log.Err(err).Msg("failed to list notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

func (server *Server) countUnreadNotifications(ctx *gin.Context) {
	count, err := server.dbStore.CountUnreadNotifications(context.Background())
	if err != nil {
		log.Err(err).Msg("failed to count unread notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (server *Server) markNotificationRead(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	notification, err := server.dbStore.MarkNotificationRead(context.Background(), id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("notification ID %d not found", id)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to mark notification as read")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}

func (server *Server) markAllNotificationsRead(ctx *gin.Context) {
	count, err := server.dbStore.MarkAllNotificationsRead(context.Background())
	if err != nil {
		log.Err(err).Msg("failed to mark all notifications as read")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "All notifications marked as read",
		"count":   count,
	})
}

func (server *Server) deleteNotification(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rowsAffected, err := server.dbStore.DeleteNotification(context.Background(), id)
	if err != nil {
		log.Err(err).Msg("failed to delete notification")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}
	if rowsAffected == 0 {
		err = fmt.Errorf("notification ID %d not found", id)
		ctx.JSON(http.StatusNotFound, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
