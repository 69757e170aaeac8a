package controllers

import (
	"errors"
	"net/http"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

// abortWithError maps service errors onto HTTP statuses: validation → 400,
// not-found → 404, anything else → 500. Recognition errors never reach
// here; the recognizer absorbs them.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrNoCandidates):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
