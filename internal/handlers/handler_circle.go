package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tallmate/trust-circle/internal/apperrors"
	portssvc "github.com/tallmate/trust-circle/internal/core/ports/services"
	"github.com/tallmate/trust-circle/internal/dto"
	"github.com/tallmate/trust-circle/internal/middleware"
	"github.com/tallmate/trust-circle/internal/utils/pagination"
)

// circleHandler handles HTTP requests related to circles.
type circleHandler struct {
	circleService portssvc.CircleSvcFacade
}

func newCircleHandler(cs portssvc.CircleSvcFacade) *circleHandler {
	return &circleHandler{circleService: cs}
}

// registerCircleRoutes registers routes related to circles.
func registerCircleRoutes(rg *gin.RouterGroup, circleService portssvc.CircleSvcFacade) {
	h := newCircleHandler(circleService)

	circles := rg.Group("/circles")
	{
		circles.POST("", h.createCircle)
		circles.GET("", h.listCircles)
		circles.GET("/:circleID", h.getCircle)
		circles.PUT("/:circleID", h.updateCircle)
		circles.DELETE("/:circleID", h.deleteCircle)
	}
}

// circleIDParam extracts and validates the :circleID path parameter.
func circleIDParam(c *gin.Context) (string, bool) {
	circleID := c.Param("circleID")
	if _, err := uuid.Parse(circleID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid circle ID format"})
		return "", false
	}
	return circleID, true
}

// writeServiceError maps service errors to HTTP responses.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Circle not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Circle not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate circle", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Circle already exists"})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}

// createCircle godoc
// @Summary Create a new circle
// @Description Creates a trust circle. createdAt and updatedAt are set by the server.
// @Tags circles
// @Accept  json
// @Produce  json
// @Param   circle body dto.CreateCircleRequest true "Circle details"
// @Success 201 {object} dto.CircleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Circle already exists"
// @Failure 500 {object} map[string]string "Failed to create circle"
// @Router /api/v1/circles [post]
func (h *circleHandler) createCircle(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCircle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	circle, err := h.circleService.CreateCircle(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create circle")
		return
	}

	logger.Info("Circle created successfully", slog.String("circle_id", circle.CircleID))
	c.JSON(http.StatusCreated, dto.ToCircleResponse(circle))
}

// getCircle godoc
// @Summary Get a circle by ID
// @Description Retrieves a circle together with its audit timestamps
// @Tags circles
// @Produce  json
// @Param   circleID path string true "Circle ID"
// @Success 200 {object} dto.CircleResponse
// @Failure 400 {object} map[string]string "Invalid circle ID format"
// @Failure 404 {object} map[string]string "Circle not found"
// @Failure 500 {object} map[string]string "Failed to retrieve circle"
// @Router /api/v1/circles/{circleID} [get]
func (h *circleHandler) getCircle(c *gin.Context) {
	circleID, ok := circleIDParam(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromContext(c).With(slog.String("circle_id", circleID))

	circle, err := h.circleService.GetCircleByID(c.Request.Context(), circleID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve circle")
		return
	}
	c.JSON(http.StatusOK, dto.ToCircleResponse(circle))
}

// listCircles godoc
// @Summary List circles
// @Description Retrieves a page of circles, newest first
// @Tags circles
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCirclesResponse
// @Failure 400 {object} map[string]string "Invalid limit or token"
// @Failure 500 {object} map[string]string "Failed to list circles"
// @Router /api/v1/circles [get]
func (h *circleHandler) listCircles(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	limit := pagination.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = pagination.ClampLimit(parsed)
	}
	offset, err := pagination.DecodeToken(c.Query("nextToken"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	circles, err := h.circleService.ListCircles(c.Request.Context(), limit, offset)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list circles")
		return
	}

	logger.Info("Circles listed successfully", slog.Int("count", len(circles)))
	c.JSON(http.StatusOK, dto.ListCirclesResponse{
		Circles:   dto.ToListCircleResponse(circles),
		NextToken: pagination.NextToken(offset, limit, len(circles)),
	})
}

// updateCircle godoc
// @Summary Update a circle
// @Description Updates a circle's name or description. updatedAt advances, createdAt is kept.
// @Tags circles
// @Accept  json
// @Produce  json
// @Param   circleID path string true "Circle ID"
// @Param   circle body dto.UpdateCircleRequest true "Fields to update"
// @Success 200 {object} dto.CircleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Circle not found"
// @Failure 500 {object} map[string]string "Failed to update circle"
// @Router /api/v1/circles/{circleID} [put]
func (h *circleHandler) updateCircle(c *gin.Context) {
	circleID, ok := circleIDParam(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromContext(c).With(slog.String("circle_id", circleID))

	var req dto.UpdateCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCircle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	circle, err := h.circleService.UpdateCircle(c.Request.Context(), circleID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update circle")
		return
	}

	logger.Info("Circle updated successfully")
	c.JSON(http.StatusOK, dto.ToCircleResponse(circle))
}

// deleteCircle godoc
// @Summary Delete a circle
// @Description Deletes a circle by ID
// @Tags circles
// @Param   circleID path string true "Circle ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid circle ID format"
// @Failure 404 {object} map[string]string "Circle not found"
// @Failure 500 {object} map[string]string "Failed to delete circle"
// @Router /api/v1/circles/{circleID} [delete]
func (h *circleHandler) deleteCircle(c *gin.Context) {
	circleID, ok := circleIDParam(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromContext(c).With(slog.String("circle_id", circleID))

	if err := h.circleService.DeleteCircle(c.Request.Context(), circleID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete circle")
		return
	}

	logger.Info("Circle deleted successfully")
	c.Status(http.StatusNoContent)
}
