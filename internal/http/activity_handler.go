package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/domain/dto"
	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/service"
)

// ActivityHandler exposes the stored activity log to catalog administrators.
type ActivityHandler struct {
	logs service.LoggingService
}

// NewActivityHandler creates an ActivityHandler reading from logs.
func NewActivityHandler(logs service.LoggingService) *ActivityHandler {
	return &ActivityHandler{logs: logs}
}

// List handles GET /api/activity requests.
//
// @Summary      Query the activity log
// @Description  Returns stored request and calculation entries, newest first.
// @Tags         Activity
// @Produce      json
// @Security     BearerAuth
// @Param        request_id  query string false "Request ID"
// @Param        level       query string false "Log level"
// @Param        product_id  query string false "Product ID"
// @Param        action_type query string false "Action type (calculate, form_input, form_step, login, update_product)"
// @Param        since       query string false "RFC 3339 lower bound on the timestamp"
// @Param        until       query string false "RFC 3339 upper bound on the timestamp"
// @Param        limit       query int    false "Maximum number of entries (default 50, max 200)"
// @Param        skip        query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ActivityListResponse} "Matching entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Not an administrator"
// @Failure      503 {object} dto.ErrorResponse "Log storage unavailable"
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	opts, err := activityQuery(c)
	if err != nil {
		NewResponseBuilder(c).BadRequest(err)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.logs.QueryLogs(ctx, opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	total, err := h.logs.CountLogs(ctx, opts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.ActivityListResponse{
		Entries: entries,
		Count:   len(entries),
		Total:   total,
	})
}

func activityQuery(c *gin.Context) (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		RequestID:  c.Query("request_id"),
		Level:      c.Query("level"),
		ProductID:  c.Query("product_id"),
		ActionType: c.Query("action_type"),
		Limit:      defaultListLimit,
	}

	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Limit = min(n, maxListLimit)
		}
	}
	if raw := c.Query("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Skip = n
		}
	}

	var err error
	if opts.StartTime, err = parseTimeParam(c, "since"); err != nil {
		return opts, err
	}
	if opts.EndTime, err = parseTimeParam(c, "until"); err != nil {
		return opts, err
	}
	if opts.StartTime != nil && opts.EndTime != nil && opts.EndTime.Before(*opts.StartTime) {
		return opts, dto.ErrInvalidTimeRange
	}
	return opts, nil
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, &dto.ValidationError{Field: name, Message: "must be an RFC 3339 timestamp"}
	}
	return &t, nil
}
