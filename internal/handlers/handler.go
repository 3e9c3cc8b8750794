package handlers

import (
	"errors"
	"strconv"
	"time"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/services"
	"movieclub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// respondError maps a service error onto the response envelope. Errors with
// no mapping are logged and answered with 500.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, action string) error {
	var verr *services.ValidationError
	var upstream *services.UpstreamError

	switch {
	case errors.As(err, &verr):
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, verr.Message, utils.ValidationErrors{
			Errors: map[string]string{verr.Field: verr.Message},
		})
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, services.ErrForbidden.Error())
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrNotConfigured), errors.Is(err, services.ErrStorageDisabled):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, err.Error())
	case errors.As(err, &upstream):
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch data from the external catalog")
	}

	logger.WithError(err).WithField("path", c.Path()).Error("Failed to " + action)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to "+action)
}

// parseBody decodes and validates the request body into req. On failure the
// 400 response has already been written and ok is false.
func parseBody(c *fiber.Ctx, req any) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return false, utils.ValidationErrorResponse(c, fields)
	}
	return true, nil
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func queryID(c *fiber.Ctx, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func pagination(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// parseDate reads an optional YYYY-MM-DD value already checked by the
// validator.
func parseDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, *value)
	if err != nil {
		return nil
	}
	return &t
}
