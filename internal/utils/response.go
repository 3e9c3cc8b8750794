package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope every endpoint answers with.
type StandardResponse struct {
	Status  string `json:"status" example:"success"`
	Code    int    `json:"code" example:"200"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ValidationErrors is the data payload of a 400 caused by bad input.
type ValidationErrors struct {
	Errors map[string]string `json:"errors"`
}

func SuccessResponse(c *fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMetaResponse sends a success response with pagination meta
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data any, meta any) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// ErrorResponse sends an error response; 5xx answers carry status "fail".
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return ErrorWithDataResponse(c, code, message, nil)
}

func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data any) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ValidationErrorResponse answers 400 with one message per offending field.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", ValidationErrors{Errors: fields})
}

func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	if limit <= 0 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
