package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes the boundary translator understands.
const (
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgUniqueViolation     = "23505"
	pgInvalidTextRep      = "22P02"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error carrying the HTTP status it
// should surface as. Status is resolved to a response code at the transport
// boundary only, by RespondWithError.
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors

// NewValidationError is for malformed or missing input, surfaced as 400.
func NewValidationError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// NewNotFoundError is for an absent referenced entity, surfaced as 404 with an
// entity-specific message, e.g. NewNotFoundError("Topic") -> "Topic not found".
func NewNotFoundError(entity string) *AppError {
	return &AppError{
		Status:  fiber.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: entity + " not found",
	}
}

// NewInternalError wraps an unclassified failure, surfaced as 500.
func NewInternalError(err error) *AppError {
	return &AppError{
		Status:  fiber.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// TranslateDBError maps store-level failures onto the AppError taxonomy:
// record-not-found -> 404, foreign-key violation -> 404 (a referenced entity is
// absent), not-null or invalid-text-representation -> 400, unique violation ->
// 400 (duplicate follow, reaction or slug). Anything unrecognized passes
// through untouched and falls to the generic 500 handler.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &AppError{Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: "Not found", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return &AppError{Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: "Not found", Err: err}
		case pgNotNullViolation, pgInvalidTextRep, pgUniqueViolation:
			return &AppError{Status: fiber.StatusBadRequest, Code: "BAD_REQUEST", Message: "Bad request", Err: err}
		}
	}

	return err
}

// RespondWithError writes a standardized error response. It is the single
// cross-cutting translator: explicit AppErrors keep their status, store errors
// are translated first, and anything unrecognized becomes a 500.
func RespondWithError(c *fiber.Ctx, err error) error {
	err = TranslateDBError(err)

	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	response := ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	}
	if appErr.Err != nil && appErr.Status == fiber.StatusInternalServerError {
		response.Details = appErr.Err.Error()
	}

	return c.Status(appErr.Status).JSON(response)
}
