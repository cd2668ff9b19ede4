package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/pkg/errors"
	"github.com/pattaya-dashboard/internal/pkg/validator"
	"github.com/pattaya-dashboard/internal/usecase/dto"
)

// parseQuery читает hour, category и heatmap из query string и подставляет значения по умолчанию
func parseQuery(c *fiber.Ctx, defaultHour int) (domain.Query, error) {
	var req dto.DashboardQuery
	if err := c.QueryParser(&req); err != nil {
		return domain.Query{}, errors.ErrInvalidQuery.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	// an empty value such as ?hour= means the parameter was not chosen
	if c.Query("hour") == "" {
		req.Hour = nil
	}
	if c.Query("heatmap") == "" {
		req.Heatmap = nil
	}

	if err := validator.Validate(&req); err != nil {
		return domain.Query{}, err
	}

	return req.ToDomain(defaultHour), nil
}

// toAppError сопоставляет ошибки use case с ответами API
func toAppError(err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	if stderrors.Is(err, domain.ErrDataLoad) {
		return errors.ErrDatasetUnavailable.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return err
}
