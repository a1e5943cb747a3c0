package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/seda/schoolpulse/internal/app/models/dto"
	"github.com/seda/schoolpulse/internal/pkg/apperrors"
	"github.com/seda/schoolpulse/internal/sim"
)

// HandleAPIError maps service errors onto the standard response
// envelope. Controllers delegate every non-validation error here.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sim.ErrUnknownGroupField):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown grouping field").
				WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, sim.ErrInsufficientCredentials):
		// Fatal generator misconfiguration: the credential pool cannot
		// cover the population.
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeGenerationFailed, "Dataset generation failed").
				WithDetails(err.Error()),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
