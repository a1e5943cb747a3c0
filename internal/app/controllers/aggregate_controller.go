package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seda/schoolpulse/internal/app/models/dto"
	"github.com/seda/schoolpulse/internal/app/services"
	"github.com/seda/schoolpulse/internal/middleware"
	"github.com/seda/schoolpulse/internal/sim"
)

// AggregateController serves grouped survey statistics with small-cell
// suppression applied.
type AggregateController struct {
	datasetService *services.DatasetService
}

// NewAggregateController creates a new AggregateController
func NewAggregateController(datasetService *services.DatasetService) *AggregateController {
	return &AggregateController{datasetService: datasetService}
}

// GetAggregates godoc
// @Summary Aggregated survey statistics
// @Description Groups relabelled responses by the requested dimensions and returns per-survey n, mean and 95% confidence half-width per group. Groups below the threshold are flagged suppressed.
// @Tags aggregates
// @Produce json
// @Param group_by query string false "Comma-separated dimensions: school, year_group, wave, background, ttp"
// @Param threshold query int false "Suppression threshold (defaults to the configured value)"
// @Success 200 {object} dto.APIResponse{data=[]models.AggregateRow}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /aggregates [get]
func (c *AggregateController) GetAggregates(ctx *gin.Context) {
	var groupBy []sim.GroupField
	if raw := ctx.Query("group_by"); raw != "" {
		for _, field := range strings.Split(raw, ",") {
			groupBy = append(groupBy, sim.GroupField(strings.TrimSpace(field)))
		}
	}

	threshold := 0
	if raw := ctx.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Threshold must be a positive integer"),
			})
			return
		}
		threshold = parsed
	}

	rows, err := c.datasetService.Aggregate(groupBy, threshold)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}
