package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seda/schoolpulse/internal/app/models/dto"
	"github.com/seda/schoolpulse/internal/app/services"
	"github.com/seda/schoolpulse/internal/middleware"
	"github.com/seda/schoolpulse/internal/sim"
)

// DatasetController exposes the generated dataset: public summaries
// and relabelled responses, plus the identifiable collections behind
// the reviewer login.
type DatasetController struct {
	datasetService *services.DatasetService
}

// NewDatasetController creates a new DatasetController
func NewDatasetController(datasetService *services.DatasetService) *DatasetController {
	return &DatasetController{datasetService: datasetService}
}

// GetCatalogs godoc
// @Summary Fixed catalogs
// @Description Returns the trusted third parties, schools, year groups, waves, surveys and background groups
// @Tags dataset
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CatalogResponse}
// @Router /catalogs [get]
func (c *DatasetController) GetCatalogs(ctx *gin.Context) {
	dataset := c.datasetService.Dataset()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CatalogResponse{
		TrustedThirdParties: dataset.TrustedThirdParties,
		Schools:             dataset.Schools,
		YearGroups:          dataset.YearGroups,
		Waves:               dataset.Waves,
		Surveys:             dataset.Surveys,
		Backgrounds:         dataset.Backgrounds,
	}))
}

// GetDatasetSummary godoc
// @Summary Dataset summary
// @Description Returns the active seed, collection sizes and the response column schema
// @Tags dataset
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DatasetSummary}
// @Router /dataset [get]
func (c *DatasetController) GetDatasetSummary(ctx *gin.Context) {
	dataset := c.datasetService.Dataset()

	columns := sim.ResponseColumns()
	columnKeys := make([]string, len(columns))
	for i, column := range columns {
		columnKeys[i] = column.Key
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DatasetSummary{
		Seed: dataset.Seed,
		Counts: dto.DatasetCounts{
			Students:                  len(dataset.Students),
			CredentialRecords:         len(dataset.CredentialRecords),
			StudentCredentials:        len(dataset.StudentCredentials),
			AdministrativeCredentials: len(dataset.AdministrativeCredentials),
			RawResponses:              len(dataset.RawResponses),
			RelabelledResponses:       len(dataset.RelabelledResponses),
		},
		Columns: columnKeys,
	}))
}

// GetResponses godoc
// @Summary Relabelled responses
// @Description Returns the full relabelled response table, keyed by pseudonymous UID
// @Tags dataset
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RelabelledResponse}
// @Router /responses [get]
func (c *DatasetController) GetResponses(ctx *gin.Context) {
	dataset := c.datasetService.Dataset()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dataset.RelabelledResponses))
}

// GetStudents godoc
// @Summary Student roster
// @Description Returns the identifiable student population
// @Tags identifiable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students [get]
func (c *DatasetController) GetStudents(ctx *gin.Context) {
	dataset := c.datasetService.Dataset()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dataset.Students))
}

// GetCredentials godoc
// @Summary Credential pools
// @Description Returns the student credential assignment, the surplus administrative records and the full per-school pools
// @Tags identifiable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CredentialsResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /credentials [get]
func (c *DatasetController) GetCredentials(ctx *gin.Context) {
	dataset := c.datasetService.Dataset()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CredentialsResponse{
		Assigned:       dataset.StudentCredentials,
		Administrative: dataset.AdministrativeCredentials,
		Pool:           dataset.CredentialRecords,
	}))
}

// GetRewriteMap godoc
// @Summary Rewrite map
// @Description Returns the student-to-UID rewrite map linking identities to pseudonyms
// @Tags identifiable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.RewriteMapEntry}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /rewrite-map [get]
func (c *DatasetController) GetRewriteMap(ctx *gin.Context) {
	dataset := c.datasetService.Dataset()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dataset.RewriteMap))
}

// Regenerate godoc
// @Summary Regenerate dataset
// @Description Rebuilds the whole dataset from a new seed; the same seed always yields the same dataset
// @Tags identifiable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegenerateRequest true "New seed"
// @Success 200 {object} dto.APIResponse{data=dto.DatasetSummary}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /dataset/regenerate [post]
func (c *DatasetController) Regenerate(ctx *gin.Context) {
	var req dto.RegenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A seed is required"),
		})
		return
	}

	if _, err := c.datasetService.Regenerate(*req.Seed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.GetDatasetSummary(ctx)
}
