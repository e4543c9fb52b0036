package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/dto"
	"github.com/SscSPs/municipal_approval_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// municipalityHandler handles HTTP requests for cities and municipalities.
type municipalityHandler struct {
	municipalityService portssvc.MunicipalitySvcFacade
}

func newMunicipalityHandler(ms portssvc.MunicipalitySvcFacade) *municipalityHandler {
	return &municipalityHandler{municipalityService: ms}
}

// registerMunicipalityRoutes registers routes related to cities and municipalities.
func registerMunicipalityRoutes(rg *gin.RouterGroup, municipalityService portssvc.MunicipalitySvcFacade) {
	h := newMunicipalityHandler(municipalityService)

	rg.POST("/cities", h.createCity)
	municipalities := rg.Group("/municipalities")
	{
		municipalities.POST("", h.createMunicipality)
		municipalities.GET("", h.listMunicipalities)
		municipalities.GET("/:municipalityID", h.getMunicipality)
	}
}

// createCity godoc
// @Summary Register a city
// @Tags municipalities
// @Accept  json
// @Produce  json
// @Param   city body dto.CreateCityRequest true "City details"
// @Success 201 {object} dto.CityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to register city"
// @Router /cities [post]
func (h *municipalityHandler) createCity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	city, err := h.municipalityService.RegisterCity(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to register city")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCityResponse(city))
}

// createMunicipality godoc
// @Summary Register a municipality
// @Description Registers the mayor and contacts of a city
// @Tags municipalities
// @Accept  json
// @Produce  json
// @Param   municipality body dto.CreateMunicipalityRequest true "Municipality details"
// @Success 201 {object} dto.MunicipalityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Failed to register municipality"
// @Router /municipalities [post]
func (h *municipalityHandler) createMunicipality(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMunicipality", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	m, err := h.municipalityService.RegisterMunicipality(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to register municipality")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMunicipalityResponse(m))
}

// listMunicipalities godoc
// @Summary List municipalities
// @Tags municipalities
// @Produce  json
// @Success 200 {array} dto.MunicipalityResponse
// @Failure 500 {object} map[string]string "Failed to list municipalities"
// @Router /municipalities [get]
func (h *municipalityHandler) listMunicipalities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	list, err := h.municipalityService.ListMunicipalities(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list municipalities")
		return
	}
	resp := make([]dto.MunicipalityResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.ToMunicipalityResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getMunicipality godoc
// @Summary Get a municipality
// @Tags municipalities
// @Produce  json
// @Param   municipalityID path int true "Municipality ID"
// @Success 200 {object} dto.MunicipalityResponse
// @Failure 400 {object} map[string]string "Invalid municipalityID"
// @Failure 404 {object} map[string]string "Municipality not found"
// @Failure 500 {object} map[string]string "Failed to retrieve municipality"
// @Router /municipalities/{municipalityID} [get]
func (h *municipalityHandler) getMunicipality(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "municipalityID")
	if !ok {
		return
	}

	m, err := h.municipalityService.FindMunicipalityByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve municipality")
		return
	}
	c.JSON(http.StatusOK, dto.ToMunicipalityResponse(m))
}
