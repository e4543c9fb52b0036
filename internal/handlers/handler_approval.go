package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/municipal_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/dto"
	"github.com/SscSPs/municipal_approval_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// approvalHandler handles HTTP requests related to approval requests.
type approvalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

func newApprovalHandler(as portssvc.ApprovalSvcFacade) *approvalHandler {
	return &approvalHandler{approvalService: as}
}

// registerApprovalRoutes registers routes related to approval requests.
func registerApprovalRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade) {
	h := newApprovalHandler(approvalService)

	approvals := rg.Group("/approvals")
	{
		approvals.POST("", h.createApproval)
		approvals.GET("", h.listApprovals)
		approvals.GET("/filter", h.filterApprovals)
		approvals.GET("/:approvalID", h.getApproval)
		approvals.POST("/:approvalID/approve", h.approve)
		approvals.POST("/:approvalID/approve-with-edits", h.approveWithEdits)
		approvals.POST("/:approvalID/reject", h.reject)
	}
	rg.GET("/cities/:cityID/approvals/pending", h.listPendingByCity)
	rg.POST("/municipalities/:municipalityID/approval-email", h.resendApprovalEmail)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
		return 0, false
	}
	return id, true
}

// createApproval godoc
// @Summary Open an approval request
// @Description Creates a Pending request for an existing municipality
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateApprovalRequest true "Municipality to approve"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Municipality not found"
// @Failure 500 {object} map[string]string "Failed to create approval request"
// @Router /approvals [post]
func (h *approvalHandler) createApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateApproval", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.approvalService.CreateApproval(c.Request.Context(), req.MunicipalityID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create approval request")
		return
	}

	logger.Info("Approval request created", slog.Int64("approval_id", request.ID))
	c.JSON(http.StatusCreated, dto.ToApprovalResponse(request))
}

// listApprovals godoc
// @Summary List approval requests
// @Description Lists every approval request, most recent first
// @Tags approvals
// @Produce  json
// @Success 200 {array} dto.ApprovalResponse
// @Failure 500 {object} map[string]string "Failed to list approval requests"
// @Router /approvals [get]
func (h *approvalHandler) listApprovals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	list, err := h.approvalService.ListApprovals(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list approval requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListApprovalResponse(list))
}

// filterApprovals godoc
// @Summary Filter approval requests
// @Description Every supplied criterion must match. Dates use yyyy-MM-dd.
// @Tags approvals
// @Produce  json
// @Param   subjectNameContains query string false "Case-insensitive substring of the city name"
// @Param   status query string false "Pending, Approved or Rejected"
// @Param   termStartOnOrAfter query string false "Term start on or after"
// @Param   termEndOnOrBefore query string false "Term end on or before"
// @Param   requestedOnExactDate query string false "Request calendar date"
// @Success 200 {array} domain.ApprovalFilterRow
// @Failure 400 {object} map[string]string "Invalid filter value"
// @Failure 500 {object} map[string]string "Failed to filter approval requests"
// @Router /approvals/filter [get]
func (h *approvalHandler) filterApprovals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var criteria domain.ApprovalFilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		logger.Warn("Failed to bind query params for FilterApprovals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.approvalService.FilterApprovals(c.Request.Context(), criteria)
	if err != nil {
		respondWithError(c, logger, err, "Failed to filter approval requests")
		return
	}
	logger.Debug("Approval requests filtered", slog.Int("count", len(rows)))
	c.JSON(http.StatusOK, rows)
}

// getApproval godoc
// @Summary Get an approval request
// @Tags approvals
// @Produce  json
// @Param   approvalID path int true "Approval request ID"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid approvalID"
// @Failure 404 {object} map[string]string "Approval request not found"
// @Failure 500 {object} map[string]string "Failed to retrieve approval request"
// @Router /approvals/{approvalID} [get]
func (h *approvalHandler) getApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "approvalID")
	if !ok {
		return
	}

	request, err := h.approvalService.GetApprovalByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve approval request")
		return
	}
	c.JSON(http.StatusOK, dto.ToApprovalResponse(request))
}

// approve godoc
// @Summary Approve a pending request
// @Description Records the mandate dates, issues the delegate-form token and emails the municipality
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   approvalID path int true "Approval request ID"
// @Param   terms body dto.ApproveRequest true "Mandate dates"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Approval request not found"
// @Failure 409 {object} map[string]interface{} "Request already decided or modified concurrently"
// @Failure 500 {object} map[string]string "Failed to approve request"
// @Router /approvals/{approvalID}/approve [post]
func (h *approvalHandler) approve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "approvalID")
	if !ok {
		return
	}
	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Approve", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	start, end, ok := parseTerm(c, req.TermStart, req.TermEnd)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("approval_id", id))
	request, err := h.approvalService.Approve(c.Request.Context(), id, start, end)
	if err != nil {
		respondWithError(c, logger, err, "Failed to approve request")
		return
	}
	logger.Info("Approval request approved")
	c.JSON(http.StatusOK, dto.ToApprovalResponse(request))
}

// approveWithEdits godoc
// @Summary Approve a pending request with municipality corrections
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   approvalID path int true "Approval request ID"
// @Param   approval body dto.ApproveWithEditsRequest true "Edits and mandate dates"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Approval request not found"
// @Failure 409 {object} map[string]interface{} "Request already decided or modified concurrently"
// @Failure 500 {object} map[string]string "Failed to approve request"
// @Router /approvals/{approvalID}/approve-with-edits [post]
func (h *approvalHandler) approveWithEdits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "approvalID")
	if !ok {
		return
	}
	var req dto.ApproveWithEditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApproveWithEdits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	start, end, ok := parseTerm(c, req.TermStart, req.TermEnd)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("approval_id", id))
	request, err := h.approvalService.ApproveWithEdits(c.Request.Context(), id, req.Municipality.ToDomain(), start, end)
	if err != nil {
		respondWithError(c, logger, err, "Failed to approve request")
		return
	}
	logger.Info("Approval request approved with edits")
	c.JSON(http.StatusOK, dto.ToApprovalResponse(request))
}

// reject godoc
// @Summary Reject a pending request
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   approvalID path int true "Approval request ID"
// @Param   rejection body dto.RejectRequest true "Justification"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Approval request not found"
// @Failure 409 {object} map[string]interface{} "Request already decided or modified concurrently"
// @Failure 500 {object} map[string]string "Failed to reject request"
// @Router /approvals/{approvalID}/reject [post]
func (h *approvalHandler) reject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "approvalID")
	if !ok {
		return
	}
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("approval_id", id))
	request, err := h.approvalService.Reject(c.Request.Context(), id, req.Justification)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reject request")
		return
	}
	logger.Info("Approval request rejected")
	c.JSON(http.StatusOK, dto.ToApprovalResponse(request))
}

// listPendingByCity godoc
// @Summary List pending requests of a city
// @Tags approvals
// @Produce  json
// @Param   cityID path int true "City ID"
// @Success 200 {array} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid cityID"
// @Failure 500 {object} map[string]string "Failed to list pending approval requests"
// @Router /cities/{cityID}/approvals/pending [get]
func (h *approvalHandler) listPendingByCity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cityID, ok := parseID(c, "cityID")
	if !ok {
		return
	}

	list, err := h.approvalService.ListPendingApprovalsByCity(c.Request.Context(), cityID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list pending approval requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListApprovalResponse(list))
}

// resendApprovalEmail godoc
// @Summary Re-send the approval email
// @Description Replaces the municipality's recipients and re-sends the approval email with a fresh token. Never fails; sent reports the outcome.
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   municipalityID path int true "Municipality ID"
// @Param   recipients body dto.ResendEmailRequest true "Semicolon-separated emails"
// @Success 200 {object} dto.ResendEmailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /municipalities/{municipalityID}/approval-email [post]
func (h *approvalHandler) resendApprovalEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	municipalityID, ok := parseID(c, "municipalityID")
	if !ok {
		return
	}
	var req dto.ResendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResendApprovalEmail", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sent := h.approvalService.ResendApprovalNotification(c.Request.Context(), municipalityID, req.Emails)
	logger.Info("Approval email resend processed", slog.Int64("municipality_id", municipalityID), slog.Bool("sent", sent))
	c.JSON(http.StatusOK, dto.ResendEmailResponse{Sent: sent})
}

func parseTerm(c *gin.Context, rawStart, rawEnd string) (start, end time.Time, ok bool) {
	start, err := domain.ParseDate(rawStart)
	if err == nil {
		end, err = domain.ParseDate(rawEnd)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Term dates must use yyyy-MM-dd"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
