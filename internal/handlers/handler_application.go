package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/middleware"
)

// applicationHandler handles the application lifecycle endpoints.
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

func newApplicationHandler(applicationService portssvc.ApplicationSvcFacade) *applicationHandler {
	return &applicationHandler{applicationService: applicationService}
}

func registerApplicationRoutes(authed, admin *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := newApplicationHandler(applicationService)

	authed.POST("/applications", h.submitApplication)
	authed.GET("/applications/my-applications", h.myApplications)
	authed.GET("/applications/check/:projectID", h.checkApplied)

	admin.GET("/applications", h.listAllApplications)
	admin.GET("/applications/project/:projectID", h.listProjectApplications)
	admin.GET("/applications/project/:projectID/counts", h.countProjectApplications)
	admin.GET("/applications/project/:projectID/unresponded-counts", h.countProjectApplications)
	admin.GET("/applications/user/:userID", h.listUserApplications)
	admin.PATCH("/applications/:applicationID", h.updateApplicationStatus)
}

// submitApplication godoc
// @Summary Apply to a project
// @Description Creates a pending application. Applying twice returns 409 with the stored application.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application body dto.SubmitApplicationRequest true "Application"
// @Success 201 {object} dto.SubmitApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} dto.DuplicateApplicationResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications [post]
func (h *applicationHandler) submitApplication(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Submit(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitApplicationResponse{Application: *application})
}

// myApplications godoc
// @Summary List own applications
// @Description Each application carries its project, or projectDeleted=true when the project is gone.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/my-applications [get]
func (h *applicationHandler) myApplications(c *gin.Context) {
	views, err := h.applicationService.MyApplications(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationListResponse(views))
}

// checkApplied godoc
// @Summary Check whether the caller applied to a project
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.CheckAppliedResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/check/{projectID} [get]
func (h *applicationHandler) checkApplied(c *gin.Context) {
	application, err := h.applicationService.CheckApplied(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckAppliedResponse{Applied: application != nil, Application: application})
}

// listAllApplications godoc
// @Summary List all applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ApplicationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications [get]
func (h *applicationHandler) listAllApplications(c *gin.Context) {
	views, err := h.applicationService.ListAll(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationListResponse(views))
}

// listProjectApplications godoc
// @Summary List applications for a project
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/project/{projectID} [get]
func (h *applicationHandler) listProjectApplications(c *gin.Context) {
	views, err := h.applicationService.ListForProject(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationListResponse(views))
}

// countProjectApplications godoc
// @Summary Count unresponded applications for a project
// @Description Counts pending and under-review applications split by applicant type.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Success 200 {object} domain.ApplicationCounts
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/project/{projectID}/counts [get]
// @Router /applications/project/{projectID}/unresponded-counts [get]
func (h *applicationHandler) countProjectApplications(c *gin.Context) {
	counts, err := h.applicationService.CountsByProject(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// listUserApplications godoc
// @Summary List applications by applicant
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param userID path string true "Applicant ID"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications/user/{userID} [get]
func (h *applicationHandler) listUserApplications(c *gin.Context) {
	views, err := h.applicationService.ListForUser(c.Request.Context(), middleware.GetPrincipal(c), c.Param("userID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationListResponse(views))
}

// updateApplicationStatus godoc
// @Summary Change an application's status
// @Description Accepted and rejected are terminal. Setting the current status again is a no-op.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationID path string true "Application ID"
// @Param status body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition or concurrent update"
// @Failure 500 {object} ErrorResponse
// @Router /applications/{applicationID} [patch]
func (h *applicationHandler) updateApplicationStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	principal := middleware.GetPrincipal(c)
	view, err := h.applicationService.UpdateStatus(c.Request.Context(), principal.IsAdmin(), c.Param("applicationID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(*view))
}
