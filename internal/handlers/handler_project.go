package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/middleware"
)

// projectHandler handles project listing, creation and moderation.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(projectService portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: projectService}
}

// registerProjectRoutes wires the project endpoints onto three groups that differ by
// authentication: optional, required and admin-only.
func registerProjectRoutes(public, authed, admin *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	public.GET("/projects", h.listProjects)
	public.GET("/projects/:projectID", h.getProject)

	authed.GET("/projects/mine", h.listMyProjects)
	authed.POST("/projects", h.createProject)

	admin.PUT("/projects/:projectID/approve", h.approveProject)
	admin.PUT("/projects/:projectID/reject", h.rejectProject)
}

// listProjects godoc
// @Summary List visible projects
// @Description Anonymous callers see approved public projects. Admins see everything. Owners additionally see their own projects in any state.
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects))
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 403 {object} ErrorResponse "Project exists but is not visible"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	project, err := h.projectService.GetProject(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// listMyProjects godoc
// @Summary List own projects
// @Description Returns the caller's projects regardless of approval status.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProjectResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/mine [get]
func (h *projectHandler) listMyProjects(c *gin.Context) {
	projects, err := h.projectService.ListMyProjects(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects))
}

// createProject godoc
// @Summary Create a project
// @Description Projects created by organizations start pending approval. Admin-created projects are approved immediately.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body dto.CreateProjectRequest true "Project"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// approveProject godoc
// @Summary Approve a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{projectID}/approve [put]
func (h *projectHandler) approveProject(c *gin.Context) {
	project, err := h.projectService.ApproveProject(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// rejectProject godoc
// @Summary Reject a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{projectID}/reject [put]
func (h *projectHandler) rejectProject(c *gin.Context) {
	project, err := h.projectService.RejectProject(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}
