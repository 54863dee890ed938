package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/middleware"
)

type donationHandler struct {
	donationService portssvc.DonationSvcFacade
}

func newDonationHandler(donationService portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationService: donationService}
}

func registerDonationRoutes(authed *gin.RouterGroup, donationService portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationService)

	authed.POST("/projects/:projectID/donations", h.donate)
	authed.GET("/projects/:projectID/donations", h.listProjectDonations)
	authed.GET("/donations/mine", h.listMyDonations)
}

// donate godoc
// @Summary Donate to a project
// @Description The project must be visible to the caller and open for donations.
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Param donation body dto.CreateDonationRequest true "Donation"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{projectID}/donations [post]
func (h *donationHandler) donate(c *gin.Context) {
	var req dto.CreateDonationRequest
	if !bindJSON(c, &req) {
		return
	}

	donation, err := h.donationService.Donate(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DonationResponse{Donation: *donation})
}

// listProjectDonations godoc
// @Summary List donations to a project
// @Description Admins see every donor. Project owners see anonymous donations without the donor.
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Success 200 {array} dto.DonationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{projectID}/donations [get]
func (h *donationHandler) listProjectDonations(c *gin.Context) {
	donations, err := h.donationService.ListProjectDonations(c.Request.Context(), middleware.GetPrincipal(c), c.Param("projectID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationListResponse(donations))
}

// listMyDonations godoc
// @Summary List own donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DonationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /donations/mine [get]
func (h *donationHandler) listMyDonations(c *gin.Context) {
	donations, err := h.donationService.ListMyDonations(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationListResponse(donations))
}
