package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/middleware"
)

// memberHandler manages organization members. The organization is resolved
// from the caller, never taken from the request.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(memberService portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: memberService}
}

func registerMemberRoutes(authed *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := authed.Group("/organization/members")
	{
		members.GET("", h.listMembers)
		members.POST("", h.createMember)
		members.PUT("/:memberID", h.updateMember)
		members.DELETE("/:memberID", h.deleteMember)
	}
}

// listMembers godoc
// @Summary List organization members
// @Description Available to the organization account and to members allowed to manage members.
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MemberResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /organization/members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberListResponse(members))
}

// createMember godoc
// @Summary Add an organization member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param member body dto.CreateMemberRequest true "Member"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already used in this organization"
// @Failure 500 {object} ErrorResponse
// @Router /organization/members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// updateMember godoc
// @Summary Update an organization member
// @Description Changing the role recomputes the member's permissions.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /organization/members/{memberID} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), middleware.GetPrincipal(c), c.Param("memberID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deleteMember godoc
// @Summary Deactivate an organization member
// @Tags members
// @Security BearerAuth
// @Param memberID path string true "Member ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /organization/members/{memberID} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), middleware.GetPrincipal(c), c.Param("memberID")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
