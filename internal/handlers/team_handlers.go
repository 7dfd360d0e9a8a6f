package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TeamHandler holds the team service.
type TeamHandler struct {
	teamService services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// CreateTeamMember handles the creation of a new team member profile.
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var req services.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTeamMember: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.teamService.CreateTeamMember(req)
	if err != nil {
		utils.LogError(err, "CreateTeamMember: Error from teamService.CreateTeamMember")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create team member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetTeamMembers lists team members, optionally filtered by group.
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	group := optionalQuery(c, "team")

	members, err := h.teamService.GetTeamMembers(group)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "GetTeamMembers: Error from teamService.GetTeamMembers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch team members.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetTeamMemberByID handles fetching a single team member.
func (h *TeamHandler) GetTeamMemberByID(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	member, err := h.teamService.GetTeamMemberByID(memberID)
	if err != nil {
		if errors.Is(err, services.ErrTeamMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Team member not found.", err.Error()))
		} else {
			utils.LogError(err, "GetTeamMemberByID: Error from teamService.GetTeamMemberByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch team member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateTeamMember handles updating a team member profile.
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateTeamMember: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.teamService.UpdateTeamMember(memberID, req)
	if err != nil {
		utils.LogError(err, "UpdateTeamMember: Error from teamService.UpdateTeamMember")
		if errors.Is(err, services.ErrTeamMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Team member not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update team member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles deleting a team member profile.
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeamMember(memberID); err != nil {
		utils.LogError(err, "DeleteTeamMember: Error from teamService.DeleteTeamMember")
		if errors.Is(err, services.ErrTeamMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Team member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete team member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}

// UploadTeamMemberPhoto replaces the member's photo.
func (h *TeamHandler) UploadTeamMemberPhoto(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	upload, ok := readUpload(c, "photo")
	if !ok {
		return
	}

	member, err := h.teamService.SetTeamMemberPhoto(memberID, *upload)
	if err != nil {
		utils.LogError(err, "UploadTeamMemberPhoto: Error from teamService.SetTeamMemberPhoto")
		if errors.Is(err, services.ErrTeamMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Team member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload team member photo.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, member)
}

// ReorderTeamMembers applies a new display order from an ordered id list.
func (h *TeamHandler) ReorderTeamMembers(c *gin.Context) {
	var req struct {
		MemberIDs []int64 `json:"member_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ReorderTeamMembers: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.teamService.ReorderTeamMembers(req.MemberIDs); err != nil {
		utils.LogError(err, "ReorderTeamMembers: Error from teamService.ReorderTeamMembers")
		if errors.Is(err, services.ErrTeamMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Team member not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to reorder team members.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team members reordered successfully"})
}
