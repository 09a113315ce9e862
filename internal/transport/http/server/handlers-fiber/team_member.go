package handlers_fiber

import (
	"net/http"

	"pulse-network-organizer/internal/mapper"
	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetTeamMembers lists team members.
func (h *Handler) GetTeamMembers(c *fiber.Ctx, params api.GetTeamMembersParams) error {
	members, err := h.uc.TeamMembers(c.Context(), params.Active)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITeamMembers(members))
}

// PostTeamMembers creates a team member.
func (h *Handler) PostTeamMembers(c *fiber.Ctx) error {
	var body api.TeamMemberCreate
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	m, err := h.uc.CreateTeamMember(c.Context(), mapper.FromOAPITeamMember(body))
	if err != nil {
		h.log.Infow("create team member rejected", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPITeamMember(*m))
}

// PostTeamMembersIdActive activates or deactivates a team member.
func (h *Handler) PostTeamMembersIdActive(c *fiber.Ctx, id string) error {
	var body api.SetActiveRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	m, err := h.uc.SetTeamMemberActive(c.Context(), id, body.IsActive)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITeamMember(*m))
}
