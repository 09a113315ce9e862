package handlers_fiber

import (
	"net/http"

	"pulse-network-organizer/internal/mapper"
	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetNetworkGraph returns the whole contact network.
func (h *Handler) GetNetworkGraph(c *fiber.Ctx) error {
	snap, err := h.uc.NetworkGraph(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPINetworkGraph(snap))
}

// GetNetworkKeyConnectors returns the best connected contacts.
func (h *Handler) GetNetworkKeyConnectors(c *fiber.Ctx, params api.LimitParams) error {
	nodes, err := h.uc.KeyConnectors(c.Context(), params.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPINetworkNodes(nodes))
}

// GetNetworkIntroPaths returns introduction chains between two contacts.
func (h *Handler) GetNetworkIntroPaths(c *fiber.Ctx, params api.GetNetworkIntroPathsParams) error {
	paths, err := h.uc.IntroductionPaths(c.Context(), params.From, params.To, params.MaxDepth, params.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPaths(paths))
}

// PostContactsIdMatches suggests contacts worth introducing.
func (h *Handler) PostContactsIdMatches(c *fiber.Ctx, id string, params api.LimitParams) error {
	res, err := h.uc.SuggestMatches(c.Context(), id, params.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.MatchResponse{Suggestions: mapper.ToOAPIMatches(res)})
}

// GetCalendarEvents returns upcoming meetings of a team member.
func (h *Handler) GetCalendarEvents(c *fiber.Ctx, params api.GetCalendarEventsParams) error {
	events, err := h.uc.CalendarEvents(c.Context(), params.TeamMemberId, params.Days)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPICalendarEvents(events))
}

// GetDashboard returns the headline counters.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIDashboard(d))
}
