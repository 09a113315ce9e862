package handlers_fiber

import (
	"net/http"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/mapper"
	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostOpportunities creates an opportunity, rejecting likely duplicates unless forced.
func (h *Handler) PostOpportunities(c *fiber.Ctx, params api.PostOpportunitiesParams) error {
	var body api.OpportunityInput
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	o, err := h.uc.CreateOpportunity(c.Context(), mapper.FromOAPIOpportunity(body), params.Force)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIOpportunity(*o))
}

// GetOpportunities lists opportunities.
func (h *Handler) GetOpportunities(c *fiber.Ctx, params api.GetOpportunitiesParams) error {
	filter := entities.OpportunityFilter{ContactID: params.ContactId}
	if params.Status != "" {
		st := entities.OpportunityStatus(params.Status)
		filter.Status = &st
	}
	var err error
	if filter.From, err = parseTime("from", params.From); err != nil {
		return writeError(c, err)
	}
	if filter.To, err = parseTime("to", params.To); err != nil {
		return writeError(c, err)
	}

	list, err := h.uc.Opportunities(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOpportunities(list))
}

// PostOpportunitiesCheckDuplicates reports existing opportunities resembling the body.
func (h *Handler) PostOpportunitiesCheckDuplicates(c *fiber.Ctx) error {
	var body api.OpportunityInput
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	candidates, err := h.uc.CheckDuplicates(c.Context(), mapper.FromOAPIOpportunity(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.DuplicateCheckResponse{
		IsDuplicate: len(candidates) > 0,
		Candidates:  mapper.ToOAPIDuplicates(candidates),
	})
}

// PostOpportunitiesIdStatus closes an opportunity.
func (h *Handler) PostOpportunitiesIdStatus(c *fiber.Ctx, id string) error {
	var body api.StatusRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	o, err := h.uc.SetOpportunityStatus(c.Context(), id, entities.OpportunityStatus(body.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOpportunity(*o))
}
