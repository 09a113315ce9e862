package handlers_fiber

import (
	"net/http"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/mapper"
	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostReferrals creates a referral.
func (h *Handler) PostReferrals(c *fiber.Ctx) error {
	var body api.ReferralInput
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	r, err := h.uc.CreateReferral(c.Context(), mapper.FromOAPIReferral(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIReferral(*r))
}

// GetReferrals lists referrals given or received by a contact.
func (h *Handler) GetReferrals(c *fiber.Ctx, params api.GetReferralsParams) error {
	filter := entities.ReferralFilter{ContactID: params.ContactId}
	if params.Status != "" {
		st := entities.ReferralStatus(params.Status)
		filter.Status = &st
	}

	list, err := h.uc.Referrals(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIReferrals(list))
}

// GetReferralsStats returns counts by status and the top givers.
func (h *Handler) GetReferralsStats(c *fiber.Ctx, params api.LimitParams) error {
	stats, err := h.uc.ReferralStats(c.Context(), params.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIReferralStats(stats))
}

// PostReferralsIdStatus moves a referral along its lifecycle.
func (h *Handler) PostReferralsIdStatus(c *fiber.Ctx, id string) error {
	var body api.StatusRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	r, err := h.uc.UpdateReferralStatus(c.Context(), id, entities.ReferralStatus(body.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIReferral(*r))
}
