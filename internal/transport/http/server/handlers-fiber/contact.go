package handlers_fiber

import (
	"fmt"
	"net/http"
	"time"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/mapper"
	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetContacts lists contacts matching the query filter.
func (h *Handler) GetContacts(c *fiber.Ctx, params api.GetContactsParams) error {
	contacts, err := h.uc.Contacts(c.Context(), entities.ContactFilter{
		Search:      params.Search,
		Tag:         params.Tag,
		Affiliation: params.Affiliation,
		AssignedTo:  params.AssignedTo,
		Limit:       params.Limit,
		Offset:      params.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIContacts(contacts, h.now()))
}

// PostContacts creates a contact.
func (h *Handler) PostContacts(c *fiber.Ctx) error {
	var body api.ContactInput
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	contact, err := h.uc.CreateContact(c.Context(), mapper.FromOAPIContact("", body))
	if err != nil {
		h.log.Infow("create contact rejected", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIContact(*contact, h.now()))
}

// GetContactsOverdue lists contacts whose follow-up is due.
func (h *Handler) GetContactsOverdue(c *fiber.Ctx) error {
	now := h.now()
	contacts, err := h.uc.OverdueContacts(c.Context(), now)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIContacts(contacts, now))
}

// GetContactsId returns one contact.
func (h *Handler) GetContactsId(c *fiber.Ctx, id string) error {
	contact, err := h.uc.Contact(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIContact(*contact, h.now()))
}

// PutContactsId replaces the editable fields of a contact.
func (h *Handler) PutContactsId(c *fiber.Ctx, id string) error {
	var body api.ContactInput
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	contact, err := h.uc.UpdateContact(c.Context(), mapper.FromOAPIContact(id, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIContact(*contact, h.now()))
}

// DeleteContactsId removes a contact.
func (h *Handler) DeleteContactsId(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteContact(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostContactsIdContacted records an interaction with a contact.
func (h *Handler) PostContactsIdContacted(c *fiber.Ctx, id string) error {
	var body api.InteractionInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
	}

	in, err := h.uc.MarkContacted(c.Context(), mapper.FromOAPIInteraction(id, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIInteraction(*in))
}

// GetContactsIdInteractions lists the latest interactions of a contact.
func (h *Handler) GetContactsIdInteractions(c *fiber.Ctx, id string, params api.LimitParams) error {
	list, err := h.uc.Interactions(c.Context(), id, params.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIInteractions(list))
}

// PostContactsIdGoals adds a goal to a contact.
func (h *Handler) PostContactsIdGoals(c *fiber.Ctx, id string) error {
	var body api.GoalInput
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	g, err := h.uc.CreateGoal(c.Context(), mapper.FromOAPIGoal(id, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIGoal(*g))
}

// GetContactsIdGoals lists goals of a contact.
func (h *Handler) GetContactsIdGoals(c *fiber.Ctx, id string) error {
	goals, err := h.uc.Goals(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIGoals(goals))
}

// PostGoalsIdAchieved marks a goal achieved or open.
func (h *Handler) PostGoalsIdAchieved(c *fiber.Ctx, id string) error {
	var body api.SetAchievedRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	g, err := h.uc.SetGoalAchieved(c.Context(), id, body.Achieved)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIGoal(*g))
}

// DeleteGoalsId removes a goal.
func (h *Handler) DeleteGoalsId(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteGoal(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostContactsIdGainsMeetings records a GAINS meeting.
func (h *Handler) PostContactsIdGainsMeetings(c *fiber.Ctx, id string) error {
	var body api.GainsMeetingInput
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	m, err := h.uc.CreateGainsMeeting(c.Context(), mapper.FromOAPIGainsMeeting(id, body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIGainsMeeting(*m))
}

// GetContactsIdGainsMeetings lists GAINS meetings of a contact.
func (h *Handler) GetContactsIdGainsMeetings(c *fiber.Ctx, id string) error {
	list, err := h.uc.GainsMeetings(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIGainsMeetings(list))
}

func parseTime(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an RFC 3339 timestamp", entities.ErrInvalidArgument, name)
	}
	return &t, nil
}
