package handlers_fiber

import (
	"errors"
	"net/http"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/mapper"
	api "pulse-network-organizer/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	var dup *entities.DuplicateError
	switch {
	case errors.As(err, &dup):
		body := errorResponse(api.DUPLICATEOPPORTUNITY, "a similar opportunity already exists")
		body.Candidates = mapper.ToOAPIDuplicates(dup.Candidates)
		return c.Status(http.StatusConflict).JSON(body)
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrContactNotFound),
		errors.Is(err, entities.ErrTeamMemberNotFound),
		errors.Is(err, entities.ErrGoalNotFound),
		errors.Is(err, entities.ErrReferralNotFound),
		errors.Is(err, entities.ErrOpportunityNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrContactExists):
		status = http.StatusConflict
		code = api.CONTACTEXISTS
		msg = "a contact with this email already exists"
	case errors.Is(err, entities.ErrTeamMemberExists):
		status = http.StatusConflict
		code = api.TEAMMEMBEREXISTS
		msg = "a team member with this email already exists"
	case errors.Is(err, entities.ErrInvalidTransition):
		status = http.StatusConflict
		code = api.INVALIDTRANSITION
		msg = err.Error()
	case errors.Is(err, entities.ErrDuplicateOpportunity):
		status = http.StatusConflict
		code = api.DUPLICATEOPPORTUNITY
		msg = "a similar opportunity already exists"
	case errors.Is(err, entities.ErrNoPath):
		status = http.StatusNotFound
		code = api.NOPATH
		msg = "no introduction path found"
	case errors.Is(err, entities.ErrMatcherUnavailable):
		status = http.StatusServiceUnavailable
		code = api.MATCHERUNAVAILABLE
		msg = "matching is temporarily unavailable"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	var res api.ErrorResponse
	res.Error.Code = code
	res.Error.Message = msg
	return res
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
}
