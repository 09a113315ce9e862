package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List team members
	// (GET /team-members)
	GetTeamMembers(c *fiber.Ctx, params GetTeamMembersParams) error
	// Create a team member
	// (POST /team-members)
	PostTeamMembers(c *fiber.Ctx) error
	// Activate or deactivate a team member
	// (POST /team-members/:id/active)
	PostTeamMembersIdActive(c *fiber.Ctx, id string) error
	// List contacts
	// (GET /contacts)
	GetContacts(c *fiber.Ctx, params GetContactsParams) error
	// Create a contact
	// (POST /contacts)
	PostContacts(c *fiber.Ctx) error
	// List contacts due for a follow-up
	// (GET /contacts/overdue)
	GetContactsOverdue(c *fiber.Ctx) error
	// Get a contact
	// (GET /contacts/:id)
	GetContactsId(c *fiber.Ctx, id string) error
	// Update a contact
	// (PUT /contacts/:id)
	PutContactsId(c *fiber.Ctx, id string) error
	// Delete a contact
	// (DELETE /contacts/:id)
	DeleteContactsId(c *fiber.Ctx, id string) error
	// Record an interaction with a contact
	// (POST /contacts/:id/contacted)
	PostContactsIdContacted(c *fiber.Ctx, id string) error
	// List interactions of a contact
	// (GET /contacts/:id/interactions)
	GetContactsIdInteractions(c *fiber.Ctx, id string, params LimitParams) error
	// Add a goal to a contact
	// (POST /contacts/:id/goals)
	PostContactsIdGoals(c *fiber.Ctx, id string) error
	// List goals of a contact
	// (GET /contacts/:id/goals)
	GetContactsIdGoals(c *fiber.Ctx, id string) error
	// Mark a goal achieved or open
	// (POST /goals/:id/achieved)
	PostGoalsIdAchieved(c *fiber.Ctx, id string) error
	// Delete a goal
	// (DELETE /goals/:id)
	DeleteGoalsId(c *fiber.Ctx, id string) error
	// Record a GAINS meeting
	// (POST /contacts/:id/gains-meetings)
	PostContactsIdGainsMeetings(c *fiber.Ctx, id string) error
	// List GAINS meetings of a contact
	// (GET /contacts/:id/gains-meetings)
	GetContactsIdGainsMeetings(c *fiber.Ctx, id string) error
	// Suggest contacts worth meeting
	// (POST /contacts/:id/matches)
	PostContactsIdMatches(c *fiber.Ctx, id string, params LimitParams) error
	// Create a referral
	// (POST /referrals)
	PostReferrals(c *fiber.Ctx) error
	// List referrals
	// (GET /referrals)
	GetReferrals(c *fiber.Ctx, params GetReferralsParams) error
	// Referral statistics
	// (GET /referrals/stats)
	GetReferralsStats(c *fiber.Ctx, params LimitParams) error
	// Change the status of a referral
	// (POST /referrals/:id/status)
	PostReferralsIdStatus(c *fiber.Ctx, id string) error
	// Create an opportunity
	// (POST /opportunities)
	PostOpportunities(c *fiber.Ctx, params PostOpportunitiesParams) error
	// List opportunities
	// (GET /opportunities)
	GetOpportunities(c *fiber.Ctx, params GetOpportunitiesParams) error
	// Find likely duplicates of an opportunity
	// (POST /opportunities/check-duplicates)
	PostOpportunitiesCheckDuplicates(c *fiber.Ctx) error
	// Close an opportunity
	// (POST /opportunities/:id/status)
	PostOpportunitiesIdStatus(c *fiber.Ctx, id string) error
	// Whole contact network
	// (GET /network/graph)
	GetNetworkGraph(c *fiber.Ctx) error
	// Best connected contacts
	// (GET /network/key-connectors)
	GetNetworkKeyConnectors(c *fiber.Ctx, params LimitParams) error
	// Introduction paths between two contacts
	// (GET /network/intro-paths)
	GetNetworkIntroPaths(c *fiber.Ctx, params GetNetworkIntroPathsParams) error
	// Upcoming meetings of a team member
	// (GET /calendar/events)
	GetCalendarEvents(c *fiber.Ctx, params GetCalendarEventsParams) error
	// Headline counters
	// (GET /dashboard)
	GetDashboard(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// MiddlewareFunc is a middleware applied to every route.
type MiddlewareFunc fiber.Handler

// FiberServerOptions configures RegisterHandlersWithOptions.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []MiddlewareFunc
	// OperationMiddlewares run only in front of the named operation, e.g. "PostContactsIdMatches".
	OperationMiddlewares map[string][]fiber.Handler
}

func invalidParam(c *fiber.Ctx, name string, err error) error {
	var body ErrorResponse
	body.Error.Code = INVALIDARGUMENT
	body.Error.Message = "invalid format for parameter " + name + ": " + err.Error()
	return c.Status(http.StatusBadRequest).JSON(body)
}

// GetTeamMembers operation middleware
func (siw *ServerInterfaceWrapper) GetTeamMembers(c *fiber.Ctx) error {
	var params GetTeamMembersParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetTeamMembers(c, params)
}

// PostTeamMembers operation middleware
func (siw *ServerInterfaceWrapper) PostTeamMembers(c *fiber.Ctx) error {
	return siw.Handler.PostTeamMembers(c)
}

// PostTeamMembersIdActive operation middleware
func (siw *ServerInterfaceWrapper) PostTeamMembersIdActive(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PostTeamMembersIdActive(c, id)
}

// GetContacts operation middleware
func (siw *ServerInterfaceWrapper) GetContacts(c *fiber.Ctx) error {
	var params GetContactsParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetContacts(c, params)
}

// PostContacts operation middleware
func (siw *ServerInterfaceWrapper) PostContacts(c *fiber.Ctx) error {
	return siw.Handler.PostContacts(c)
}

// GetContactsOverdue operation middleware
func (siw *ServerInterfaceWrapper) GetContactsOverdue(c *fiber.Ctx) error {
	return siw.Handler.GetContactsOverdue(c)
}

// GetContactsId operation middleware
func (siw *ServerInterfaceWrapper) GetContactsId(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.GetContactsId(c, id)
}

// PutContactsId operation middleware
func (siw *ServerInterfaceWrapper) PutContactsId(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PutContactsId(c, id)
}

// DeleteContactsId operation middleware
func (siw *ServerInterfaceWrapper) DeleteContactsId(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.DeleteContactsId(c, id)
}

// PostContactsIdContacted operation middleware
func (siw *ServerInterfaceWrapper) PostContactsIdContacted(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PostContactsIdContacted(c, id)
}

// GetContactsIdInteractions operation middleware
func (siw *ServerInterfaceWrapper) GetContactsIdInteractions(c *fiber.Ctx) error {
	id := c.Params("id")
	var params LimitParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetContactsIdInteractions(c, id, params)
}

// PostContactsIdGoals operation middleware
func (siw *ServerInterfaceWrapper) PostContactsIdGoals(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PostContactsIdGoals(c, id)
}

// GetContactsIdGoals operation middleware
func (siw *ServerInterfaceWrapper) GetContactsIdGoals(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.GetContactsIdGoals(c, id)
}

// PostGoalsIdAchieved operation middleware
func (siw *ServerInterfaceWrapper) PostGoalsIdAchieved(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PostGoalsIdAchieved(c, id)
}

// DeleteGoalsId operation middleware
func (siw *ServerInterfaceWrapper) DeleteGoalsId(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.DeleteGoalsId(c, id)
}

// PostContactsIdGainsMeetings operation middleware
func (siw *ServerInterfaceWrapper) PostContactsIdGainsMeetings(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PostContactsIdGainsMeetings(c, id)
}

// GetContactsIdGainsMeetings operation middleware
func (siw *ServerInterfaceWrapper) GetContactsIdGainsMeetings(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.GetContactsIdGainsMeetings(c, id)
}

// PostContactsIdMatches operation middleware
func (siw *ServerInterfaceWrapper) PostContactsIdMatches(c *fiber.Ctx) error {
	id := c.Params("id")
	var params LimitParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.PostContactsIdMatches(c, id, params)
}

// PostReferrals operation middleware
func (siw *ServerInterfaceWrapper) PostReferrals(c *fiber.Ctx) error {
	return siw.Handler.PostReferrals(c)
}

// GetReferrals operation middleware
func (siw *ServerInterfaceWrapper) GetReferrals(c *fiber.Ctx) error {
	var params GetReferralsParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetReferrals(c, params)
}

// GetReferralsStats operation middleware
func (siw *ServerInterfaceWrapper) GetReferralsStats(c *fiber.Ctx) error {
	var params LimitParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetReferralsStats(c, params)
}

// PostReferralsIdStatus operation middleware
func (siw *ServerInterfaceWrapper) PostReferralsIdStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PostReferralsIdStatus(c, id)
}

// PostOpportunities operation middleware
func (siw *ServerInterfaceWrapper) PostOpportunities(c *fiber.Ctx) error {
	var params PostOpportunitiesParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.PostOpportunities(c, params)
}

// GetOpportunities operation middleware
func (siw *ServerInterfaceWrapper) GetOpportunities(c *fiber.Ctx) error {
	var params GetOpportunitiesParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetOpportunities(c, params)
}

// PostOpportunitiesCheckDuplicates operation middleware
func (siw *ServerInterfaceWrapper) PostOpportunitiesCheckDuplicates(c *fiber.Ctx) error {
	return siw.Handler.PostOpportunitiesCheckDuplicates(c)
}

// PostOpportunitiesIdStatus operation middleware
func (siw *ServerInterfaceWrapper) PostOpportunitiesIdStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	return siw.Handler.PostOpportunitiesIdStatus(c, id)
}

// GetNetworkGraph operation middleware
func (siw *ServerInterfaceWrapper) GetNetworkGraph(c *fiber.Ctx) error {
	return siw.Handler.GetNetworkGraph(c)
}

// GetNetworkKeyConnectors operation middleware
func (siw *ServerInterfaceWrapper) GetNetworkKeyConnectors(c *fiber.Ctx) error {
	var params LimitParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetNetworkKeyConnectors(c, params)
}

// GetNetworkIntroPaths operation middleware
func (siw *ServerInterfaceWrapper) GetNetworkIntroPaths(c *fiber.Ctx) error {
	var params GetNetworkIntroPathsParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetNetworkIntroPaths(c, params)
}

// GetCalendarEvents operation middleware
func (siw *ServerInterfaceWrapper) GetCalendarEvents(c *fiber.Ctx) error {
	var params GetCalendarEventsParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParam(c, "query", err)
	}
	return siw.Handler.GetCalendarEvents(c, params)
}

// GetDashboard operation middleware
func (siw *ServerInterfaceWrapper) GetDashboard(c *fiber.Ctx) error {
	return siw.Handler.GetDashboard(c)
}

// RegisterHandlers creates http.Handler with routing matching the service contract.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	for _, m := range options.Middlewares {
		router.Use(fiber.Handler(m))
	}

	route := func(operation string, h fiber.Handler) []fiber.Handler {
		hs := append([]fiber.Handler(nil), options.OperationMiddlewares[operation]...)
		return append(hs, h)
	}

	router.Get(options.BaseURL+"/team-members", route("GetTeamMembers", wrapper.GetTeamMembers)...)
	router.Post(options.BaseURL+"/team-members", route("PostTeamMembers", wrapper.PostTeamMembers)...)
	router.Post(options.BaseURL+"/team-members/:id/active", route("PostTeamMembersIdActive", wrapper.PostTeamMembersIdActive)...)
	router.Get(options.BaseURL+"/contacts", route("GetContacts", wrapper.GetContacts)...)
	router.Post(options.BaseURL+"/contacts", route("PostContacts", wrapper.PostContacts)...)
	router.Get(options.BaseURL+"/contacts/overdue", route("GetContactsOverdue", wrapper.GetContactsOverdue)...)
	router.Get(options.BaseURL+"/contacts/:id", route("GetContactsId", wrapper.GetContactsId)...)
	router.Put(options.BaseURL+"/contacts/:id", route("PutContactsId", wrapper.PutContactsId)...)
	router.Delete(options.BaseURL+"/contacts/:id", route("DeleteContactsId", wrapper.DeleteContactsId)...)
	router.Post(options.BaseURL+"/contacts/:id/contacted", route("PostContactsIdContacted", wrapper.PostContactsIdContacted)...)
	router.Get(options.BaseURL+"/contacts/:id/interactions", route("GetContactsIdInteractions", wrapper.GetContactsIdInteractions)...)
	router.Post(options.BaseURL+"/contacts/:id/goals", route("PostContactsIdGoals", wrapper.PostContactsIdGoals)...)
	router.Get(options.BaseURL+"/contacts/:id/goals", route("GetContactsIdGoals", wrapper.GetContactsIdGoals)...)
	router.Post(options.BaseURL+"/goals/:id/achieved", route("PostGoalsIdAchieved", wrapper.PostGoalsIdAchieved)...)
	router.Delete(options.BaseURL+"/goals/:id", route("DeleteGoalsId", wrapper.DeleteGoalsId)...)
	router.Post(options.BaseURL+"/contacts/:id/gains-meetings", route("PostContactsIdGainsMeetings", wrapper.PostContactsIdGainsMeetings)...)
	router.Get(options.BaseURL+"/contacts/:id/gains-meetings", route("GetContactsIdGainsMeetings", wrapper.GetContactsIdGainsMeetings)...)
	router.Post(options.BaseURL+"/contacts/:id/matches", route("PostContactsIdMatches", wrapper.PostContactsIdMatches)...)
	router.Post(options.BaseURL+"/referrals", route("PostReferrals", wrapper.PostReferrals)...)
	router.Get(options.BaseURL+"/referrals", route("GetReferrals", wrapper.GetReferrals)...)
	router.Get(options.BaseURL+"/referrals/stats", route("GetReferralsStats", wrapper.GetReferralsStats)...)
	router.Post(options.BaseURL+"/referrals/:id/status", route("PostReferralsIdStatus", wrapper.PostReferralsIdStatus)...)
	router.Post(options.BaseURL+"/opportunities", route("PostOpportunities", wrapper.PostOpportunities)...)
	router.Get(options.BaseURL+"/opportunities", route("GetOpportunities", wrapper.GetOpportunities)...)
	router.Post(options.BaseURL+"/opportunities/check-duplicates", route("PostOpportunitiesCheckDuplicates", wrapper.PostOpportunitiesCheckDuplicates)...)
	router.Post(options.BaseURL+"/opportunities/:id/status", route("PostOpportunitiesIdStatus", wrapper.PostOpportunitiesIdStatus)...)
	router.Get(options.BaseURL+"/network/graph", route("GetNetworkGraph", wrapper.GetNetworkGraph)...)
	router.Get(options.BaseURL+"/network/key-connectors", route("GetNetworkKeyConnectors", wrapper.GetNetworkKeyConnectors)...)
	router.Get(options.BaseURL+"/network/intro-paths", route("GetNetworkIntroPaths", wrapper.GetNetworkIntroPaths)...)
	router.Get(options.BaseURL+"/calendar/events", route("GetCalendarEvents", wrapper.GetCalendarEvents)...)
	router.Get(options.BaseURL+"/dashboard", route("GetDashboard", wrapper.GetDashboard)...)
}
