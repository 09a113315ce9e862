// Package api is the Go side of the HTTP contract in api/openapi.yaml: request and
// response bodies, query parameters and the server interface routed by RegisterHandlers.
// Type and method names follow the operationIds of that document.
package api

import "time"

// ErrorResponseErrorCode enumerates machine readable error codes.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	INVALIDARGUMENT      ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND             ErrorResponseErrorCode = "NOT_FOUND"
	CONTACTEXISTS        ErrorResponseErrorCode = "CONTACT_EXISTS"
	TEAMMEMBEREXISTS     ErrorResponseErrorCode = "TEAM_MEMBER_EXISTS"
	INVALIDTRANSITION    ErrorResponseErrorCode = "INVALID_TRANSITION"
	DUPLICATEOPPORTUNITY ErrorResponseErrorCode = "DUPLICATE_OPPORTUNITY"
	NOPATH               ErrorResponseErrorCode = "NO_PATH"
	MATCHERUNAVAILABLE   ErrorResponseErrorCode = "MATCHER_UNAVAILABLE"
	RATELIMITED          ErrorResponseErrorCode = "RATE_LIMITED"
	INTERNAL             ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
	Candidates []DuplicateCandidate `json:"candidates,omitempty"`
}

// TeamMember defines model for TeamMember.
type TeamMember struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamMemberCreate defines model for TeamMemberCreate.
type TeamMemberCreate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SetActiveRequest defines model for SetActiveRequest.
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// Contact defines model for Contact.
type Contact struct {
	Id                   string     `json:"id"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	Phone                string     `json:"phone"`
	Company              string     `json:"company"`
	Position             string     `json:"position"`
	Location             string     `json:"location"`
	Affiliation          string     `json:"affiliation"`
	ReferralSource       string     `json:"referralSource"`
	Tags                 []string   `json:"tags"`
	LinkedinConnections  []string   `json:"linkedinConnections"`
	Notes                string     `json:"notes"`
	AssignedTo           *string    `json:"assignedTo"`
	ContactFrequencyDays int        `json:"contactFrequencyDays"`
	LastContactedAt      *time.Time `json:"lastContactedAt"`
	FollowUpDue          bool       `json:"followUpDue"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// ContactInput defines model for ContactInput.
type ContactInput struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	Company              string   `json:"company"`
	Position             string   `json:"position"`
	Location             string   `json:"location"`
	Affiliation          string   `json:"affiliation"`
	ReferralSource       string   `json:"referralSource"`
	Tags                 []string `json:"tags"`
	LinkedinConnections  []string `json:"linkedinConnections"`
	Notes                string   `json:"notes"`
	AssignedTo           *string  `json:"assignedTo"`
	ContactFrequencyDays int      `json:"contactFrequencyDays"`
}

// Interaction defines model for Interaction.
type Interaction struct {
	Id           string    `json:"id"`
	ContactId    string    `json:"contactId"`
	TeamMemberId *string   `json:"teamMemberId"`
	Channel      string    `json:"channel"`
	Note         string    `json:"note"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// InteractionInput defines model for InteractionInput.
type InteractionInput struct {
	TeamMemberId *string    `json:"teamMemberId"`
	Channel      string     `json:"channel"`
	Note         string     `json:"note"`
	OccurredAt   *time.Time `json:"occurredAt"`
}

// Goal defines model for Goal.
type Goal struct {
	Id          string     `json:"id"`
	ContactId   string     `json:"contactId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"targetDate"`
	Achieved    bool       `json:"achieved"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// GoalInput defines model for GoalInput.
type GoalInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"targetDate"`
}

// SetAchievedRequest defines model for SetAchievedRequest.
type SetAchievedRequest struct {
	Achieved bool `json:"achieved"`
}

// StatusRequest defines model for StatusRequest.
type StatusRequest struct {
	Status string `json:"status"`
}

// Referral defines model for Referral.
type Referral struct {
	Id          string     `json:"id"`
	GiverId     string     `json:"giverId"`
	ReceiverId  string     `json:"receiverId"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Value       *float64   `json:"value"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// ReferralInput defines model for ReferralInput.
type ReferralInput struct {
	GiverId     string   `json:"giverId"`
	ReceiverId  string   `json:"receiverId"`
	Description string   `json:"description"`
	Value       *float64 `json:"value"`
}

// GiversGain defines model for GiversGain.
type GiversGain struct {
	ContactId string `json:"contactId"`
	Name      string `json:"name"`
	Given     int64  `json:"given"`
	Received  int64  `json:"received"`
	Completed int64  `json:"completed"`
	Balance   int64  `json:"balance"`
}

// ReferralStats defines model for ReferralStats.
type ReferralStats struct {
	ByStatus  map[string]int64 `json:"byStatus"`
	TopGivers []GiversGain     `json:"topGivers"`
}

// Opportunity defines model for Opportunity.
type Opportunity struct {
	Id          string    `json:"id"`
	ContactId   *string   `json:"contactId"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	CreatedBy   *string   `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OpportunityInput defines model for OpportunityInput.
type OpportunityInput struct {
	ContactId   *string   `json:"contactId"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ScheduledAt time.Time `json:"scheduledAt"`
	CreatedBy   *string   `json:"createdBy"`
}

// DuplicateCandidate defines model for DuplicateCandidate.
type DuplicateCandidate struct {
	Opportunity Opportunity `json:"opportunity"`
	Similarity  float64     `json:"similarity"`
}

// DuplicateCheckResponse defines model for DuplicateCheckResponse.
type DuplicateCheckResponse struct {
	IsDuplicate bool                 `json:"isDuplicate"`
	Candidates  []DuplicateCandidate `json:"candidates"`
}

// GainsMeeting defines model for GainsMeeting.
type GainsMeeting struct {
	Id              string    `json:"id"`
	ContactId       string    `json:"contactId"`
	TeamMemberId    *string   `json:"teamMemberId"`
	MeetingDate     time.Time `json:"meetingDate"`
	Goals           string    `json:"goals"`
	Accomplishments string    `json:"accomplishments"`
	Interests       string    `json:"interests"`
	Networks        string    `json:"networks"`
	Skills          string    `json:"skills"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GainsMeetingInput defines model for GainsMeetingInput.
type GainsMeetingInput struct {
	TeamMemberId    *string    `json:"teamMemberId"`
	MeetingDate     *time.Time `json:"meetingDate"`
	Goals           string     `json:"goals"`
	Accomplishments string     `json:"accomplishments"`
	Interests       string     `json:"interests"`
	Networks        string     `json:"networks"`
	Skills          string     `json:"skills"`
	Notes           string     `json:"notes"`
}

// MatchSuggestion defines model for MatchSuggestion.
type MatchSuggestion struct {
	ContactId string  `json:"contactId"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

// MatchResponse defines model for MatchResponse.
type MatchResponse struct {
	Suggestions []MatchSuggestion `json:"suggestions"`
}

// NetworkNode defines model for NetworkNode.
type NetworkNode struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Company    string  `json:"company"`
	Degree     int     `json:"degree"`
	Strength   int     `json:"strength"`
	Centrality float64 `json:"centrality"`
	Community  int     `json:"community"`
}

// NetworkEdge defines model for NetworkEdge.
type NetworkEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight int      `json:"weight"`
	Direct bool     `json:"direct"`
	Shared []string `json:"shared"`
}

// NetworkGraph defines model for NetworkGraph.
type NetworkGraph struct {
	Nodes       []NetworkNode `json:"nodes"`
	Edges       []NetworkEdge `json:"edges"`
	Communities [][]string    `json:"communities"`
	BuiltAt     time.Time     `json:"builtAt"`
}

// IntroductionPath defines model for IntroductionPath.
type IntroductionPath struct {
	ContactIds []string `json:"contactIds"`
	Names      []string `json:"names"`
	Hops       int      `json:"hops"`
	Strength   int      `json:"strength"`
}

// CalendarEvent defines model for CalendarEvent.
type CalendarEvent struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	ContactId *string   `json:"contactId"`
	Location  string    `json:"location"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Contacts          int64            `json:"contacts"`
	OverdueFollowUps  int64            `json:"overdueFollowUps"`
	OpenOpportunities int64            `json:"openOpportunities"`
	ReferralsByStatus map[string]int64 `json:"referralsByStatus"`
	GoalsAchieved     int64            `json:"goalsAchieved"`
	GoalsOpen         int64            `json:"goalsOpen"`
}

// GetTeamMembersParams defines parameters for GetTeamMembers.
type GetTeamMembersParams struct {
	Active bool `query:"active"`
}

// GetContactsParams defines parameters for GetContacts.
type GetContactsParams struct {
	Search      string `query:"search"`
	Tag         string `query:"tag"`
	Affiliation string `query:"affiliation"`
	AssignedTo  string `query:"assignedTo"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

// LimitParams defines a single optional limit parameter.
type LimitParams struct {
	Limit int `query:"limit"`
}

// GetReferralsParams defines parameters for GetReferrals.
type GetReferralsParams struct {
	ContactId string `query:"contactId"`
	Status    string `query:"status"`
}

// PostOpportunitiesParams defines parameters for PostOpportunities.
type PostOpportunitiesParams struct {
	Force bool `query:"force"`
}

// GetOpportunitiesParams defines parameters for GetOpportunities.
// From and To are RFC 3339 timestamps.
type GetOpportunitiesParams struct {
	ContactId string `query:"contactId"`
	Status    string `query:"status"`
	From      string `query:"from"`
	To        string `query:"to"`
}

// GetNetworkIntroPathsParams defines parameters for GetNetworkIntroPaths.
type GetNetworkIntroPathsParams struct {
	From     string `query:"from"`
	To       string `query:"to"`
	MaxDepth int    `query:"maxDepth"`
	Limit    int    `query:"limit"`
}

// GetCalendarEventsParams defines parameters for GetCalendarEvents.
type GetCalendarEventsParams struct {
	TeamMemberId string `query:"teamMemberId"`
	Days         int    `query:"days"`
}
