package usecase

import (
	"context"
	"time"

	"pulse-network-organizer/internal/repository"
	"pulse-network-organizer/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamMemberUsecaseInterface
	ContactUsecaseInterface
	GoalUsecaseInterface
	ReferralUsecaseInterface
	OpportunityUsecaseInterface
	GainsUsecaseInterface
	NetworkUsecaseInterface
	InsightUsecaseInterface
}

// Deps re-exports the optional collaborators of the usecase layer.
type Deps = domain.Deps

// Settings re-exports the tunables of the usecase layer.
type Settings = domain.Settings

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, deps Deps) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, deps)
}
