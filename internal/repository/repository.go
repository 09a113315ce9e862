// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"pulse-network-organizer/config"
	"pulse-network-organizer/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	TeamMemberInterface
	ContactInterface
	GoalInterface
	ReferralInterface
	OpportunityInterface
	GainsInterface
	DashboardInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
