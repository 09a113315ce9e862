package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/repository"
	"pulse-network-organizer/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd inserts a demo network so the API has something to show
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a small demo dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx := cmd.Context()
		repo, err := repository.New(ctx, "postgres", log, cfg)
		if err != nil {
			return err
		}
		if err := repo.OnStart(ctx); err != nil {
			return err
		}
		defer func() { _ = repo.OnStop(context.Background()) }()

		uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout, usecase.Deps{
			Settings: usecase.Settings{
				DuplicateThreshold:   cfg.Duplicates.SimilarityThreshold,
				DuplicateWindow:      cfg.Duplicates.Window(),
				DefaultFrequencyDays: cfg.FollowUp.DefaultFrequencyDays,
			},
		})
		return seed(ctx, uc, log)
	},
}

type seedContact struct {
	name, email, company, position, affiliation string
	tags, connections                           []string
}

var demoContacts = []seedContact{
	{"Maria Lopez", "maria@lopezlaw.example", "Lopez Law", "Partner", "BNI Downtown",
		[]string{"legal", "nonprofit"}, []string{"James Park", "Priya Shah"}},
	{"James Park", "james@parkfinancial.example", "Park Financial", "Advisor", "BNI Downtown",
		[]string{"finance", "nonprofit"}, []string{"Maria Lopez", "Ellen Wu"}},
	{"Priya Shah", "priya@shahdesign.example", "Shah Design", "Founder", "Chamber of Commerce",
		[]string{"marketing", "design"}, []string{"Ellen Wu"}},
	{"Ellen Wu", "ellen@wugrants.example", "Wu Grants", "Grant Writer", "BNI Uptown",
		[]string{"grants", "nonprofit"}, []string{"Omar Haddad"}},
	{"Omar Haddad", "omar@haddadre.example", "Haddad Realty", "Broker", "",
		[]string{"real estate"}, nil},
}

func seed(ctx context.Context, uc usecase.InterfaceUsecase, log *zap.SugaredLogger) error {
	member, err := uc.CreateTeamMember(ctx, entities.TeamMember{
		Name:  "Alex Rivera",
		Email: "alex@institute.example",
		Role:  "Relationship Manager",
	})
	if err != nil && !errors.Is(err, entities.ErrTeamMemberExists) {
		return fmt.Errorf("seed team member: %w", err)
	}

	ids := make(map[string]string, len(demoContacts))
	for _, d := range demoContacts {
		c := entities.Contact{
			Name:                d.name,
			Email:               d.email,
			Company:             d.company,
			Position:            d.position,
			Affiliation:         d.affiliation,
			Tags:                d.tags,
			LinkedInConnections: d.connections,
		}
		if member != nil {
			c.AssignedTo = &member.ID
		}
		created, err := uc.CreateContact(ctx, c)
		if errors.Is(err, entities.ErrContactExists) {
			log.Infow("seed contact already present", "email", d.email)
			continue
		}
		if err != nil {
			return fmt.Errorf("seed contact %s: %w", d.name, err)
		}
		ids[d.name] = created.ID
	}

	if id, ok := ids["Maria Lopez"]; ok {
		if _, err := uc.CreateGoal(ctx, entities.Goal{
			ContactID: id,
			Title:     "Meet nonprofit board members",
			Category:  "networking",
		}); err != nil {
			return fmt.Errorf("seed goal: %w", err)
		}
	}

	giver, okG := ids["James Park"]
	receiver, okR := ids["Ellen Wu"]
	if okG && okR {
		if _, err := uc.CreateReferral(ctx, entities.Referral{
			GiverID:     giver,
			ReceiverID:  receiver,
			Description: "Foundation looking for a grant writer",
		}); err != nil {
			return fmt.Errorf("seed referral: %w", err)
		}
	}

	if _, err := uc.CreateOpportunity(ctx, entities.Opportunity{
		Title:       "BNI Downtown breakfast",
		Type:        "event",
		Location:    "Downtown Hotel",
		ScheduledAt: time.Now().Add(7 * 24 * time.Hour).Truncate(time.Hour),
	}, false); err != nil && !errors.Is(err, entities.ErrDuplicateOpportunity) {
		return fmt.Errorf("seed opportunity: %w", err)
	}

	log.Infow("demo data seeded", "contacts", len(ids))
	return nil
}
