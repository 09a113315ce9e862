package domain

import (
	"context"
	"errors"
	"fmt"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/network"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultKeyConnectors = 10
	maxKeyConnectors     = 100
)

// NetworkGraph returns the whole contact graph, served from cache when possible.
func (u *Usecase) NetworkGraph(ctx context.Context) (entities.NetworkSnapshot, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ctx, span := u.tracer.Start(ctx, "network.graph")
	defer span.End()

	gen, genErr := u.cache.Generation(ctx)
	if genErr != nil {
		u.log.Warnw("failed to read network cache generation", "error", genErr)
	}

	cached, err := u.cache.GetSnapshot(ctx)
	if err != nil {
		u.log.Warnw("failed to read network cache", "error", err)
	}
	if cached != nil {
		span.SetAttributes(attribute.Bool("network.cache_hit", true))
		return *cached, nil
	}

	g, err := u.buildGraph(ctx, span)
	if err != nil {
		return entities.NetworkSnapshot{}, err
	}
	snap := g.Snapshot(u.now().UTC())
	if genErr == nil {
		switch err := u.cache.SaveSnapshot(ctx, gen, snap); {
		case errors.Is(err, entities.ErrStaleSnapshot):
			u.log.Debugw("contacts changed during graph build, snapshot not cached", "generation", gen)
		case err != nil:
			u.log.Warnw("failed to save network cache", "error", err)
		}
	}
	span.SetAttributes(
		attribute.Bool("network.cache_hit", false),
		attribute.Int("network.nodes", len(snap.Nodes)),
		attribute.Int("network.edges", len(snap.Edges)),
	)
	return snap, nil
}

// IntroductionPaths finds warm introduction chains between two contacts.
func (u *Usecase) IntroductionPaths(ctx context.Context, from, to string, maxDepth, limit int) ([]entities.IntroductionPath, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ctx, span := u.tracer.Start(ctx, "network.intro_paths", trace.WithAttributes(
		attribute.String("network.from", from),
		attribute.String("network.to", to),
		attribute.Int("network.max_depth", maxDepth),
	))
	defer span.End()

	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to are required", entities.ErrInvalidArgument)
	}
	if maxDepth > network.MaxDepthCap {
		return nil, fmt.Errorf("%w: maxDepth must not exceed %d", entities.ErrInvalidArgument, network.MaxDepthCap)
	}

	g, err := u.buildGraph(ctx, span)
	if err != nil {
		return nil, err
	}
	paths, err := g.IntroductionPaths(from, to, maxDepth, limit)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: between %s and %s", entities.ErrNoPath, from, to)
	}
	span.SetAttributes(attribute.Int("network.paths", len(paths)))
	return paths, nil
}

// KeyConnectors returns the best connected contacts.
func (u *Usecase) KeyConnectors(ctx context.Context, limit int) ([]entities.NetworkNode, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ctx, span := u.tracer.Start(ctx, "network.key_connectors")
	defer span.End()

	g, err := u.buildGraph(ctx, span)
	if err != nil {
		return nil, err
	}
	top := g.KeyConnectors(clamp(limit, defaultKeyConnectors, maxKeyConnectors))
	res := make([]entities.NetworkNode, 0, len(top))
	for _, c := range top {
		res = append(res, entities.NetworkNode{
			ID:         c.ID,
			Name:       c.Name,
			Company:    c.Company,
			Degree:     c.Degree,
			Strength:   c.Strength,
			Centrality: c.Score,
			Community:  g.Community(c.ID),
		})
	}
	return res, nil
}

func (u *Usecase) buildGraph(ctx context.Context, span trace.Span) (*network.Graph, error) {
	contacts, err := u.repo.ListAllContacts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load contacts")
		return nil, err
	}
	return network.Build(contacts), nil
}
