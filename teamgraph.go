// Package teamgraph assembles scientific teams from a collaboration graph.
// Given a set of required skills, it searches a Neo4j store of authors,
// papers and organizations for groups of researchers that cover the skills
// while staying close in the graph, under one of seven formation strategies.
package teamgraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/scholargraph/teamgraph/pkg/config"
	"github.com/scholargraph/teamgraph/pkg/driver"
	"github.com/scholargraph/teamgraph/pkg/formation"
	"github.com/scholargraph/teamgraph/pkg/types"
)

// TeamGraph is the main interface for forming teams over the collaboration
// graph.
type TeamGraph interface {
	// FormTeams runs one team assembly batch.
	FormTeams(ctx context.Context, req FormRequest) (*types.BatchResult, error)

	// Keywords lists the distinct skill labels known to the store.
	Keywords(ctx context.Context, limit int) ([]string, error)

	// SearchAuthors finds authors by name or skill substring.
	SearchAuthors(ctx context.Context, query string, limit int) ([]types.AuthorSummary, error)

	// HealthCheck verifies the graph store answers queries.
	HealthCheck(ctx context.Context) error

	// Close releases the underlying driver.
	Close(ctx context.Context) error
}

// FormRequest is the external form of one batch request. Zero-valued knobs
// fall back to the configured defaults.
type FormRequest struct {
	// Keywords is the ordered list of required skills; the first selects
	// the seed authors.
	Keywords []string
	// Algorithm is the formation strategy identifier, case-insensitive.
	Algorithm string
	// TeamCount is the number of disjoint teams to build.
	TeamCount int
	// ExcludedIDs are authors that must not appear in any team.
	ExcludedIDs []string
	// TimeThreshold overrides the recency window of the temporal
	// strategies.
	TimeThreshold int
	// NullYearsOption overrides the recency imputation policy (1..3).
	NullYearsOption int
	// SortOrder overrides the citation-optimized ranking priority.
	SortOrder string
	// RandSeed pins the random imputation policy for reproducible runs.
	RandSeed int64
}

// Client implements TeamGraph on a Neo4j-backed formation engine.
type Client struct {
	querier driver.Querier
	engine  *formation.Engine
	config  *config.Config
	logger  *slog.Logger
}

var _ TeamGraph = (*Client)(nil)

// New connects to the configured graph store and builds a client. The
// connection is verified before returning: an unreachable or misconfigured
// store is a startup failure, not something to discover on the first batch.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	logger := NewLogger(cfg.Log)

	neo, err := driver.NewNeo4jQuerier(
		cfg.Database.URI,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Database,
		time.Duration(cfg.Database.QueryTimeout)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := neo.VerifyConnectivity(ctx); err != nil {
		neo.Close(ctx)
		return nil, fmt.Errorf("failed to connect to graph store at %s: %w", cfg.Database.URI, err)
	}

	var querier driver.Querier = neo
	if cfg.CircuitBreaker.Enabled {
		querier = driver.NewBreakerQuerier(neo, driver.BreakerOptions{
			MaxRequests:      cfg.CircuitBreaker.MaxRequests,
			Interval:         time.Duration(cfg.CircuitBreaker.Interval) * time.Second,
			Timeout:          time.Duration(cfg.CircuitBreaker.Timeout) * time.Second,
			ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
		})
	}

	logger.Info("connected to graph store",
		"uri", cfg.Database.URI, "database", cfg.Database.Database,
		"circuit_breaker", cfg.CircuitBreaker.Enabled)

	return &Client{
		querier: querier,
		engine:  formation.NewEngine(querier, logger),
		config:  cfg,
		logger:  logger,
	}, nil
}

// FormTeams validates and maps the external request onto the engine,
// layering request overrides on the configured formation defaults.
func (c *Client) FormTeams(ctx context.Context, req FormRequest) (*types.BatchResult, error) {
	alg, err := formation.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, err
	}

	keywords := make([]string, 0, len(req.Keywords))
	for _, kw := range req.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return c.engine.AssembleTeams(ctx, formation.Request{
		Keywords:  keywords,
		Algorithm: alg,
		TeamCount: req.TeamCount,
		Options:   c.options(req),
	})
}

// options merges the configured defaults with per-request overrides.
func (c *Client) options(req FormRequest) formation.Options {
	f := c.config.Formation
	opts := formation.Options{
		MaxDistance:           f.MaxDistance,
		InitialDistance:       f.InitialDistance,
		MaxIncrease:           f.MaxIncrease,
		CohesionWeight:        f.CohesionWeight,
		DistanceWeight:        f.DistanceWeight,
		TimeThreshold:         f.TimeThreshold,
		NullYears:             formation.NullYearsOption(f.NullYearsOption),
		SortOrder:             formation.SortOrder(f.SortOrder),
		DisableOrgConnections: !f.UseOrgConnections,
		ExcludedIDs:           req.ExcludedIDs,
		RandSeed:              req.RandSeed,
		MaxConcurrentScores:   c.config.Database.MaxConcurrentQueries,
	}
	if req.TimeThreshold > 0 {
		opts.TimeThreshold = req.TimeThreshold
	}
	if req.NullYearsOption > 0 {
		opts.NullYears = formation.NullYearsOption(req.NullYearsOption)
	}
	if req.SortOrder != "" {
		opts.SortOrder = formation.SortOrder(req.SortOrder)
	}
	return opts
}

// Keywords lists the skill vocabulary.
func (c *Client) Keywords(ctx context.Context, limit int) ([]string, error) {
	return c.engine.Keywords(ctx, limit)
}

// SearchAuthors finds authors by name or skill substring.
func (c *Client) SearchAuthors(ctx context.Context, query string, limit int) ([]types.AuthorSummary, error) {
	return c.engine.SearchAuthors(ctx, query, limit)
}

// HealthCheck probes the store with a trivial read.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.engine.Probe(ctx)
}

// Close releases the driver.
func (c *Client) Close(ctx context.Context) error {
	return c.querier.Close(ctx)
}

// NewLogger builds the process logger from the logging configuration.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
