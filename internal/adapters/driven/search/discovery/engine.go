package discovery

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	discoveryengine "google.golang.org/api/discoveryengine/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/dossier-labs/dossier-cli/internal/core/domain"
	"github.com/dossier-labs/dossier-cli/internal/core/ports/driven"
	"github.com/dossier-labs/dossier-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// Engine executes search requests against a Discovery Engine data store.
type Engine struct {
	service       *discoveryengine.Service
	servingConfig string
	limiter       *RateLimiter
}

// NewEngine creates a search engine client for the configured data store.
func NewEngine(ctx context.Context, settings domain.Settings, ts oauth2.TokenSource) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	service, err := discoveryengine.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create search service: %w", err)
	}

	return &Engine{
		service:       service,
		servingConfig: settings.ServingConfig(),
		limiter:       NewRateLimiter(settings.RequestsPerSecond),
	}, nil
}

// Search runs a single query against the serving config and maps the
// response into domain types.
func (e *Engine) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	apiReq := buildRequest(req)

	logger.Debug("Search request: query=%q pageSize=%d", req.Query, req.Profile.PageSize)

	resp, err := e.service.Projects.Locations.DataStores.ServingConfigs.
		Search(e.servingConfig, apiReq).
		Context(ctx).
		Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == http.StatusTooManyRequests {
			e.limiter.RecordRateLimitError(0)
			return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	mapped := mapResponse(resp)
	logger.Debug("Search response: query=%q results=%d summary=%t",
		req.Query, mapped.ResultCount(), mapped.SummaryText() != "")

	return mapped, nil
}

// buildRequest translates a domain search request into the API shape.
func buildRequest(req domain.SearchRequest) *discoveryengine.GoogleCloudDiscoveryengineV1SearchRequest {
	profile := req.Profile

	apiReq := &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequest{
		Query:    req.Query,
		PageSize: profile.PageSize,
		ContentSearchSpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestContentSearchSpec{
			SnippetSpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestContentSearchSpecSnippetSpec{
				ReturnSnippet:   true,
				MaxSnippetCount: profile.MaxSnippetCount,
			},
			SummarySpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestContentSearchSpecSummarySpec{
				SummaryResultCount:           profile.SummaryResultCount,
				IncludeCitations:             true,
				IgnoreAdversarialQuery:       true,
				IgnoreNonSummarySeekingQuery: false,
			},
		},
		QueryExpansionSpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestQueryExpansionSpec{
			Condition: "AUTO",
		},
	}

	if req.Preamble != "" {
		apiReq.ContentSearchSpec.SummarySpec.ModelPromptSpec =
			&discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestContentSearchSpecSummarySpecModelPromptSpec{
				Preamble: req.Preamble,
			}
	}

	if profile.SpellCorrection {
		apiReq.SpellCorrectionSpec = &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestSpellCorrectionSpec{
			Mode: "AUTO",
		}
	}
	apiReq.SafeSearch = profile.SafeSearch

	return apiReq
}
