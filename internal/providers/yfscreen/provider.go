// Package yfscreen implements the Yahoo Finance screener provider.
// It exposes preset and custom filter-based screening for US equities,
// ETFs, mutual funds, indices, and futures over the v1 screener API,
// normalizing heterogeneous result rows into a stable output shape.
//
// The screening pipeline is: resolve the effective filter list (preset,
// custom, or default), compile it into the backend's query representation,
// execute the blocking call on a worker pool, and reshape the raw rows.
package yfscreen

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/seenimoa/openscreener/internal/infra"
	"github.com/seenimoa/openscreener/internal/provider"
	"github.com/seenimoa/openscreener/pkg/models"
)

const providerName = "yfscreen"

// Provider implements provider.Provider for the Yahoo Finance screener.
type Provider struct {
	provider.BaseProvider
	backend     Backend
	pool        *infra.WorkerPool
	log         zerolog.Logger
	rateLimit   int
	filterTTL   time.Duration
	limiter     *infra.RateLimiter
	filterCache *infra.Cache
}

// Option configures a Provider.
type Option func(*Provider)

// WithBackend replaces the default screener backend. Used by tests and by
// callers that need a custom transport.
func WithBackend(b Backend) Option {
	return func(p *Provider) { p.backend = b }
}

// WithPoolSize bounds the number of concurrent backend calls.
func WithPoolSize(n int) Option {
	return func(p *Provider) { p.pool = infra.NewWorkerPool(n) }
}

// WithLogger sets the provider's logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Provider) { p.log = l }
}

// WithRateLimit sets the max backend requests per second.
func WithRateLimit(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.rateLimit = n
		}
	}
}

// WithFilterCacheTTL sets the filter-catalog cache lifetime.
func WithFilterCacheTTL(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.filterTTL = d
		}
	}
}

// New creates a new screener provider and registers all fetchers.
func New(opts ...Option) *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Yahoo Finance securities screener - preset and custom filter screens",
			"https://finance.yahoo.com",
			nil, // no credentials required
		),
		backend:   NewBackend(),
		pool:      infra.NewWorkerPool(4),
		log:       zerolog.Nop(),
		rateLimit: 5,
		filterTTL: 1 * time.Hour,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.limiter = infra.NewRateLimiter(p.rateLimit, time.Second)
	p.filterCache = infra.NewCache(p.filterTTL)

	p.RegisterFetcher(newSecurityScreenFetcher(p))
	p.RegisterFetcher(newFilterCatalogFetcher(p))

	return p
}

// Ping checks connectivity to Yahoo Finance.
func (p *Provider) Ping(ctx context.Context) error {
	url := "https://query1.finance.yahoo.com/v7/finance/quote?symbols=AAPL"
	body, _, err := infra.DoGet(ctx, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return fmt.Errorf("yfscreen ping: %w", err)
	}
	body.Close()
	return nil
}

// ScreenSecurities runs one screening call. It never returns an error:
// every failure, from an unrecognized security type through backend
// execution, is caught here and reported through the result's ErrorMessage
// with an empty Results slice. Zero matching rows is a success.
func (p *Provider) ScreenSecurities(ctx context.Context, req ScreenRequest) *models.ScreeningResult {
	result := &models.ScreeningResult{
		SecurityType:   req.SecurityType,
		Offset:         req.Offset,
		Results:        []models.SecurityRecord{},
		QueryTimestamp: time.Now().UTC(),
	}
	if req.Preset != "" {
		preset := req.Preset
		result.PresetUsed = &preset
	}

	res, err := resolveScreen(req)
	// Partially resolved values are still reported on the error path, so the
	// caller can see which filters the call would have sent.
	result.SecurityType = res.SecurityType
	result.FilterDescription = res.Description
	result.FiltersApplied = res.Filters
	result.Limit = res.Limit
	if err != nil {
		p.log.Error().Err(err).Str("security_type", string(req.SecurityType)).Msg("screen rejected")
		return screenFailure(result, err)
	}

	query, err := p.backend.CompileQuery(res.Filters)
	if err != nil {
		p.log.Error().Err(err).Msg("query compilation failed")
		return screenFailure(result, err)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return screenFailure(result, err)
	}

	// The backend call is blocking; run it on the worker pool and await
	// its single result.
	var rows []Row
	err = p.pool.Do(ctx, func() error {
		var execErr error
		rows, execErr = p.backend.Execute(ctx, res.SecurityType, query)
		return execErr
	})
	if err != nil {
		p.log.Error().Err(err).
			Str("security_type", string(res.SecurityType)).
			Str("preset", req.Preset).
			Msg("screening failed")
		return screenFailure(result, err)
	}

	result.TotalResults = len(rows)
	result.Results = normalizeRows(rows, res.Limit, req.Offset)
	result.ReturnedCount = len(result.Results)
	return result
}

// screenFailure stamps the error onto an otherwise empty result.
func screenFailure(result *models.ScreeningResult, err error) *models.ScreeningResult {
	msg := err.Error()
	result.ErrorMessage = &msg
	result.Results = []models.SecurityRecord{}
	result.TotalResults = 0
	result.ReturnedCount = 0
	return result
}

// filterCacheKey is the single cache slot for the filter catalog; the
// catalog takes no parameters.
const filterCacheKey = "filter_catalog"

// AvailableFilters returns the documented filter fields plus the size of the
// backend's filter-name registry. On failure it falls back to the static
// tables with a zero backend count and the error text; it never errors.
// Successful catalogs are cached for the configured TTL.
func (p *Provider) AvailableFilters(ctx context.Context) *models.FilterCatalog {
	catalog, _ := p.availableFilters(ctx)
	return catalog
}

// availableFilters additionally reports whether the catalog came from cache.
func (p *Provider) availableFilters(ctx context.Context) (*models.FilterCatalog, bool) {
	if v, ok := p.filterCache.Get(filterCacheKey); ok {
		return v.(*models.FilterCatalog), true
	}

	catalog := &models.FilterCatalog{
		AvailableFilters: EquityFilterGroups(),
		Operators:        models.FilterOps(),
	}

	names, err := p.backend.DataFilters(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("loading backend filter registry failed")
		msg := err.Error()
		catalog.ErrorMessage = &msg
		return catalog, false
	}

	catalog.TotalBackendFilters = len(names)
	p.filterCache.Set(filterCacheKey, catalog)
	return catalog, false
}

// ListPresets returns summaries of all preset screens in catalog order.
func (p *Provider) ListPresets() []models.PresetSummary {
	return ListPresets()
}

// FilterDocumentation returns the static filter reference document.
func (p *Provider) FilterDocumentation() *models.FilterDocs {
	return FilterDocumentation()
}

// newResult creates a FetchResult with the current timestamp.
func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
	}
}

// newCachedResult creates a FetchResult marked as cached.
func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
		Cached:    true,
	}
}
