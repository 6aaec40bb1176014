package yfscreen

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/seenimoa/openscreener/internal/provider"
	"github.com/seenimoa/openscreener/pkg/models"
)

// --- SecurityScreen fetcher ---

type securityScreenFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newSecurityScreenFetcher(p *Provider) *securityScreenFetcher {
	return &securityScreenFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelSecurityScreen,
			"Filter-based securities screening via Yahoo Finance",
			nil,
			[]string{
				provider.ParamSecurityType,
				provider.ParamPreset,
				provider.ParamFilters,
				provider.ParamLimit,
				provider.ParamOffset,
			},
		),
		p: p,
	}
}

// Fetch parses the query parameters into a ScreenRequest and delegates.
// Screen results are never cached: two identical calls hit the backend
// twice. Rate limiting happens inside the provider.
func (f *securityScreenFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	req, err := parseScreenParams(params)
	if err != nil {
		return nil, err
	}
	return newResult(f.p.ScreenSecurities(ctx, req)), nil
}

// parseScreenParams decodes the string parameter map into a typed request.
// Absent parameters stay at the request's defaults: equity, default page
// size, offset 0.
func parseScreenParams(params provider.QueryParams) (ScreenRequest, error) {
	req := ScreenRequest{
		SecurityType: models.SecurityEquity,
	}

	if st := params[provider.ParamSecurityType]; st != "" {
		req.SecurityType = models.SecurityType(st)
	}
	req.Preset = params[provider.ParamPreset]

	if raw := params[provider.ParamFilters]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.CustomFilters); err != nil {
			return req, fmt.Errorf("parse %s: %w", provider.ParamFilters, err)
		}
	}

	if raw := params[provider.ParamLimit]; raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("parse %s: %w", provider.ParamLimit, err)
		}
		req.Limit = &n
	}
	if raw := params[provider.ParamOffset]; raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("parse %s: %w", provider.ParamOffset, err)
		}
		req.Offset = n
	}

	return req, nil
}

// --- FilterCatalog fetcher ---

type filterCatalogFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newFilterCatalogFetcher(p *Provider) *filterCatalogFetcher {
	return &filterCatalogFetcher{
		BaseFetcher: provider.NewBaseFetcher(
			provider.ModelFilterCatalog,
			"Available screening filter fields and operators",
			nil,
			nil,
		),
		p: p,
	}
}

// Fetch returns the filter catalog. Caching lives in the provider; the
// fetcher only reports whether this response came from the cache.
func (f *filterCatalogFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	catalog, cached := f.p.availableFilters(ctx)
	if cached {
		return newCachedResult(catalog), nil
	}
	return newResult(catalog), nil
}
