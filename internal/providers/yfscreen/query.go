package yfscreen

import (
	"fmt"

	"github.com/seenimoa/openscreener/pkg/models"
)

const (
	// DefaultLimit is the page size used when the caller does not specify one.
	DefaultLimit = 50

	// MaxLimit is the upper bound on page size; larger requests are
	// silently reduced. There is no lower bound.
	MaxLimit = 250
)

// ScreenRequest is the input of a screening call. An empty SecurityType
// means equity. Limit distinguishes absent (nil, the default page size)
// from an explicit 0, which returns an empty page.
type ScreenRequest struct {
	SecurityType  models.SecurityType   `json:"security_type"`
	Preset        string                `json:"preset"`
	CustomFilters []models.FilterClause `json:"custom_filters"`
	Limit         *int                  `json:"limit"`
	Offset        int                   `json:"offset"`
}

// ErrInvalidSecurityType reports a security type outside the supported enum.
type ErrInvalidSecurityType struct {
	Type models.SecurityType
}

func (e *ErrInvalidSecurityType) Error() string {
	return fmt.Sprintf("invalid security_type %q, must be one of %v", e.Type, models.SecurityTypes())
}

// resolvedScreen is the assembler's output: the effective filters, security
// type, and page bounds that will be sent to the backend.
type resolvedScreen struct {
	SecurityType models.SecurityType
	Filters      []models.FilterClause
	Description  string
	Limit        int
}

// resolveScreen determines the effective filter list and security type.
// An empty security type means equity. Resolution order, first match wins:
//  1. a known preset name: its filters and description, and its declared
//     security type overrides the caller's;
//  2. non-empty custom filters, used verbatim;
//  3. a built-in default filter set that differs for fund-like types.
//
// On an unrecognized security type the partially resolved screen is returned
// together with the error, so the caller can still report which filters the
// call would have used.
func resolveScreen(req ScreenRequest) (resolvedScreen, error) {
	res := resolvedScreen{SecurityType: req.SecurityType}
	if res.SecurityType == "" {
		res.SecurityType = models.SecurityEquity
	}

	if p, ok := PresetByName(req.Preset); ok {
		res.Filters = p.Filters
		res.Description = p.Description
		res.SecurityType = p.SecurityType
	} else if len(req.CustomFilters) > 0 {
		res.Filters = req.CustomFilters
		res.Description = "Custom filters"
	} else {
		if res.SecurityType.IsFund() {
			res.Filters = []models.FilterClause{
				models.Eq("region", "us"),
				models.Gt("fundnetassets", 100_000_000),
			}
			res.Description = fmt.Sprintf("Default: US %ss with >$100M assets", res.SecurityType)
		} else {
			res.Filters = []models.FilterClause{
				models.Eq("region", "us"),
				models.Gt("intradaymarketcap", 100_000_000),
				models.Gt("dayvolume", 100_000),
			}
			res.Description = "Default: US stocks with >$100M market cap, >100K daily volume"
		}
	}

	// An absent limit means the default page size. An explicit limit is
	// used unchanged below the cap, including 0 and negative values,
	// which paginate to an empty page.
	res.Limit = DefaultLimit
	if req.Limit != nil {
		res.Limit = *req.Limit
	}
	if res.Limit > MaxLimit {
		res.Limit = MaxLimit
	}

	if !res.SecurityType.Valid() {
		return res, &ErrInvalidSecurityType{Type: res.SecurityType}
	}
	return res, nil
}
