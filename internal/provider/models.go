package provider

// ModelType represents a standard data model type.
// Each ModelType maps to a specific data structure in pkg/models/.
type ModelType string

// --- Screening ---
const (
	// ModelSecurityScreen runs a filter-based screen and returns
	// a *models.ScreeningResult.
	ModelSecurityScreen ModelType = "SecurityScreen"

	// ModelFilterCatalog returns the available filter fields and
	// operators as a *models.FilterCatalog.
	ModelFilterCatalog ModelType = "FilterCatalog"
)
