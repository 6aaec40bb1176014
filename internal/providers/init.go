// Package providers initializes and registers all concrete screening
// providers with the global provider registry.
package providers

import (
	"github.com/seenimoa/openscreener/internal/provider"
	"github.com/seenimoa/openscreener/internal/providers/yfscreen"
)

// RegisterAll creates and registers all available providers with the
// global registry.
func RegisterAll(opts ...yfscreen.Option) error {
	return RegisterAllTo(provider.Global(), opts...)
}

// RegisterAllTo registers all available providers to the given registry.
func RegisterAllTo(reg *provider.Registry, opts ...yfscreen.Option) error {
	// --- Yahoo Finance screener (free, no API key) ---
	yf := yfscreen.New(opts...)
	if err := yf.Init(nil); err != nil {
		return err
	}
	return reg.Register(yf)
}
