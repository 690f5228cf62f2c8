package configloader

import (
	"slices"

	"github.com/yaklabco/gofluent/pkg/config"
)

// merge combines two configurations, with override taking precedence.
//   - Scalars: override wins when non-zero.
//   - Pointers: override wins when non-nil, so an explicit false is kept.
//   - Slices: override replaces base entirely when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Severity != "" {
		result.Severity = override.Severity
	}
	if override.DuplicateSeverity != "" {
		result.DuplicateSeverity = override.DuplicateSeverity
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Strict {
		result.Strict = true
	}

	if override.SkipVendor != nil {
		result.SkipVendor = config.Bool(*override.SkipVendor)
	}
	if override.Comments != nil {
		result.Comments = config.Bool(*override.Comments)
	}

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return &result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
