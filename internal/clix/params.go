package clix

import (
	"github.com/spf13/pflag"
)

type ListParams struct {
	Limit int
}

// ParseListParams reads the common --limit flag, falling back to a
// sane default for missing or non-positive values.
func ParseListParams(flags *pflag.FlagSet, defaultLimit int) (ListParams, error) {
	limit, _ := flags.GetInt("limit")
	if limit <= 0 {
		limit = defaultLimit
	}
	return ListParams{Limit: limit}, nil
}
