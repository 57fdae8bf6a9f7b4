package main

import (
	"fmt"

	"github.com/vovakirdan/treasure-dash/internal/registry"
)

// variantIDs maps the short variant names accepted on the command line
// to registry IDs.
var variantIDs = map[string]string{
	"classic":    "treasure",
	"platformer": "treasure_platformer",
}

// resolveVariant accepts a variant name or a registry ID.
func resolveVariant(arg string) (string, error) {
	if id, ok := variantIDs[arg]; ok {
		return id, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	return "", fmt.Errorf("unknown variant %q (run 'treasure list')", arg)
}
