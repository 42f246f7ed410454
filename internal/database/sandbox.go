package database

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultSandboxPrefix is the schema-name prefix for per-run databases.
const DefaultSandboxPrefix = "orthomcl"

// maxSchemaNameLen is MySQL's limit on schema identifiers.
const maxSchemaNameLen = 64

// SandboxName returns a unique database name for a per-run sandbox, derived
// from a fresh UUID. The result is a valid unquoted MySQL identifier as long
// as the prefix is one. Each run gets its own database so it can be dropped
// wholesale afterwards.
func SandboxName(prefix string) string {
	if prefix == "" {
		prefix = DefaultSandboxPrefix
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	name := prefix + "_" + suffix
	if len(name) > maxSchemaNameLen {
		name = name[:maxSchemaNameLen]
	}
	return name
}
