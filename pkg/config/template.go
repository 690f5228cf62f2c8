package config

// Template returns a commented starter configuration file.
func Template() []byte {
	return []byte(`# gofluent configuration
# See: https://github.com/yaklabco/gofluent

# Severity reported for syntax errors: error, warning, or info
severity: error

# Severity reported for identifiers defined twice in one file
duplicate_severity: warning

# File extensions treated as Fluent sources
extensions:
  - .ftl

# Skip vendored and third-party directories
skip_vendor: true

# Parse comments and attach them to messages (used by "gofluent doc")
# comments: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "build/**"
#   - "**/*.generated.ftl"
`)
}
