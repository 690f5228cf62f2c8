package logging

// Field names for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldURI        = "uri"

	// Configuration.
	FieldConfig   = "config"
	FieldJobs     = "jobs"
	FieldFormat   = "format"
	FieldComments = "comments"
	FieldProfile  = "profile"

	// Statistics.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesSkipped     = "files_skipped"
	FieldFilesWithIssues  = "files_with_issues"
	FieldEntries          = "entries"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldDuration         = "duration"

	// Version.
	FieldVersion  = "version"
	FieldCommit   = "commit"
	FieldBuilt    = "built"
	FieldSyntax   = "syntax"
	FieldGo       = "go"
	FieldPlatform = "platform"

	// Entries and diagnostics.
	FieldID       = "id"
	FieldKind     = "kind"
	FieldSeverity = "severity"
	FieldLanguage = "language"
)
