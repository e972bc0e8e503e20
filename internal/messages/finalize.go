package messages

// Finalize messages for the cache refresh steps.
const (
	// FinalizeSchemasMessage is printed before compiling GSettings schemas.
	FinalizeSchemasMessage = "Compiling gsettings schemas..."
	FinalizeIconsMessage   = "Update icon cache..."
	FinalizeMimeMessage    = "Update mime database..."

	FinalizeStagedFmt      = "%s is set; skipping cache refresh\n"
	FinalizeDryRunFmt      = "  would run: %s\n"
	FinalizeStepOKFmt      = "  %s: ok\n"
	FinalizeStepExitFmt    = "  %s: exited with status %d (ignored)\n"
	FinalizeStepErrorFmt   = "  %s: %v (ignored)\n"
	FinalizeStepSkipFmt    = "  %s: skipped\n"
	FinalizeSystemRequired = "finalize system is required"
	FinalizeWriterRequired = "finalize output writer is required"
	FinalizePrefixRequired = "install prefix is required"
	FinalizeUnknownStepFmt = "unknown step %q (allowed: schemas, icons, mime)"
)
