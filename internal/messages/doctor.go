package messages

// Doctor messages for the doctor command.
const (
	DoctorHealthCheckFmt = "Checking desktop cache tools for %s...\n"

	DoctorCheckNameStaged = "Staged"
	DoctorCheckNameTool   = "Tool"
	DoctorCheckNameDir    = "Directory"

	DoctorStagedFmt            = "%s is set to %q; a run would not touch any cache"
	DoctorStagedRecommendFmt   = "Unset %s to refresh caches on this system."
	DoctorNotStagedFmt         = "%s is not set"
	DoctorToolFoundFmt         = "%s: %s found at %s"
	DoctorToolMissingFmt       = "%s: %s not found on PATH"
	DoctorToolMissingRecommend = "Install the tool or override it under [tools] in postinstall.toml; the step is ignored otherwise."
	DoctorToolDisabledFmt      = "%s: step disabled"
	DoctorDirExistsFmt         = "Directory exists: %s"
	DoctorDirMissingFmt        = "Directory missing: %s"
	DoctorDirMissingRecommend  = "The package may not install any files here; the tool will likely report an error."
	DoctorPathNotDirFmt        = "%s exists but is not a directory"

	DoctorWarnSummary    = "Some checks triggered warnings. Cache refresh is best-effort and still exits successfully."
	DoctorSuccessSummary = "All checks passed."

	// DoctorStatusOKLabel is the label for passing checks.
	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorResultLineFmt   = "%s %s: %s\n"
	DoctorRecommendFmt    = "       -> %s\n"
)
