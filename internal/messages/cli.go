package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command usage.
	RootUse = "postinstall <prefix>"
	// RootShort is the short description for the root command.
	RootShort       = "Refresh desktop integration caches after installing into a prefix"
	RootLong        = "Compiles GSettings schemas, refreshes the hicolor icon cache and rebuilds the MIME database\nunder <prefix>/share. Does nothing when the staged-install variable (DESTDIR) is set.\nFailures of the individual tools are ignored."
	RootVersionFlag = "Print version and exit"
	RootArgsFmt     = "accepts exactly 1 arg (install prefix), received %d"

	RootFlagDataDir = "Use this data directory instead of <prefix>/share"
	RootFlagDryRun  = "Print the commands that would run without running them"
	RootFlagSkip    = "Skip a step (schemas, icons, mime); repeatable"
	RootFlagVerbose = "Report each command line and its outcome"
	RootFlagConfig  = "Path to a postinstall.toml config file"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// DoctorUse is the doctor command usage.
	DoctorUse   = "doctor <prefix>"
	DoctorShort = "Check that the cache tools and target directories are available"
)
