package tmplfill

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Fill template folders from a list of variables"
	MsgRunShort        = "Substitute variables into the templates of an option"
	MsgListShort       = "List the configured options"
	MsgListLong        = "List shows where the settings were read from, the placeholder delimiters and every configured option."
	MsgCheckShort      = "Report unresolved placeholders in existing output"
	MsgInitShort       = "Write a starter settings document"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgCancelled     = "Cancelled"
	MsgSettingsWrote = "Wrote [path]%s[/path]"
	MsgVersionFormat = "tmplfill version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrAllWithID    = "--all cannot be combined with an option id"
	MsgErrOptionsFail  = "%d of %d options failed"
	MsgErrUnknownShell = "unknown shell %q"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSettings = "Settings document (default ./Options.xml, then the config directory)"
	MsgFlagDryRun   = "Substitute and report without writing output files"
	MsgFlagFormat   = "Output format: auto, term or text"
	MsgFlagAll      = "Run every option, continuing after failures"
	MsgFlagType     = "Settings document type: xml, toml or yaml (default from the file extension)"
	MsgFlagForce    = "Overwrite an existing settings document"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
