package packup

import (
	_ "embed"
	"strings"
)

// Short descriptions and flag help, kept together so the command
// constructors stay free of prose.
const (
	MsgRootShort       = "Build deployment archives from project trees"
	MsgDeployShort     = "Package the project tree into a zip archive"
	MsgBundleShort     = "Package an explicit file list into a zip archive"
	MsgRulesShort      = "Show the effective exclusion rules"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, terminal, text or json"
	MsgFlagOutput  = "Destination archive path (overrides packup.toml)"
	MsgFlagWorkers = "Number of concurrent copy workers (overrides packup.toml)"
	MsgFlagDryRun  = "Classify and report without writing anything"
	MsgFlagDir     = "Directory the bundle files live in (overrides packup.toml)"
	MsgFlagRoot    = "Project root directory"
	MsgFlagWrite   = "Write packup.toml to the project root instead of printing"
)

// Long descriptions live in msgs/ as plain text so they can be edited
// without touching Go code.

//go:embed msgs/root-long.txt
var msgRootLongRaw string

// MsgRootLong is the long description for the root command.
var MsgRootLong = strings.TrimSpace(msgRootLongRaw)

//go:embed msgs/deploy-long.txt
var msgDeployLongRaw string

// MsgDeployLong is the long description for the deploy command.
var MsgDeployLong = strings.TrimSpace(msgDeployLongRaw)

//go:embed msgs/deploy-example.txt
var msgDeployExampleRaw string

// MsgDeployExample shows example deploy invocations.
var MsgDeployExample = strings.TrimRight(msgDeployExampleRaw, "\n")

//go:embed msgs/bundle-long.txt
var msgBundleLongRaw string

// MsgBundleLong is the long description for the bundle command.
var MsgBundleLong = strings.TrimSpace(msgBundleLongRaw)

//go:embed msgs/bundle-example.txt
var msgBundleExampleRaw string

// MsgBundleExample shows example bundle invocations.
var MsgBundleExample = strings.TrimRight(msgBundleExampleRaw, "\n")

//go:embed msgs/rules-long.txt
var msgRulesLongRaw string

// MsgRulesLong is the long description for the rules command.
var MsgRulesLong = strings.TrimSpace(msgRulesLongRaw)

//go:embed msgs/genconfig-long.txt
var msgGenConfigLongRaw string

// MsgGenConfigLong is the long description for the gen-config command.
var MsgGenConfigLong = strings.TrimSpace(msgGenConfigLongRaw)

//go:embed msgs/genconfig-example.txt
var msgGenConfigExampleRaw string

// MsgGenConfigExample shows example gen-config invocations.
var MsgGenConfigExample = strings.TrimRight(msgGenConfigExampleRaw, "\n")

//go:embed msgs/completion-long.txt
var msgCompletionLongRaw string

// MsgCompletionLong explains how to install shell completions.
var MsgCompletionLong = strings.TrimSpace(msgCompletionLongRaw)

//go:embed msgs/usage-template.txt
var msgUsageTemplateRaw string

// MsgUsageTemplate is the cobra usage template with formatted section
// headers. It relies on the template functions registered by
// initTemplateFormatting.
var MsgUsageTemplate = msgUsageTemplateRaw
