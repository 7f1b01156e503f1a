// Package cmd provides the root command and CLI setup for gendocs.
package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gendocs.dev/pkg/gendocs/internal/adapter"
	"gendocs.dev/pkg/gendocs/internal/controller"
	"gendocs.dev/pkg/gendocs/internal/domain"
	m "gendocs.dev/pkg/gendocs/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ledgerStore adapter.LedgerStore
var annotator domain.Annotator
var workflow domain.Workflow
var ui controller.UI

// pathFlag is the directory scanned for target files.
var pathFlag string

// extensionsFlag lists the file extensions treated as target files.
var extensionsFlag []string

// noLedgerFlag runs without reading or recording the ledger.
var noLedgerFlag bool

var hardFlag bool
var dryRunFlag bool
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	ledgerStore = adapter.NewLocalLedgerStore(
		m.Path(viper.GetString(ledgerFileKey)),
		m.Path(viper.GetString(ledgerIgnoreFileKey)),
	)
	annotator = domain.NewAnnotator()
	workflow = domain.NewWorkflow(
		fsAdapter,
		ledgerStore,
		ui,
		annotator,
	)
}

const rootLongDescription = `Gendocs inserts placeholder documentation comments into Rust sources.

Every struct, enum and trait declaration and every public function gets a
"/// WIP_<name>_<kind>_description" line above it, and every struct field
and enum variant gets one inside the body. Annotated files are recorded in
a ledger file so later runs skip them; pass "hard" (or --hard) to forget the
ledger and annotate everything again.

The legacy spelling "-path DIR" is accepted as "--path DIR".`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "gendocs [hard]",
		Short:        "Insert placeholder doc comments into Rust sources",
		Long:         rootLongDescription,
		ValidArgs:    []string{hardArg},
		Args:         cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Annotate(cmd.Context(), domain.AnnotateArgs{
				ScanArgs: scanArgs(),
				Hard:     hardFlag || slices.Contains(args, hardArg),
				DryRun:   dryRunFlag,
			})
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&pathFlag, pathFlagName, "p", viper.GetString(pathConfigKey), "directory scanned for target files")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(pathFlagName), pathConfigKey)

	cmd.PersistentFlags().StringSliceVar(&extensionsFlag, extFlagName, viper.GetStringSlice(extensionsConfigKey), "extensions of target files (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extFlagName), extensionsConfigKey)

	cmd.PersistentFlags().BoolVar(&noLedgerFlag, noLedgerFlagName, viper.GetBool(ledgerDisabledKey), "neither read nor record the ledger file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noLedgerFlagName), ledgerDisabledKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.Flags().BoolVar(&hardFlag, hardFlagName, false, "reset the ledger before scanning")
	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, false, "print the changes as a diff instead of writing them")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func scanArgs() domain.ScanArgs {
	return domain.ScanArgs{
		Root:       m.Path(viper.GetString(pathConfigKey)),
		Extensions: viper.GetStringSlice(extensionsConfigKey),
		UseLedger:  !viper.GetBool(ledgerDisabledKey),
	}
}

// normalizeArgs rewrites the single-dash "-path" spelling, which pflag would
// read as "-p ath", into "--path".
func normalizeArgs(args []string) []string {
	legacy := "-" + pathFlagName
	normalized := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			normalized = append(normalized, args[i:]...)
			break
		}

		if arg == legacy || strings.HasPrefix(arg, legacy+"=") {
			arg = "-" + arg
		}

		normalized = append(normalized, arg)
	}

	return normalized
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
