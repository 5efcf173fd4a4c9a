// Package cmd provides the root command and CLI setup for inctrim.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"inctrim.dev/pkg/inctrim/internal/adapter"
	"inctrim.dev/pkg/inctrim/internal/controller"
	"inctrim.dev/pkg/inctrim/internal/domain"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var compilerAdapter adapter.CompilerAdapter
var makefileAdapter adapter.MakefileAdapter
var reportStore adapter.ReportStore
var flagResolver domain.FlagResolver
var workflow domain.Workflow
var ui controller.UI

var (
	srcDirFlag     string
	extFlags       []string
	excludeFlags   []string
	fileFlags      []string
	compilerFlag   string
	makefileFlag   string
	includeFlags   []string
	cflagFlags     []string
	fixFlag        bool
	verboseFlag    bool
	diffFlag       bool
	reportPathFlag string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	compilerAdapter = adapter.NewLocalCompilerAdapter()
	makefileAdapter = adapter.NewLocalMakefileAdapter()
	reportStore = adapter.NewReportStore()
	flagResolver = domain.NewFlagResolver(makefileAdapter, fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		compilerAdapter,
		reportStore,
		ui,
		flagResolver,
	)
}

const rootLongDescription = `inctrim finds the #include directives at the top of C source files that
the file does not need, by compiling the file once with each include
removed. Without --fix it only reports; with --fix it rewrites the include
block and verifies that the result still compiles.

Compiler flags come from the INCLUDES and CFLAGS variables of a Makefile
unless --include or --cflag is given.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd returns a root command with its flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "inctrim [files...]",
		Short:        "Remove unneeded #include directives from C sources",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := workflow.Trim(context.Background(), trimArgs(args))
			return err
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "print every compiler invocation and its output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.Flags().StringVar(&srcDirFlag, srcDirFlagName, viper.GetString(srcDirConfigKey), "directory scanned for sources when no files are given")
	bindFlagToConfig(cmd.Flags().Lookup(srcDirFlagName), srcDirConfigKey)

	cmd.Flags().StringArrayVar(&extFlags, extFlagName, viper.GetStringSlice(extConfigKey), "source file extension (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(extFlagName), extConfigKey)

	cmd.Flags().StringArrayVarP(&excludeFlags, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.Flags().StringArrayVar(&fileFlags, fileFlagName, nil, "process this file instead of scanning (can be repeated)")

	cmd.Flags().StringVar(&compilerFlag, compilerFlagName, viper.GetString(compilerConfigKey), "C compiler executable")
	bindFlagToConfig(cmd.Flags().Lookup(compilerFlagName), compilerConfigKey)

	cmd.Flags().StringVar(&makefileFlag, makefileFlagName, viper.GetString(makefileConfigKey), "Makefile providing INCLUDES and CFLAGS")
	bindFlagToConfig(cmd.Flags().Lookup(makefileFlagName), makefileConfigKey)

	cmd.Flags().StringArrayVar(&includeFlags, includeFlagName, nil, "include flag passed to the compiler, replaces INCLUDES (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(includeFlagName), includeConfigKey)

	cmd.Flags().StringArrayVar(&cflagFlags, cflagFlagName, nil, "compiler flag, replaces CFLAGS (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(cflagFlagName), cflagConfigKey)

	cmd.Flags().BoolVar(&fixFlag, fixFlagName, viper.GetBool(fixConfigKey), "rewrite files instead of only reporting")
	bindFlagToConfig(cmd.Flags().Lookup(fixFlagName), fixConfigKey)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, viper.GetBool(diffConfigKey), "print a unified diff of each proposed or applied rewrite")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffConfigKey)

	cmd.Flags().StringVarP(&reportPathFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "write a YAML report of the run to this path")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func trimArgs(args []string) domain.TrimArgs {
	files := parsePaths(args)
	files = append(files, parsePaths(fileFlags)...)

	return domain.TrimArgs{
		Sources: domain.SourceArgs{
			Root:       m.Path(viper.GetString(srcDirConfigKey)),
			Files:      files,
			Extensions: viper.GetStringSlice(extConfigKey),
			Exclude:    viper.GetStringSlice(excludeConfigKey),
		},
		Flags: domain.FlagArgs{
			Makefile:         m.Path(viper.GetString(makefileConfigKey)),
			IncludeOverrides: configOverride(includeConfigKey),
			CFlagOverrides:   configOverride(cflagConfigKey),
		},
		Compiler: viper.GetString(compilerConfigKey),
		Fix:      viper.GetBool(fixConfigKey),
		Verbose:  viper.GetBool(logVerboseKey),
		Diff:     viper.GetBool(diffConfigKey),
		Report:   m.Path(viper.GetString(reportConfigKey)),
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
