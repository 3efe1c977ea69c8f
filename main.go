package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Limetric/ddlplan/migration"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	outPath     string
	versionOnly int
)

var rootCmd = &cobra.Command{
	Use:           "ddlplan",
	Short:         "Render MySQL schema migration plans to DDL",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var renderCmd = &cobra.Command{
	Use:   "render [plan]",
	Short: "Render a plan as a SQL script",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

var checkCmd = &cobra.Command{
	Use:   "check [plan]",
	Short: "Lint a plan and syntax-check every rendered statement",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var listCmd = &cobra.Command{
	Use:   "list [plan]",
	Short: "List the statements of a plan",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ddlplan version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to migration plan file (TOML or YAML)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the script to this file instead of stdout")
	renderCmd.Flags().IntVar(&versionOnly, "version-only", -1, "render only migrations with this version (hooks are skipped)")
	rootCmd.AddCommand(renderCmd, checkCmd, listCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// planFromArgs loads the plan named by the positional arg, falling back to --config.
func planFromArgs(args []string) (*PlanConfig, error) {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("plan file required: ddlplan <command> <plan.toml> or --config <plan.toml>")
	}

	log.Printf("loading plan %s...", path)
	cfg, err := loadPlan(path)
	if err != nil {
		return nil, err
	}
	log.Printf("found %d migrations", len(cfg.Items))
	return cfg, nil
}

// hookStatements loads both hook phases.
func hookStatements(cfg *PlanConfig) (before, after []string, err error) {
	before, err = loadHookStatements(cfg, cfg.Hooks.Before, "before")
	if err != nil {
		return nil, nil, err
	}
	after, err = loadHookStatements(cfg, cfg.Hooks.After, "after")
	if err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := planFromArgs(args)
	if err != nil {
		return err
	}

	items := cfg.Items
	var before, after []string
	if versionOnly >= 0 {
		items = migration.FilterVersion(items, versionOnly)
		if len(items) == 0 {
			return fmt.Errorf("no migrations with version %d", versionOnly)
		}
	} else {
		before, after, err = hookStatements(cfg)
		if err != nil {
			return err
		}
	}

	if outPath == "" {
		return writeScript(cmd.OutOrStdout(), before, items, after)
	}
	if err := writeScriptFile(outPath, before, items, after); err != nil {
		return err
	}
	log.Printf("wrote %d statements to %s", len(before)+len(items)+len(after), outPath)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := planFromArgs(args)
	if err != nil {
		return err
	}
	before, after, err := hookStatements(cfg)
	if err != nil {
		return err
	}

	if warnings := collectLintWarnings(cfg.Items); len(warnings) > 0 {
		log.Printf("lint report: %d warning(s)", len(warnings))
		for _, w := range warnings {
			log.Printf("  WARN: %s", w)
		}
	}

	problems := checkPlan(before, cfg.Items, after)
	if len(problems) > 0 {
		return fmt.Errorf("syntax check failed (%d statement(s)):\n%s", len(problems), strings.Join(problems, "\n"))
	}
	log.Printf("checked %d statements", len(before)+len(cfg.Items)+len(after))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := planFromArgs(args)
	if err != nil {
		return err
	}

	width := 0
	if cmd.OutOrStdout() == io.Writer(os.Stdout) {
		width = terminalSQLWidth(os.Stdout)
	}
	if err := writePlanTable(cmd.OutOrStdout(), cfg.Items, width); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
