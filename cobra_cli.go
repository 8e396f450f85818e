package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
luadoc keeps the Luau sources of a library in step with its Markdown API reference.

  • inject copies each function's section of api.md into a --[=[ ]=] doc comment
    placed right above the function definition in its module file
  • lib regenerates lib.lua, the table that re-exports every sibling module
  • show lists the functions documented in api.md or renders one in the terminal

Both inject and lib are dry runs unless --inject / --write is given.
`

func newRootCmd(stdout, stderr io.Writer, fs afero.Fs) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr, fs: fs}
	cmd := &cobra.Command{
		Use:           "luadoc",
		Short:         "Doc comment and lib.lua tooling for Luau libraries",
		Long:          strings.TrimSpace(rootLongDesc),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.opts.configPath, "config", "", "config file (default is .luadoc.yaml in the working directory)")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "log every file decision")

	cmd.AddCommand(newInjectCmd(app))
	cmd.AddCommand(newLibCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

// usageArgs requires between lo and hi positionals.
func usageArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo {
			return fmt.Errorf("usage: %s", cmd.UseLine())
		}
		if len(args) > hi {
			return fmt.Errorf("too many positional arguments\nusage: %s", cmd.UseLine())
		}
		return nil
	}
}

func newInjectCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject <api.md path> <directory path>",
		Short: "Insert doc comments from api.md into module files",
		Long: strings.TrimSpace(`
Read every ### section of the API reference and, for each module file in the
directory, place the section named after the file above the function it
defines. Files named init, lib, Error, None, Types, Symbol or starting with an
underscore are skipped.

Without --inject nothing is written; the summary shows what would happen.
`),
		Args:          usageArgs(2, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.BoolVar(&app.opts.inject, "inject", false, "write the doc comments into the files")
	flags.BoolVar(&app.opts.diff, "diff", false, "print a unified diff for every file that would change (dry run only)")
	flags.StringVar(&app.opts.reportPath, "report", "", "also write the summary as YAML to this file")
	flags.BoolVar(&app.opts.skipMalformed, "skip-malformed", false, "warn about api.md sections without a description instead of failing")
	cmd.MarkFlagsMutuallyExclusive("inject", "diff")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.injectDocs(args[0], args[1])
	}
	return cmd
}

func newLibCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lib <directory path>",
		Short: "Generate the lib.lua aggregator for a directory",
		Long: strings.TrimSpace(`
List the module files of the directory (except init, lib and names starting
with an underscore) and build a lib.lua that requires each of them.

Without --write the generated content is printed instead of written.
`),
		Args:          usageArgs(1, 1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&app.opts.write, "write", false, "write lib.lua into the directory")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.generateLib(args[0])
	}
	return cmd
}

func newShowCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <api.md path> [function]",
		Short:         "List documented functions or render one of them",
		Args:          usageArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&app.opts.style, "style", "auto", "glamour style used to render (auto, dark, light, notty, ascii)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 2 {
			name = args[1]
		}
		return app.showDocs(args[0], name)
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for luadoc.

The output should be evaluated by your shell. For example:

  # bash
  luadoc completion bash > /usr/local/etc/bash_completion.d/luadoc

  # zsh
  luadoc completion zsh > "${fpath[1]}/_luadoc"

  # fish
  luadoc completion fish | source

  # PowerShell
  luadoc completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  luadoc gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
