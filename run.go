package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/agentflare-ai/luadoc/internal/apidoc"
	"github.com/agentflare-ai/luadoc/internal/batch"
	"github.com/agentflare-ai/luadoc/internal/config"
	"github.com/agentflare-ai/luadoc/internal/inject"
	"github.com/agentflare-ai/luadoc/internal/libgen"
	"github.com/agentflare-ai/luadoc/internal/logging"
	"github.com/agentflare-ai/luadoc/internal/scan"
)

type options struct {
	configPath    string
	verbose       bool
	inject        bool
	diff          bool
	reportPath    string
	skipMalformed bool
	write         bool
	style         string
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout, os.Stderr, afero.NewOsFs())
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) setup() (*config.Config, *log.Logger, error) {
	logger := logging.New(app.stderr, app.opts.verbose)
	cfg, err := config.Load(app.fs, app.opts.configPath, ".")
	if err != nil {
		return nil, nil, err
	}
	if cfg.Source != "" {
		logger.Debug("using config file", "path", cfg.Source)
	}
	return cfg, logger, nil
}

func (app *cliApp) loadDocs(mdPath string, logger *log.Logger) (apidoc.Docs, error) {
	docs, err := apidoc.Load(app.fs, mdPath)
	if err == nil {
		return docs, nil
	}
	var serr *apidoc.SectionError
	if !app.opts.skipMalformed || docs == nil || !errors.As(err, &serr) {
		return nil, err
	}
	for _, e := range unwrapAll(err) {
		logger.Warn("skipping malformed section", "file", mdPath, "err", e)
	}
	return docs, nil
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func (app *cliApp) injectDocs(mdPath, dir string) error {
	cfg, logger, err := app.setup()
	if err != nil {
		return err
	}
	docs, err := app.loadDocs(mdPath, logger)
	if err != nil {
		return err
	}
	logger.Debug("parsed api reference", "file", mdPath, "functions", len(docs))

	paths, err := scan.Candidates(app.fs, dir, cfg.DocScan())
	if err != nil {
		return err
	}
	dryRun := !app.opts.inject
	injector := &inject.Injector{
		FS:     app.fs,
		Docs:   docs,
		DryRun: dryRun,
		Logger: logger,
	}
	if app.opts.diff {
		for _, p := range paths {
			diff, err := injector.Diff(p)
			if err != nil {
				logger.Debug("no diff", "path", p, "err", err)
				continue
			}
			fmt.Fprint(app.stdout, diff)
		}
	}

	summary := batch.Run(paths, injector.Inject)
	verb := "injected"
	if dryRun {
		verb = "generated"
	}
	summary.Print(app.stdout, verb)
	if app.opts.reportPath != "" {
		return summary.WriteReport(app.fs, app.opts.reportPath)
	}
	return nil
}

func (app *cliApp) generateLib(dir string) error {
	cfg, logger, err := app.setup()
	if err != nil {
		return err
	}
	content, err := libgen.Build(app.fs, dir, cfg.LibScan())
	if err != nil {
		return err
	}
	if !app.opts.write {
		fmt.Fprintf(app.stdout, "Generated %s content:\n", cfg.LibFile)
		fmt.Fprintln(app.stdout, content)
		return nil
	}
	path, err := libgen.Write(app.fs, dir, cfg.LibFile, content)
	if err != nil {
		return err
	}
	logger.Debug("wrote aggregator", "path", path)
	fmt.Fprintf(app.stdout, "Successfully wrote %s to %s\n", cfg.LibFile, path)
	return nil
}

func (app *cliApp) showDocs(mdPath, name string) error {
	_, logger, err := app.setup()
	if err != nil {
		return err
	}
	docs, err := app.loadDocs(mdPath, logger)
	if err != nil {
		return err
	}
	if name == "" {
		for _, key := range docs.Names() {
			fmt.Fprintln(app.stdout, docs[key].Name)
		}
		return nil
	}
	entry, ok := docs.Lookup(name)
	if !ok {
		return fmt.Errorf("no documentation for %q in %s", name, mdPath)
	}
	out, err := renderMarkdown("# "+entry.Name+"\n\n"+entry.Description+"\n", app.opts.style)
	if err != nil {
		return err
	}
	_, err = io.WriteString(app.stdout, out)
	return err
}

func renderMarkdown(md, style string) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}

var legacyLongFlagSet = map[string]struct{}{
	"inject":         {},
	"write":          {},
	"diff":           {},
	"report":         {},
	"skip-malformed": {},
	"config":         {},
	"verbose":        {},
	"style":          {},
}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[1:], "=")
		if _, ok := legacyLongFlagSet[name]; ok {
			if hasValue {
				converted = append(converted, "--"+name+"="+value)
			} else {
				converted = append(converted, "--"+name)
			}
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
