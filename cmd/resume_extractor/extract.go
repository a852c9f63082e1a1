package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/export"
	"github.com/jonathan/resume-extractor/internal/fields"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/jobtitle"
	"github.com/jonathan/resume-extractor/internal/logging"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/types"
)

type extractOptions struct {
	configPath  string
	all         bool
	dir         string
	fields      []string
	debug       bool
	debugFields []string
	entities    string
	format      string
	out         string
	workers     int
	verbose     bool
	logFormat   string
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract fields from a resume, or from every resume in a directory",
		Long: `Extracts the selected fields from one resume file, or with --all from every
supported file (.txt, .md, .pdf, .html) in the input directory, and writes one
export per resume to the output directory.

Configuration can be loaded from a YAML file using --config and from RESUME_*
environment variables. Command-line flags override both.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args)
		},
	}

	// Config file flag (processed first)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.yaml file (values can be overridden by other flags)")

	cmd.Flags().BoolVar(&opts.all, "all", false, "Process every supported resume in the input directory")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Input directory for --all (default \"resumes\")")
	cmd.Flags().StringSliceVarP(&opts.fields, "fields", "f", nil, "Comma-separated fields to extract (default all)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log debug diagnostics for every field")
	cmd.Flags().StringSliceVar(&opts.debugFields, "debug-field", nil, "Log debug diagnostics for these fields only")
	cmd.Flags().StringVarP(&opts.entities, "entities", "e", "", "Path to entity tagger output (JSON) for a single resume")
	cmd.Flags().StringVar(&opts.format, "format", "", "Export format: csv, xlsx or json (default \"csv\")")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output directory (default \"output\")")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Concurrent extractors per resume (default one per CPU)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the extracted fields and score breakdown")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json (default \"console\")")

	return cmd
}

// loadConfig reads the config file and environment, then applies flags and defaults
func (o *extractOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	loaded, err := config.LoadConfig(o.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := *loaded

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.InputDir = o.dir
	}
	if flags.Changed("fields") {
		cfg.Fields = o.fields
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("debug-field") {
		cfg.DebugFields = o.debugFields
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("out") {
		cfg.OutputDir = o.out
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runExtract(cmd *cobra.Command, opts *extractOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	paths, err := inputPaths(opts.all, cfg.InputDir, args)
	if err != nil {
		return err
	}
	if opts.entities != "" && len(paths) != 1 {
		return fmt.Errorf("--entities can only be used with a single resume file")
	}

	logger, err := logging.New(logging.Options{
		Debug:  cfg.Debug || len(cfg.DebugFields) > 0,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	env := fields.Env{
		Library: patterns.New(cfg.Vocabulary()),
		Logger:  logger,
		Parser:  dates.Parser{Clock: dates.SystemClock(), TwoDigit: cfg.TwoDigitMode()},
	}
	registry := fields.Default(env)
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("invalid field registry: %w", err)
	}

	orchestrator := pipeline.New(registry, logger)
	if cfg.Workers > 0 {
		orchestrator.Workers = cfg.Workers
	}
	sel := pipeline.Selection{
		Fields:      cfg.Fields,
		Debug:       cfg.Debug,
		DebugFields: cfg.DebugFieldSet(),
	}

	var entities []types.Entity
	if opts.entities != "" {
		entities, err = ingestion.LoadEntities(opts.entities)
		if err != nil {
			return fmt.Errorf("failed to load entities: %w", err)
		}
	}

	docs := make([]*types.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := ingestion.LoadDocument(path, entities)
		if err != nil {
			if len(paths) == 1 {
				return fmt.Errorf("failed to load resume: %w", err)
			}
			logger.Warn("resume skipped", zap.String("path", path), zap.Error(err))
			continue
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no resumes could be loaded from %s", cfg.InputDir)
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	results := orchestrator.RunAll(ctx, docs, sel)
	for i, doc := range docs {
		rec := export.Record{
			Source: doc.Meta.Source,
			Result: results[i],
			Meta:   doc.Meta,
			Order:  registry.Names(),
		}
		written, err := export.WriteFile(cfg.OutputDir, cfg.Format, rec)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", doc.Meta.Source, err)
		}

		_, _ = fmt.Fprintf(out, "Extracted %d fields from %s\n", len(rec.Result), doc.Meta.Source)
		_, _ = fmt.Fprintf(out, "Saved to %s\n", written)

		if opts.verbose {
			printDetails(printer, env, registry, doc, rec)
		}
	}

	if skipped := len(paths) - len(docs); skipped > 0 {
		_, _ = fmt.Fprintf(out, "Skipped %d of %d files\n", skipped, len(paths))
	}
	return nil
}

// inputPaths returns the single file argument or, with all set, the supported files in dir
func inputPaths(all bool, dir string, args []string) ([]string, error) {
	if !all {
		if len(args) == 0 {
			return nil, fmt.Errorf("a resume file is required (or use --all)")
		}
		return args[:1], nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("--all and a file argument are mutually exclusive; provide only one")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && ingestion.IsSupported(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported resume files in %s", dir)
	}
	return paths, nil
}

func printDetails(p *observability.Printer, env fields.Env, registry *fields.Registry, doc *types.Document, rec export.Record) {
	p.PrintResult(rec.Source, rec.Result, rec.Order)

	if _, ok := rec.Result[fields.JobTitles]; ok {
		p.PrintJobOutcome(jobtitle.New(env.Library, env.Parser, nil).Run(doc.Text))
	}

	// the breakdown needs every score input, which a narrowed selection may omit
	if d, ok := registry.Deriver(fields.Score); ok && hasFields(rec.Result, d.Dependencies()) {
		p.PrintScore(fields.Breakdown(rec.Result))
	}
}

func hasFields(result types.Result, names []string) bool {
	for _, name := range names {
		if _, ok := result[name]; !ok {
			return false
		}
	}
	return true
}
