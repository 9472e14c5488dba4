// Command importer runs the Brazilian federal law structuring pipeline
// end to end: resolve a URN (or an alias, or caller-supplied local
// Planalto HTML) to its structured JSON or HTML variant, parse it into a
// law-element tree, emit the plate-block document, and write the result
// to disk (spec.md §6).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jusbr/leiimporter/internal/acquisition"
	acquisitioncache "github.com/jusbr/leiimporter/internal/acquisition/cache"
	"github.com/jusbr/leiimporter/internal/common"
	"github.com/jusbr/leiimporter/internal/emitter"
	"github.com/jusbr/leiimporter/internal/importerr"
	"github.com/jusbr/leiimporter/internal/parser"
	"github.com/jusbr/leiimporter/internal/report"
	"github.com/jusbr/leiimporter/internal/storage/badger"
	"github.com/ternarybob/arbor"
)

// cliArgs is validated as a whole via go-playground/validator before the
// pipeline runs, the same way the teacher validates request schemas.
// At least one of URN, Lei (an alias resolved through the alias table), or
// PlanaltoHTML (a local-file bypass) must be supplied (spec.md §6).
type cliArgs struct {
	URN          string `validate:"required_without_all=Lei PlanaltoHTML"`
	Lei          string `validate:"required_without_all=URN PlanaltoHTML"`
	Output       string
	PlanaltoHTML string
	ConfigPath   string
	TextParser   bool
}

func main() {
	common.InstallCrashHandler("./logs")
	defer common.RecoverWithCrashFile()
	code := run()
	os.Exit(code)
}

func run() int {
	urn := flag.String("urn", "", "canonical URN to import")
	lei := flag.String("lei", "", "short alias resolved to a URN via the configured alias table")
	output := flag.String("o", "", "output path for the emitted JSON document")
	planaltoHTML := flag.String("planalto-html", "", "path to a local Planalto HTML file, bypassing acquisition")
	configPath := flag.String("config", "", "path to a TOML configuration file")
	textParser := flag.Bool("text-parser", false, "force the text parser ahead of the tag parser")
	flag.Parse()

	args := cliArgs{
		URN:          *urn,
		Lei:          *lei,
		Output:       *output,
		PlanaltoHTML: *planaltoHTML,
		ConfigPath:   *configPath,
		TextParser:   *textParser,
	}
	if err := validator.New().Struct(args); err != nil {
		fmt.Fprintf(os.Stderr, "invalid arguments: %v\n", err)
		return 1
	}

	config, err := common.LoadFromFiles(args.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}
	common.ApplyFlagOverrides(config, args.Output, args.TextParser)

	logger := common.SetupLogger(config)
	defer common.Stop()

	if _, warnings, err := common.ValidateBaseURL(config.Acquisition.BaseURL, logger); err != nil {
		fmt.Fprintf(os.Stderr, "invalid acquisition base URL: %v\n", err)
		return 1
	} else {
		for _, w := range warnings {
			common.PrintWarning(w)
		}
	}

	common.PrintBanner(config, logger)

	if err := importAndEmit(args, config, logger); err != nil {
		common.PrintError(err.Error())
		return 1
	}
	common.PrintSuccess(fmt.Sprintf("wrote %s", config.Output.DefaultPath))
	return 0
}

func importAndEmit(args cliArgs, config *common.Config, logger arbor.ILogger) error {
	ctx := context.Background()

	acquired, err := acquire(ctx, args, config, logger)
	if err != nil {
		return fmt.Errorf("acquisition failed: %w", err)
	}

	kind := "json"
	if acquired.Kind == acquisition.KindHTML {
		kind = "html"
	}

	opts := parser.Options{ForceTextParser: config.Parser.ForceTextParser}
	tree, err := parser.SelectAndParse(kind, acquired.Payload, opts, logger)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	lawURN := acquired.URN
	if lawURN == "" {
		lawURN = args.URN
	}
	result := emitter.Emit(lawURN, "", tree.Elements, tree.Structure)

	data, err := json.MarshalIndent(result.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}
	outputPath := config.Output.DefaultPath
	if err := writeAtomic(outputPath, data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	report.Print(result.Document, outputPath, result.Mismatches, logger)
	return nil
}

// acquire resolves the input to an Acquired payload: local HTML takes
// priority (no network involved), then URN/alias resolution against the
// acquisition endpoints (spec.md §4.3, §6).
func acquire(ctx context.Context, args cliArgs, config *common.Config, logger arbor.ILogger) (acquisition.Acquired, error) {
	urn, err := resolveURN(args, config, logger)
	if err != nil {
		return acquisition.Acquired{}, err
	}

	if args.PlanaltoHTML != "" {
		data, err := os.ReadFile(args.PlanaltoHTML)
		if err != nil {
			return acquisition.Acquired{}, fmt.Errorf("%w: reading local HTML file: %v", importerr.ErrNotFound, err)
		}
		return acquisition.FromLocalHTML(data, urn), nil
	}

	var cache acquisition.Cache
	if config.Cache.Enabled {
		db, err := badger.NewBadgerDB(logger, &config.Cache)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to open acquisition cache, continuing without it")
		} else {
			defer db.Close()
			cache = acquisitioncache.New(badger.NewCacheStorage(db, logger))
		}
	}

	client := acquisition.New(&config.Acquisition, logger, cache)
	return client.Fetch(ctx, urn)
}

// resolveURN returns the canonical URN to import: args.URN verbatim when
// given, otherwise args.Lei resolved through the configured alias table
// (spec.md §1 "selection-by-alias lookup table, treated as external
// configuration").
func resolveURN(args cliArgs, config *common.Config, logger arbor.ILogger) (string, error) {
	if args.URN != "" {
		return args.URN, nil
	}
	if args.Lei == "" {
		return "", nil
	}
	table, err := acquisition.LoadAliasTable(config.Alias.File)
	if err != nil {
		return "", fmt.Errorf("%w: loading alias table: %v", importerr.ErrNotFound, err)
	}
	resolved, ok := table.Resolve(args.Lei)
	if !ok {
		return "", fmt.Errorf("%w: alias %q not found in alias table", importerr.ErrNotFound, args.Lei)
	}
	logger.Debug().Str("alias", args.Lei).Str("urn", resolved).Msg("resolved alias to URN")
	return resolved, nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
