package command

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"bookfinder/internal/catalog"
	"bookfinder/internal/config"
	"bookfinder/internal/logger"
)

// errReported marks failures whose message was already shown to the user
var errReported = errors.New("reported")

// env holds what every command needs once flags and config are resolved
type env struct {
	cfg    *config.Config
	log    *logrus.Logger
	closer io.Closer
	client *catalog.Client
}

// Main runs the application and exits non-zero on failure
func Main(name, version string) {
	if err := NewApp(name, version).Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// NewApp builds the CLI. Without a subcommand it starts the interactive view.
func NewApp(name, version string) *cli.App {
	e := &env{}

	app := &cli.App{
		Name:      name,
		Usage:     "Search a public book catalog by title",
		Version:   version,
		ArgsUsage: "[TITLE...]",
		Before:    e.setup,
		After:     e.teardown,
		Action:    e.browse,
		Commands:  []*cli.Command{e.searchCommand()},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Value:     config.DefaultPath(),
				EnvVars:   []string{"BOOKFINDER_CONFIG"},
				Usage:     "Path to the TOML configuration file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "catalog-url",
				EnvVars: []string{"BOOKFINDER_CATALOG_URL"},
				Usage:   "Base URL of the catalog service",
			},
			&cli.StringFlag{
				Name:    "cover-url",
				EnvVars: []string{"BOOKFINDER_COVER_URL"},
				Usage:   "Base URL of the cover image service",
			},
			&cli.StringFlag{
				Name:      "log-file",
				EnvVars:   []string{"BOOKFINDER_LOG_FILE"},
				Usage:     "Write logs to this file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"BOOKFINDER_LOG_LEVEL"},
				Usage:   "Set logging level",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Search for this title on startup",
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"BOOKFINDER_DEBUG"},
				Usage:   "Print error stack traces",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil || errors.Is(err, errReported) {
			return
		}

		if ctx.Bool("debug") {
			fmt.Fprintf(ctx.App.ErrWriter, "%+v\n", err)
		} else {
			fmt.Fprintf(ctx.App.ErrWriter, "Error: %v\n", err)
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))

	return app
}

// setup loads the config file, applies flag overrides and opens the log
func (e *env) setup(ctx *cli.Context) error {
	svc := config.NewConfigServiceAt(ctx.String("config"))
	cfg, err := svc.Load()
	if err != nil {
		return errors.Wrap(err, "could not load configuration")
	}

	// Defaults are written out on first run, before any flag overrides
	var defaults *config.Config
	if _, err := os.Stat(svc.Path()); errors.Is(err, os.ErrNotExist) {
		saved := *cfg
		defaults = &saved
	}

	overrides := map[string]*string{
		"catalog-url": &cfg.CatalogURL,
		"cover-url":   &cfg.CoverURL,
		"log-file":    &cfg.LogFile,
		"log-level":   &cfg.LogLevel,
	}
	for flag, field := range overrides {
		if ctx.IsSet(flag) {
			*field = ctx.String(flag)
		}
	}
	if err := svc.Validate(cfg); err != nil {
		return errors.WithStack(err)
	}

	log, closer, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "could not open log file")
	}

	e.cfg = cfg
	e.log = log
	e.closer = closer
	e.client = catalog.New(catalog.Options{
		CatalogURL: cfg.CatalogURL,
		CoverURL:   cfg.CoverURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout.Std(),
	}, log)

	if defaults != nil {
		if err := svc.Save(defaults); err != nil {
			log.WithError(err).Warn("could not write default configuration")
		} else {
			log.WithField("config", svc.Path()).Info("wrote default configuration")
		}
	}

	log.WithFields(logrus.Fields{
		"config":      svc.Path(),
		"catalog_url": cfg.CatalogURL,
		"page_size":   cfg.PageSize,
	}).Debug("configuration loaded")

	return nil
}

func (e *env) teardown(ctx *cli.Context) error {
	if e.closer == nil {
		return nil
	}
	err := e.closer.Close()
	e.closer = nil
	return errors.WithStack(err)
}
