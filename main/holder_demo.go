package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/samber/lo"
	"github.com/urfave/cli"

	"github.com/mongodb-labs/holder"
)

const (
	runIDFlag     = "run-id"
	uriFlag       = "uri"
	envPrefixFlag = "env-prefix"
	noDefaultFlag = "no-default"
	debugFlag     = "debug"

	defaultURI = "mongodb://localhost:27017"
)

// holder-demo resolves a couple of settings through flag → environment →
// default fallback chains, logging which candidates actually ran. It
// exists to show the library in motion, not to do anything useful.
func main() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	app := &cli.App{
		Name:  "holder-demo",
		Usage: "resolve settings through fallback chains",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  runIDFlag,
				Usage: "explicit run `ID`",
			},
			cli.StringFlag{
				Name:  uriFlag,
				Usage: "server `URI`",
			},
			cli.StringFlag{
				Name:  envPrefixFlag,
				Value: "HOLDER_DEMO",
				Usage: "`prefix` for environment-variable fallbacks",
			},
			cli.BoolFlag{
				Name:  noDefaultFlag,
				Usage: "drop the built-in URI default (demonstrates the undefined-value failure)",
			},
			cli.BoolFlag{
				Name:  debugFlag,
				Usage: "turn on debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Stack().Msg("Fatal error")
	}
}

func run(cCtx *cli.Context) error {
	if cCtx.Bool(debugFlag) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	envPrefix := cCtx.String(envPrefixFlag)

	runID, err := resolveRunID(cCtx, envPrefix)
	if err != nil {
		return err
	}

	uri, err := resolveURI(cCtx, envPrefix)
	if err != nil {
		return err
	}

	log.Info().
		Str("runID", runID).
		Str("uri", uri).
		Msg("Resolved settings.")

	return nil
}

// resolveRunID takes the first non-empty of: the --run-id flag, the
// $<prefix>_RUN_ID environment variable, and a freshly generated UUID.
// The UUID supplier only runs when both earlier candidates are empty.
func resolveRunID(cCtx *cli.Context, envPrefix string) (string, error) {
	h := holder.New[string]()

	ok := h.SetFirstFrom(
		func() string { return cCtx.String(runIDFlag) },
		envLookup(envPrefix+"_RUN_ID"),
		func() string {
			log.Debug().Msg("No run ID given; generating one.")
			return uuid.NewString()
		},
	)

	runID, err := h.Resolve(ok)
	if err != nil {
		// Unreachable while the UUID fallback is in the chain.
		return "", errors.Wrap(err, "resolving run ID")
	}

	log.Debug().
		Str("runID", runID).
		Str("source", lo.Ternary(cCtx.String(runIDFlag) != "", "flag", "fallback")).
		Msg("Resolved run ID.")

	return runID, nil
}

// resolveURI shows the boolean-OR chaining style: each try-set reports
// whether it landed a non-empty value, and || short-circuits the rest.
func resolveURI(cCtx *cli.Context, envPrefix string) (string, error) {
	h := holder.New[string]()

	ok := h.Set(cCtx.String(uriFlag)) ||
		h.SetFrom(envLookup(envPrefix+"_URI")) ||
		(!cCtx.Bool(noDefaultFlag) && h.Set(defaultURI))

	uri, err := h.Resolve(ok)
	if err != nil {
		return "", errors.Wrapf(
			err,
			"resolving server URI (set --%s or %s_URI)",
			uriFlag,
			envPrefix,
		)
	}

	return uri, nil
}

func envLookup(name string) func() string {
	return func() string {
		val := os.Getenv(name)

		log.Debug().
			Str("variable", name).
			Bool("found", val != "").
			Msg("Checked environment.")

		return val
	}
}
