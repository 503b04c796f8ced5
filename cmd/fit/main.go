package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	linemath "github.com/drakos74/line-fit/internal/math"
	"github.com/drakos74/line-fit/internal/storage"
	json_storage "github.com/drakos74/line-fit/internal/storage/file/json"
	"github.com/drakos74/line-fit/ols"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const cliShard = "cli"

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	var (
		in         = flag.String("in", "", "snapshot json file holding the dataset")
		name       = flag.String("name", "", "dataset name, the snapshot name wins if set")
		confidence = flag.Float64("confidence", ols.DefaultConfidence, "confidence level of the intervals")
		at         = flag.String("at", "", "forecast the response at the given x")
		store      = flag.Bool("store", false, "persist the fit document")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}
	if dir := os.Getenv("FIT_STORE_DIR"); dir != "" {
		storage.DefaultDir = dir
	}

	if *in == "" {
		log.Fatal().Msg("need a snapshot file to fit, use -in")
	}

	snapshot, err := readSnapshot(*in)
	if err != nil {
		log.Fatal().Err(err).Str("file", *in).Msg("could not read snapshot")
	}
	if snapshot.Name == "" {
		snapshot.Name = *name
	}
	if snapshot.Name == "" {
		log.Fatal().Msg("need a dataset name, use -name or name the snapshot")
	}

	result, err := ols.Fit(snapshot.X, snapshot.Y, ols.WithConfidence(*confidence))
	if err != nil {
		log.Fatal().Err(err).Str("dataset", snapshot.Name).Msg("could not fit dataset")
	}

	doc := storage.NewDocument(snapshot.Name, result)
	report(doc)

	if *at != "" {
		x, err := strconv.ParseFloat(*at, 64)
		if err != nil {
			log.Fatal().Err(err).Str("at", *at).Msg("could not parse forecast point")
		}
		forecast, err := result.Forecast(x)
		if err != nil {
			log.Fatal().Err(err).Msg("could not forecast")
		}
		log.Info().
			Float64("x", forecast.X).
			Str("value", linemath.Format(forecast.Value)).
			Str("ci", fmt.Sprintf("[%s,%s]", linemath.Format(forecast.CI.Lower), linemath.Format(forecast.CI.Upper))).
			Str("pi", fmt.Sprintf("[%s,%s]", linemath.Format(forecast.PI.Lower), linemath.Format(forecast.PI.Upper))).
			Msg("forecast")
	}

	shard := storage.VoidShard()
	if *store {
		shard = json_storage.BlobShard(storage.FitsDir)
	}
	persistence, err := shard(cliShard)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create storage")
	}
	if err := persistence.Store(storage.NewKey(doc.Name, "latest"), doc); err != nil {
		log.Fatal().Err(err).Str("dataset", doc.Name).Msg("could not store document")
	}
	if *store {
		log.Info().Str("dataset", doc.Name).Str("id", doc.ID).Msg("stored fit")
	}
}

func report(doc storage.Document) {
	result := doc.Result

	slope, intercept := result.Line()
	log.Info().
		Str("dataset", doc.Name).
		Str("id", doc.ID).
		Int("n", result.N).
		Str("line", fmt.Sprintf("y = %s * x + %s",
			linemath.Format(slope),
			linemath.Format(intercept))).
		Msg("fit")

	for _, c := range []struct {
		name        string
		coefficient ols.Coefficient
	}{
		{"slope", result.Slope},
		{"intercept", result.Intercept},
	} {
		log.Info().
			Str("coefficient", c.name).
			Str("value", linemath.Format(c.coefficient.Value)).
			Str("std-err", linemath.Format(c.coefficient.StdErr)).
			Str("t", linemath.Format(c.coefficient.TStat)).
			Str("p", linemath.Format(c.coefficient.PValue)).
			Str("ci", fmt.Sprintf("[%s,%s]",
				linemath.Format(c.coefficient.CI.Lower),
				linemath.Format(c.coefficient.CI.Upper))).
			Msg("coefficient")
	}

	log.Info().
		Str("r2", linemath.Format(result.R2)).
		Str("adj-r2", linemath.Format(result.AdjR2)).
		Str("rss", linemath.Format(result.RSS)).
		Str("f", linemath.Format(result.FStat)).
		Str("f-p", linemath.Format(result.FPValue)).
		Str("aic", linemath.Format(result.AIC)).
		Str("bic", linemath.Format(result.BIC)).
		Msg("goodness of fit")

	log.Info().
		Str("durbin-watson", linemath.Format(result.Diagnostics.DurbinWatson)).
		Str("jarque-bera", linemath.Format(result.Diagnostics.JarqueBera)).
		Str("jb-p", linemath.Format(result.Diagnostics.JBPValue)).
		Msg("residual diagnostics")
}

func readSnapshot(path string) (storage.Snapshot, error) {
	var snapshot storage.Snapshot
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return snapshot, fmt.Errorf("could not read file '%s': %w", path, err)
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("could not unmarshal file '%s': %w", path, err)
	}
	return snapshot, nil
}
