package main

import (
	"os"
	"strconv"

	"github.com/drakos74/line-fit/infra/config"
	"github.com/drakos74/line-fit/internal/concurrent"
	"github.com/drakos74/line-fit/internal/metrics"
	"github.com/drakos74/line-fit/internal/server"
	"github.com/drakos74/line-fit/internal/storage"
	json_storage "github.com/drakos74/line-fit/internal/storage/file/json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Config is the service configuration document.
type Config struct {
	Port        int     `json:"port"`
	MetricsPort int     `json:"metrics_port"`
	StoreDir    string  `json:"store_dir"`
	Confidence  float64 `json:"confidence"`
	Debug       bool    `json:"debug"`
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	var cfg Config
	config.MustLoad("server", &cfg)

	if port, ok := intEnv("FIT_PORT"); ok {
		cfg.Port = port
	}
	if port, ok := intEnv("FIT_METRICS_PORT"); ok {
		cfg.MetricsPort = port
	}
	if dir := os.Getenv("FIT_STORE_DIR"); dir != "" {
		cfg.StoreDir = dir
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	storage.DefaultDir = cfg.StoreDir

	concurrent.Async(func() {
		metrics.Serve(cfg.MetricsPort)
	})

	svc, err := newService(json_storage.BlobShard(storage.FitsDir), json_storage.SnapshotShard(), cfg.Confidence)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create service")
	}

	srv := server.NewServer("fit-api", cfg.Port).
		Add(server.Live()).
		Add(svc.Routes()...)
	if cfg.Debug {
		srv.Debug()
	}

	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func intEnv(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid env override")
		return 0, false
	}
	return i, true
}
