// storage-get prints a json document of the monthly cloud storage.
//
//	storage-get -config config.yaml -website 1 -endpoint contents -id 2
//	storage-get -url http://cdn.test -endpoint /marketplaces/1/profiles -id 2 -dry-run
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	storage "github.com/monthly-cloud/storage-go"
)

func main() {
	var (
		configPath  = flag.String("config", "", "yaml config file")
		storageURL  = flag.String("url", "", "storage url, overrides the config and "+storage.StorageURLEnv)
		endpoint    = flag.String("endpoint", "", "endpoint, a leading / skips the website prefix")
		id          = flag.Int64("id", 0, "resource id")
		locale      = flag.String("locale", "", "locale used when no id is given")
		website     = flag.Int64("website", 0, "website id")
		marketplace = flag.Int64("marketplace", 0, "marketplace id")
		list        = flag.Int64("list", 0, "list id")
		dryRun      = flag.Bool("dry-run", false, "print the url without fetching it")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := storage.Config{}
	if *configPath != "" {
		var err error
		if cfg, err = storage.LoadConfig(*configPath); err != nil {
			logger.Error("load config", "err", err)
			os.Exit(1)
		}
	}

	s, err := storage.NewFromConfig(cfg, storage.WithLogger(logger))
	if err != nil {
		logger.Error("init storage", "err", err)
		os.Exit(1)
	}
	if *storageURL != "" {
		s.SetStorageURL(*storageURL)
	}
	if *locale != "" {
		s.SetLocale(*locale)
	}
	if *website != 0 {
		s.SetWebsite(*website)
	}
	if *marketplace != 0 {
		s.SetMarketplace(*marketplace)
	}
	if *list != 0 {
		s.SetList(*list)
	}
	s.SetEndpoint(*endpoint).SetID(*id)

	if *dryRun {
		fmt.Println(s.BuildURL())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var doc json.RawMessage
	if err := s.Get(ctx, &doc); err != nil {
		logger.Error("get", "url", s.BuildURL(), "err", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		logger.Error("encode", "err", err)
		os.Exit(1)
	}
}
