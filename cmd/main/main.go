package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-watch/src/advisor"
	"market-watch/src/config"
	"market-watch/src/dashboard"
	datasource "market-watch/src/data_source"
	"market-watch/src/data_source/sim"
	"market-watch/src/data_source/yahoo"
	"market-watch/src/helpers"
	"market-watch/src/interfaces"
	"market-watch/src/logger"
	"market-watch/src/market"
	"market-watch/src/network"
	"market-watch/src/news"
	"market-watch/src/provider"
	"market-watch/src/server"
	"market-watch/src/storage"
	"market-watch/src/utils"
)

// -----------------------------------------------------------------------------

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file (optional)")
	country := flag.String("country", "", "market country code override (e.g. US, GB, JP)")
	flag.StringVar(country, "c", *country, "shorthand for -country")
	once := flag.Bool("once", false, "render one snapshot and exit")
	serve := flag.Bool("serve", false, "expose the dashboard server (REST + WebSocket)")
	simOnly := flag.Bool("sim", false, "use simulated quotes only, no network")
	flag.Parse()

	// Load config: file when given, env-backed defaults otherwise
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.NewConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)

	// 1. Quote cache
	var cache interfaces.IQuoteCache
	switch cfg.Cache.Backend {
	case "postgres":
		cache, err = storage.NewPostgresQuoteCache(cfg.MConfig, appLogger)
	default:
		cache, err = storage.NewSQLiteQuoteCache(cfg.MConfig, appLogger)
	}
	if err != nil {
		appLogger.Critical("Failed to init quote cache: %v", err)
	}
	if err := cache.Initialize(); err != nil {
		appLogger.Critical("Failed to open quote cache: %v", err)
	}
	defer cache.Close()

	// 2. Quote sources: cached Yahoo first, simulation as the safety net
	netMgr := network.NewManager(cfg.MConfig, appLogger)

	var sources []interfaces.IQuoteSource
	if !*simOnly {
		yahooSource := yahoo.NewQuoteSource(cfg.MConfig, netMgr)
		sources = append(sources, datasource.NewCachedSource(yahooSource, cache, appLogger))
	}
	sources = append(sources, sim.NewQuoteSource(cfg.LogLevel))
	quotes := datasource.NewSourceChain(appLogger, sources...)

	// 3. Market resolution
	catalog := market.NewMarketCatalog()
	var regionSources []interfaces.IRegionSource
	for _, name := range cfg.Market.Detection {
		switch name {
		case "env":
			regionSources = append(regionSources, market.NewEnvRegionSource(os.Getenv))
		case "geoip":
			regionSources = append(regionSources, market.NewGeoRegionSource(netMgr, appLogger))
		default:
			appLogger.Warning("Unknown detection source %q, skipping", name)
		}
	}
	detector := market.NewCountryDetector(catalog, regionSources, cfg.Market.DefaultCountry, appLogger)

	// 4. Advisor + news + provider
	engine := advisor.NewEngine(cfg.Advisor)
	newsSource := news.NewRealisticNewsSource(time.Now().UnixNano())
	dataProvider := provider.NewMarketDataProvider(
		detector, quotes, newsSource, engine, appLogger, cfg.Market.ExtraSymbols)

	// Country precedence: flag > config
	override := *country
	if override == "" {
		override = cfg.Market.Country
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5. First summary, also validates the override before the loop starts
	summary, err := dataProvider.GetMarketSummary(ctx, override)
	if err != nil {
		var unsupported *helpers.UnsupportedMarketError
		if errors.As(err, &unsupported) {
			fmt.Fprintf(os.Stderr, "%v\n", unsupported)
			os.Exit(2)
		}
		appLogger.Critical("Failed to fetch market data: %v", err)
	}

	profile, _ := detector.Resolve(override)
	renderer := dashboard.NewRenderer(cfg.Dashboard.Color, utils.ForProfile(profile))

	if *once {
		fmt.Print(renderer.Render(summary))
		return
	}

	fmt.Print(renderer.RenderStartup(summary, *simOnly))

	// 6. Optional dashboard server
	var exchanger interfaces.IDataExchanger
	if *serve || cfg.Server.Enabled {
		srv := server.NewDashboardServer(cfg.MConfig, catalog, appLogger)
		exchanger = srv
		go func() {
			if err := srv.Start(); err != nil {
				appLogger.Error("Dashboard server failed: %v", err)
			}
		}()
		srv.Broadcast(summary)
	}

	// 7. Refresh loop
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	interval := time.Duration(cfg.Dashboard.RefreshIntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fmt.Print(renderer.Render(summary))

	for {
		select {
		case <-ticker.C:
			fresh, err := dataProvider.GetMarketSummary(ctx, override)
			if err != nil {
				// Keep the last good frame on screen and retry next tick
				appLogger.Warning("Refresh failed: %v", err)
				continue
			}
			summary = fresh
			fmt.Print(renderer.Render(summary))
			if exchanger != nil {
				exchanger.Broadcast(summary)
			}

		case <-quit:
			appLogger.Info("Shutting down...")
			cancel()
			if exchanger != nil {
				_ = exchanger.Stop()
			}
			fmt.Printf("\n%s Market Watch stopped\n", summary.Country)
			return
		}
	}
}
