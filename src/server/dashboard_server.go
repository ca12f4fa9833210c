package server

import (
	"fmt"
	"strings"
	"sync"

	"market-watch/src/logger"
	"market-watch/src/market"
	"market-watch/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// DashboardServer
// -----------------------------------------------------------------------------

// DashboardServer exposes the live summary over REST and WebSocket so a
// browser dashboard can mirror the terminal view. It implements
// interfaces.IDataExchanger: the refresh loop pushes each new summary in via
// Broadcast and the hub fans it out to connected clients.
type DashboardServer struct {
	Config  *models.MConfig
	Catalog *market.MarketCatalog
	Logger  *logger.Logger
	engine  *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MMarketSummary
	register   chan *Client
	unregister chan *Client

	// Last pushed summary, served to REST callers and late WS joiners
	latestSummary *models.MMarketSummary
	stateMutex    sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewDashboardServer(cfg *models.MConfig, catalog *market.MarketCatalog, log *logger.Logger) *DashboardServer {
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &DashboardServer{
		Config:  cfg,
		Catalog: catalog,
		Logger:  log,
		engine:  gin.Default(),
		clients: make(map[*Client]struct{}),
		// Buffered so a refresh burst never blocks the provider loop
		broadcast:  make(chan *models.MMarketSummary, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}

	// CORS for local dashboards only
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *DashboardServer) setupRoutes() {
	s.engine.GET("/api/summary", s.getSummary)
	s.engine.GET("/api/markets", s.getMarkets)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/health", s.getHealth)

	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *DashboardServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.Info("Starting dashboard server on %s", addr)

	go s.runHub()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) Stop() error {
	close(s.broadcast)
	close(s.register)
	close(s.unregister)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *DashboardServer) getSummary(c *gin.Context) {
	s.stateMutex.RLock()
	summary := s.latestSummary
	s.stateMutex.RUnlock()

	if summary == nil {
		c.JSON(503, gin.H{"error": "no summary available yet"})
		return
	}
	c.JSON(200, summary)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getMarkets(c *gin.Context) {
	codes := s.Catalog.SupportedCodes()
	markets := make([]gin.H, 0, len(codes))
	for _, code := range codes {
		profile, _ := s.Catalog.Lookup(code)
		markets = append(markets, gin.H{
			"code":     profile.CountryCode,
			"country":  profile.CountryName,
			"currency": profile.CurrencyCode,
			"exchange": profile.ExchangeName,
			"indexes":  profile.Indexes,
		})
	}
	c.JSON(200, gin.H{"markets": markets})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getConfig(c *gin.Context) {
	c.JSON(200, gin.H{
		"default_country":          s.Config.Market.DefaultCountry,
		"refresh_interval_seconds": s.Config.Dashboard.RefreshIntervalSeconds,
		"buy_threshold_pct":        s.Config.Advisor.BuyThresholdPct,
		"sell_threshold_pct":       s.Config.Advisor.SellThresholdPct,
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := len(s.clients)
	var lastUpdate int64
	if s.latestSummary != nil {
		lastUpdate = s.latestSummary.GeneratedAt.Unix()
	}
	s.stateMutex.RUnlock()

	c.JSON(200, gin.H{
		"status":        "ok",
		"connections":   connections,
		"latest_update": lastUpdate,
	})
}
