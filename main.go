package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/auth"
	"github.com/Ebesoh-Adrian/ADForexPre/client"
	"github.com/Ebesoh-Adrian/ADForexPre/config"
	"github.com/Ebesoh-Adrian/ADForexPre/database"
	"github.com/Ebesoh-Adrian/ADForexPre/routes"
	"github.com/Ebesoh-Adrian/ADForexPre/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().AnErr("Error loading configuration: ", err)
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	auth.SecretKey = []byte(sysConfigs.Config.JwtSecret)

	_, db := database.InitMongoClient(sysConfigs)

	if sysConfigs.Config.RedisURL != "" {
		database.InitRedis(sysConfigs.Config.RedisURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	feed := service.NewMarketFeed(service.DefaultFeedConfig())
	if sysConfigs.Config.LiveRates {
		reanchorFeed(feed)
	}
	feed.Start(ctx)

	router := routes.SetupRouter(db, sysConfigs, feed)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().AnErr("Server failed to start: ", err)
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// reanchorFeed snaps the simulated baselines to current USD rates so the
// feed opens near real market levels instead of the built-in seeds.
func reanchorFeed(feed *service.MarketFeed) {
	rateClient := client.NewExchangeRateClient()
	rates, err := rateClient.FetchUsdRates([]string{
		"EUR", "GBP", "JPY", "CHF", "AUD", "CAD", "NZD", "SGD", "ZAR",
	})
	if err != nil {
		log.Warn().Err(err).Msg("live rate fetch failed, keeping seeded baselines")
		return
	}
	feed.Reanchor(rates)
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
