package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sneaker-auction/internal/auth"
	bidding "sneaker-auction/internal/biddingService"
	"sneaker-auction/internal/config"
	"sneaker-auction/internal/metrics"
	model "sneaker-auction/internal/models"
	"sneaker-auction/internal/repository"
	"sneaker-auction/internal/server"
	"sneaker-auction/internal/settlement"
	"sneaker-auction/internal/storeclient"
	handler "sneaker-auction/services/bidding/handler"
	"sneaker-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// store is everything the service needs from its backend
type store interface {
	repository.LotRepository
	repository.UserRepository
	repository.LotCreator
	repository.PrizeSink
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file (defaults are used when empty)")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"path": *configPath, "error": err.Error()})
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		utils.Fatal("invalid log level", map[string]any{"error": err.Error()})
	}
	gin.SetMode(gin.ReleaseMode)

	backend, err := newStore(cfg)
	if err != nil {
		utils.Fatal("failed to create store", map[string]any{"error": err.Error()})
	}

	m := metrics.New("sneaker_auction")
	broadcaster := bidding.NewBroadcaster(m)
	biddingSvc := bidding.NewBiddingService(backend, backend,
		bidding.WithMinIncrement(cfg.MinIncrement()),
		bidding.WithNotifier(broadcaster),
		bidding.WithLotCreator(backend, cfg.Auction.Window),
		bidding.WithMetrics(m),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sweeper *settlement.Sweeper
	if cfg.Settlement.IsEnabled() {
		sweeper = settlement.New(settlement.Config{
			Interval: cfg.Settlement.Interval,
			Timeout:  cfg.Settlement.Timeout,
		}, backend, backend, settlement.WithMetrics(m))
		if err := sweeper.Start(ctx); err != nil {
			utils.Fatal("failed to start settlement sweeper", map[string]any{"error": err.Error()})
		}
	}

	var trigger handler.SweepTrigger
	if sweeper != nil {
		trigger = sweeper
	}
	router := server.SetupRouter(handler.NewBiddingHandler(biddingSvc, broadcaster, trigger), m)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{
			"addr":       srv.Addr,
			"backend":    cfg.Store.Backend,
			"settlement": cfg.Settlement.IsEnabled(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if sweeper != nil {
		if err := sweeper.Stop(shutdownCtx); err != nil {
			utils.Warn("settlement sweeper did not stop cleanly", map[string]any{"error": err.Error()})
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
}

// newStore builds the configured backend
func newStore(cfg *config.Config) (store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		repo := repository.NewMemoryRepo()
		seedDemoData(repo, time.Now(), cfg.Auction.Window)
		return repo, nil
	case config.BackendRemote:
		opts := []storeclient.ClientOption{
			storeclient.WithTimeout(cfg.Store.Timeout),
			storeclient.WithPrizeSinkPath(cfg.Store.PrizePath),
		}
		if cfg.Store.UseAuth {
			opts = append(opts, storeclient.WithTokenStore(auth.NewFileStore(cfg.Store.TokenFile)))
		}
		return storeclient.NewClient(cfg.Store.BaseURL, opts...), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// seedDemoData adds sample lots and users to the in-memory repo
func seedDemoData(repo *repository.MemoryRepo, now time.Time, window time.Duration) {
	lots := []struct {
		title string
		image string
		price int64
	}{
		{"Nike Air Jordan 1 Retro High", "/img/sneakers/aj1.jpg", 12000},
		{"Adidas Yeezy Boost 350 V2", "/img/sneakers/yeezy350.jpg", 18000},
		{"New Balance 550 White Green", "/img/sneakers/nb550.jpg", 9000},
	}
	for _, l := range lots {
		repo.AddLot(model.NewLot(l.title, l.image, decimal.NewFromInt(l.price), now, window))
	}

	users := []model.User{
		{ID: "1", Name: "Demo Bidder", Email: "bidder@example.com", Balance: decimal.NewFromInt(50000)},
		{ID: "2", Name: "Second Bidder", Email: "second@example.com", Balance: decimal.NewFromInt(20000)},
	}
	for _, u := range users {
		repo.AddUser(u)
	}
}
