package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/forge-api/internal/config"
	descriptorengine "github.com/KirkDiggler/forge-api/internal/engine/descriptor"
	apiv1alpha1 "github.com/KirkDiggler/forge-api/internal/handlers/api/v1alpha1"
	descriptororc "github.com/KirkDiggler/forge-api/internal/orchestrators/descriptor"
	diceorc "github.com/KirkDiggler/forge-api/internal/orchestrators/dice"
	itemorc "github.com/KirkDiggler/forge-api/internal/orchestrators/item"
	monsterorc "github.com/KirkDiggler/forge-api/internal/orchestrators/monster"
	"github.com/KirkDiggler/forge-api/internal/pkg/clock"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/forge-api/internal/redis"
	descriptorrepo "github.com/KirkDiggler/forge-api/internal/repositories/descriptor"
	dicesessionrepo "github.com/KirkDiggler/forge-api/internal/repositories/dice_session"
	itemrepo "github.com/KirkDiggler/forge-api/internal/repositories/item"
	monsterrepo "github.com/KirkDiggler/forge-api/internal/repositories/monster"
)

var httpAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the forge API server with all configured routes.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address (overrides FORGE_HTTP_ADDR)")
}

// repositories bundles the persistence layer for commands that need it
type repositories struct {
	items        itemrepo.Repository
	monsters     monsterrepo.Repository
	descriptors  descriptorrepo.Repository
	diceSessions dicesessionrepo.Repository
}

func buildRepositories(cfg *config.Config) (*repositories, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	clk := clock.New()

	items, err := itemrepo.NewRedis(&itemrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create item repository: %w", err)
	}

	monsters, err := monsterrepo.NewRedis(&monsterrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create monster repository: %w", err)
	}

	descriptors, err := descriptorrepo.NewRedis(&descriptorrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create descriptor repository: %w", err)
	}

	diceSessions, err := dicesessionrepo.NewRedisRepository(&dicesessionrepo.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice session repository: %w", err)
	}

	return &repositories{
		items:        items,
		monsters:     monsters,
		descriptors:  descriptors,
		diceSessions: diceSessions,
	}, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		return err
	}

	renderer := descriptorengine.New()

	itemService, err := itemorc.NewOrchestrator(&itemorc.Config{
		ItemRepo:       repos.items,
		DescriptorRepo: repos.descriptors,
		Engine:         renderer,
		IDGenerator:    idgen.NewPrefixed("item"),
	})
	if err != nil {
		return fmt.Errorf("failed to create item orchestrator: %w", err)
	}

	monsterService, err := monsterorc.NewOrchestrator(&monsterorc.Config{
		MonsterRepo:    repos.monsters,
		DescriptorRepo: repos.descriptors,
		Engine:         renderer,
		IDGenerator:    idgen.NewPrefixed("monster"),
	})
	if err != nil {
		return fmt.Errorf("failed to create monster orchestrator: %w", err)
	}

	descriptorService, err := descriptororc.NewOrchestrator(&descriptororc.Config{
		DescriptorRepo: repos.descriptors,
		Engine:         renderer,
		IDGenerator:    idgen.NewPrefixed("desc"),
	})
	if err != nil {
		return fmt.Errorf("failed to create descriptor orchestrator: %w", err)
	}

	diceService, err := diceorc.NewOrchestrator(&diceorc.Config{
		DiceSessionRepo: repos.diceSessions,
		ItemRepo:        repos.items,
		IDGenerator:     idgen.NewPrefixed("roll"),
	})
	if err != nil {
		return fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	itemHandler, err := apiv1alpha1.NewItemHandler(&apiv1alpha1.ItemHandlerConfig{ItemService: itemService})
	if err != nil {
		return fmt.Errorf("failed to create item handler: %w", err)
	}
	monsterHandler, err := apiv1alpha1.NewMonsterHandler(&apiv1alpha1.MonsterHandlerConfig{MonsterService: monsterService})
	if err != nil {
		return fmt.Errorf("failed to create monster handler: %w", err)
	}
	descriptorHandler, err := apiv1alpha1.NewDescriptorHandler(&apiv1alpha1.DescriptorHandlerConfig{DescriptorService: descriptorService})
	if err != nil {
		return fmt.Errorf("failed to create descriptor handler: %w", err)
	}
	diceHandler, err := apiv1alpha1.NewDiceHandler(&apiv1alpha1.DiceHandlerConfig{DiceService: diceService})
	if err != nil {
		return fmt.Errorf("failed to create dice handler: %w", err)
	}

	mux := http.NewServeMux()
	itemHandler.Register(mux)
	monsterHandler.Register(mux)
	descriptorHandler.Register(mux)
	diceHandler.Register(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Forge API listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		slog.Info("Server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
