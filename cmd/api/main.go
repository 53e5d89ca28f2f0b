package main

import (
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/config"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
	httpapi "github.com/denisok6893-rgb/flip-deal-scoring/internal/http"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/scoring"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/storage"
)

func main() {
	cfg := config.NewConfig()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		logger.Fatalf("ensure schema: %v", err)
	}

	seedDeals(logger, store, cfg.SeedPath)

	srv := httpapi.NewServer(logger, store)
	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.WithField("address", cfg.Address).Info("API listening")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}

// seedDeals loads the optional seed file into an empty store. Scores are
// recomputed at load time, so the file only carries inputs.
func seedDeals(logger *logrus.Logger, store *storage.SQLiteStore, path string) {
	n, err := store.CountDeals()
	if err != nil {
		logger.Fatalf("count deals: %v", err)
	}
	if n > 0 {
		return
	}
	if _, err := os.Stat(path); err != nil {
		logger.WithField("path", path).Debug("no seed deals file")
		return
	}

	seeds, err := storage.LoadSeedDealsFromFile(path)
	if err != nil {
		logger.WithError(err).Warn("skip seed deals")
		return
	}

	now := time.Now().UTC()
	deals := make([]domain.SavedDeal, 0, len(seeds))
	for _, s := range seeds {
		res := scoring.Score(s.Input)
		if res == nil {
			logger.WithField("id", s.ID).Warn("skip unscoreable seed deal")
			continue
		}
		deals = append(deals, domain.SavedDeal{
			ID:        s.ID,
			CreatedAt: now,
			Input:     s.Input,
			Result:    *res,
		})
	}

	if err := store.UpsertMany(deals); err != nil {
		logger.WithError(err).Warn("seed deals")
		return
	}
	logger.WithField("count", len(deals)).Info("seeded deals")
}
