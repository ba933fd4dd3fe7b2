// Command ingest runs one ingestion pass: for every category it fetches
// current headlines, extracts and translates each article and writes the
// records to the store. It is meant to run on a schedule (cron or similar),
// never concurrently with itself.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"news-ko-backend/config"
	"news-ko-backend/services"
	"news-ko-backend/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("load config:", err)
	}
	if cfg.NewsAPI.APIKey == "" {
		log.Fatal("NEWS_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()
	st, err := store.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	if err != nil {
		log.Fatal("connect store:", err)
	}
	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()
		if err := st.Close(closeCtx); err != nil {
			log.Println("store close:", err)
		}
	}()
	if err := st.EnsureIndexes(connectCtx); err != nil {
		log.Fatal("ensure indexes:", err)
	}

	job := services.NewIngestJob(
		services.NewNewsAPIClient(cfg.NewsAPI.BaseURL, cfg.NewsAPI.APIKey, cfg.NewsAPI.PageSize),
		services.NewReadabilityExtractor(),
		services.NewHTTPTranslator(cfg.Translator.URL, cfg.Translator.APIKey),
		st,
		time.Second,
	)

	start := time.Now()
	job.Run(ctx)
	log.Printf("ingestion finished in %s", time.Since(start).Round(time.Millisecond))
}
