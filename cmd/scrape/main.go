package main

import (
	"context"
	"flag"
	"time"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/pkg/logger"
	"github.com/jiamdoescs/AnnenBites/services"
)

// One-shot HUDS ingestion, intended to run from cron once a day.
func main() {
	dateFlag := flag.String("date", "", "date to scrape as YYYY-MM-DD (default today)")
	flag.Parse()

	log := logger.New("scrape")
	defer log.Sync()

	day := time.Now()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatal("invalid -date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	config.InitDB()

	svc := services.NewScraperService(config.DB, log)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := svc.ScrapeDay(ctx, day); err != nil {
		log.Fatal("scrape failed: " + err.Error())
	}
}
