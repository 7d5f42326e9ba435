package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/storefront/internal/fakestore"
	"github.com/dmitrijs2005/storefront/internal/fakestore/config"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(os.Stdout, cfg.LogLevel)

	if err := fakestore.NewApp(cfg, logger).Run(context.Background(), nil); err != nil {
		log.Fatalf("%v", err)
	}
}
