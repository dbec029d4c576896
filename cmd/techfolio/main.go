package main

import (
	"context"
	"fmt"
	"log"

	"github.com/kamanbo/techfolio/internal/client/cli"
	"github.com/kamanbo/techfolio/internal/client/config"
)

// Set via -ldflags "-X main.buildVersion=... -X main.buildDate=...".
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	fmt.Printf("techfolio %s (built %s)\n", buildVersion, buildDate)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
