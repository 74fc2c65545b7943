// Command devserver runs an in-memory implementation of the Pesca API for
// local development of the moneyboy client.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/moneyboy/internal/buildinfo"
	"github.com/dmitrijs2005/moneyboy/internal/server"
	"github.com/dmitrijs2005/moneyboy/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(context.Background())
}
