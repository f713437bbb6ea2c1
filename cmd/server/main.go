package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/server"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
)

var version = "dev"

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, os.Stdout)

	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("taskboard server %s", version)
	app.Run(ctx)

}
