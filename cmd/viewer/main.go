// Command viewer serves the interactive projection demo: a local web
// server rendering the 3D scene, its 2D camera view, and the delta
// function charts, with camera presets stored in sqlite.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lenslab-data/cvprimer/internal/db"
	"github.com/lenslab-data/cvprimer/internal/viewer"
)

func main() {
	var (
		port   = flag.Int("port", 8080, "HTTP listen port")
		dbPath = flag.String("db", "presets.db", "path to the camera preset database")
	)
	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("open preset database: %v", err)
	}
	defer database.Close()

	ws := viewer.NewWebServer(viewer.WebServerConfig{
		Address: fmt.Sprintf(":%d", *port),
		DB:      database,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("open http://localhost:%d/ for the dashboard", *port)
	if err := ws.Start(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
