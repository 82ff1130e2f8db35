// Command server runs the vocabulary backend HTTP API.
//
// Configuration comes from a YAML file (CONFIG_PATH, default ./config.yaml)
// and environment variables; see internal/config.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/aivocab-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
