// Command server runs the Stash HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/stash-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
