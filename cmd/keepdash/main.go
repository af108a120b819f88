package main

import (
	"log"

	"github.com/MrSnakeDoc/keepdash/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ keepdash failed: %v", err)
	}
}
