package main

import (
	"fmt"
	"log"

	"github.com/DREXATROLL/muzrent-pro/internal/app"
	"github.com/DREXATROLL/muzrent-pro/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	application, err := app.New(config.MustLoad())
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = application.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	return nil
}
