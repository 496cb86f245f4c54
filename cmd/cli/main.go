package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"MonthlyMasti/internal/cli"
	"MonthlyMasti/pkg/logger"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8888", "server base URL")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	app := cli.NewApp(*serverURL)
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
