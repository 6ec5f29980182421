//go:build js && wasm

// Command wasm is the client bundle loaded by public/assets/js/boot.js.
package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trenchsniffer.io/web/internal/client"
	"trenchsniffer.io/web/internal/dom/browser"
)

func main() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	// boot.js sets TRENCH_WEB_DEV when the page body carries data-dev.
	if os.Getenv("TRENCH_WEB_DEV") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	doc := browser.NewDocument()
	win := browser.NewWindow()
	obs := browser.NewObserver(0.15)

	app := client.New(doc, win, obs, logger.Named("client"))
	done, detach := app.Attach()
	<-done
	detach()
	obs.Close()
}
