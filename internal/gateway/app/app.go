// Package app assembles the gateway: config, completion client, chat
// session, diagram data, and the HTTP server.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"designpro/internal/advisor"
	"designpro/internal/arch"
	"designpro/internal/arch/layout"
	"designpro/internal/chat"
	"designpro/internal/export"
	"designpro/internal/gateway/config"
	"designpro/internal/gateway/handler"
	"designpro/internal/gateway/server"
	"designpro/internal/llmclient"
)

type App struct {
	server *server.Server
	llm    llmclient.Client
}

func New(ctx context.Context, args []string) (*App, error) {
	cfg, err := config.Load(args)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	llm := buildLLMClient(ctx, cfg)
	session := chat.NewSession(advisor.New(llm))

	var exports *export.Store
	if cfg.Export.Enabled {
		exports, err = export.NewStore(export.S3Config{
			Endpoint:  cfg.Export.Endpoint,
			Region:    cfg.Export.Region,
			AccessKey: cfg.Export.AccessKey,
			SecretKey: cfg.Export.SecretKey,
			Bucket:    cfg.Export.Bucket,
			Prefix:    cfg.Export.Prefix,
			UseSSL:    cfg.Export.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init export store: %w", err)
		}
	}

	h, err := handler.New(session, arch.SystemNodes(), arch.SystemConnections(), layout.Default(), exports)
	if err != nil {
		return nil, fmt.Errorf("init handler: %w", err)
	}

	return &App{
		server: server.New(cfg.Port, handler.NewMux(h)),
		llm:    llm,
	}, nil
}

// buildLLMClient prefers Gemini and falls back to the offline fake when no
// key is configured or the client cannot be constructed, so the rest of
// the stack stays usable without credentials.
func buildLLMClient(ctx context.Context, cfg *config.Config) llmclient.Client {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		log.Printf("GEMINI_API_KEY not set; using offline fake client")
		return llmclient.NewFakeClient()
	}
	cli, err := llmclient.NewGeminiClient(ctx, apiKey, cfg.Model)
	if err != nil {
		log.Printf("gemini client init failed (%v); using offline fake client", err)
		return llmclient.NewFakeClient()
	}
	return cli
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.llm.Close(); err == nil {
		err = cerr
	}
	return err
}
