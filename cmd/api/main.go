package main

import (
	"context"
	"fmt"

	"github.com/abhishek622/interviewly/internal/anthropic"
	"github.com/abhishek622/interviewly/internal/config"
	"github.com/abhishek622/interviewly/internal/gemini"
	"github.com/abhishek622/interviewly/internal/generation"
	"github.com/abhishek622/interviewly/internal/handler"
	"github.com/abhishek622/interviewly/internal/llm"
	"github.com/abhishek622/interviewly/internal/logger"
	"github.com/abhishek622/interviewly/internal/openai"
	"github.com/abhishek622/interviewly/internal/session"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Store   *session.Store
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Env, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, %s", cfg)

	pipeline := generation.NewPipeline(newSynthesizer(ctx, &cfg.LLM, log), cfg.LLM.Timeout, log.Named("generation"))
	store := session.NewStore(pipeline, log.Named("session"))

	app := &application{
		Logger: log,
		Config: cfg,
		Store:  store,
		Handler: &handler.Handler{
			Logger:       log,
			Store:        store,
			MaxQuestions: cfg.MaxQuestions,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

// newSynthesizer returns nil when no provider can be used, which puts the
// service in fallback-only mode.
func newSynthesizer(ctx context.Context, cfg *config.LLMConfig, log *zap.Logger) generation.Synthesizer {
	sugar := log.Sugar()
	if cfg.APIKey() == "" {
		sugar.Warnw("no API key for LLM provider, serving fallback content only", "provider", cfg.Provider)
		return nil
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		sugar.Warnw("failed to create LLM client, serving fallback content only", "provider", cfg.Provider, "err", err)
		return nil
	}
	sugar.Infow("LLM client ready", "client", client.Name())
	return generation.NewLLMSynthesizer(client)
}

func newLLMClient(ctx context.Context, cfg *config.LLMConfig) (llm.Client, error) {
	opts := llm.Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.New(ctx, cfg.GeminiKey, opts)
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.OpenAIKey, opts)
	case config.ProviderGroq:
		return openai.NewGroqClient(cfg.GroqKey, opts)
	case config.ProviderAnthropic:
		return anthropic.New(cfg.AnthropicKey, opts)
	}
	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}
