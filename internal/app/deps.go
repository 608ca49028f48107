package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"ask-gateway/internal/completion"
	"ask-gateway/internal/config"
	"ask-gateway/internal/llm"
	"ask-gateway/internal/logger"
)

// Provider modes accepted in LLM_PROVIDER.
const (
	ProviderAuto   = "auto"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// Deps bundles runtime dependencies. Everything in it is read-only after Build.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Adapter *completion.Adapter
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	return BuildWith(cfg, logger.New(cfg.LogLevel))
}

// BuildWith assembles Deps from an already loaded config.
func BuildWith(cfg config.Config, log *slog.Logger) (Deps, error) {
	client, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	return Deps{
		Config:  cfg,
		Log:     log,
		Adapter: completion.New(client, log),
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case ProviderAuto, "":
		if cfg.OpenAIKey == "" {
			log.Warn("OPENAI_API_KEY not set; using mock responses")
			return llm.NewOfflineClient(), nil
		}
		return buildOpenAI(cfg, log)
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		return buildOpenAI(cfg, log)
	case ProviderMock:
		log.Info("using mock LLM client")
		return llm.NewOfflineClient(), nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: auto, openai, mock)", cfg.LLMProvider)
	}
}

func buildOpenAI(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	var opts []option.RequestOption
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	log.Info("using OpenAI LLM client", "model", client.Model())
	return client, nil
}
