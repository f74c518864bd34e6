package openaillm

import (
	"context"
	"errors"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/pipeline/llm"
	"github.com/studykit/studykit/pkg/logger_i"
)

// Alternate inference backend, selected with LLM_PROVIDER=openai. Text only.

type llmClient struct {
	client   openai.Client
	resolver *llm.Resolver
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

func GetOpenAIClient(apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		if apikey == "" {
			logger.Error("OpenAI api key is empty")
			return
		}
		client := &llmClient{client: openai.NewClient(option.WithAPIKey(apikey))}
		client.resolver = llm.NewResolver(config.OpenAIModelCandidates, client)
		openaiClient = client
		logger.Info("OpenAI client created")
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func (c *llmClient) Probe(ctx context.Context, model string) error {
	_, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(config.ModelProbePrompt),
		},
		Model: openai.ChatModel(model),
	})
	return err
}

func (c *llmClient) Generate(ctx context.Context, prompt string, mediaURL string) (string, llm.Usage, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	if mediaURL != "" {
		return "", llm.Usage{}, errors.New("openai provider does not take media URLs")
	}

	model, err := c.resolver.Resolve(ctx)
	if err != nil {
		return "", llm.Usage{}, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(config.SystemInstruction),
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(model),
	})
	if err != nil {
		log.Error("OpenAI generation failed", "model", model, "error", err)
		return "", llm.Usage{}, err
	}
	if len(resp.Choices) == 0 {
		return "", llm.Usage{}, errors.New("openai returned no choices")
	}

	usage := llm.Usage{
		InputTokens:  int32(resp.Usage.PromptTokens),
		OutputTokens: int32(resp.Usage.CompletionTokens),
	}
	return resp.Choices[0].Message.Content, usage, nil
}
