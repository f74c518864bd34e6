package gemini

import (
	"context"
	"sync"

	"github.com/studykit/studykit/internal/config"
	"github.com/studykit/studykit/internal/pipeline/llm"
	"github.com/studykit/studykit/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client   *genai.Client
	resolver *llm.Resolver
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	client := &llmClient{client: c}
	client.resolver = llm.NewResolver(config.GeminiModelCandidates, client)
	geminiClient = client
	logger.Info("Gemini client created")
	go closeClient(ctx, geminiClient)
}

// Probe validates one candidate model with a trivial call.
func (c *llmClient) Probe(ctx context.Context, model string) error {
	_, err := c.client.Models.GenerateContent(ctx, model, genai.Text(config.ModelProbePrompt), nil)
	return err
}

func (c *llmClient) Generate(ctx context.Context, prompt string, mediaURL string) (string, llm.Usage, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	model, err := c.resolver.Resolve(ctx)
	if err != nil {
		return "", llm.Usage{}, err
	}

	parts := []*genai.Part{{Text: prompt}}
	if mediaURL != "" {
		// Multimodal path: the model reads the video itself, no transcript
		// extraction on our side.
		parts = append(parts, &genai.Part{
			FileData: &genai.FileData{FileURI: mediaURL, MIMEType: "video/*"},
		})
	}
	contents := []*genai.Content{{Parts: parts, Role: genai.RoleUser}}

	temperature := config.ModelTemperature
	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: config.SystemInstruction}},
		},
		Temperature: &temperature,
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, contentConfig)
	if err != nil {
		log.Error("Gemini generation failed", "model", model, "error", err)
		return "", llm.Usage{}, err
	}

	var usage llm.Usage
	if result.UsageMetadata != nil {
		usage.InputTokens = result.UsageMetadata.PromptTokenCount
		usage.OutputTokens = result.UsageMetadata.CandidatesTokenCount
	}
	return result.Text(), usage, nil
}

func closeClient(ctx context.Context, c *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	c.client = nil
}
