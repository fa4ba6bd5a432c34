package llm

import "context"

// Provider is the core abstraction for model interaction.
// A Provider is resolved once per topic (from the topic's configured model
// id) and reused for every segmentation, lesson, test and grading call on
// that topic, so a topic keeps a consistent voice and rubric.
type Provider interface {
	// GenerateText sends a prompt to the model and returns its reply
	// normalized to a single string. An empty reply is an error
	// (*ErrEmptyReply), never an empty string.
	GenerateText(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the backend model identifier this provider is
	// configured to use.
	ModelID() string
}

// ImageProvider generates an image and returns a URL to it.
// Only the OpenAI-compatible backends support image generation; image
// requests are routed to a dedicated ImageProvider rather than the
// topic's text provider.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	// Optional; the pipeline mostly encodes instructions in the prompt.
	System string

	// Prompt is the user message. The pipeline is single-turn throughout:
	// every call carries its full context in the prompt.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	// Zero means the backend default.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the generated output, normalized to a single string
	// regardless of backend reply shape.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
