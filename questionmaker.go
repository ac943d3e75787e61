package latexlearn

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Generator supplies raw question text for a topic. The text has no
// guaranteed structure; the ingestor decides whether it is usable.
type Generator interface {
	GenerateRaw(ctx context.Context, topic string) (string, error)
}

// QuestionMaker generates quiz questions with an OpenAI chat model.
type QuestionMaker struct {
	client *openai.Client
	model  string
	logger *LLMLogger
}

// NewQuestionMaker creates a question maker with an OpenAI client.
func NewQuestionMaker(apiKey string) *QuestionMaker {
	return &QuestionMaker{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4o,
	}
}

// SetModel overrides the default chat model.
func (qm *QuestionMaker) SetModel(model string) {
	qm.model = model
}

// SetLogger attaches a transcript logger for prompts and responses.
func (qm *QuestionMaker) SetLogger(logger *LLMLogger) {
	qm.logger = logger
}

// GenerateRaw asks the model for one multiple choice question about the
// given LaTeX topic and returns the raw tool-call arguments blob. The blob
// is deliberately returned unparsed: validation belongs to the ingestor.
// Transport and API failures are wrapped in ErrGenerationUnavailable.
func (qm *QuestionMaker) GenerateRaw(ctx context.Context, topic string) (string, error) {
	prompt := qm.buildPrompt(topic)

	if qm.logger != nil {
		qm.logger.LogLLMRequest("QuestionMaker", prompt)
	}

	resp, err := qm.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: qm.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an expert LaTeX tutor. Generate one high-quality multiple choice question about LaTeX notation with exactly 4 options.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Tools: []openai.Tool{
				{
					Type: openai.ToolTypeFunction,
					Function: &openai.FunctionDefinition{
						Name:        "submit_question",
						Description: "Submit the generated quiz question",
						Parameters: map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"q": map[string]interface{}{
									"type":        "string",
									"description": "The question text",
								},
								"a": map[string]interface{}{
									"type":        "string",
									"description": "The correct answer: either the option letter (A-D) or the exact answer text",
								},
								"options": map[string]interface{}{
									"type": "array",
									"items": map[string]interface{}{
										"type": "string",
									},
									"description": "Array of 4 multiple choice options, labeled A) through D)",
								},
							},
							"required": []string{"q", "a", "options"},
						},
					},
				},
			},
			ToolChoice: openai.ToolChoice{
				Type: openai.ToolTypeFunction,
				Function: openai.ToolFunction{
					Name: "submit_question",
				},
			},
		},
	)

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGenerationUnavailable)
	}

	choice := resp.Choices[0]
	if len(choice.Message.ToolCalls) == 0 {
		return "", fmt.Errorf("%w: no tool calls in response", ErrGenerationUnavailable)
	}

	toolCall := choice.Message.ToolCalls[0]
	if toolCall.Function.Name != "submit_question" {
		return "", fmt.Errorf("%w: unexpected tool call %s", ErrGenerationUnavailable, toolCall.Function.Name)
	}

	raw := toolCall.Function.Arguments

	if qm.logger != nil {
		qm.logger.LogLLMResponse("QuestionMaker", raw)
	}

	VerboseLog("Generated raw question blob for topic %q (%d bytes)", topic, len(raw))
	return raw, nil
}

func (qm *QuestionMaker) buildPrompt(topic string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Generate one multiple choice question about this LaTeX topic: %s\n\n", topic))
	sb.WriteString("Requirements:\n")
	sb.WriteString("- The question must test a concrete piece of LaTeX notation\n")
	sb.WriteString("- Provide exactly 4 options, labeled \"A) \" through \"D) \"\n")
	sb.WriteString("- Exactly one option is correct; the others should be plausible but wrong\n")
	sb.WriteString("- The answer field is the letter of the correct option\n")
	sb.WriteString("- Do not give the answer away in the question text\n")
	sb.WriteString("- Use the submit_question tool to return the question\n")

	return sb.String()
}

// GenerateAndIngest fetches one raw question for topic from g and runs it
// through the ingestor. Generation failures are returned unchanged (wrapped
// in ErrGenerationUnavailable by real generators); ingest failures come back
// as *IngestError. On any failure the bank is unchanged.
func GenerateAndIngest(ctx context.Context, g Generator, in *Ingestor, topic string) (Question, error) {
	raw, err := g.GenerateRaw(ctx, topic)
	if err != nil {
		return Question{}, err
	}
	return in.Ingest(topic, raw)
}

// NewSessionID returns a random identifier for shells that key per-user
// state on a cookie value.
func NewSessionID() string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 12)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
