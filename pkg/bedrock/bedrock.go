package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	appConfig "riftrewind/pkg/config"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const defaultMaxTokens = 1024

// Runtime is the part of the Bedrock API we consume.
type Runtime interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Client wraps the Bedrock runtime with model selection and usage tracking.
type Client struct {
	runtime Runtime
	tracker *UsageTracker
}

// ClientDeps is the dependency list for the Bedrock client.
type ClientDeps struct {
	Runtime Runtime
	Tracker *UsageTracker
}

// NewClient creates a Bedrock client from the dependency list.
func NewClient(deps *ClientDeps) *Client {
	return &Client{
		runtime: deps.Runtime,
		tracker: deps.Tracker,
	}
}

// NewRuntime builds the real Bedrock runtime from the loaded configuration.
func NewRuntime() Runtime {
	cfg := aws.Config{
		Region: appConfig.Bedrock.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				appConfig.Bedrock.AccessKey,
				appConfig.Bedrock.AccessSecret,
				"",
			),
		),
	}

	return bedrockruntime.NewFromConfig(cfg)
}

// Generation result with the model that produced it.
type Generation struct {
	Text  string
	Model string
}

// Generate runs one narrative generation for the given task.
func (c *Client) Generate(ctx context.Context, task TaskType, complexity string, prompt string) (*Generation, error) {
	modelId := SelectModel(task, complexity)

	body, err := buildRequestBody(modelId, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to build the request body: %w", err)
	}

	output, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelId),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("model invocation failed: %w", err)
	}

	text, inputTokens, outputTokens, err := parseResponseBody(modelId, output.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the model response: %w", err)
	}

	c.tracker.Track(modelId, inputTokens, outputTokens)

	return &Generation{
		Text:  text,
		Model: modelId,
	}, nil
}

// Anthropic and Nova models use different request shapes.
func buildRequestBody(modelId string, prompt string) ([]byte, error) {
	if strings.HasPrefix(modelId, "anthropic.") {
		return json.Marshal(map[string]any{
			"anthropic_version": "bedrock-2023-05-31",
			"max_tokens":        defaultMaxTokens,
			"messages": []map[string]any{
				{"role": "user", "content": prompt},
			},
		})
	}

	return json.Marshal(map[string]any{
		"messages": []map[string]any{
			{"role": "user", "content": []map[string]any{{"text": prompt}}},
		},
		"inferenceConfig": map[string]any{
			"maxTokens": defaultMaxTokens,
		},
	})
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int64 `json:"input_tokens"`
		OutputTokens int64 `json:"output_tokens"`
	} `json:"usage"`
}

type novaResponse struct {
	Output struct {
		Message struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"message"`
	} `json:"output"`
	Usage struct {
		InputTokens  int64 `json:"inputTokens"`
		OutputTokens int64 `json:"outputTokens"`
	} `json:"usage"`
}

func parseResponseBody(modelId string, body []byte) (string, int64, int64, error) {
	if strings.HasPrefix(modelId, "anthropic.") {
		var parsed anthropicResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", 0, 0, err
		}

		var builder strings.Builder
		for _, block := range parsed.Content {
			builder.WriteString(block.Text)
		}
		return builder.String(), parsed.Usage.InputTokens, parsed.Usage.OutputTokens, nil
	}

	var parsed novaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", 0, 0, err
	}

	var builder strings.Builder
	for _, block := range parsed.Output.Message.Content {
		builder.WriteString(block.Text)
	}
	return builder.String(), parsed.Usage.InputTokens, parsed.Usage.OutputTokens, nil
}
