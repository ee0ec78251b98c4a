package bedrock

// TaskType identifies the narrative task being generated.
type TaskType string

const (
	TaskQuickSummary TaskType = "quick_summary"
	TaskRecap        TaskType = "deep_analysis"
	TaskRoast        TaskType = "roast"
	TaskPersonality  TaskType = "personality"
	TaskHiddenGems   TaskType = "hidden_gems"
	TaskComparison   TaskType = "comparison"
)

// Cost per million tokens for the models we may invoke.
type ModelCost struct {
	Input  float64
	Output float64
	Name   string
}

var modelCosts = map[string]ModelCost{
	"amazon.nova-micro-v1:0":                  {Input: 0.035, Output: 0.14, Name: "Nova Micro"},
	"amazon.nova-lite-v1:0":                   {Input: 0.06, Output: 0.24, Name: "Nova Lite"},
	"anthropic.claude-3-haiku-20240307-v1:0":  {Input: 0.25, Output: 1.25, Name: "Claude Haiku"},
	"amazon.nova-pro-v1:0":                    {Input: 0.80, Output: 3.20, Name: "Nova Pro"},
}

// Cheapest model that still handles each task well.
var taskModels = map[TaskType]string{
	TaskQuickSummary: "amazon.nova-micro-v1:0",
	TaskRecap:        "amazon.nova-lite-v1:0",
	TaskRoast:        "amazon.nova-lite-v1:0",
	TaskPersonality:  "amazon.nova-lite-v1:0",
	TaskHiddenGems:   "anthropic.claude-3-haiku-20240307-v1:0",
	TaskComparison:   "amazon.nova-lite-v1:0",
}

// SelectModel picks the model for a task, upgrading one step for high complexity prompts.
func SelectModel(task TaskType, complexity string) string {
	model, exists := taskModels[task]
	if !exists {
		model = "amazon.nova-lite-v1:0"
	}

	if complexity != "high" {
		return model
	}

	switch model {
	case "amazon.nova-micro-v1:0":
		return "amazon.nova-lite-v1:0"
	case "amazon.nova-lite-v1:0":
		return "anthropic.claude-3-haiku-20240307-v1:0"
	default:
		return model
	}
}

// EstimateCost returns the USD cost of an invocation, 0 for unknown models.
func EstimateCost(modelId string, inputTokens int64, outputTokens int64) float64 {
	cost, exists := modelCosts[modelId]
	if !exists {
		return 0
	}

	inputCost := float64(inputTokens) / 1_000_000 * cost.Input
	outputCost := float64(outputTokens) / 1_000_000 * cost.Output

	return inputCost + outputCost
}

// ModelName returns the display name for a model id.
func ModelName(modelId string) string {
	if cost, exists := modelCosts[modelId]; exists {
		return cost.Name
	}
	return modelId
}
