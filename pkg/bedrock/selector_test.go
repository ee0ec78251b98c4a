package bedrock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name       string
		task       TaskType
		complexity string
		expected   string
	}{
		{
			name:       "quick summary standard",
			task:       TaskQuickSummary,
			complexity: "standard",
			expected:   "amazon.nova-micro-v1:0",
		},
		{
			name:       "quick summary upgraded",
			task:       TaskQuickSummary,
			complexity: "high",
			expected:   "amazon.nova-lite-v1:0",
		},
		{
			name:       "recap standard",
			task:       TaskRecap,
			complexity: "standard",
			expected:   "amazon.nova-lite-v1:0",
		},
		{
			name:       "recap upgraded",
			task:       TaskRecap,
			complexity: "high",
			expected:   "anthropic.claude-3-haiku-20240307-v1:0",
		},
		{
			name:       "hidden gems already on the top tier",
			task:       TaskHiddenGems,
			complexity: "high",
			expected:   "anthropic.claude-3-haiku-20240307-v1:0",
		},
		{
			name:       "unknown task falls back to lite",
			task:       TaskType("unknown"),
			complexity: "standard",
			expected:   "amazon.nova-lite-v1:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectModel(tt.task, tt.complexity))
		})
	}
}

func TestEstimateCost(t *testing.T) {
	// 1M input and 1M output tokens cost exactly the listed rates.
	cost := EstimateCost("amazon.nova-lite-v1:0", 1_000_000, 1_000_000)
	assert.InDelta(t, 0.30, cost, 0.0001)

	assert.Zero(t, EstimateCost("unknown-model", 1000, 1000))
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "Nova Lite", ModelName("amazon.nova-lite-v1:0"))
	assert.Equal(t, "Claude Haiku", ModelName("anthropic.claude-3-haiku-20240307-v1:0"))
	assert.Equal(t, "custom-model", ModelName("custom-model"))
}
