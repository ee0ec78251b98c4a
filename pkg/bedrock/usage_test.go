package bedrock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageTrackerEmptyReport(t *testing.T) {
	tracker := NewUsageTracker()

	report := tracker.Report()

	assert.Zero(t, report.TotalTasks)
	assert.Zero(t, report.TotalTokens)
	assert.Zero(t, report.TotalCostUSD)
	assert.Zero(t, report.AvgCostPerTask)
	assert.Empty(t, report.ModelsUsed)
}

func TestUsageTrackerAccumulates(t *testing.T) {
	tracker := NewUsageTracker()

	tracker.Track("amazon.nova-lite-v1:0", 1000, 500)
	tracker.Track("amazon.nova-lite-v1:0", 2000, 1000)
	tracker.Track("anthropic.claude-3-haiku-20240307-v1:0", 500, 250)

	report := tracker.Report()

	assert.Equal(t, int64(3), report.TotalTasks)
	assert.Equal(t, int64(5250), report.TotalTokens)
	assert.Greater(t, report.TotalCostUSD, 0.0)
	assert.InDelta(t, report.TotalCostUSD/3, report.AvgCostPerTask, 0.000001)

	// First tracked model stays first in the report.
	assert.Len(t, report.ModelsUsed, 2)
	assert.Equal(t, "Nova Lite", report.ModelsUsed[0].Model)
	assert.Equal(t, int64(2), report.ModelsUsed[0].Calls)
	assert.Equal(t, "Claude Haiku", report.ModelsUsed[1].Model)

	totalPercentage := report.ModelsUsed[0].Percentage + report.ModelsUsed[1].Percentage
	assert.InDelta(t, 100.0, totalPercentage, 0.001)
}

func TestUsageTrackerReset(t *testing.T) {
	tracker := NewUsageTracker()
	tracker.Track("amazon.nova-lite-v1:0", 1000, 500)

	tracker.Reset()

	report := tracker.Report()
	assert.Zero(t, report.TotalTasks)
	assert.Empty(t, report.ModelsUsed)
}
