package bedrock

import "sync"

// UsageTracker accumulates token and cost totals across narrative calls.
// It is created once at startup and injected into every service that
// invokes models, so there is no package level state to reset between tests.
type UsageTracker struct {
	mu          sync.Mutex
	totalTokens int64
	totalCost   float64
	tasks       int64
	perModel    map[string]*modelUsage
	modelOrder  []string
}

type modelUsage struct {
	calls  int64
	tokens int64
	cost   float64
}

// Usage report for a single model.
type ModelReport struct {
	Model      string  `json:"model"`
	Calls      int64   `json:"calls"`
	Tokens     int64   `json:"tokens"`
	CostUSD    float64 `json:"cost_usd"`
	Percentage float64 `json:"percentage"`
}

// Full usage report.
type UsageReport struct {
	TotalTasks     int64         `json:"total_tasks"`
	TotalTokens    int64         `json:"total_tokens"`
	TotalCostUSD   float64       `json:"total_cost_usd"`
	AvgCostPerTask float64       `json:"avg_cost_per_task"`
	ModelsUsed     []ModelReport `json:"models_used"`
}

// NewUsageTracker creates an empty tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{
		perModel: make(map[string]*modelUsage),
	}
}

// Track records one model invocation.
func (t *UsageTracker) Track(modelId string, inputTokens int64, outputTokens int64) {
	cost := EstimateCost(modelId, inputTokens, outputTokens)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalTokens += inputTokens + outputTokens
	t.totalCost += cost
	t.tasks++

	usage, exists := t.perModel[modelId]
	if !exists {
		usage = &modelUsage{}
		t.perModel[modelId] = usage
		t.modelOrder = append(t.modelOrder, modelId)
	}

	usage.calls++
	usage.tokens += inputTokens + outputTokens
	usage.cost += cost
}

// Report exports the accumulated totals.
func (t *UsageTracker) Report() UsageReport {
	t.mu.Lock()
	defer t.mu.Unlock()

	report := UsageReport{
		TotalTasks:   t.tasks,
		TotalTokens:  t.totalTokens,
		TotalCostUSD: t.totalCost,
	}

	if t.tasks > 0 {
		report.AvgCostPerTask = t.totalCost / float64(t.tasks)
	}

	for _, modelId := range t.modelOrder {
		usage := t.perModel[modelId]

		percentage := 0.0
		if t.totalCost > 0 {
			percentage = usage.cost / t.totalCost * 100
		}

		report.ModelsUsed = append(report.ModelsUsed, ModelReport{
			Model:      ModelName(modelId),
			Calls:      usage.calls,
			Tokens:     usage.tokens,
			CostUSD:    usage.cost,
			Percentage: percentage,
		})
	}

	return report
}

// Reset clears all accumulated totals.
func (t *UsageTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalTokens = 0
	t.totalCost = 0
	t.tasks = 0
	t.perModel = make(map[string]*modelUsage)
	t.modelOrder = nil
}
