package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-purchase-analytics/internal/engine"
	"go-purchase-analytics/internal/llm"
	"go-purchase-analytics/internal/model"
)

const systemPrompt = "You are a Business Intelligence Assistant with access to live purchase documents data from SAP HANA. Always respond in English with a professional, analytical tone suitable for business stakeholders."

// DataSource supplies the live table the assistant grounds its
// answers on.
type DataSource interface {
	ReadEnriched(ctx context.Context) (*model.Table, error)
}

// Assistant answers business questions about purchase data, feeding
// the model a live snapshot of the dataset so the numbers in the
// answer come from the database, not the model.
type Assistant struct {
	provider llm.Provider
	source   DataSource
	calc     *engine.Calculator
}

// NewAssistant wires a provider and a live data source.
func NewAssistant(provider llm.Provider, source DataSource) *Assistant {
	return &Assistant{provider: provider, source: source, calc: engine.New()}
}

// AskSimple forwards a prompt without any data context.
func (a *Assistant) AskSimple(ctx context.Context, prompt string) (string, error) {
	return a.provider.GenerateResponse(ctx, prompt, systemPrompt)
}

// Ask answers a question against a fresh read of the live data. A
// failed read still produces an answer: the model is asked to explain
// the technical issue instead of analyzing data it never saw.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	fmt.Printf("🚀 Processing live query: %s\n", question)

	table, err := a.source.ReadEnriched(ctx)
	if err != nil {
		errorPrompt := fmt.Sprintf(`There was an issue querying the database for the question: %q

Error details: %v

Please provide a helpful response explaining that there was a technical issue accessing the live data, and suggest checking the database connection.`, question, err)
		return a.provider.GenerateResponse(ctx, errorPrompt, systemPrompt)
	}

	dataContext, err := a.liveContext(table, question)
	if err != nil {
		return "", err
	}

	analysisPrompt := fmt.Sprintf(`LIVE DATA CONTEXT:
%s

USER QUESTION: %s

Based on the real-time data above, please provide:

1. DIRECT ANSWER: Address the specific question using the live data
2. KEY METRICS: Highlight important numbers and statistics
3. INSIGHTS: Identify patterns, trends, or notable findings
4. BUSINESS IMPACT: Explain what these findings mean for the business
5. RECOMMENDATIONS: Suggest next steps or areas for further investigation

All analysis must be based on the live data shown above, which contains %d current records.`, dataContext, question, table.Len())

	answer, err := a.provider.GenerateResponse(ctx, analysisPrompt, systemPrompt)
	if err != nil {
		return "", err
	}
	fmt.Printf("✅ Analysis completed for %d live records\n", table.Len())
	return answer, nil
}

// AskDataset answers a question about one uploaded dataset, grounding
// the model on the computed KPI envelope rather than raw rows.
func (a *Assistant) AskDataset(ctx context.Context, table *model.Table, question string) (string, error) {
	env, err := a.calc.Compute(table)
	if err != nil {
		return "", err
	}
	kpiJSON, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`The following KPIs were computed from an uploaded purchase documents dataset (%d records):

%s

USER QUESTION: %s

Answer the question using only the KPI figures above. Point out which metrics support your answer.`, table.Len(), kpiJSON, question)

	return a.provider.GenerateResponse(ctx, prompt, systemPrompt)
}

// liveContext summarizes the table for the prompt: headline counts,
// the covered date range, and a small sample of records.
func (a *Assistant) liveContext(table *model.Table, question string) (string, error) {
	env, err := a.calc.Compute(table)
	if err != nil {
		return "", err
	}
	summary := env[model.KeySummary].(map[string]interface{})

	sampleSize := 3
	if table.Len() < sampleSize {
		sampleSize = table.Len()
	}
	sample, err := json.MarshalIndent(table.Rows[:sampleSize], "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`LIVE QUERY RESULT: %q

CURRENT DATASET STATISTICS:
- Total Records: %v
- Unique Plants: %v
- Unique Materials: %v
- Unique Companies: %v
- Date Range: %s

AVAILABLE COLUMNS:
%s

SAMPLE DATA (first %d records):
%s`,
		question,
		summary["total_records"], summary["unique_plants"],
		summary["unique_materials"], summary["unique_companies"],
		dateRange(table),
		strings.Join(table.ColumnNames(), ", "),
		sampleSize, sample), nil
}

// dateRange reports the min and max over the first date column that
// yields any parseable values.
func dateRange(table *model.Table) string {
	for _, col := range []string{model.ColDocDate, model.ColRequestedDate, model.ColActualDate} {
		var min, max time.Time
		found := false
		for _, row := range table.Rows {
			d, ok := engine.ToDate(row[col])
			if !ok {
				continue
			}
			if !found || d.Before(min) {
				min = d
			}
			if !found || d.After(max) {
				max = d
			}
			found = true
		}
		if found {
			return min.Format("2006-01-02") + " to " + max.Format("2006-01-02")
		}
	}
	return "N/A"
}
