package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-purchase-analytics/internal/model"
)

type stubProvider struct {
	lastPrompt string
	lastSystem string
	reply      string
	err        error
}

func (s *stubProvider) GenerateResponse(_ context.Context, prompt, systemPrompt string) (string, error) {
	s.lastPrompt = prompt
	s.lastSystem = systemPrompt
	return s.reply, s.err
}

type stubSource struct {
	table *model.Table
	err   error
}

func (s *stubSource) ReadEnriched(context.Context) (*model.Table, error) {
	return s.table, s.err
}

func liveTable() *model.Table {
	rows := []model.Record{
		{
			model.ColDocNumber: "D1", model.ColPlant: "P1", model.ColMaterial: "M1",
			model.ColCompany: "C1", model.ColDocDate: "2025-02-01",
		},
		{
			model.ColDocNumber: "D2", model.ColPlant: "P2", model.ColMaterial: "M1",
			model.ColCompany: "C1", model.ColDocDate: "2025-04-15",
		},
	}
	return model.NewTable(rows, "EKPO", "SAPHANADB")
}

func TestAskGroundsPromptInLiveData(t *testing.T) {
	provider := &stubProvider{reply: "analysis"}
	assistant := NewAssistant(provider, &stubSource{table: liveTable()})

	answer, err := assistant.Ask(context.Background(), "which plant orders the most?")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "analysis" {
		t.Errorf("answer = %q", answer)
	}
	for _, want := range []string{
		"which plant orders the most?",
		"Total Records: 2",
		"Unique Plants: 2",
		"2025-02-01 to 2025-04-15",
		model.ColDocNumber,
	} {
		if !strings.Contains(provider.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if provider.lastSystem == "" {
		t.Error("system prompt not set")
	}
}

func TestAskExplainsReadFailure(t *testing.T) {
	provider := &stubProvider{reply: "sorry, the database is unreachable"}
	assistant := NewAssistant(provider, &stubSource{err: errors.New("connection refused")})

	answer, err := assistant.Ask(context.Background(), "how many orders?")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "sorry, the database is unreachable" {
		t.Errorf("answer = %q", answer)
	}
	if !strings.Contains(provider.lastPrompt, "connection refused") {
		t.Error("error details missing from prompt")
	}
	if !strings.Contains(provider.lastPrompt, "technical issue") {
		t.Error("prompt should ask for an error explanation")
	}
}

func TestAskPropagatesProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("quota exceeded")}
	assistant := NewAssistant(provider, &stubSource{table: liveTable()})
	if _, err := assistant.Ask(context.Background(), "q"); err == nil {
		t.Error("provider failure must surface")
	}
}

func TestAskDatasetUsesKPIEnvelope(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	assistant := NewAssistant(provider, &stubSource{})

	if _, err := assistant.AskDataset(context.Background(), liveTable(), "summarize"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(provider.lastPrompt, "\"total_records\": 2") {
		t.Errorf("prompt missing KPI figures:\n%s", provider.lastPrompt)
	}
}

func TestAskSimple(t *testing.T) {
	provider := &stubProvider{reply: "hi"}
	assistant := NewAssistant(provider, &stubSource{})
	answer, err := assistant.AskSimple(context.Background(), "hello")
	if err != nil || answer != "hi" {
		t.Fatalf("answer = %q, err = %v", answer, err)
	}
	if provider.lastPrompt != "hello" {
		t.Errorf("prompt = %q", provider.lastPrompt)
	}
}
