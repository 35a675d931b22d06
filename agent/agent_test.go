package agent

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestLibrary_Dispatch(t *testing.T) {
	var gotModel string
	plan := func(model string) (string, error) {
		gotModel = model
		return "| Cash | 5.7 | 20.0 | -14.3 | 2503 buy |", nil
	}
	catalog := func() string { return "# Model Portfolios" }
	lib := NewLibrary([]Function{RebalancingPlan(plan), ListModels(catalog)})

	testCases := []struct {
		name      string
		call      *genai.FunctionCall
		wantKey   string
		wantValue string
	}{
		{
			name:      "plan",
			call:      &genai.FunctionCall{ID: "1", Name: "get_rebalancing_plan", Args: map[string]any{"model": "Balanced"}},
			wantKey:   "output",
			wantValue: "| Cash | 5.7 | 20.0 | -14.3 | 2503 buy |",
		},
		{
			name:      "models",
			call:      &genai.FunctionCall{ID: "2", Name: "list_models"},
			wantKey:   "output",
			wantValue: "# Model Portfolios",
		},
		{
			name:      "unknown function",
			call:      &genai.FunctionCall{ID: "3", Name: "buy_bitcoin"},
			wantKey:   "error",
			wantValue: "unknown function buy_bitcoin",
		},
		{
			name:      "invalid argument",
			call:      &genai.FunctionCall{ID: "4", Name: "get_rebalancing_plan", Args: map[string]any{"model": 3.0}},
			wantKey:   "error",
			wantValue: "argument 'model' is not a string as expected but float64",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := lib(context.Background(), tc.call)
			if resp.ID != tc.call.ID || resp.Name != tc.call.Name {
				t.Errorf("response = %s/%s, want %s/%s", resp.ID, resp.Name, tc.call.ID, tc.call.Name)
			}
			if got := resp.Response[tc.wantKey]; got != tc.wantValue {
				t.Errorf("Response[%q] = %v, want %q (response: %v)", tc.wantKey, got, tc.wantValue, resp.Response)
			}
		})
	}
	if gotModel != "Balanced" {
		t.Errorf("planner called with %q, want Balanced", gotModel)
	}
}

func TestRebalancingPlan_Error(t *testing.T) {
	plan := func(model string) (string, error) { return "", errors.New("unknown model portfolio") }
	resp := RebalancingPlan(plan).Call(context.Background(), "1", nil)
	if got := resp.Response["error"]; got != "unknown model portfolio" {
		t.Errorf("Response[error] = %v, want %q", got, "unknown model portfolio")
	}
}

func TestNewAdvisor(t *testing.T) {
	e := NewAdvisor("gemini-2.5-flash", nil, nil)
	decls := e.Config.Tools[0].FunctionDeclarations
	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}
	if len(names) != 2 || names[0] != "get_rebalancing_plan" || names[1] != "list_models" {
		t.Errorf("declarations = %v, want [get_rebalancing_plan list_models]", names)
	}
	if d := e.Declaration(); d.Name != "Advisor" || d.Parameters.Required[0] != "question" {
		t.Errorf("Declaration() = %+v", d)
	}
}

func TestExpert_CallInvalidQuestion(t *testing.T) {
	e := NewResearcher("gemini-2.5-flash")
	resp := e.Call(context.Background(), "1", map[string]any{"question": 42})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("Call() = %v, want an error", resp.Response)
	}
}

func TestExpert_AskNotStarted(t *testing.T) {
	e := NewResearcher("gemini-2.5-flash")
	if _, err := e.Ask(context.Background(), &genai.Part{Text: "hello"}); err == nil {
		t.Error("Ask() on a not started expert must fail")
	}
}

func TestTextOf(t *testing.T) {
	c := &genai.Content{Parts: []*genai.Part{{Text: "Buy "}, {Text: "2503"}}}
	if got := textOf(c); got != "Buy 2503" {
		t.Errorf("textOf() = %q, want %q", got, "Buy 2503")
	}
}
