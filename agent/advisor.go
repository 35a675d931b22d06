package agent

import (
	"context"
	"fmt"

	"github.com/etnz/assetflow/docs"
	"google.golang.org/genai"
)

// Planner returns the rebalancing plan of the user's allocation against a
// model portfolio, as markdown. An empty model name is the default model.
type Planner func(model string) (string, error)

// Catalog returns the available model portfolios, as markdown.
type Catalog func() string

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user wants to rebalance a personal asset allocation toward a model portfolio.
			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Never invent amounts: the Advisor knows the user's allocation.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounded on Google Search, for questions
// about markets and asset classes.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert of financial markets,
		aware of the latest news about asset classes (stocks, ETFs, crypto, savings products).
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of financial markets, you can search and find about anything related to
			asset classes, markets and funds. You leverage Google Search to ground your assertions.
			`}}},
		},
	}
}

// NewAdvisor creates the expert that reads the user's allocation.
func NewAdvisor(model string, plan Planner, catalog Catalog) *Expert {
	lib := []Function{RebalancingPlan(plan), ListModels(catalog)}

	instruction := `
	You are a rebalancing advisor in charge of the user's asset allocation.
	Use the Tools to get the user's current allocation compared to a model portfolio,
	and the list of available model portfolios. Explain the suggested buy and sell actions,
	and how far the allocation drifts from the model.
	`
	if topic, err := docs.GetTopic("models"); err == nil {
		instruction += "\n\nHere is the user documentation about model portfolios:\n\n" + topic
	}

	return &Expert{
		Name: "Advisor",
		Description: `This is the Advisor. It knows the user's asset allocation,
		the available model portfolios and computes rebalancing plans.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
		Library: NewLibrary(lib),
	}
}

// RebalancingPlan is the get_rebalancing_plan function.
func RebalancingPlan(plan Planner) *Func {
	const name = "get_rebalancing_plan"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Compares the user's current allocation with a model portfolio.

			It returns the composition of the allocation, and for each asset class the current percentage,
			the model target, the gap and the suggested action (amount to buy or sell).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"model": {
						Type:        genai.TypeString,
						Description: "The name of the model portfolio. The user's default model when empty.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the rebalancing plan.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var model string
			if v, ok := args["model"]; ok {
				s, ok := v.(string)
				if !ok {
					return errorResponse(id, name, fmt.Errorf("argument 'model' is not a string as expected but %T", v))
				}
				model = s
			}
			out, err := plan(model)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, out)
		},
	}
}

// ListModels is the list_models function.
func ListModels(catalog Catalog) *Func {
	const name = "list_models"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Lists the model portfolios with their target percentage per asset class.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table per model portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, catalog())
		},
	}
}
