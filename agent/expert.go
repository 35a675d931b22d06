package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        *genai.Chat
}

// Start creates the expert's chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callbacks.
//
// Function calls are answered using the expert's library, until the expert
// answers with a text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}

	var calls []*genai.Part
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.FunctionCall == nil {
			continue
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		// errors are sent back to the expert in the response.
		calls = append(calls, &genai.Part{FunctionResponse: e.Library(ctx, part.FunctionCall)})
	}
	if len(calls) > 0 {
		return e.Ask(ctx, calls...)
	}
	return resp.Candidates[0].Content, nil
}

// Declaration returns the function declaration to ask this expert.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call perform the call of asking this expert.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	d := e.Declaration()
	question, ok := args[d.Parameters.Required[0]].(string)
	if !ok {
		return errorResponse(id, d.Name, fmt.Errorf("invalid type got %T, expected string", args["question"]))
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return errorResponse(id, d.Name, fmt.Errorf("something went wrong while calling the expert: %w", err))
	}
	return outputResponse(id, d.Name, textOf(response))
}
