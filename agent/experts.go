package agent

import (
	"context"
	"fmt"

	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/docs"
	"github.com/etnz/cardfolio/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// Source gives access to the collection the experts work on.
//
// *cardfolio.Binder satisfies it.
type Source interface {
	Collection() *cardfolio.Collection
}

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user collects trading cards, and is here to learn about the cards in the collection and
			their simulated values. Values are simulated, never present them as market prices.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCollector returns the expert of the user's collection, with values in currency.
func NewCollector(model, currency string, src Source) *Expert {
	lib := []Function{listCards(currency, src), cardHistory(currency, src)}

	return &Expert{
		Name: "Collector",
		Description: `This is the Collector. It knows every card of the user's collection: name, expansion,
		language, condition, simulated value and simulated value history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a collector in charge of the user's trading card collection.
				You know how to use the Tools to extract relevant information about the cards.
				You are part of a team of experts, yours is everything about the user's collection. They might ask
				you questions about the cards, pardon their approximative language and figure out what they meant.

				This is how values are computed:

				` + values + `
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// values documents the simulated values.
var values, _ = docs.GetTopic("values")

func listCards(currency string, src Source) *Func {
	const name = "ListCards"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `ListCards lists all cards in the collection, most recent first, with their identifier and simulated value.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all the cards and the total simulated value of the collection.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			md := renderer.RenderCollection(renderer.NewCollection(src.Collection(), currency))
			return outputResponse(id, name, md)
		},
	}
}

func cardHistory(currency string, src Source) *Func {
	const name = "CardHistory"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `CardHistory details one card and its simulated value history.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"card": {
						Type:        genai.TypeString,
						Description: `The card identifier (as listed by ListCards) or its name. "latest" is the most recent card.`,
					},
				},
				Required: []string{"card"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted description of the card and a table of its value history.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ref, err := stringArg(args, "card")
			if err != nil {
				return errorResponse(id, name, err)
			}
			e, ok := src.Collection().Lookup(ref)
			if !ok {
				return errorResponse(id, name, fmt.Errorf("card %q: %w", ref, cardfolio.ErrNotFound))
			}
			return outputResponse(id, name, renderer.RenderEntry(renderer.NewEntry(e, currency)))
		},
	}
}
