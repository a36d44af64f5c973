package cmd

import (
	"context"

	"github.com/etnz/cardfolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of pok.
//
// Install it with: COMP_INSTALL=1 pok
func Completion() *complete.Command {
	cards := complete.PredictFunc(predictCards)
	topics := complete.PredictFunc(predictTopics)
	confirm := map[string]complete.Predictor{"y": predict.Nothing}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"backend":  predict.Set{"file", "sqlite", "memory"},
			"path":     predict.Files("*"),
			"key":      predict.Something,
			"currency": predict.Set{"EUR", "USD", "GBP", "JPY", "CHF"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"name":      predict.Something,
				"expansion": predict.Something,
				"language":  predict.Set{"IT", "EN", "FR", "DE", "ES", "JP"},
				"condition": predict.Set{"Mint", "Near Mint", "Excellent", "Good", "Played", "Poor"},
				"image":     predict.Files("*"),
			}},
			"image": {
				Flags: map[string]complete.Predictor{"name": predict.Something},
				Args:  predict.Files("*"),
			},
			"snap": {Args: predict.Files("*")},
			"list": {},
			"show": {Args: cards},
			"chart": {
				Flags: map[string]complete.Predictor{
					"o":      predict.Files("*.png"),
					"width":  predict.Something,
					"height": predict.Something,
				},
				Args: cards,
			},
			"delete": {Flags: confirm, Args: cards},
			"clear":  {Flags: confirm},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"json", "yaml", "html"},
				"o":      predict.Files("*"),
			}},
			"query":  {Flags: map[string]complete.Predictor{"indent": predict.Nothing}, Args: predict.Something},
			"serve":  {Flags: map[string]complete.Predictor{"listen": predict.Something}},
			"assist": {Flags: map[string]complete.Predictor{"model": predict.Something}},
			"topic":  {Args: topics},
		},
	}
}

// predictCards lists the identifiers of the cards in the collection.
func predictCards(prefix string) []string {
	coll, err := openCollection(context.Background())
	if err != nil {
		return nil
	}
	defer coll.Close()
	var ids []string
	for e := range coll.Collection().All() {
		ids = append(ids, e.ID())
	}
	return ids
}

func predictTopics(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return topics
}
