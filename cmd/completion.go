package cmd

import (
	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of afc.
//
// Model names are those of the default catalog, they are only a suggestion.
func Completion() *complete.Command {
	models := predict.Set(assetflow.DefaultCatalog().Names())
	topics := complete.PredictFunc(func(prefix string) []string {
		names, _ := docs.GetAllTopics()
		return append(names, "*")
	})

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":     predict.Files("*.toml"),
			"allocation": predict.Or(predict.Files("*.json"), predict.Files("*.csv")),
			"catalog":    predict.Files("*.toml"),
			"v":          predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"show": {
				Flags: map[string]complete.Predictor{"json": predict.Nothing},
			},
			"models": {
				Flags: map[string]complete.Predictor{"json": predict.Nothing},
				Args:  models,
			},
			"compare": {
				Flags: map[string]complete.Predictor{
					"model":              models,
					"include-model-only": predict.Nothing,
					"json":               predict.Nothing,
				},
			},
			"report": {
				Flags: map[string]complete.Predictor{
					"model":         models,
					"o":             predict.Files("*.pdf"),
					"repeat-header": predict.Nothing,
				},
			},
			"import": {
				Flags: map[string]complete.Predictor{
					"items":  predict.Something,
					"class":  predict.Something,
					"amount": predict.Something,
					"unit":   predict.Something,
					"o":      predict.Files("*.json"),
				},
				Args: predict.Files("*.json"),
			},
			"serve": {
				Flags: map[string]complete.Predictor{
					"host": predict.Something,
					"port": predict.Something,
				},
			},
			"assist": {
				Flags: map[string]complete.Predictor{"model": predict.Something},
			},
			"topic":    {Args: topics},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
