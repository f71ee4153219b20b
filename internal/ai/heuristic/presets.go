package heuristic

import (
	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/features"
	"github.com/janpfeifer/draughtsGo/internal/parameters"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// Default weights: material dominates, and the positional features break ties.
	Default = NewWithWeights(100, 5, 3, 1).WithName("default")

	// MaterialOnly simply counts pieces, a king being worth 3 men.
	MaterialOnly = NewWithWeights(1, 0, 0, 0).WithName("material")

	// Presets lists the named scorers that can be selected with "heuristic=<name>".
	Presets = []*Scorer{Default, MaterialOnly}
)

// NewFromParams returns the scorer selected by the "heuristic" parameter (default is "default"),
// with its weights optionally overridden by the parameters "w_count", "w_center", "w_formation",
// "w_tempi", "man" and "king".
//
// The used parameters are removed from params.
func NewFromParams(params parameters.Params) (*Scorer, error) {
	presetName, err := parameters.PopParamOr(params, "heuristic", "")
	if err != nil {
		return nil, err
	}
	if presetName == "" {
		presetName = Default.name
	}
	var selected *Scorer
	for _, preset := range Presets {
		if preset.name == presetName {
			selected = preset
		}
	}
	if selected == nil {
		return nil, errors.Errorf("unknown heuristic %q", presetName)
	}

	// Any overrides create a new scorer, presets are shared.
	scorer := selected.Clone()
	overridden := false
	for _, override := range []struct {
		key   string
		value *ai.Score
	}{
		{"w_count", &scorer.weights[features.IdMaterial]},
		{"w_center", &scorer.weights[features.IdCenter]},
		{"w_formation", &scorer.weights[features.IdFormation]},
		{"w_tempi", &scorer.weights[features.IdTempo]},
		{"man", &scorer.pieceValues.Man},
		{"king", &scorer.pieceValues.King},
	} {
		if _, found := params[override.key]; !found {
			continue
		}
		value, err := parameters.PopParamOr(params, override.key, int(*override.value))
		if err != nil {
			return nil, err
		}
		*override.value = ai.Score(value)
		overridden = true
	}
	if !overridden {
		klog.V(1).Infof("Heuristic evaluator %s", selected)
		return selected, nil
	}
	scorer.name = ""
	klog.V(1).Infof("Heuristic evaluator %s with overrides: %s", presetName, scorer)
	return scorer, nil
}
