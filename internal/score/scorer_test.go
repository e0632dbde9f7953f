package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/tkdgloss/internal/catalog"
	"github.com/ppiankov/tkdgloss/internal/model"
	"github.com/ppiankov/tkdgloss/internal/segment"
)

func segmentPhrase(t *testing.T, phrase string) segment.Segmentation {
	t.Helper()
	seg, err := segment.Segment(catalog.Default(), phrase, segment.DefaultMaxDistance)
	require.NoError(t, err)
	return seg
}

func findSignal(signals []model.Signal, typ model.SignalType) (model.Signal, bool) {
	for _, s := range signals {
		if s.Type == typ {
			return s, true
		}
	}
	return model.Signal{}, false
}

func signalTypes(signals []model.Signal) []model.SignalType {
	var out []model.SignalType
	for _, s := range signals {
		out = append(out, s.Type)
	}
	return out
}

func TestScorer_Calculate(t *testing.T) {
	scorer := NewScorer()
	ambiguous := catalog.Default().Ambiguous()

	tests := []struct {
		name       string
		phrase     string
		tokens     int
		recognized int
		exact      int
		fuzzy      int
		composite  int
		confidence string
		signals    []model.SignalType
	}{
		{
			name:       "all exact",
			phrase:     "Apgubi Momtong Jireugi",
			tokens:     3,
			recognized: 3,
			exact:      3,
			confidence: ConfidenceHigh,
			signals:    nil,
		},
		{
			name:       "fuzzy token",
			phrase:     "Momtong Jirugi",
			tokens:     2,
			recognized: 2,
			exact:      1,
			fuzzy:      1,
			confidence: ConfidenceMedium,
			signals:    []model.SignalType{model.SignalFuzzy},
		},
		{
			name:       "composite",
			phrase:     "Bal Bakuda Dollyeo Chagi",
			tokens:     4,
			recognized: 4,
			exact:      2,
			composite:  1,
			confidence: ConfidenceHigh,
			signals:    []model.SignalType{model.SignalComposite},
		},
		{
			name:       "unrecognized and ambiguous",
			phrase:     "Sonnal Mok Chigi",
			tokens:     3,
			recognized: 2,
			exact:      2,
			confidence: ConfidenceLow,
			signals:    []model.SignalType{model.SignalUnrecognized, model.SignalAmbiguous},
		},
		{
			name:       "nothing recognized",
			phrase:     "xyz qqq",
			tokens:     2,
			confidence: ConfidenceLow,
			signals:    []model.SignalType{model.SignalUnrecognized},
		},
		{
			name:       "empty phrase",
			phrase:     "",
			confidence: ConfidenceLow,
			signals:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := scorer.Calculate(segmentPhrase(t, tt.phrase), ambiguous)

			assert.Equal(t, tt.tokens, cov.Tokens, "Tokens")
			assert.Equal(t, tt.recognized, cov.Recognized, "Recognized")
			assert.Equal(t, tt.exact, cov.Exact, "Exact")
			assert.Equal(t, tt.fuzzy, cov.Fuzzy, "Fuzzy")
			assert.Equal(t, tt.composite, cov.Composite, "Composite")
			assert.Equal(t, tt.confidence, cov.Confidence)
			require.NotNil(t, cov.Signals, "Signals should never be nil")
			assert.Equal(t, tt.signals, signalTypes(cov.Signals))
		})
	}
}

func TestScorer_Ratio(t *testing.T) {
	cov := NewScorer().Calculate(segmentPhrase(t, "Sonnal Mok Chigi"), nil)
	assert.InDelta(t, 2.0/3.0, cov.Ratio, 1e-9)

	empty := NewScorer().Calculate(segmentPhrase(t, "   "), nil)
	assert.Zero(t, empty.Ratio)
}

func TestScorer_UnrecognizedSeverity(t *testing.T) {
	scorer := NewScorer()

	partial := scorer.Calculate(segmentPhrase(t, "Arae Makgi"), nil)
	sig, ok := findSignal(partial.Signals, model.SignalUnrecognized)
	require.True(t, ok, "expected unrecognized signal")
	assert.Equal(t, model.SeverityWarning, sig.Severity, "some tokens matched")
	assert.Equal(t, []string{"arae"}, sig.Data["tokens"])

	none := scorer.Calculate(segmentPhrase(t, "xyz"), nil)
	sig, ok = findSignal(none.Signals, model.SignalUnrecognized)
	require.True(t, ok)
	assert.Equal(t, model.SeverityCritical, sig.Severity, "nothing matched")
}

func TestScorer_FuzzyData(t *testing.T) {
	cov := NewScorer().Calculate(segmentPhrase(t, "Dollyo Chagi"), nil)

	sig, ok := findSignal(cov.Signals, model.SignalFuzzy)
	require.True(t, ok, "expected fuzzy signal")
	assert.Equal(t, 1, sig.Data["max_distance"])

	pairs, _ := sig.Data["matches"].([]map[string]interface{})
	require.Len(t, pairs, 1)
	assert.Equal(t, "dollyo", pairs[0]["token"])
	assert.Equal(t, "Dollyeo", pairs[0]["canonical"])
}

func TestScorer_AmbiguousData(t *testing.T) {
	ambiguous := catalog.Default().Ambiguous()
	cov := NewScorer().Calculate(segmentPhrase(t, "Balbucheo Dollyeo Chagi"), ambiguous)

	sig, ok := findSignal(cov.Signals, model.SignalAmbiguous)
	require.True(t, ok, "expected ambiguous signal")
	terms, _ := sig.Data["terms"].(map[string][]string)
	assert.Equal(t, []string{catalog.KickTypes, catalog.MovementTypes}, terms["Balbucheo"])

	// Without the ambiguity map no signal is produced
	cov = NewScorer().Calculate(segmentPhrase(t, "Balbucheo Dollyeo Chagi"), nil)
	_, ok = findSignal(cov.Signals, model.SignalAmbiguous)
	assert.False(t, ok)
}
