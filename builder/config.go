// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// config.go — the resolved configuration every Constructor closure reads.
//
// Contract:
//   • builderConfig is passed by value (see api.go's Constructor signature):
//     each BuildGraph/BuildLetters/BuildWord/... call resolves its own
//     config once via newBuilderConfig, and constructors never mutate it.
//   • newBuilderConfig applies defaults, then every supplied BuilderOption
//     in order (later options override earlier ones), then resolves any
//     still-empty partition prefix to its default.
package builder

import (
	"math/rand"
)

// builderConfig holds the configurable parameters for graph/sequence
// builders:
//   - rng:      optional RNG source (nil means deterministic behavior).
//   - idFn:     function mapping index -> vertex ID.
//   - weightFn: function mapping rng -> edge weight.
//   - leftPrefix/rightPrefix: bipartite partition label prefixes.
//   - amplitude/frequency/trendK/noiseSigma: sequence-dataset knobs
//     (Pulse/Chirp/OHLC) set by WithAmplitude/WithFrequency/WithTrend/
//     WithNoise; the extract*Params functions in impl_pulse.go et al.
//     ignore them and use fixed defaults.
type builderConfig struct {
	rng      *rand.Rand
	idFn     IDFn
	weightFn WeightFn

	leftPrefix, rightPrefix string

	amplitude, frequency, trendK, noiseSigma float64
}

// Default bipartite partition prefixes, used when WithPartitionPrefix is
// never called or called with empty values.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. Empty partition prefixes
// are resolved to their defaults after options are applied.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
