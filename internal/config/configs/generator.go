package configs

import "time"

// Generator holds the fixed pacing of the sequential generation loops. The
// delays are crude rate-limit mitigation between external calls, not a
// backoff policy.
type Generator struct {
	// RecordDelay is the pause between enrichment records.
	RecordDelay time.Duration `env:"RECORD_DELAY" envDefault:"500ms"`
	// PairDelay is the pause between campaign (product, language) pairs.
	PairDelay time.Duration `env:"PAIR_DELAY" envDefault:"200ms"`
	// ImageDelay is the simulated latency of the stubbed image call.
	ImageDelay time.Duration `env:"IMAGE_DELAY" envDefault:"1s"`
}
