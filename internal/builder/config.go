package builder

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds build pipeline settings.
type Config struct {
	SupplementPath string        `yaml:"supplement_path" env:"BUILDER_SUPPLEMENT_PATH" env-default:"data/raw/supplement.tsv"`
	WordNetPath    string        `yaml:"wordnet_path"    env:"BUILDER_WORDNET_PATH"    env-required:"true"`
	Collection     string        `yaml:"collection"      env:"BUILDER_COLLECTION"      env-default:"dictionary"`
	BatchSize      int           `yaml:"batch_size"      env:"BUILDER_BATCH_SIZE"      env-default:"500"`
	BatchPause     time.Duration `yaml:"batch_pause"     env:"BUILDER_BATCH_PAUSE"     env-default:"1s"`
	DryRun         bool          `yaml:"dry_run"         env:"BUILDER_DRY_RUN"`
}

// maxBatchSize is the document store's hard per-batch write limit.
const maxBatchSize = 500

// LoadConfig reads builder configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("builder config: read %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("builder config: file %s not found", path)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("builder config: read env: %w", err)
	}

	if cfg.BatchSize <= 0 || cfg.BatchSize > maxBatchSize {
		cfg.BatchSize = maxBatchSize
	}
	return &cfg, nil
}
