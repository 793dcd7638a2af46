package w3ctest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// RunConfig is the harness's own run configuration: which manifest roots
// to walk and which named tests to skip, each
// skip carrying a reason a reviewer can read without cross-referencing an
// issue tracker. Loaded as JSONC so a skip list entry's reason can sit next
// to it as a "//" comment rather than a separate field, the same convenience
// adapter/json's WithStrictJSON(false) default gives instance-data authors.
type RunConfig struct {
	ManifestRoots []string `json:"manifestRoots"`
	Skip          []string `json:"skip"`
}

// LoadRunConfig reads path as JSONC, stripping "//" and "/* */" comments
// before handing the result to encoding/json — the same two-step
// jsonc.ToJSON-then-Unmarshal pipeline adapter/json/parse.go uses for
// instance documents.
func LoadRunConfig(path string) (RunConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("w3ctest: reading run config %s: %w", path, err)
	}
	var cfg RunConfig
	if err := json.Unmarshal(jsonc.ToJSON(raw), &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("w3ctest: parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

// skips reports whether name appears verbatim in cfg.Skip.
func (cfg RunConfig) skips(name string) bool {
	for _, s := range cfg.Skip {
		if s == name {
			return true
		}
	}
	return false
}
