package research

import (
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SourcePolicy tunes one source by name.
type SourcePolicy struct {
	Enabled     *bool `yaml:"enabled"`
	TimeoutSecs int   `yaml:"timeout_secs"`
}

// Policy is the optional per-source configuration file:
//
//	sources:
//	  jsearch:
//	    enabled: false
//	  bls-oews:
//	    timeout_secs: 20
//
// Unlisted sources run with defaults.
type Policy struct {
	Sources map[string]SourcePolicy `yaml:"sources"`
}

// DefaultPolicy enables every source with default timeouts.
func DefaultPolicy() *Policy {
	return &Policy{}
}

// LoadPolicy reads a policy file. An empty path or a missing file yields the
// default policy with a warning, matching how optional config is handled
// elsewhere.
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			zap.L().Warn("research: policy file not found, using defaults",
				zap.String("path", path))
			return DefaultPolicy(), nil
		}
		return nil, eris.Wrapf(err, "research: read policy %s", path)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, eris.Wrapf(err, "research: parse policy %s", path)
	}
	return &p, nil
}

func (p *Policy) enabled(name string) bool {
	sp, ok := p.Sources[name]
	if !ok || sp.Enabled == nil {
		return true
	}
	return *sp.Enabled
}

func (p *Policy) timeout(name string, def time.Duration) time.Duration {
	sp, ok := p.Sources[name]
	if !ok || sp.TimeoutSecs <= 0 {
		return def
	}
	return time.Duration(sp.TimeoutSecs) * time.Second
}
