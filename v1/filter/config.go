package filter

import "slices"

// DefaultMetricsNamespace prefixes optimizer metrics when no namespace is
// configured.
const DefaultMetricsNamespace = "qdrant"

// Config controls the filter optimizer.
//
// Example (builder style):
//
//	cfg := filter.DefaultConfig().
//	    WithMetricsNamespace("search").
//	    WithDisabledRules(filter.RuleSingleValueMatchAny)
type Config struct {
	// MetricsNamespace prefixes the optimizer metrics. Defaults to "qdrant".
	MetricsNamespace string `yaml:"metrics_namespace" envconfig:"QDRANT_FILTER_METRICS_NAMESPACE"`

	// DisabledRules lists optimizer rules that are never applied.
	DisabledRules []string `yaml:"disabled_rules" envconfig:"QDRANT_FILTER_DISABLED_RULES"`
}

// DefaultConfig enables every rule.
func DefaultConfig() *Config {
	return &Config{
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

func (c *Config) WithMetricsNamespace(ns string) *Config {
	c.MetricsNamespace = ns
	return c
}

func (c *Config) WithDisabledRules(rules ...string) *Config {
	c.DisabledRules = append(c.DisabledRules, rules...)
	return c
}

func (c *Config) ruleEnabled(rule string) bool {
	return !slices.Contains(c.DisabledRules, rule)
}
