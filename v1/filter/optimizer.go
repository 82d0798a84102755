package filter

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Optimizer rules, usable in Config.DisabledRules.
const (
	// RuleSingleValueMatchAny replaces a match-any over exactly one value
	// with a plain value match.
	RuleSingleValueMatchAny = "single_value_match_any"
)

//go:generate mockgen -source=optimizer.go -destination=mock_logger_test.go -package=filter

// Logger is the logging the optimizer needs. *logger.Logger satisfies it.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
}

// Optimizer attaches cheaper equivalent substitutes to conditions of a tree.
//
// The tree structure is never changed: only the substitute slot of the
// rewritten leaves is set, and a leaf that already carries a substitute is
// left alone.
type Optimizer struct {
	cfg           *Config
	log           Logger
	substitutions *prometheus.CounterVec
}

// NewOptimizer creates an optimizer. cfg, log and reg may be nil; without a
// registerer the substitution counter is kept but not exported.
func NewOptimizer(cfg *Config, log Logger, reg prometheus.Registerer) (*Optimizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	ns := cfg.MetricsNamespace
	if ns == "" {
		ns = DefaultMetricsNamespace
	}

	substitutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Subsystem: "filter_optimizer",
		Name:      "substitutions_total",
		Help:      "Number of filter conditions replaced by an optimized substitute, by rule.",
	}, []string{"rule"})

	if reg != nil {
		if err := reg.Register(substitutions); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, fmt.Errorf("filter: register optimizer metrics: %w", err)
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, fmt.Errorf("filter: register optimizer metrics: %w", err)
			}
			substitutions = existing
		}
	}

	return &Optimizer{cfg: cfg, log: log, substitutions: substitutions}, nil
}

// Optimize runs the optimizer over every top-level condition of f and
// returns the number of substitutes attached.
func (o *Optimizer) Optimize(f *Filter) int {
	if f.IsEmpty() {
		return 0
	}
	v := &optimizeVisitor{o: o}
	for _, c := range f.conditions {
		Walk(v, c)
	}
	return v.applied
}

// OptimizeCondition runs the optimizer over the tree rooted at c and returns
// the number of substitutes attached.
func (o *Optimizer) OptimizeCondition(c Condition) int {
	v := &optimizeVisitor{o: o}
	Walk(v, c)
	return v.applied
}

// optimizeVisitor holds the rewrite rules. New rules override the Visit
// method of the leaf type they apply to.
type optimizeVisitor struct {
	NopVisitor
	o       *Optimizer
	applied int
}

func (v *optimizeVisitor) VisitMatchAny(c *MatchAnyCondition) {
	if len(c.values) != 1 || !v.o.cfg.ruleEnabled(RuleSingleValueMatchAny) {
		return
	}
	v.attach(c, &MatchCondition{leaf: leaf{node{field: c.field}}, value: c.values[0]}, RuleSingleValueMatchAny)
}

func (v *optimizeVisitor) attach(c, substitute Condition, rule string) {
	if !c.base().setSubstitute(substitute) {
		return
	}
	v.applied++
	v.o.substitutions.WithLabelValues(rule).Inc()
	if v.o.log != nil {
		v.o.log.Debug("attached optimized filter condition", nil, map[string]interface{}{
			"rule":  rule,
			"field": c.FieldName(),
		})
	}
}
