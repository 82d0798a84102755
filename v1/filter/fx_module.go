package filter

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/aliexpressru/qdrant-client-sub003/v1/logger"
)

// FXModule provides the filter *Optimizer.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    filter.FXModule,
//	    // other modules...
//	)
//
// A *filter.Config, a *logger.Logger and a prometheus.Registerer are picked
// up from the container when present.
var FXModule = fx.Module("filter",
	fx.Provide(
		ProvideOptimizer,
	),
)

// OptimizerParams defines the optional dependencies of the optimizer.
type OptimizerParams struct {
	fx.In
	Config     *Config               `optional:"true"`
	Logger     *logger.Logger        `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// ProvideOptimizer builds an Optimizer from injected dependencies.
func ProvideOptimizer(p OptimizerParams) (*Optimizer, error) {
	var log Logger
	if p.Logger != nil {
		log = p.Logger
	}
	return NewOptimizer(p.Config, log, p.Registerer)
}
