package routing_fx

import (
	"go.uber.org/fx"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideRouteOptimizer,
	provideTransitAdvisor)

func provideRouteOptimizer() services.RouteOptimizerInterface {
	return services.NewRouteOptimizer()
}

func provideTransitAdvisor() services.TransitAdvisorInterface {
	return services.NewTransitAdvisor()
}
