package impl

import "go.uber.org/fx"

// Module provides every use case to Fx.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewUserService,
		NewProximityService,
		NewVisitService,
		NewCoordinatorService,
	),
)
