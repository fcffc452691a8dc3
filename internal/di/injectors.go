//go:build wireinject
// +build wireinject

package di

import (
	"alarmclock/internal"
	"alarmclock/internal/clock"
	"alarmclock/internal/controllers"
	"alarmclock/internal/device"
	"alarmclock/internal/providers"
	"alarmclock/internal/services"
	"alarmclock/internal/storage"
	"alarmclock/internal/structures"
	"alarmclock/internal/ui"
	wire "github.com/google/wire"
)

var coreSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,

	storage.NewCompressorProvider,
	storage.NewBackendProvider,
	storage.NewAlarmStoreProvider,

	device.NewVibratorProvider,
	device.NewPermissionProvider,
	device.NewTriggerProvider,

	services.NewAlarmService,
	clock.NewScheduler,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		coreSet,
		providers.NewInstrumentedSnapshotCache,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitTUI(cfg *structures.CliFlags) (*ui.Program, error) {

	wire.Build(
		coreSet,
		ui.NewProgram,
	)

	return nil, nil
}
