package device

import (
	"alarmclock/internal/providers"
	"alarmclock/internal/structures"
	"os"
)

func NewVibratorProvider(conf *structures.Config, logger providers.Logger) VibratorInterface {
	switch conf.Vibration.Driver {
	case "log":
		return NewLogVibrator(logger)
	case "none":
		return noopVibrator{}
	default:
		return NewBellVibrator(os.Stdout)
	}
}

func NewPermissionProvider(conf *structures.Config) PermissionInterface {
	return NewConfigPermission(ParsePermissionStatus(conf.Vibration.Permission), conf.Vibration.GrantOnRequest)
}

func NewTriggerProvider(conf *structures.Config, permission PermissionInterface, vibrator VibratorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) TriggerInterface {
	return NewTrigger(permission, vibrator, conf.Vibration.Pattern, logger, metrics)
}
