package providers

import (
	"alarmclock/internal/structures"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const AppName = "AlarmClock"

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault("clock.tickInterval", "1s")
	v.SetDefault("clock.snoozeMinutes", 5)
	v.SetDefault("clock.defaultTone", "Default")

	v.SetDefault("vibration.driver", "bell")
	v.SetDefault("vibration.permission", "undetermined")
	v.SetDefault("vibration.grantOnRequest", true)
	v.SetDefault("vibration.pattern", []string{"1s", "1s", "1s"})

	v.SetDefault("webServer.enabled", false)
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8089)

	v.SetDefault("storage.driver", "bolt")
	v.SetDefault("storage.path", filepath.Join(baseDir, "alarms.db"))
	v.SetDefault("storage.key", "alarms")
	v.SetDefault("storage.compress", false)
	v.SetDefault("storage.async", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", baseDir)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 1)
	v.SetDefault("cache.ttl", "60s")

	v.SetDefault("metrics.enabled", false)
}

func dataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "alarmclock")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v, dataDir())

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("logger.level", "ALARMCLOCK_LOG_LEVEL")
	_ = v.BindEnv("clock.snoozeMinutes", "ALARMCLOCK_SNOOZE_MINUTES")
	_ = v.BindEnv("storage.driver", "ALARMCLOCK_STORAGE_DRIVER")
	_ = v.BindEnv("storage.path", "ALARMCLOCK_STORAGE_PATH")
	_ = v.BindEnv("metrics.enabled", "ALARMCLOCK_METRICS_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if flags.Ephemeral {
		conf.Storage.Driver = "memory"
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if err = ensureDirs(&conf); err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

func ensureDirs(conf *structures.Config) error {
	dirs := []string{conf.Logger.Dir}
	switch conf.Storage.Driver {
	case "bolt":
		dirs = append(dirs, filepath.Dir(conf.Storage.Path))
	case "file":
		dirs = append(dirs, conf.Storage.Path)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create directory %s: %w", dir, err)
		}
	}
	return nil
}
