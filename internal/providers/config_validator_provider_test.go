package providers

import (
	"alarmclock/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Clock: structures.ClockConfig{
			TickInterval:  time.Second,
			SnoozeMinutes: 5,
			DefaultTone:   "Default",
		},
		Vibration: structures.VibrationConfig{
			Driver:     "log",
			Permission: "granted",
			Pattern:    []time.Duration{time.Second, time.Second, time.Second},
		},
		WebServer: structures.Server{
			Enabled: true,
			Host:    "127.0.0.1",
			Port:    8089,
		},
		Storage: structures.StorageConfig{
			Driver: "bolt",
			Path:   "/tmp/alarmclock/alarms.db",
			Key:    "alarms",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_WebServerDisabledSkipsHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Enabled = false
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownStorageDriver(t *testing.T) {
	c := validConfig()
	c.Storage.Driver = "sqlite"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroSnooze(t *testing.T) {
	c := validConfig()
	c.Clock.SnoozeMinutes = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownPermission(t *testing.T) {
	c := validConfig()
	c.Vibration.Permission = "maybe"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_NegativePatternSegment(t *testing.T) {
	c := validConfig()
	c.Vibration.Pattern = []time.Duration{time.Second, -time.Second}
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
