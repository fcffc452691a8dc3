package structures

import "time"

type Server struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host" validate:"required"`
	Port    int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver" validate:"required|in:bolt,file,memory"`
	Path     string `yaml:"path" validate:"required|unixPath"`
	Key      string `yaml:"key" validate:"required"`
	Compress bool   `yaml:"compress"`
	Async    bool   `yaml:"async"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type ClockConfig struct {
	TickInterval  time.Duration `yaml:"tickInterval" validate:"required|min:1"`
	SnoozeMinutes int           `yaml:"snoozeMinutes" validate:"required|min:1"`
	DefaultTone   string        `yaml:"defaultTone"`
}

type VibrationConfig struct {
	Driver         string          `yaml:"driver" validate:"in:bell,log,none"`
	Permission     string          `yaml:"permission" validate:"in:granted,denied,undetermined"`
	GrantOnRequest bool            `yaml:"grantOnRequest"`
	Pattern        []time.Duration `yaml:"pattern"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Clock     ClockConfig     `yaml:"clock"`
	Vibration VibrationConfig `yaml:"vibration"`
	WebServer Server          `yaml:"webServer"`
	Storage   StorageConfig   `yaml:"storage"`
	Logger    LoggerConfig    `yaml:"logger"`
	Cache     CacheConfig     `yaml:"cache"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}
