package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"dropoutdash/internal/data"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	Data   DataConfig   `koanf:"data"`
	Labels LabelConfig  `koanf:"labels"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Host  string `koanf:"host"`
	Port  int    `koanf:"port"`
	Debug bool   `koanf:"debug"`
}

// DataConfig locates the input files. Relative file names resolve against Dir.
type DataConfig struct {
	Dir           string `koanf:"dir"`
	RFImportance  string `koanf:"rf_importance"`
	XGBImportance string `koanf:"xgb_importance"`
	Performance   string `koanf:"performance"`
	Predictions   string `koanf:"predictions"`
}

// LabelConfig pins the outcome literals. Leave both empty to infer them.
type LabelConfig struct {
	Negative string `koanf:"negative"`
	Positive string `koanf:"positive"`
}

type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8050},
		Data: DataConfig{
			Dir:           "data",
			RFImportance:  data.FileRFImportance,
			XGBImportance: data.FileXGBImportance,
			Performance:   data.FilePerformance,
			Predictions:   data.FilePredictions,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load starts from DefaultConfig and overlays the YAML file at path when it exists.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if (c.Labels.Negative == "") != (c.Labels.Positive == "") {
		return fmt.Errorf("labels.negative and labels.positive must be set together")
	}
	if c.Labels.Negative != "" && c.Labels.Negative == c.Labels.Positive {
		return fmt.Errorf("labels.negative and labels.positive must differ")
	}
	for name, v := range map[string]string{
		"data.rf_importance":  c.Data.RFImportance,
		"data.xgb_importance": c.Data.XGBImportance,
		"data.performance":    c.Data.Performance,
		"data.predictions":    c.Data.Predictions,
	} {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

func (c *Config) Addr() string { return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port) }

func (c *Config) Paths() data.Paths {
	return data.Paths{
		RFImportance:  c.Data.resolve(c.Data.RFImportance),
		XGBImportance: c.Data.resolve(c.Data.XGBImportance),
		Performance:   c.Data.resolve(c.Data.Performance),
		Predictions:   c.Data.resolve(c.Data.Predictions),
	}
}

func (c *Config) OutcomeLabels() data.Labels {
	return data.Labels{Negative: c.Labels.Negative, Positive: c.Labels.Positive}
}

func (d DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}
