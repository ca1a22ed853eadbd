package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MOODCORE"

type Service struct {
	URL string `yaml:"url" mapstructure:"url"`
}
type Transcriber struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // "http" or "openai"
	Model   string `yaml:"model" mapstructure:"model"`
}
type Services struct {
	Sentiment   Service     `yaml:"sentiment" mapstructure:"sentiment"`
	Emotion     Service     `yaml:"emotion" mapstructure:"emotion"`
	ASR         Service     `yaml:"asr" mapstructure:"asr"`
	Transcriber Transcriber `yaml:"transcriber" mapstructure:"transcriber"`
	Timeout     int         `yaml:"timeout" mapstructure:"timeout"` // seconds
}
type Server struct {
	Addr         string `yaml:"addr" mapstructure:"addr"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"`
	MaxUploadMB  int    `yaml:"max_upload_mb" mapstructure:"max_upload_mb"`
}
type Audio struct {
	SampleRate int `yaml:"sample_rate" mapstructure:"sample_rate"`
	MaxSeconds int `yaml:"max_seconds" mapstructure:"max_seconds"`
}
type Features struct {
	NMFCC     int     `yaml:"n_mfcc" mapstructure:"n_mfcc"`
	NFFT      int     `yaml:"n_fft" mapstructure:"n_fft"`
	HopLength int     `yaml:"hop_length" mapstructure:"hop_length"`
	NMels     int     `yaml:"n_mels" mapstructure:"n_mels"`
	TopDB     float64 `yaml:"top_db" mapstructure:"top_db"`
}
type Classifiers struct {
	TopK int `yaml:"top_k" mapstructure:"top_k"`
}
type Recommendations struct {
	CatalogPath string `yaml:"catalog_path" mapstructure:"catalog_path"`
}
type Root struct {
	Pipeline struct {
		Name      string `yaml:"name" mapstructure:"name"`
		Version   string `yaml:"version" mapstructure:"version"`
		LogLvl    string `yaml:"log_level" mapstructure:"log_level"`
		LogFormat string `yaml:"log_format" mapstructure:"log_format"`
	} `yaml:"pipeline" mapstructure:"pipeline"`
	Server          Server          `yaml:"server" mapstructure:"server"`
	Audio           Audio           `yaml:"audio" mapstructure:"audio"`
	Features        Features        `yaml:"features" mapstructure:"features"`
	Classifiers     Classifiers     `yaml:"classifiers" mapstructure:"classifiers"`
	Services        Services        `yaml:"services" mapstructure:"services"`
	Recommendations Recommendations `yaml:"recommendations" mapstructure:"recommendations"`
	Paths           struct {
		Outputs string `yaml:"outputs" mapstructure:"outputs"`
	} `yaml:"paths" mapstructure:"paths"`

	// OpenAIKey comes from OPENAI_API_KEY, never from the file.
	OpenAIKey string `yaml:"-" mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "mood-core")
	v.SetDefault("pipeline.version", "0.1.0")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.log_format", "text")

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.max_upload_mb", 25)

	v.SetDefault("audio.sample_rate", 22050)
	v.SetDefault("audio.max_seconds", 120)

	v.SetDefault("features.n_mfcc", 13)
	v.SetDefault("features.n_fft", 2048)
	v.SetDefault("features.hop_length", 512)
	v.SetDefault("features.n_mels", 128)
	v.SetDefault("features.top_db", 60.0)

	v.SetDefault("classifiers.top_k", 3)

	v.SetDefault("services.sentiment.url", "http://localhost:8101")
	v.SetDefault("services.emotion.url", "http://localhost:8102")
	v.SetDefault("services.asr.url", "http://localhost:8103")
	v.SetDefault("services.transcriber.backend", "http")
	v.SetDefault("services.transcriber.model", "whisper-1")
	v.SetDefault("services.timeout", 60)

	v.SetDefault("recommendations.catalog_path", "")
	v.SetDefault("paths.outputs", "outputs")
}

// guessPaths lists the config files tried when no explicit path is given.
func guessPaths() []string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	}
}

// Load reads path, or the first existing guess path when path is empty.
// A missing guess file is not an error: defaults and MOODCORE_* env
// variables still apply. An explicit path must exist.
func Load(path string) (*Root, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		for _, p := range guessPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Root) validate() error {
	switch c.Services.Transcriber.Backend {
	case "http", "openai":
	default:
		return errors.New("services.transcriber.backend must be http or openai")
	}
	if c.Server.MaxUploadMB <= 0 {
		return errors.New("server.max_upload_mb must be positive")
	}
	return nil
}

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
