package config

import (
	"os"
	"time"
)

// KandinskyConfig 文生图 API 配置。
// 密钥不进配置文件，只从进程环境变量读取。
type KandinskyConfig struct {
	URL          string        `json:"url" yaml:"url"`
	APIKey       string        `json:"-" yaml:"-"`
	SecretKey    string        `json:"-" yaml:"-"`
	Workers      int           `json:"workers" yaml:"workers"`
	PollAttempts int           `json:"poll_attempts" yaml:"poll_attempts"`
	PollDelay    time.Duration `json:"poll_delay" yaml:"poll_delay"`
	JobTimeout   time.Duration `json:"job_timeout" yaml:"job_timeout"`
}

func (k *KandinskyConfig) LoadSecrets() {
	k.APIKey = os.Getenv("KANDINSKY_API_KEY")
	k.SecretKey = os.Getenv("KANDINSKY_SECRET_KEY")
}

func (k *KandinskyConfig) WorkerCount() int {
	if k.Workers <= 0 {
		return 4
	}
	return k.Workers
}

func (k *KandinskyConfig) Attempts() int {
	if k.PollAttempts <= 0 {
		return 20
	}
	return k.PollAttempts
}

func (k *KandinskyConfig) Delay() time.Duration {
	if k.PollDelay <= 0 {
		return 10 * time.Second
	}
	return k.PollDelay
}

func (k *KandinskyConfig) Timeout() time.Duration {
	if k.JobTimeout <= 0 {
		return 5 * time.Minute
	}
	return k.JobTimeout
}

func ProvideKandinskyConfig(cfg *Config) *KandinskyConfig {
	return cfg.Kandinsky
}
