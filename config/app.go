package config

type App struct {
	Env         string `json:"env" yaml:"env"`
	Debug       bool   `json:"debug" yaml:"debug"`
	PageDefault int    `json:"page_default" yaml:"page_default"`
	MediaRoot   string `json:"media_root" yaml:"media_root"`
}

// PageSizeDefault 列表分页的系统默认值
func (a *App) PageSizeDefault() int {
	if a.PageDefault <= 0 {
		return 10
	}
	return a.PageDefault
}

func ProvideAppConfig(cfg *Config) *App {
	return cfg.App
}
