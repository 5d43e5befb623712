package config

const (
	defaultConfigPath      = "~/.config/wordlev/config.toml"
	projectConfigName      = "wordlev.toml"
	defaultHistoryFallback = "~/.local/share/wordlev/history.db"
	defaultOutputFormat    = "text"
	defaultOutputColor     = "auto"
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Comparison: Comparison{
			FoldCase: false,
			Workers:  1,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
