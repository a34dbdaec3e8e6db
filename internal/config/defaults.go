package config

const (
	defaultConfigPath        = "~/.config/legenda/config.toml"
	projectConfigFile        = "legenda.toml"
	defaultHost              = "0.0.0.0"
	defaultPort              = 3000
	defaultMaxBodyBytes      = 1 << 20
	defaultReadHeaderTimeout = 5
	defaultReadTimeout       = 15
	defaultWriteTimeout      = 90
	defaultIdleTimeout       = 60
	defaultBackend           = BackendYouTube
	defaultLanguage          = "en"
	defaultHTTPTimeout       = 60
	defaultYtDlpBinary       = "yt-dlp"
	defaultLogFormat         = "auto"
	defaultLogLevel          = "info"
)

const (
	BackendYouTube = "youtube"
	BackendYtDlp   = "ytdlp"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Host:                     defaultHost,
			Port:                     defaultPort,
			AllowedOrigins:           []string{"*"},
			MaxBodyBytes:             defaultMaxBodyBytes,
			ReadHeaderTimeoutSeconds: defaultReadHeaderTimeout,
			ReadTimeoutSeconds:       defaultReadTimeout,
			WriteTimeoutSeconds:      defaultWriteTimeout,
			IdleTimeoutSeconds:       defaultIdleTimeout,
		},
		Captions: Captions{
			Backend:            defaultBackend,
			Language:           defaultLanguage,
			HTTPTimeoutSeconds: defaultHTTPTimeout,
			YtDlpBinary:        defaultYtDlpBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
