package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "taskflow"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultEnvironment    = "development"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Environment:   defaultEnvironment,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		CORS: CORS{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}
