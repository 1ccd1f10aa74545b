// Package config loads settings for programs built on the Late client.
//
// Settings come from an optional config.yml, an optional .env file, and the
// process environment, in increasing order of precedence. Well-known
// variables are bound explicitly:
//
//	LATE_API_KEY                 api.api_key
//	LATE_BASE_URL                api.base_url
//	LATE_TIMEOUT                 api.timeout
//	LOG_LEVEL, LOG_FORMAT        log.level, log.format
//	OTEL_EXPORTER_OTLP_ENDPOINT  telemetry.endpoint
//
// The environment is read once, by Load.
//
// # Usage
//
//	var s config.Settings
//	if err := config.Load("late", &s); err != nil { ... }
//	client, err := late.New(s.ClientOptions())
package config
