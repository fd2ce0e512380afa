package config

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variable names. The SUPABASE_* names match the ones the
// Supabase CLI and dashboards hand out.
const (
	EnvSupabaseURL    = "SUPABASE_URL"
	EnvSupabaseKey    = "SUPABASE_KEY"
	EnvAccessToken    = "SUPABASE_ACCESS_TOKEN"
	EnvManagementURL  = "SUPABASE_MANAGEMENT_URL"
	EnvTimeoutSeconds = "SUPABASE_TIMEOUT_SECONDS"
	EnvTransport      = "SUPATOOLS_TRANSPORT"
	EnvHost           = "SUPATOOLS_HOST"
	EnvPort           = "SUPATOOLS_PORT"
	EnvBaseURL        = "SUPATOOLS_BASE_URL"
	EnvLogLevel       = "SUPATOOLS_LOG_LEVEL"
	EnvLogFormat      = "SUPATOOLS_LOG_FORMAT"
)

type lookupFunc func(key string) (string, bool)

// chainLookup prefers the real environment over values read from .env files.
func chainLookup(primary lookupFunc, fallback map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := fallback[key]
		return v, ok
	}
}

func applyEnv(cfg *Config, lookup lookupFunc) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("ignoring non-numeric environment value", "key", key, "value", v)
			return
		}
		*dst = n
	}

	str(EnvSupabaseURL, &cfg.Supabase.URL)
	str(EnvSupabaseKey, &cfg.Supabase.Key)
	str(EnvAccessToken, &cfg.Supabase.AccessToken)
	str(EnvManagementURL, &cfg.Supabase.ManagementURL)
	num(EnvTimeoutSeconds, &cfg.Supabase.TimeoutSeconds)
	str(EnvTransport, &cfg.Transport.Kind)
	str(EnvHost, &cfg.Transport.Host)
	num(EnvPort, &cfg.Transport.Port)
	str(EnvBaseURL, &cfg.Transport.BaseURL)
	str(EnvLogLevel, &cfg.Log.Level)
	str(EnvLogFormat, &cfg.Log.Format)
}

// readDotEnvFiles merges the given .env files; earlier files win.
// Missing files are skipped.
func readDotEnvFiles(paths ...string) (map[string]string, error) {
	out := map[string]string{}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		for k, v := range parseDotEnv(data) {
			if _, seen := out[k]; !seen {
				out[k] = v
			}
		}
	}
	return out, nil
}

// parseDotEnv understands KEY=VALUE lines, an optional "export " prefix,
// '#' comments and single or double quoted values.
func parseDotEnv(data []byte) map[string]string {
	out := map[string]string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if n := len(val); n >= 2 && (val[0] == '"' || val[0] == '\'') && val[n-1] == val[0] {
			quote := val[0]
			val = val[1 : n-1]
			if quote == '"' {
				val = strings.NewReplacer(`\n`, "\n", `\"`, `"`, `\\`, `\`).Replace(val)
			}
		} else if i := strings.Index(val, " #"); i >= 0 {
			val = strings.TrimSpace(val[:i])
		}
		if key != "" {
			out[key] = val
		}
	}
	return out
}
