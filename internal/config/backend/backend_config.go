package backend

import "time"

// DefaultManagementURL is the base URL of the Supabase Management API.
const DefaultManagementURL = "https://api.supabase.com"

// BackendConfig holds the Supabase project credentials.
type BackendConfig struct {
	URL            string `yaml:"url" json:"url"`
	Key            string `yaml:"key" json:"key"`
	AccessToken    string `yaml:"accessToken" json:"accessToken"`
	ManagementURL  string `yaml:"managementUrl" json:"managementUrl"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" json:"timeoutSeconds"`
}

func DefaultBackendConfig() BackendConfig {
	return BackendConfig{
		ManagementURL: DefaultManagementURL,
	}
}

// Timeout returns the opt-in HTTP client timeout. Zero or negative means the
// client waits as long as the server does.
func (c BackendConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
