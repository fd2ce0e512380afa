package transport

import "fmt"

const (
	Stdio     = "stdio"
	SSE       = "sse"
	WebSocket = "ws"
)

// TransportConfig selects how the MCP server is exposed.
type TransportConfig struct {
	Kind    string `yaml:"kind" json:"kind"`
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	BaseURL string `yaml:"baseUrl" json:"baseUrl"` // advertised SSE endpoint base
}

func DefaultTransportConfig() TransportConfig {
	return TransportConfig{Kind: Stdio, Host: "127.0.0.1", Port: 18790}
}

// Addr returns host:port for network transports.
func (c TransportConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate reports an unknown transport kind.
func (c TransportConfig) Validate() error {
	switch c.Kind {
	case Stdio, SSE, WebSocket:
		return nil
	}
	return fmt.Errorf("unknown transport %q (want %s, %s or %s)", c.Kind, Stdio, SSE, WebSocket)
}
