// Package container wires core supatools services using go.uber.org/dig.
package container

import (
	"log/slog"
	"net/http"

	"go.uber.org/dig"

	"github.com/crystaldolphin/supatools/internal/config"
	"github.com/crystaldolphin/supatools/internal/mcp"
	"github.com/crystaldolphin/supatools/internal/supabase"
	"github.com/crystaldolphin/supatools/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client     *supabase.Client
	management *supabase.ManagementClient
	registry   *tools.Registry
	dispatcher *tools.Dispatcher
	server     *mcp.Server
}

func (c *Container) Client() *supabase.Client               { return c.client }
func (c *Container) Management() *supabase.ManagementClient { return c.management }
func (c *Container) Registry() *tools.Registry              { return c.registry }
func (c *Container) Dispatcher() *tools.Dispatcher          { return c.dispatcher }
func (c *Container) Server() *mcp.Server                    { return c.server }

// New builds and wires all core services from cfg. Nothing here talks to the
// network; clients only connect when a tool runs.
func New(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	d := dig.New()

	if logger == nil {
		logger = slog.Default()
	}
	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *slog.Logger { return logger }); err != nil {
		return nil, err
	}
	if err := d.Provide(newHTTPClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newSupabaseClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newManagementClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(tools.NewDispatcher); err != nil {
		return nil, err
	}
	if err := d.Provide(newServer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *supabase.Client,
		management *supabase.ManagementClient,
		registry *tools.Registry,
		dispatcher *tools.Dispatcher,
		server *mcp.Server,
	) {
		result = &Container{
			client:     client,
			management: management,
			registry:   registry,
			dispatcher: dispatcher,
			server:     server,
		}
	})
	return result, err
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Supabase.Timeout()}
}

func newSupabaseClient(cfg *config.Config, hc *http.Client) *supabase.Client {
	return supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, supabase.WithHTTPClient(hc))
}

func newManagementClient(cfg *config.Config, hc *http.Client) *supabase.ManagementClient {
	return supabase.NewManagementClient(cfg.Supabase.ManagementURL, cfg.Supabase.AccessToken, hc)
}

func newRegistry(client *supabase.Client, management *supabase.ManagementClient) *tools.Registry {
	return tools.NewDefaultRegistry(tools.Backends{
		Records:   client,
		Objects:   client,
		Functions: client,
		Projects:  management,
	})
}

func newServer(cfg *config.Config, dispatcher *tools.Dispatcher, logger *slog.Logger) (*mcp.Server, error) {
	return mcp.NewServer(cfg.Server, dispatcher, logger)
}
