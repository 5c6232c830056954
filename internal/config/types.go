// SPDX-License-Identifier: MPL-2.0

package config

import (
	"podforge/internal/podman"
)

type (
	// Config is the application-level podforge configuration. It carries
	// knobs that outlive a single forgefile: how to reach podman and
	// which registry to talk to. Loaded once at CLI startup.
	Config struct {
		// Podman configures how the podman CLI is invoked.
		Podman PodmanConfig `mapstructure:"podman"`
		// Registry configures the default registry for push and login.
		Registry RegistryConfig `mapstructure:"registry"`
		// Verbose enables debug logging.
		Verbose bool `mapstructure:"verbose"`
	}

	// PodmanConfig maps onto podman's root-level flags.
	PodmanConfig struct {
		// Binary is the podman binary. Empty resolves "podman" from PATH.
		Binary string `mapstructure:"binary"`
		// URL selects the podman service endpoint (--url).
		URL string `mapstructure:"url"`
		// Root is an alternate storage directory (--root).
		Root string `mapstructure:"root"`
		// TLSVerify is "", "true" or "false" (--tls-verify).
		TLSVerify string `mapstructure:"tls_verify"`
	}

	// RegistryConfig names the registry and account used for push/login.
	// The password is deliberately absent from the file schema: it is
	// only accepted through the environment, so config files stay free
	// of secrets.
	RegistryConfig struct {
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Podman: PodmanConfig{},
	}
}

// Validate checks field constraints viper cannot express.
func (c *Config) Validate() error {
	return podman.TLSVerify(c.Podman.TLSVerify).Validate()
}

// GlobalOptions converts the podman section into the executor's
// GlobalOptions.
func (c *Config) GlobalOptions() podman.GlobalOptions {
	return podman.GlobalOptions{
		Binary:        c.Podman.Binary,
		ConnectionURI: c.Podman.URL,
		Root:          c.Podman.Root,
		TLSVerify:     podman.TLSVerify(c.Podman.TLSVerify),
	}
}

// Credentials assembles registry credentials for a login, preferring the
// explicitly supplied registry over the configured default host.
func (c *Config) Credentials(registry string) podman.RegistryCredentials {
	if registry == "" {
		registry = c.Registry.Host
	}
	return podman.RegistryCredentials{
		Registry: registry,
		Username: c.Registry.Username,
		Password: c.Registry.Password,
	}
}
