// Package config loads the ifinfo command's configuration from an
// optional YAML file, environment variables (MLOG_ prefix) and the
// command-line flags bound over them.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/igmartin/mlog/core"
	"github.com/igmartin/mlog/netaddr"
)

// Config holds all settings of the ifinfo command.
type Config struct {
	// Interface restricts output to a single interface name.
	Interface string `mapstructure:"interface"`
	// Family restricts addresses to one family: any, ipv4, ipv6 or link.
	Family string `mapstructure:"family"`
	// Scope restricts IPv6 addresses to one scope: any, node, link, site, org or global.
	Scope string `mapstructure:"scope"`
	// LogLevel is the threshold of the command's logger node.
	LogLevel string `mapstructure:"log-level"`
	// LogFile, when set, receives a copy of every log record.
	LogFile string `mapstructure:"log-file"`
	// Propagate forwards the command's log records to ancestor nodes.
	Propagate bool `mapstructure:"propagate"`

	// ParsedLevel is the validated LogLevel.
	ParsedLevel core.Level
	// ParsedFamily is the validated Family.
	ParsedFamily netaddr.Family
	// ParsedScope is the validated Scope.
	ParsedScope netaddr.Scope
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".ifinfo.yaml"

	envPrefix = "MLOG"
)

// Load builds the configuration. Precedence, lowest to highest:
// defaults, config file, environment, flags.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("family", "any")
	v.SetDefault("scope", "any")
	v.SetDefault("log-level", core.WarningLevel.String())
	v.SetDefault("propagate", true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %q", configFile)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFilename, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config file")
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "binding flags")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling configuration")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	level, ok := core.ParseLevel(c.LogLevel)
	if !ok {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	c.ParsedLevel = level

	family, err := parseFamily(c.Family)
	if err != nil {
		return err
	}
	c.ParsedFamily = family

	scope, err := parseScope(c.Scope)
	if err != nil {
		return err
	}
	c.ParsedScope = scope

	return nil
}

func parseFamily(s string) (netaddr.Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return netaddr.FamilyUnspec, nil
	case "ipv4", "inet":
		return netaddr.FamilyIPv4, nil
	case "ipv6", "inet6":
		return netaddr.FamilyIPv6, nil
	case "link", "mac":
		return netaddr.FamilyLink, nil
	default:
		return netaddr.FamilyUnspec, errors.Errorf("unknown address family %q", s)
	}
}

func parseScope(s string) (netaddr.Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return netaddr.ScopeUnspec, nil
	case "node":
		return netaddr.ScopeNodeLocal, nil
	case "link":
		return netaddr.ScopeLinkLocal, nil
	case "site":
		return netaddr.ScopeSiteLocal, nil
	case "org":
		return netaddr.ScopeOrgLocal, nil
	case "global":
		return netaddr.ScopeGlobal, nil
	default:
		return netaddr.ScopeUnspec, errors.Errorf("unknown address scope %q", s)
	}
}
