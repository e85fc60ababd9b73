// Package cmd wires the ifinfo command line: flag parsing, config
// loading and interface printing on top of the ifaces and netaddr
// packages, with all diagnostics flowing through the logging facility.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/igmartin/mlog/core"
	"github.com/igmartin/mlog/ifaces"
	"github.com/igmartin/mlog/internal/config"
	"github.com/igmartin/mlog/logger"
	"github.com/igmartin/mlog/netaddr"
)

var (
	configFile string

	appConfig *config.Config

	rootCmd = &cobra.Command{
		Use:   "ifinfo [flags] [address]",
		Short: "List network interfaces and their addresses.",
		Long: `ifinfo enumerates the system's network interfaces together with their
link-layer, IPv4 and IPv6 addresses. Output can be narrowed to one
interface, one address family or one IPv6 scope.

With an address argument, ifinfo instead reports which interface
carries that address.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			appConfig = cfg
			return nil
		},
		RunE: run,
	}
)

// Execute runs the root command
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	flags := rootCmd.Flags()
	flags.StringP("interface", "i", "", "restrict output to one interface")
	flags.StringP("family", "f", "", "address family: any, ipv4, ipv6 or link")
	flags.StringP("scope", "s", "", "IPv6 scope: any, node, link, site, org or global")
	flags.String("log-level", "", "logging threshold: debug, info, warning, error or critical")
	flags.String("log-file", "", "append log records to this file")
	flags.Bool("propagate", true, "forward log records to ancestor loggers")
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger("ifinfo",
		logger.WithLevel(appConfig.ParsedLevel), logger.WithSink(core.SinkStderr))
	defer log.Release()

	log.SetPropagation(appConfig.Propagate)
	if appConfig.LogFile != "" {
		log.SetLogFile(appConfig.LogFile)
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		log.Debug("looking up interface for %s", args[0])
		ni, err := ifaces.FindByAddress(args[0])
		if err != nil {
			return err
		}
		printInterface(out, ni)
		return nil
	}

	opts := []ifaces.Option{ifaces.WithFamily(appConfig.ParsedFamily)}
	if appConfig.Interface != "" {
		opts = append(opts, ifaces.WithName(appConfig.Interface))
	}
	if appConfig.ParsedScope != netaddr.ScopeUnspec {
		opts = append(opts, ifaces.WithScope(appConfig.ParsedScope))
	}

	list, err := ifaces.List(opts...)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		log.Warning("no interfaces matched")
		return nil
	}

	for _, ni := range list {
		printInterface(out, ni)
	}
	return nil
}

func printInterface(w io.Writer, ni *ifaces.Interface) {
	fmt.Fprintf(w, "%d: %s <%s>\n", ni.Index, ni.Name, ni.Flags)
	for _, addr := range ni.Addrs {
		fmt.Fprintf(w, "    %-10s %s\n", addr.Family(), addr)
	}
}
