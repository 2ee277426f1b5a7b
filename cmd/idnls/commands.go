package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idntools/idnls/internal/config"
	"github.com/idntools/idnls/internal/logging"
	"github.com/idntools/idnls/internal/netif"
	"github.com/idntools/idnls/internal/provider/mdns"
	"github.com/idntools/idnls/internal/render"
	"github.com/idntools/idnls/internal/serverlist"
	"github.com/idntools/idnls/internal/transport"
	"github.com/idntools/idnls/internal/tui"
	"github.com/idntools/idnls/internal/version"
)

// Command flags
var (
	groupFlag    int
	timeoutFlag  int
	providerFlag string
	intervalFlag int
)

var rootCmd = &cobra.Command{
	Use:   "idnls",
	Short: "IDN server discovery utility",
	Long: `List IDN servers on the local network.

A discovery pass queries one client group and prints every responding
server: a summary line with unit identifier, host name and addresses,
then one line per hosted service.

Defaults for group, timeout and provider can be stored in a config file
(see 'idnls --help' output of the list command for the location); flags
override the file.`,
	Example: `  # Discover group 0 with the default 500ms timeout
  idnls

  # Discover client group 3, wait 2 seconds for responses
  idnls --group 3 --timeout 2000`,
	Version: version.Version,
}

func init() {
	rootCmd.RunE = runList
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().IntVar(&groupFlag, "group", config.DefaultGroup,
		fmt.Sprintf("Client group to query (0-%d)", serverlist.MaxClientGroup))
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", config.DefaultTimeoutMS,
		"Discovery timeout in milliseconds")
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", config.DefaultProvider,
		"Discovery provider")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(interfacesCmd)
	rootCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(versionCmd)

	serverlist.Register("mdns", mdns.New())
}

// loadConfig merges the config file with any flags that were set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("group") {
		cfg.Group = groupFlag
	}
	if flags.Changed("timeout") {
		cfg.TimeoutMS = timeoutFlag
	}
	if flags.Changed("provider") {
		cfg.Provider = providerFlag
	}
	return cfg, nil
}

// exitUsage reports bad invocation input. It exits 0, the exit code this
// tool has always used for usage problems.
func exitUsage(cmd *cobra.Command, format string, args ...any) error {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	_ = cmd.Usage()
	os.Exit(0)
	return nil
}

// setup loads config, starts logging and resolves the provider; shared by
// the list and watch commands.
func setup(cmd *cobra.Command) (*config.Config, serverlist.Provider, error) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if err := logging.Initialize(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if !serverlist.ValidGroup(cfg.Group) {
		return nil, nil, exitUsage(cmd, "group %d out of range 0-%d", cfg.Group, serverlist.MaxClientGroup)
	}

	provider, ok := serverlist.Lookup(cfg.Provider)
	if !ok {
		return nil, nil, exitUsage(cmd, "unknown provider %q (available: %s)",
			cfg.Provider, strings.Join(serverlist.Names(), ", "))
	}
	return cfg, provider, nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, provider, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	out := render.NewWriterSink(os.Stdout)
	errs := render.NewErrorSink(os.Stderr)

	out.Line("IDN server list")
	out.Line(strings.Repeat("-", 60))

	if err := transport.Startup(); err != nil {
		errs.Line(fmt.Sprintf("Socket startup failed (error: %d)", transport.Errno(err)))
		return err
	}
	defer func() {
		if err := transport.Cleanup(); err != nil {
			errs.Line(fmt.Sprintf("Socket cleanup failed (error: %d)", transport.Errno(err)))
		}
	}()

	servers, err := provider.Servers(cmd.Context(), uint8(cfg.Group), cfg.Timeout())
	if err != nil {
		errs.Line(fmt.Sprintf("Discovery failed: %v", err))
		return err
	}

	r := render.New(out, errs)
	for i := range servers {
		r.Server(&servers[i])
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the network for IDN servers",
	Long: `Run discovery passes on an interval and show the result live.

The screen displays the same inventory lines the plain listing prints,
refreshed after every pass. Press r to rescan immediately, q to quit.`,
	Example: `  # Rescan every 5 seconds (default)
  idnls watch

  # Slow scan of client group 3
  idnls watch --group 3 --timeout 2000 --interval 30`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&intervalFlag, "interval", 5, "Seconds between discovery passes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, provider, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	if intervalFlag < 1 {
		return exitUsage(cmd, "interval must be at least 1 second")
	}

	if err := transport.Startup(); err != nil {
		return fmt.Errorf("socket startup failed (error: %d)", transport.Errno(err))
	}
	defer func() {
		_ = transport.Cleanup()
	}()

	model := tui.NewWatch(provider, cfg.Provider, uint8(cfg.Group), cfg.Timeout(),
		time.Duration(intervalFlag)*time.Second)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List local IPv4 interfaces",
	Long: `List every local network interface with an IPv4 address.

These are the interfaces discovery queries go out on, and the prefixes
server addresses are checked against for the (ambiguous) and
(unreachable) annotations.`,
	RunE: runInterfaces,
}

func runInterfaces(cmd *cobra.Command, args []string) error {
	addrs, err := netif.IPv4Addresses()
	if err != nil {
		return fmt.Errorf("interface enumeration failed: %w", err)
	}

	if len(addrs) == 0 {
		fmt.Println("No IPv4 interfaces found.")
		return nil
	}
	for _, a := range addrs {
		fmt.Printf("%-16s %s\n", a.Name, a.Prefix)
	}
	return nil
}

var configInitCmd = &cobra.Command{
	Use:   "config-init",
	Short: "Write the configuration file",
	Long: `Write the effective configuration to the config file.

Flag values given alongside this command are stored, so
'idnls config-init --group 3 --timeout 2000' makes those the defaults
for every later run.`,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !serverlist.ValidGroup(cfg.Group) {
		return exitUsage(cmd, "group %d out of range 0-%d", cfg.Group, serverlist.MaxClientGroup)
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("idnls %s\n", version.Full())
	},
}
