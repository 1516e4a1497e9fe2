// Package cli implements the ipcalc command surface: a thin cobra-based
// wrapper that drives the address/parser/range/allocator API for manual
// exercise and scripting.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	goip "github.com/LucasZ876/IPAddress-sub000"
	"github.com/LucasZ876/IPAddress-sub000/address_string"
	"github.com/LucasZ876/IPAddress-sub000/internal/cliconfig"
)

// applyPrefixMode sets the process-wide prefix configuration named by mode,
// defaulting to the library default when the name is empty or unrecognized.
func applyPrefixMode(mode string) {
	switch mode {
	case "zero-hosts-subnets":
		goip.SetDefaultPrefixConfiguration(goip.ZeroHostsAreSubnets)
	case "explicit":
		goip.SetDefaultPrefixConfiguration(goip.PrefixedSubnetsAreExplicit)
	default:
		goip.SetDefaultPrefixConfiguration(goip.AllPrefixedAddressesAreSubnets)
	}
}

// NewRootCmd constructs the ipcalc command tree with isolated state, so
// tests can build independent instances against their own writer.
func NewRootCmd(out io.Writer) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "ipcalc",
		Short: "IPv4/IPv6 address, subnet, and range calculator",
		Long:  "ipcalc parses, masks, spans, and allocates IP addresses and CIDR blocks.",
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML defaults file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		applyPrefixMode(cfg.PrefixMode)
		return nil
	}

	var useWildcards bool
	parseCmd := &cobra.Command{
		Use:   "parse <address>",
		Short: "Parse an address string and print its version, string form, prefix length and count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := goip.NewIPAddressString(args[0]).ToAddress()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if addr == nil {
				_, err := fmt.Fprintln(w, "* (all addresses)")
				return err
			}
			fmt.Fprintf(w, "version: %s\n", addr.GetIPVersion())
			normalized := addr.String()
			if useWildcards {
				opts := new(address_string.WildcardOptionsBuilder).SetPreferWildcards(true).ToOptions()
				if v4 := addr.ToIPv4(); v4 != nil {
					normalized = v4.ToCustomString(opts)
				} else if v6 := addr.ToIPv6(); v6 != nil {
					normalized = v6.ToCustomString(opts)
				}
			}
			fmt.Fprintf(w, "normalized: %s\n", normalized)
			if p := addr.GetNetworkPrefixLen(); p != nil {
				fmt.Fprintf(w, "prefix: /%d\n", p.Len())
			}
			fmt.Fprintf(w, "count: %d\n", addr.GetCount())
			return nil
		},
	}
	parseCmd.Flags().BoolVar(&useWildcards, "wildcards", false, "render multi-valued segments with '*'/'-' wildcards instead of numeric ranges")

	maskCmd := &cobra.Command{
		Use:   "mask <address> <mask-or-prefix>",
		Short: "Apply a bitwise mask (or CIDR prefix) to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := goip.NewIPAddressString(args[0] + "/" + strings.TrimPrefix(args[1], "/")).ToAddress()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr.String())
			return nil
		},
	}

	spanCmd := &cobra.Command{
		Use:   "span <lower> <upper>",
		Short: "Decompose a closed address interval into minimal CIDR blocks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lower, err := goip.NewIPAddressString(args[0]).ToAddress()
			if err != nil {
				return err
			}
			upper, err := goip.NewIPAddressString(args[1]).ToAddress()
			if err != nil {
				return err
			}
			r := goip.NewSequentialRange(lower, upper)
			w := cmd.OutOrStdout()
			for _, block := range r.SpanningPrefixBlocks() {
				fmt.Fprintln(w, block.String())
			}
			return nil
		},
	}

	var reserved int
	allocateCmd := &cobra.Command{
		Use:   "allocate <pool-cidr> <size...>",
		Short: "Serve size requests from a CIDR pool using best-fit allocation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := goip.NewIPAddressString(args[0]).ToAddress()
			if err != nil {
				return err
			}
			sizes := make([]int, 0, len(args)-1)
			for _, s := range args[1:] {
				n, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", s, err)
				}
				sizes = append(sizes, n)
			}
			allocator := goip.NewPrefixBlockAllocator(pool.GetIPVersion(), reserved)
			allocator.AddAvailable(pool)
			w := cmd.OutOrStdout()
			for _, block := range allocator.AllocateSizes(sizes) {
				fmt.Fprintln(w, block.String())
			}
			return nil
		},
	}
	allocateCmd.Flags().IntVar(&reserved, "reserved", 0, "addresses reserved per allocation (network/broadcast/gateway overhead)")

	convertCmd := &cobra.Command{
		Use:   "convert <address>",
		Short: "Convert between IPv4 and its IPv4-mapped IPv6 form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := goip.NewIPAddressString(args[0]).ToAddress()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if v4 := addr.ToIPv4(); v4 != nil {
				fmt.Fprintln(w, v4.ToIPv4Mapped().ToMixedString())
				return nil
			}
			if v6 := addr.ToIPv6(); v6 != nil {
				v4 := v6.ToIPv4()
				if v4 == nil {
					return errors.New("address is not IPv4-convertible")
				}
				fmt.Fprintln(w, v4.String())
				return nil
			}
			return errors.New("unrecognized address family")
		},
	}

	rootCmd.AddCommand(parseCmd, maskCmd, spanCmd, allocateCmd, convertCmd)
	return rootCmd
}

// Execute builds and runs the CLI using os.Stdout, exiting non-zero on error.
func Execute() {
	cmd := NewRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ipcalc: %v\n", err)
		os.Exit(1)
	}
}
