package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/omrozmn/x-ear-sub003/cmd/http"
	systemcmd "github.com/omrozmn/x-ear-sub003/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "xear",
	Short: "X-Ear patient and device management for hearing aid clinics.",
	Long: `X-Ear is the back office for hearing aid clinics. It tracks patients,
device stock, assignments with SGK pricing, payments and appointments,
one unified deployment per clinic chain.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
