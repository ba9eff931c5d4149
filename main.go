package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vpcforge/vpcforge/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vpcforge",
		Short: "Provision and tear down tagged VPC network stacks",
	}

	rootCmd.AddCommand(cmd.NewCreateCmd())
	rootCmd.AddCommand(cmd.NewDestroyCmd())
	rootCmd.AddCommand(cmd.NewStatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
