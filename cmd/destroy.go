package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpcforge/vpcforge/internal/config"
)

func NewDestroyCmd() *cobra.Command {
	var profile string
	var region string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "destroy <stack>",
		Short: "Tear down every resource of a stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stackID := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			profile, region, _ = cfg.Merge(profile, region, "")

			ctx := cmd.Context()
			logger := newLogger(logLevel)
			orch, err := newOrchestrator(ctx, profile, region, logger)
			if err != nil {
				return err
			}

			if err := orch.Cleanup(ctx, stackID); err != nil {
				return fmt.Errorf("destroying stack %q: %w", stackID, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "stack %q removed\n", stackID)
			return nil
		},
	}

	addConnectionFlags(cmd, &profile, &region, &logLevel)
	return cmd
}
