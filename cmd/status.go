package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpcforge/vpcforge/internal/config"
	"github.com/vpcforge/vpcforge/internal/stack"
)

func NewStatusCmd() *cobra.Command {
	var profile string
	var region string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "status <stack>",
		Short: "Show the resources currently tagged for a stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stackID := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			profile, region, _ = cfg.Merge(profile, region, "")

			ctx := cmd.Context()
			orch, err := newOrchestrator(ctx, profile, region, newLogger(logLevel))
			if err != nil {
				return err
			}

			handle, err := orch.Discover(ctx, stackID)
			if errors.Is(err, stack.ErrStackNotFound) {
				return fmt.Errorf("stack %q not found", stackID)
			}
			if err != nil {
				return err
			}

			printHandle(cmd.OutOrStdout(), handle)
			return nil
		},
	}

	addConnectionFlags(cmd, &profile, &region, &logLevel)
	return cmd
}
