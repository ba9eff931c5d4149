package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpcforge/vpcforge/internal/config"
	"github.com/vpcforge/vpcforge/internal/stack"
)

func NewCreateCmd() *cobra.Command {
	var profile string
	var region string
	var logLevel string
	var environment string
	var cidr string
	var zones int
	var dbEngine string
	var dbPort int32

	cmd := &cobra.Command{
		Use:   "create <stack>",
		Short: "Provision the network stack for an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stackID := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			profile, region, environment = cfg.Merge(profile, region, environment)

			ctx := cmd.Context()
			logger := newLogger(logLevel)
			orch, err := newOrchestrator(ctx, profile, region, logger)
			if err != nil {
				return err
			}

			existing, err := orch.Discover(ctx, stackID)
			if err == nil {
				return fmt.Errorf("stack %q already has resources (VPC %s); run destroy first", stackID, existing.VPCID)
			}
			if !errors.Is(err, stack.ErrStackNotFound) {
				return err
			}

			handle, err := orch.Create(ctx, stackID, stack.Config{
				CIDR:        cidr,
				ZoneCount:   zones,
				Environment: environment,
				DBEngine:    dbEngine,
				DBPort:      dbPort,
			})
			if err != nil {
				var stepErr *stack.StepError
				if errors.As(err, &stepErr) {
					logger.Error("creation failed, partial resources remain",
						"stack", stackID, "step", stepErr.Step)
					return fmt.Errorf("%w; run \"vpcforge destroy %s\" to remove what was created", err, stackID)
				}
				return err
			}

			printHandle(cmd.OutOrStdout(), handle)
			return nil
		},
	}

	addConnectionFlags(cmd, &profile, &region, &logLevel)
	cmd.Flags().StringVar(&environment, "env", "", "environment tag value (default dev)")
	cmd.Flags().StringVar(&cidr, "cidr", "10.0.0.0/16", "VPC CIDR block")
	cmd.Flags().IntVar(&zones, "zones", 2, "number of availability zones")
	cmd.Flags().StringVar(&dbEngine, "db-engine", "postgres", "database engine the stack is built for")
	cmd.Flags().Int32Var(&dbPort, "db-port", 5432, "database port opened to the VPC")

	return cmd
}
