package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	awsclient "github.com/vpcforge/vpcforge/internal/aws"
	"github.com/vpcforge/vpcforge/internal/logging"
	"github.com/vpcforge/vpcforge/internal/stack"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(20)
)

func addConnectionFlags(cmd *cobra.Command, profile, region, logLevel *string) {
	cmd.Flags().StringVarP(profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(region, "region", "r", "", "AWS region to use")
	cmd.Flags().StringVar(logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) *slog.Logger {
	return logging.New(os.Stderr, logging.ParseLevel(level))
}

func newOrchestrator(ctx context.Context, profile, region string, logger *slog.Logger) (*stack.Orchestrator, error) {
	client, err := awsclient.NewServiceClient(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("initializing AWS client: %w", err)
	}
	if client.AccountID != "" {
		logger.Info("using AWS account", "account", client.AccountID)
	}
	return stack.New(client.Network, client.SubnetGroups, logger), nil
}

func printHandle(w io.Writer, handle *stack.Handle) {
	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), value)
	}
	rows := func(label string, values []string) {
		if len(values) == 0 {
			row(label, "")
			return
		}
		for i, value := range values {
			if i == 0 {
				row(label, value)
				continue
			}
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render(""), value)
		}
	}

	fmt.Fprintln(w, titleStyle.Render("Stack "+handle.StackID))
	row("VPC", handle.VPCID)
	rows("Zones", handle.AvailabilityZones)
	rows("Public subnets", handle.PublicSubnetIDs)
	rows("Private subnets", handle.PrivateSubnetIDs)
	row("Internet gateway", handle.InternetGatewayID)
	row("NAT gateway", handle.NATGatewayID)
	row("Elastic IP", handle.AllocationID)
	row("DB security group", handle.SecurityGroupID)
	row("DB subnet group", handle.SubnetGroupName)
}
