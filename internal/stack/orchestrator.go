// Package stack creates, discovers, and tears down the full network stack
// for one environment: a VPC with public and private subnets across several
// availability zones, internet and NAT egress, route tables, a database
// security group, and an RDS subnet group. Every resource carries stack
// tags, so a stack is always rediscoverable without local state.
package stack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vpcforge/vpcforge/internal/aws/network"
	"github.com/vpcforge/vpcforge/internal/aws/rds"
	"github.com/vpcforge/vpcforge/internal/naming"
	"github.com/vpcforge/vpcforge/internal/tags"
)

// Orchestrator sequences the lifecycle of a stack against the cloud APIs.
type Orchestrator struct {
	network      *network.Client
	subnetGroups *rds.Client
	log          *slog.Logger
}

func New(networkClient *network.Client, subnetGroups *rds.Client, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		network:      networkClient,
		subnetGroups: subnetGroups,
		log:          logger,
	}
}

// Create provisions every resource of the stack in dependency order. On
// failure it returns a StepError whose Partial handle references everything
// created so far; callers pass that handle (or just the stack ID) to Cleanup.
// Create does not roll back on its own.
func (o *Orchestrator) Create(ctx context.Context, stackID string, cfg Config) (*Handle, error) {
	cfg = cfg.withDefaults()
	handle := &Handle{StackID: stackID}

	publicCIDRs, privateCIDRs, err := SubnetCIDRs(cfg.CIDR, cfg.ZoneCount)
	if err != nil {
		return nil, err
	}

	fail := func(step string, err error) (*Handle, error) {
		return nil, &StepError{Step: step, Stack: stackID, Partial: handle, Err: err}
	}

	o.log.Info("creating VPC", "stack", stackID, "cidr", cfg.CIDR)
	handle.VPCID, err = o.network.CreateVPC(ctx, stackID, cfg.Environment, cfg.CIDR, naming.VPC(stackID))
	if err != nil {
		return fail("vpc", err)
	}

	o.log.Info("creating internet gateway", "stack", stackID, "vpc", handle.VPCID)
	handle.InternetGatewayID, err = o.network.CreateInternetGateway(ctx, stackID, cfg.Environment, handle.VPCID, naming.InternetGateway(stackID))
	if err != nil {
		return fail("internet-gateway", err)
	}

	o.log.Info("allocating elastic IP", "stack", stackID)
	handle.AllocationID, err = o.network.AllocateElasticIP(ctx, stackID, cfg.Environment, naming.NATElasticIP(stackID))
	if err != nil {
		return fail("elastic-ip", err)
	}

	zones, err := o.network.AvailabilityZones(ctx)
	if err != nil {
		return fail("availability-zones", err)
	}
	if len(zones) < cfg.ZoneCount {
		return fail("availability-zones", fmt.Errorf("region has %d available zones, stack needs %d", len(zones), cfg.ZoneCount))
	}
	handle.AvailabilityZones = zones[:cfg.ZoneCount]

	for i, az := range handle.AvailabilityZones {
		o.log.Info("creating subnets", "stack", stackID, "zone", az)
		subnetID, err := o.network.CreateSubnet(ctx, stackID, cfg.Environment, handle.VPCID, publicCIDRs[i], az, tags.RolePublic, naming.PublicSubnet(stackID, i))
		if err != nil {
			return fail("subnets", err)
		}
		handle.PublicSubnetIDs = append(handle.PublicSubnetIDs, subnetID)

		subnetID, err = o.network.CreateSubnet(ctx, stackID, cfg.Environment, handle.VPCID, privateCIDRs[i], az, tags.RolePrivate, naming.PrivateSubnet(stackID, i))
		if err != nil {
			return fail("subnets", err)
		}
		handle.PrivateSubnetIDs = append(handle.PrivateSubnetIDs, subnetID)
	}

	o.log.Info("creating NAT gateway", "stack", stackID, "subnet", handle.PublicSubnetIDs[0])
	handle.NATGatewayID, err = o.network.CreateNATGateway(ctx, stackID, cfg.Environment, handle.PublicSubnetIDs[0], handle.AllocationID, naming.NATGateway(stackID))
	if err != nil {
		return fail("nat-gateway", err)
	}

	for i, subnetID := range handle.PublicSubnetIDs {
		o.log.Info("routing public subnet", "stack", stackID, "subnet", subnetID)
		rtID, err := o.network.CreateRouteTable(ctx, stackID, cfg.Environment, handle.VPCID, tags.RolePublic, naming.PublicRouteTable(stackID, i))
		if err != nil {
			return fail("public-route-tables", err)
		}
		if err := o.network.CreateRouteToInternetGateway(ctx, rtID, handle.InternetGatewayID); err != nil {
			return fail("public-route-tables", err)
		}
		if _, err := o.network.AssociateRouteTable(ctx, rtID, subnetID); err != nil {
			return fail("public-route-tables", err)
		}
	}

	for i, subnetID := range handle.PrivateSubnetIDs {
		o.log.Info("routing private subnet", "stack", stackID, "subnet", subnetID)
		rtID, err := o.network.CreateRouteTable(ctx, stackID, cfg.Environment, handle.VPCID, tags.RolePrivate, naming.PrivateRouteTable(stackID, i))
		if err != nil {
			return fail("private-route-tables", err)
		}
		if err := o.network.CreateRouteToNATGateway(ctx, rtID, handle.NATGatewayID); err != nil {
			return fail("private-route-tables", err)
		}
		if _, err := o.network.AssociateRouteTable(ctx, rtID, subnetID); err != nil {
			return fail("private-route-tables", err)
		}
	}

	o.log.Info("creating database security group", "stack", stackID)
	handle.SecurityGroupID, err = o.network.CreateSecurityGroup(ctx, stackID, cfg.Environment, handle.VPCID, cfg.CIDR, cfg.DBPort, naming.SecurityGroup(stackID))
	if err != nil {
		return fail("security-group", err)
	}

	o.log.Info("creating DB subnet group", "stack", stackID, "engine", cfg.DBEngine)
	handle.SubnetGroupName, err = o.subnetGroups.CreateSubnetGroup(ctx, stackID, cfg.Environment, naming.SubnetGroup(stackID), handle.PrivateSubnetIDs)
	if err != nil {
		return fail("db-subnet-group", err)
	}

	o.log.Info("stack ready", "stack", stackID, "vpc", handle.VPCID)
	return handle, nil
}

// Discover rebuilds a stack handle from tagged resources. It returns
// ErrStackNotFound when nothing tagged with the stack ID exists; a partial
// handle from an interrupted create is returned as-is.
func (o *Orchestrator) Discover(ctx context.Context, stackID string) (*Handle, error) {
	handle := &Handle{StackID: stackID}

	vpcs, err := o.network.FindVPCs(ctx, stackID)
	if err != nil {
		return nil, fmt.Errorf("discovering VPCs: %w", err)
	}
	if len(vpcs) > 1 {
		o.log.Warn("multiple VPCs tagged for stack, using first", "stack", stackID, "count", len(vpcs))
	}
	if len(vpcs) > 0 {
		handle.VPCID = vpcs[0].VPCID
	}

	subnets, err := o.network.FindSubnets(ctx, stackID)
	if err != nil {
		return nil, fmt.Errorf("discovering subnets: %w", err)
	}
	for _, subnet := range subnets {
		switch subnet.Role {
		case tags.RolePublic:
			handle.PublicSubnetIDs = append(handle.PublicSubnetIDs, subnet.SubnetID)
			handle.AvailabilityZones = append(handle.AvailabilityZones, subnet.AZ)
		case tags.RolePrivate:
			handle.PrivateSubnetIDs = append(handle.PrivateSubnetIDs, subnet.SubnetID)
		}
	}

	igws, err := o.network.FindInternetGateways(ctx, stackID)
	if err != nil {
		return nil, fmt.Errorf("discovering internet gateways: %w", err)
	}
	if len(igws) > 0 {
		handle.InternetGatewayID = igws[0].GatewayID
	}

	nats, err := o.network.FindNATGateways(ctx, stackID)
	if err != nil {
		return nil, fmt.Errorf("discovering NAT gateways: %w", err)
	}
	if len(nats) > 0 {
		handle.NATGatewayID = nats[0].GatewayID
	}

	addrs, err := o.network.FindElasticIPs(ctx, stackID)
	if err != nil {
		return nil, fmt.Errorf("discovering elastic IPs: %w", err)
	}
	if len(addrs) > 0 {
		handle.AllocationID = addrs[0].AllocationID
	}

	sgs, err := o.network.FindSecurityGroups(ctx, stackID)
	if err != nil {
		return nil, fmt.Errorf("discovering security groups: %w", err)
	}
	if len(sgs) > 0 {
		handle.SecurityGroupID = sgs[0].GroupID
	}

	group, err := o.subnetGroups.DescribeSubnetGroup(ctx, naming.SubnetGroup(stackID))
	if err != nil && !errors.Is(err, rds.ErrSubnetGroupNotFound) {
		return nil, fmt.Errorf("discovering DB subnet group: %w", err)
	}
	if group != nil {
		handle.SubnetGroupName = group.Name
	}

	if handle.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrStackNotFound, stackID)
	}
	return handle, nil
}

// Cleanup tears down every tagged resource of the stack in reverse
// dependency order. Missing resources are skipped silently, so Cleanup is
// safe to run repeatedly and against partial stacks. Failures are collected
// and the teardown keeps going; the result is a *CleanupError when anything
// went wrong.
func (o *Orchestrator) Cleanup(ctx context.Context, stackID string) error {
	cleanupErrs := &CleanupError{}

	o.log.Info("deleting DB subnet group", "stack", stackID)
	if err := o.subnetGroups.DeleteSubnetGroup(ctx, naming.SubnetGroup(stackID)); err != nil {
		cleanupErrs.Add(fmt.Errorf("deleting DB subnet group: %w", err))
	}

	sgs, err := o.network.FindSecurityGroups(ctx, stackID)
	if err != nil {
		cleanupErrs.Add(fmt.Errorf("discovering security groups: %w", err))
	}
	for _, sg := range sgs {
		o.log.Info("deleting security group", "stack", stackID, "group", sg.GroupID)
		if err := o.network.DeleteSecurityGroup(ctx, sg.GroupID); err != nil {
			cleanupErrs.Add(fmt.Errorf("deleting security group %s: %w", sg.GroupID, err))
		}
	}

	routeTables, err := o.network.FindRouteTables(ctx, stackID)
	if err != nil {
		cleanupErrs.Add(fmt.Errorf("discovering route tables: %w", err))
	}
	for _, rt := range routeTables {
		for _, assoc := range rt.Associations {
			if err := o.network.DisassociateRouteTable(ctx, assoc.AssociationID); err != nil {
				cleanupErrs.Add(fmt.Errorf("disassociating route table %s: %w", rt.RouteTableID, err))
			}
		}
		o.log.Info("deleting route table", "stack", stackID, "table", rt.RouteTableID)
		if err := o.network.DeleteRouteTable(ctx, rt.RouteTableID); err != nil {
			cleanupErrs.Add(fmt.Errorf("deleting route table %s: %w", rt.RouteTableID, err))
		}
	}

	nats, err := o.network.FindNATGateways(ctx, stackID)
	if err != nil {
		cleanupErrs.Add(fmt.Errorf("discovering NAT gateways: %w", err))
	}
	for _, nat := range nats {
		o.log.Info("deleting NAT gateway", "stack", stackID, "gateway", nat.GatewayID)
		if err := o.network.DeleteNATGateway(ctx, nat.GatewayID); err != nil {
			cleanupErrs.Add(fmt.Errorf("deleting NAT gateway %s: %w", nat.GatewayID, err))
		}
	}

	addrs, err := o.network.FindElasticIPs(ctx, stackID)
	if err != nil {
		cleanupErrs.Add(fmt.Errorf("discovering elastic IPs: %w", err))
	}
	for _, addr := range addrs {
		o.log.Info("releasing elastic IP", "stack", stackID, "allocation", addr.AllocationID)
		if err := o.network.ReleaseElasticIP(ctx, addr.AllocationID); err != nil {
			cleanupErrs.Add(fmt.Errorf("releasing elastic IP %s: %w", addr.AllocationID, err))
		}
	}

	subnets, err := o.network.FindSubnets(ctx, stackID)
	if err != nil {
		cleanupErrs.Add(fmt.Errorf("discovering subnets: %w", err))
	}
	for _, subnet := range subnets {
		o.log.Info("deleting subnet", "stack", stackID, "subnet", subnet.SubnetID)
		if err := o.network.DeleteSubnet(ctx, subnet.SubnetID); err != nil {
			cleanupErrs.Add(fmt.Errorf("deleting subnet %s: %w", subnet.SubnetID, err))
		}
	}

	igws, err := o.network.FindInternetGateways(ctx, stackID)
	if err != nil {
		cleanupErrs.Add(fmt.Errorf("discovering internet gateways: %w", err))
	}
	for _, igw := range igws {
		if igw.AttachedVPC != "" {
			if err := o.network.DetachInternetGateway(ctx, igw.GatewayID, igw.AttachedVPC); err != nil {
				cleanupErrs.Add(fmt.Errorf("detaching internet gateway %s: %w", igw.GatewayID, err))
			}
		}
		o.log.Info("deleting internet gateway", "stack", stackID, "gateway", igw.GatewayID)
		if err := o.network.DeleteInternetGateway(ctx, igw.GatewayID); err != nil {
			cleanupErrs.Add(fmt.Errorf("deleting internet gateway %s: %w", igw.GatewayID, err))
		}
	}

	vpcs, err := o.network.FindVPCs(ctx, stackID)
	if err != nil {
		cleanupErrs.Add(fmt.Errorf("discovering VPCs: %w", err))
	}
	for _, vpc := range vpcs {
		o.log.Info("deleting VPC", "stack", stackID, "vpc", vpc.VPCID)
		if err := o.network.DeleteVPC(ctx, vpc.VPCID); err != nil {
			cleanupErrs.Add(fmt.Errorf("deleting VPC %s: %w", vpc.VPCID, err))
		}
	}

	if cleanupErrs.HasErrors() {
		return cleanupErrs
	}
	o.log.Info("stack removed", "stack", stackID)
	return nil
}
