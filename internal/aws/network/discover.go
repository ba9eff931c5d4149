package network

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/vpcforge/vpcforge/internal/tags"
)

// FindVPCs returns the stack's VPCs. A healthy stack has exactly one; more
// than one means a previous create was interrupted before cleanup.
func (c *Client) FindVPCs(ctx context.Context, stack string) ([]VPCInfo, error) {
	var vpcs []VPCInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeVpcs(ctx, &awsec2.DescribeVpcsInput{
			Filters:   tags.StackFilters(stack),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeVpcs: %w", err)
		}
		for _, v := range out.Vpcs {
			vpcs = append(vpcs, VPCInfo{
				VPCID: aws.ToString(v.VpcId),
				Name:  tags.Value(v.Tags, tags.KeyName),
				CIDR:  aws.ToString(v.CidrBlock),
				State: string(v.State),
			})
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return vpcs, nil
}

// FindSubnets returns the stack's subnets ordered by the numeric index in
// their name (…-subnet-1, …-subnet-2, …-subnet-10), which yields the
// creation order regardless of provider ordering.
func (c *Client) FindSubnets(ctx context.Context, stack string) ([]SubnetInfo, error) {
	var subnets []SubnetInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeSubnets(ctx, &awsec2.DescribeSubnetsInput{
			Filters:   tags.StackFilters(stack),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeSubnets: %w", err)
		}
		for _, s := range out.Subnets {
			subnets = append(subnets, SubnetInfo{
				SubnetID: aws.ToString(s.SubnetId),
				Name:     tags.Value(s.Tags, tags.KeyName),
				CIDR:     aws.ToString(s.CidrBlock),
				AZ:       aws.ToString(s.AvailabilityZone),
				Role:     tags.Value(s.Tags, tags.KeyRole),
			})
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	sort.Slice(subnets, func(i, j int) bool { return nameIndexLess(subnets[i].Name, subnets[j].Name) })
	return subnets, nil
}

// nameIndexLess orders resource names by prefix, then by trailing index
// numerically, so "-subnet-10" sorts after "-subnet-2".
func nameIndexLess(a, b string) bool {
	prefixA, indexA := splitIndexSuffix(a)
	prefixB, indexB := splitIndexSuffix(b)
	if prefixA != prefixB {
		return prefixA < prefixB
	}
	return indexA < indexB
}

func splitIndexSuffix(name string) (string, int) {
	cut := strings.LastIndex(name, "-")
	if cut < 0 {
		return name, 0
	}
	index, err := strconv.Atoi(name[cut+1:])
	if err != nil {
		return name, 0
	}
	return name[:cut], index
}

// FindInternetGateways returns the stack's internet gateways with their
// current attachment, if any.
func (c *Client) FindInternetGateways(ctx context.Context, stack string) ([]InternetGatewayInfo, error) {
	var igws []InternetGatewayInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeInternetGateways(ctx, &awsec2.DescribeInternetGatewaysInput{
			Filters:   tags.StackFilters(stack),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeInternetGateways: %w", err)
		}
		for _, igw := range out.InternetGateways {
			info := InternetGatewayInfo{GatewayID: aws.ToString(igw.InternetGatewayId)}
			for _, att := range igw.Attachments {
				info.AttachedVPC = aws.ToString(att.VpcId)
				break
			}
			igws = append(igws, info)
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return igws, nil
}

// FindNATGateways returns the stack's NAT gateways that are not already
// deleted or deleting, along with their elastic IP allocations.
func (c *Client) FindNATGateways(ctx context.Context, stack string) ([]NATGatewayInfo, error) {
	var nats []NATGatewayInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeNatGateways(ctx, &awsec2.DescribeNatGatewaysInput{
			Filter:    tags.StackFilters(stack),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeNatGateways: %w", err)
		}
		for _, nat := range out.NatGateways {
			if nat.State == ec2types.NatGatewayStateDeleted || nat.State == ec2types.NatGatewayStateDeleting {
				continue
			}
			info := NATGatewayInfo{
				GatewayID: aws.ToString(nat.NatGatewayId),
				State:     string(nat.State),
				SubnetID:  aws.ToString(nat.SubnetId),
			}
			for _, addr := range nat.NatGatewayAddresses {
				if addr.AllocationId != nil {
					info.AllocationIDs = append(info.AllocationIDs, aws.ToString(addr.AllocationId))
				}
			}
			nats = append(nats, info)
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return nats, nil
}

// FindRouteTables returns the stack's route tables with their subnet
// associations.
func (c *Client) FindRouteTables(ctx context.Context, stack string) ([]RouteTableInfo, error) {
	var rts []RouteTableInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeRouteTables(ctx, &awsec2.DescribeRouteTablesInput{
			Filters:   tags.StackFilters(stack),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeRouteTables: %w", err)
		}
		for _, rt := range out.RouteTables {
			info := RouteTableInfo{
				RouteTableID: aws.ToString(rt.RouteTableId),
				Role:         tags.Value(rt.Tags, tags.KeyRole),
			}
			for _, assoc := range rt.Associations {
				if assoc.SubnetId == nil {
					continue
				}
				info.Associations = append(info.Associations, RouteTableAssociation{
					AssociationID: aws.ToString(assoc.RouteTableAssociationId),
					SubnetID:      aws.ToString(assoc.SubnetId),
				})
			}
			rts = append(rts, info)
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return rts, nil
}

// FindSecurityGroups returns the stack's security groups.
func (c *Client) FindSecurityGroups(ctx context.Context, stack string) ([]SecurityGroupInfo, error) {
	var sgs []SecurityGroupInfo
	var nextToken *string

	for {
		out, err := c.api.DescribeSecurityGroups(ctx, &awsec2.DescribeSecurityGroupsInput{
			Filters:   tags.StackFilters(stack),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeSecurityGroups: %w", err)
		}
		for _, sg := range out.SecurityGroups {
			sgs = append(sgs, SecurityGroupInfo{
				GroupID: aws.ToString(sg.GroupId),
				Name:    aws.ToString(sg.GroupName),
			})
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return sgs, nil
}

// FindElasticIPs returns the stack's elastic IP allocations.
// DescribeAddresses is not paginated.
func (c *Client) FindElasticIPs(ctx context.Context, stack string) ([]AddressInfo, error) {
	out, err := c.api.DescribeAddresses(ctx, &awsec2.DescribeAddressesInput{
		Filters: tags.StackFilters(stack),
	})
	if err != nil {
		return nil, fmt.Errorf("DescribeAddresses: %w", err)
	}
	var addrs []AddressInfo
	for _, a := range out.Addresses {
		addrs = append(addrs, AddressInfo{
			AllocationID:  aws.ToString(a.AllocationId),
			AssociationID: aws.ToString(a.AssociationId),
		})
	}
	return addrs, nil
}
