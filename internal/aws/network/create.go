package network

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/vpcforge/vpcforge/internal/tags"
)

// CreateVPC creates and tags a VPC, waits until it is available, and
// enables DNS support and DNS hostnames. Both DNS attributes are required
// so resources provisioned later can resolve internal and AWS service
// names.
func (c *Client) CreateVPC(ctx context.Context, stack, environment, cidr, name string) (string, error) {
	out, err := c.api.CreateVpc(ctx, &awsec2.CreateVpcInput{
		CidrBlock: aws.String(cidr),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeVpc,
			Tags:         tags.New(stack, environment).WithName(name).Build(),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("CreateVpc: %w", err)
	}
	vpcID := aws.ToString(out.Vpc.VpcId)

	err = c.waitFor(ctx, "vpc "+vpcID, func(ctx context.Context) (bool, error) {
		desc, err := c.api.DescribeVpcs(ctx, &awsec2.DescribeVpcsInput{VpcIds: []string{vpcID}})
		if err != nil {
			return false, err
		}
		return len(desc.Vpcs) == 1 && desc.Vpcs[0].State == ec2types.VpcStateAvailable, nil
	})
	if err != nil {
		return "", err
	}

	for _, attr := range []*awsec2.ModifyVpcAttributeInput{
		{VpcId: aws.String(vpcID), EnableDnsSupport: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)}},
		{VpcId: aws.String(vpcID), EnableDnsHostnames: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)}},
	} {
		if _, err := c.api.ModifyVpcAttribute(ctx, attr); err != nil {
			return "", fmt.Errorf("ModifyVpcAttribute: %w", err)
		}
	}
	return vpcID, nil
}

// AvailabilityZones returns the names of the region's available zones in
// provider order. The order is not guaranteed stable across calls.
func (c *Client) AvailabilityZones(ctx context.Context) ([]string, error) {
	out, err := c.api.DescribeAvailabilityZones(ctx, &awsec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("state"), Values: []string{"available"}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("DescribeAvailabilityZones: %w", err)
	}
	zones := make([]string, 0, len(out.AvailabilityZones))
	for _, az := range out.AvailabilityZones {
		zones = append(zones, aws.ToString(az.ZoneName))
	}
	return zones, nil
}

// CreateSubnet creates and tags a subnet in the given zone and waits until
// it is available. Public subnets additionally get map-public-ip-on-launch.
func (c *Client) CreateSubnet(ctx context.Context, stack, environment, vpcID, cidr, az, role, name string) (string, error) {
	out, err := c.api.CreateSubnet(ctx, &awsec2.CreateSubnetInput{
		VpcId:            aws.String(vpcID),
		CidrBlock:        aws.String(cidr),
		AvailabilityZone: aws.String(az),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeSubnet,
			Tags:         tags.New(stack, environment).WithName(name).WithRole(role).Build(),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("CreateSubnet %s: %w", cidr, err)
	}
	subnetID := aws.ToString(out.Subnet.SubnetId)

	err = c.waitFor(ctx, "subnet "+subnetID, func(ctx context.Context) (bool, error) {
		desc, err := c.api.DescribeSubnets(ctx, &awsec2.DescribeSubnetsInput{SubnetIds: []string{subnetID}})
		if err != nil {
			return false, err
		}
		return len(desc.Subnets) == 1 && desc.Subnets[0].State == ec2types.SubnetStateAvailable, nil
	})
	if err != nil {
		return "", err
	}

	if role == tags.RolePublic {
		_, err = c.api.ModifySubnetAttribute(ctx, &awsec2.ModifySubnetAttributeInput{
			SubnetId:            aws.String(subnetID),
			MapPublicIpOnLaunch: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)},
		})
		if err != nil {
			return "", fmt.Errorf("ModifySubnetAttribute: %w", err)
		}
	}
	return subnetID, nil
}

// CreateInternetGateway creates, tags, and attaches an internet gateway.
func (c *Client) CreateInternetGateway(ctx context.Context, stack, environment, vpcID, name string) (string, error) {
	out, err := c.api.CreateInternetGateway(ctx, &awsec2.CreateInternetGatewayInput{
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeInternetGateway,
			Tags:         tags.New(stack, environment).WithName(name).Build(),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("CreateInternetGateway: %w", err)
	}
	igwID := aws.ToString(out.InternetGateway.InternetGatewayId)

	_, err = c.api.AttachInternetGateway(ctx, &awsec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	if err != nil {
		return "", fmt.Errorf("AttachInternetGateway: %w", err)
	}
	return igwID, nil
}

// AllocateElasticIP allocates a VPC-scoped elastic IP and returns its
// allocation id.
func (c *Client) AllocateElasticIP(ctx context.Context, stack, environment, name string) (string, error) {
	out, err := c.api.AllocateAddress(ctx, &awsec2.AllocateAddressInput{
		Domain: ec2types.DomainTypeVpc,
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeElasticIp,
			Tags:         tags.New(stack, environment).WithName(name).Build(),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("AllocateAddress: %w", err)
	}
	return aws.ToString(out.AllocationId), nil
}

// CreateNATGateway creates a NAT gateway bound to the elastic IP in the
// given public subnet and waits until it is available. NAT gateways take
// minutes to come up, which is why the wait is bounded rather than fixed.
func (c *Client) CreateNATGateway(ctx context.Context, stack, environment, subnetID, allocationID, name string) (string, error) {
	out, err := c.api.CreateNatGateway(ctx, &awsec2.CreateNatGatewayInput{
		SubnetId:     aws.String(subnetID),
		AllocationId: aws.String(allocationID),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeNatgateway,
			Tags:         tags.New(stack, environment).WithName(name).Build(),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("CreateNatGateway: %w", err)
	}
	natID := aws.ToString(out.NatGateway.NatGatewayId)

	err = c.waitFor(ctx, "nat gateway "+natID, func(ctx context.Context) (bool, error) {
		desc, err := c.api.DescribeNatGateways(ctx, &awsec2.DescribeNatGatewaysInput{NatGatewayIds: []string{natID}})
		if err != nil {
			return false, err
		}
		if len(desc.NatGateways) != 1 {
			return false, nil
		}
		switch desc.NatGateways[0].State {
		case ec2types.NatGatewayStateAvailable:
			return true, nil
		case ec2types.NatGatewayStateFailed:
			return false, fmt.Errorf("nat gateway %s entered failed state: %s",
				natID, aws.ToString(desc.NatGateways[0].FailureMessage))
		default:
			return false, nil
		}
	})
	if err != nil {
		return "", err
	}
	return natID, nil
}

// CreateRouteTable creates and tags a route table in the VPC.
func (c *Client) CreateRouteTable(ctx context.Context, stack, environment, vpcID, role, name string) (string, error) {
	out, err := c.api.CreateRouteTable(ctx, &awsec2.CreateRouteTableInput{
		VpcId: aws.String(vpcID),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeRouteTable,
			Tags:         tags.New(stack, environment).WithName(name).WithRole(role).Build(),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("CreateRouteTable: %w", err)
	}
	return aws.ToString(out.RouteTable.RouteTableId), nil
}

// CreateRouteToInternetGateway installs a default route through the
// internet gateway.
func (c *Client) CreateRouteToInternetGateway(ctx context.Context, routeTableID, igwID string) error {
	_, err := c.api.CreateRoute(ctx, &awsec2.CreateRouteInput{
		RouteTableId:         aws.String(routeTableID),
		DestinationCidrBlock: aws.String("0.0.0.0/0"),
		GatewayId:            aws.String(igwID),
	})
	if err != nil {
		return fmt.Errorf("CreateRoute to %s: %w", igwID, err)
	}
	return nil
}

// CreateRouteToNATGateway installs a default route through the NAT
// gateway.
func (c *Client) CreateRouteToNATGateway(ctx context.Context, routeTableID, natID string) error {
	_, err := c.api.CreateRoute(ctx, &awsec2.CreateRouteInput{
		RouteTableId:         aws.String(routeTableID),
		DestinationCidrBlock: aws.String("0.0.0.0/0"),
		NatGatewayId:         aws.String(natID),
	})
	if err != nil {
		return fmt.Errorf("CreateRoute to %s: %w", natID, err)
	}
	return nil
}

// AssociateRouteTable binds a route table to a subnet.
func (c *Client) AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) (string, error) {
	out, err := c.api.AssociateRouteTable(ctx, &awsec2.AssociateRouteTableInput{
		RouteTableId: aws.String(routeTableID),
		SubnetId:     aws.String(subnetID),
	})
	if err != nil {
		return "", fmt.Errorf("AssociateRouteTable: %w", err)
	}
	return aws.ToString(out.AssociationId), nil
}

// CreateSecurityGroup creates the database security group: ingress on
// dbPort from the stack's own CIDR only, egress open. A duplicate-rule
// response on either authorization is treated as success.
func (c *Client) CreateSecurityGroup(ctx context.Context, stack, environment, vpcID, vpcCIDR string, dbPort int32, name string) (string, error) {
	out, err := c.api.CreateSecurityGroup(ctx, &awsec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String("database access for stack " + stack),
		VpcId:       aws.String(vpcID),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeSecurityGroup,
			Tags:         tags.New(stack, environment).WithName(name).Build(),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("CreateSecurityGroup: %w", err)
	}
	sgID := aws.ToString(out.GroupId)

	_, err = c.api.AuthorizeSecurityGroupIngress(ctx, &awsec2.AuthorizeSecurityGroupIngressInput{
		GroupId: aws.String(sgID),
		IpPermissions: []ec2types.IpPermission{{
			IpProtocol: aws.String("tcp"),
			FromPort:   aws.Int32(dbPort),
			ToPort:     aws.Int32(dbPort),
			IpRanges:   []ec2types.IpRange{{CidrIp: aws.String(vpcCIDR)}},
		}},
	})
	if err != nil && !IsAlreadyExists(err) {
		return "", fmt.Errorf("AuthorizeSecurityGroupIngress: %w", err)
	}

	_, err = c.api.AuthorizeSecurityGroupEgress(ctx, &awsec2.AuthorizeSecurityGroupEgressInput{
		GroupId: aws.String(sgID),
		IpPermissions: []ec2types.IpPermission{{
			IpProtocol: aws.String("-1"),
			IpRanges:   []ec2types.IpRange{{CidrIp: aws.String("0.0.0.0/0")}},
		}},
	})
	if err != nil && !IsAlreadyExists(err) {
		return "", fmt.Errorf("AuthorizeSecurityGroupEgress: %w", err)
	}
	return sgID, nil
}
