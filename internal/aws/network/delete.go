package network

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Deletion operations. Every one of them treats an already-gone resource
// as success so a teardown can be re-run after a partial failure.

func (c *Client) DisassociateRouteTable(ctx context.Context, associationID string) error {
	_, err := c.api.DisassociateRouteTable(ctx, &awsec2.DisassociateRouteTableInput{
		AssociationId: aws.String(associationID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DisassociateRouteTable %s: %w", associationID, err)
	}
	return nil
}

func (c *Client) DeleteRouteTable(ctx context.Context, routeTableID string) error {
	_, err := c.api.DeleteRouteTable(ctx, &awsec2.DeleteRouteTableInput{
		RouteTableId: aws.String(routeTableID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteRouteTable %s: %w", routeTableID, err)
	}
	return nil
}

// DeleteNATGateway deletes the NAT gateway and waits for the deletion to
// finish. The elastic IP cannot be released until the gateway is fully
// gone, which is why the wait happens here rather than in the caller.
func (c *Client) DeleteNATGateway(ctx context.Context, natID string) error {
	_, err := c.api.DeleteNatGateway(ctx, &awsec2.DeleteNatGatewayInput{
		NatGatewayId: aws.String(natID),
	})
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("DeleteNatGateway %s: %w", natID, err)
	}

	return c.waitFor(ctx, "nat gateway "+natID+" deletion", func(ctx context.Context) (bool, error) {
		desc, err := c.api.DescribeNatGateways(ctx, &awsec2.DescribeNatGatewaysInput{NatGatewayIds: []string{natID}})
		if err != nil {
			if IsNotFound(err) {
				return true, nil
			}
			return false, err
		}
		if len(desc.NatGateways) == 0 {
			return true, nil
		}
		return desc.NatGateways[0].State == ec2types.NatGatewayStateDeleted, nil
	})
}

func (c *Client) ReleaseElasticIP(ctx context.Context, allocationID string) error {
	_, err := c.api.ReleaseAddress(ctx, &awsec2.ReleaseAddressInput{
		AllocationId: aws.String(allocationID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("ReleaseAddress %s: %w", allocationID, err)
	}
	return nil
}

func (c *Client) DeleteSubnet(ctx context.Context, subnetID string) error {
	_, err := c.api.DeleteSubnet(ctx, &awsec2.DeleteSubnetInput{
		SubnetId: aws.String(subnetID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteSubnet %s: %w", subnetID, err)
	}
	return nil
}

func (c *Client) DetachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	_, err := c.api.DetachInternetGateway(ctx, &awsec2.DetachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DetachInternetGateway %s: %w", igwID, err)
	}
	return nil
}

func (c *Client) DeleteInternetGateway(ctx context.Context, igwID string) error {
	_, err := c.api.DeleteInternetGateway(ctx, &awsec2.DeleteInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteInternetGateway %s: %w", igwID, err)
	}
	return nil
}

func (c *Client) DeleteSecurityGroup(ctx context.Context, groupID string) error {
	_, err := c.api.DeleteSecurityGroup(ctx, &awsec2.DeleteSecurityGroupInput{
		GroupId: aws.String(groupID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteSecurityGroup %s: %w", groupID, err)
	}
	return nil
}

func (c *Client) DeleteVPC(ctx context.Context, vpcID string) error {
	_, err := c.api.DeleteVpc(ctx, &awsec2.DeleteVpcInput{
		VpcId: aws.String(vpcID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteVpc %s: %w", vpcID, err)
	}
	return nil
}
