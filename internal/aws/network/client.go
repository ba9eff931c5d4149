// Package network wraps the EC2 operations needed to provision, discover,
// and tear down one stack's network resources. Every mutating call either
// tags the resource at creation time or tolerates already-gone responses,
// so the operations stay safe to repeat.
package network

import (
	"context"
	"errors"
	"fmt"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/vpcforge/vpcforge/internal/retry"
)

// NetworkAPI is the subset of the EC2 client this package uses.
type NetworkAPI interface {
	CreateVpc(ctx context.Context, params *awsec2.CreateVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateVpcOutput, error)
	DescribeVpcs(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error)
	ModifyVpcAttribute(ctx context.Context, params *awsec2.ModifyVpcAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifyVpcAttributeOutput, error)
	DeleteVpc(ctx context.Context, params *awsec2.DeleteVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVpcOutput, error)

	DescribeAvailabilityZones(ctx context.Context, params *awsec2.DescribeAvailabilityZonesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeAvailabilityZonesOutput, error)

	CreateSubnet(ctx context.Context, params *awsec2.CreateSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSubnetOutput, error)
	DescribeSubnets(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error)
	ModifySubnetAttribute(ctx context.Context, params *awsec2.ModifySubnetAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifySubnetAttributeOutput, error)
	DeleteSubnet(ctx context.Context, params *awsec2.DeleteSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSubnetOutput, error)

	CreateInternetGateway(ctx context.Context, params *awsec2.CreateInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInternetGatewayOutput, error)
	AttachInternetGateway(ctx context.Context, params *awsec2.AttachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachInternetGatewayOutput, error)
	DescribeInternetGateways(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error)
	DetachInternetGateway(ctx context.Context, params *awsec2.DetachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachInternetGatewayOutput, error)
	DeleteInternetGateway(ctx context.Context, params *awsec2.DeleteInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteInternetGatewayOutput, error)

	AllocateAddress(ctx context.Context, params *awsec2.AllocateAddressInput, optFns ...func(*awsec2.Options)) (*awsec2.AllocateAddressOutput, error)
	DescribeAddresses(ctx context.Context, params *awsec2.DescribeAddressesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeAddressesOutput, error)
	ReleaseAddress(ctx context.Context, params *awsec2.ReleaseAddressInput, optFns ...func(*awsec2.Options)) (*awsec2.ReleaseAddressOutput, error)

	CreateNatGateway(ctx context.Context, params *awsec2.CreateNatGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateNatGatewayOutput, error)
	DescribeNatGateways(ctx context.Context, params *awsec2.DescribeNatGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNatGatewaysOutput, error)
	DeleteNatGateway(ctx context.Context, params *awsec2.DeleteNatGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteNatGatewayOutput, error)

	CreateRouteTable(ctx context.Context, params *awsec2.CreateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteTableOutput, error)
	DescribeRouteTables(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error)
	CreateRoute(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error)
	AssociateRouteTable(ctx context.Context, params *awsec2.AssociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateRouteTableOutput, error)
	DisassociateRouteTable(ctx context.Context, params *awsec2.DisassociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DisassociateRouteTableOutput, error)
	DeleteRouteTable(ctx context.Context, params *awsec2.DeleteRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteTableOutput, error)

	CreateSecurityGroup(ctx context.Context, params *awsec2.CreateSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSecurityGroupOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	AuthorizeSecurityGroupIngress(ctx context.Context, params *awsec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupIngressOutput, error)
	AuthorizeSecurityGroupEgress(ctx context.Context, params *awsec2.AuthorizeSecurityGroupEgressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupEgressOutput, error)
	DeleteSecurityGroup(ctx context.Context, params *awsec2.DeleteSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSecurityGroupOutput, error)
}

type Client struct {
	api      NetworkAPI
	waitOpts []retry.Option
}

// Option configures a Client.
type Option func(*Client)

// WithWaitBackoff overrides the backoff used while polling for resource
// state transitions. Tests use this to avoid real delays.
func WithWaitBackoff(opts ...retry.Option) Option {
	return func(c *Client) { c.waitOpts = opts }
}

func NewClient(api NetworkAPI, opts ...Option) *Client {
	c := &Client{api: api}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errNotReady signals that a polled resource has not reached the wanted
// state yet.
var errNotReady = errors.New("resource not ready")

// waitFor polls check until it reports ready, a bounded number of times.
// Transient provider errors are retried; anything else aborts the wait.
func (c *Client) waitFor(ctx context.Context, what string, check func(ctx context.Context) (bool, error)) error {
	opts := append([]retry.Option{
		retry.WithRetryable(func(err error) bool {
			return errors.Is(err, errNotReady) || IsTransient(err)
		}),
	}, c.waitOpts...)

	err := retry.Do(ctx, func() error {
		ready, err := check(ctx)
		if err != nil {
			return err
		}
		if !ready {
			return errNotReady
		}
		return nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", what, err)
	}
	return nil
}
