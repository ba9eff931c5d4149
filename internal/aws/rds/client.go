// Package rds wraps the small slice of the RDS API this tool needs: the
// DB subnet group that a later database provisioning step places instances
// into. Subnet groups are identified by name rather than by tags, so the
// name is derived deterministically from the stack id.
package rds

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsrds "github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/vpcforge/vpcforge/internal/tags"
)

// SubnetGroupAPI is the subset of the RDS client we use.
type SubnetGroupAPI interface {
	CreateDBSubnetGroup(ctx context.Context, params *awsrds.CreateDBSubnetGroupInput, optFns ...func(*awsrds.Options)) (*awsrds.CreateDBSubnetGroupOutput, error)
	DescribeDBSubnetGroups(ctx context.Context, params *awsrds.DescribeDBSubnetGroupsInput, optFns ...func(*awsrds.Options)) (*awsrds.DescribeDBSubnetGroupsOutput, error)
	DeleteDBSubnetGroup(ctx context.Context, params *awsrds.DeleteDBSubnetGroupInput, optFns ...func(*awsrds.Options)) (*awsrds.DeleteDBSubnetGroupOutput, error)
}

type Client struct {
	api SubnetGroupAPI
}

func NewClient(api SubnetGroupAPI) *Client {
	return &Client{api: api}
}

// ErrSubnetGroupNotFound is returned by DescribeSubnetGroup when the named
// group does not exist.
var ErrSubnetGroupNotFound = errors.New("db subnet group not found")

// CreateSubnetGroup creates the named DB subnet group over the given
// subnets. An already-existing group with the same name is treated as
// success and its description is returned instead.
func (c *Client) CreateSubnetGroup(ctx context.Context, stack, environment, name string, subnetIDs []string) (string, error) {
	out, err := c.api.CreateDBSubnetGroup(ctx, &awsrds.CreateDBSubnetGroupInput{
		DBSubnetGroupName:        aws.String(name),
		DBSubnetGroupDescription: aws.String("private subnets for stack " + stack),
		SubnetIds:                subnetIDs,
		Tags: []rdstypes.Tag{
			{Key: aws.String(tags.KeyStack), Value: aws.String(stack)},
			{Key: aws.String(tags.KeyEnvironment), Value: aws.String(environment)},
			{Key: aws.String(tags.KeyManagedBy), Value: aws.String(tags.ManagedBy)},
		},
	})
	if err != nil {
		var exists *rdstypes.DBSubnetGroupAlreadyExistsFault
		if errors.As(err, &exists) {
			return name, nil
		}
		return "", fmt.Errorf("CreateDBSubnetGroup %s: %w", name, err)
	}
	return aws.ToString(out.DBSubnetGroup.DBSubnetGroupName), nil
}

// SubnetGroupInfo describes an existing DB subnet group.
type SubnetGroupInfo struct {
	Name      string
	SubnetIDs []string
}

// DescribeSubnetGroup looks up the named group, returning
// ErrSubnetGroupNotFound when it does not exist.
func (c *Client) DescribeSubnetGroup(ctx context.Context, name string) (*SubnetGroupInfo, error) {
	out, err := c.api.DescribeDBSubnetGroups(ctx, &awsrds.DescribeDBSubnetGroupsInput{
		DBSubnetGroupName: aws.String(name),
	})
	if err != nil {
		var notFound *rdstypes.DBSubnetGroupNotFoundFault
		if errors.As(err, &notFound) {
			return nil, ErrSubnetGroupNotFound
		}
		return nil, fmt.Errorf("DescribeDBSubnetGroups %s: %w", name, err)
	}
	if len(out.DBSubnetGroups) == 0 {
		return nil, ErrSubnetGroupNotFound
	}

	group := out.DBSubnetGroups[0]
	info := &SubnetGroupInfo{Name: aws.ToString(group.DBSubnetGroupName)}
	for _, s := range group.Subnets {
		info.SubnetIDs = append(info.SubnetIDs, aws.ToString(s.SubnetIdentifier))
	}
	return info, nil
}

// DeleteSubnetGroup removes the named group. A missing group is success.
func (c *Client) DeleteSubnetGroup(ctx context.Context, name string) error {
	_, err := c.api.DeleteDBSubnetGroup(ctx, &awsrds.DeleteDBSubnetGroupInput{
		DBSubnetGroupName: aws.String(name),
	})
	if err != nil {
		var notFound *rdstypes.DBSubnetGroupNotFoundFault
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("DeleteDBSubnetGroup %s: %w", name, err)
	}
	return nil
}
