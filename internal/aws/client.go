package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	awsrdssdk "github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/vpcforge/vpcforge/internal/aws/network"
	awsrds "github.com/vpcforge/vpcforge/internal/aws/rds"
)

type ServiceClient struct {
	AccountID    string
	Network      *network.Client
	SubnetGroups *awsrds.Client
}

func NewServiceClient(ctx context.Context, profile, region string) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &ServiceClient{
		AccountID:    GetAccountID(ctx, sts.NewFromConfig(cfg)),
		Network:      network.NewClient(ec2.NewFromConfig(cfg)),
		SubnetGroups: awsrds.NewClient(awsrdssdk.NewFromConfig(cfg)),
	}, nil
}
