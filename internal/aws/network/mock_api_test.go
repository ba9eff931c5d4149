package network

import (
	"context"
	"fmt"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

// mockNetworkAPI implements NetworkAPI with per-method func fields. Methods
// without a configured func fail loudly so tests only exercise the calls
// they expect.
type mockNetworkAPI struct {
	createVpcFunc          func(ctx context.Context, params *awsec2.CreateVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateVpcOutput, error)
	describeVpcsFunc       func(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error)
	modifyVpcAttributeFunc func(ctx context.Context, params *awsec2.ModifyVpcAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifyVpcAttributeOutput, error)
	deleteVpcFunc          func(ctx context.Context, params *awsec2.DeleteVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVpcOutput, error)

	describeAvailabilityZonesFunc func(ctx context.Context, params *awsec2.DescribeAvailabilityZonesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeAvailabilityZonesOutput, error)

	createSubnetFunc          func(ctx context.Context, params *awsec2.CreateSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSubnetOutput, error)
	describeSubnetsFunc       func(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error)
	modifySubnetAttributeFunc func(ctx context.Context, params *awsec2.ModifySubnetAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifySubnetAttributeOutput, error)
	deleteSubnetFunc          func(ctx context.Context, params *awsec2.DeleteSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSubnetOutput, error)

	createInternetGatewayFunc    func(ctx context.Context, params *awsec2.CreateInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInternetGatewayOutput, error)
	attachInternetGatewayFunc    func(ctx context.Context, params *awsec2.AttachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachInternetGatewayOutput, error)
	describeInternetGatewaysFunc func(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error)
	detachInternetGatewayFunc    func(ctx context.Context, params *awsec2.DetachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachInternetGatewayOutput, error)
	deleteInternetGatewayFunc    func(ctx context.Context, params *awsec2.DeleteInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteInternetGatewayOutput, error)

	allocateAddressFunc   func(ctx context.Context, params *awsec2.AllocateAddressInput, optFns ...func(*awsec2.Options)) (*awsec2.AllocateAddressOutput, error)
	describeAddressesFunc func(ctx context.Context, params *awsec2.DescribeAddressesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeAddressesOutput, error)
	releaseAddressFunc    func(ctx context.Context, params *awsec2.ReleaseAddressInput, optFns ...func(*awsec2.Options)) (*awsec2.ReleaseAddressOutput, error)

	createNatGatewayFunc    func(ctx context.Context, params *awsec2.CreateNatGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateNatGatewayOutput, error)
	describeNatGatewaysFunc func(ctx context.Context, params *awsec2.DescribeNatGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNatGatewaysOutput, error)
	deleteNatGatewayFunc    func(ctx context.Context, params *awsec2.DeleteNatGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteNatGatewayOutput, error)

	createRouteTableFunc       func(ctx context.Context, params *awsec2.CreateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteTableOutput, error)
	describeRouteTablesFunc    func(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error)
	createRouteFunc            func(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error)
	associateRouteTableFunc    func(ctx context.Context, params *awsec2.AssociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateRouteTableOutput, error)
	disassociateRouteTableFunc func(ctx context.Context, params *awsec2.DisassociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DisassociateRouteTableOutput, error)
	deleteRouteTableFunc       func(ctx context.Context, params *awsec2.DeleteRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteTableOutput, error)

	createSecurityGroupFunc           func(ctx context.Context, params *awsec2.CreateSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSecurityGroupOutput, error)
	describeSecurityGroupsFunc        func(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	authorizeSecurityGroupIngressFunc func(ctx context.Context, params *awsec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupIngressOutput, error)
	authorizeSecurityGroupEgressFunc  func(ctx context.Context, params *awsec2.AuthorizeSecurityGroupEgressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupEgressOutput, error)
	deleteSecurityGroupFunc           func(ctx context.Context, params *awsec2.DeleteSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSecurityGroupOutput, error)
}

func unexpectedCall(method string) error {
	return fmt.Errorf("unexpected call to %s", method)
}

func (m *mockNetworkAPI) CreateVpc(ctx context.Context, params *awsec2.CreateVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateVpcOutput, error) {
	if m.createVpcFunc == nil {
		return nil, unexpectedCall("CreateVpc")
	}
	return m.createVpcFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeVpcs(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error) {
	if m.describeVpcsFunc == nil {
		return nil, unexpectedCall("DescribeVpcs")
	}
	return m.describeVpcsFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) ModifyVpcAttribute(ctx context.Context, params *awsec2.ModifyVpcAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifyVpcAttributeOutput, error) {
	if m.modifyVpcAttributeFunc == nil {
		return nil, unexpectedCall("ModifyVpcAttribute")
	}
	return m.modifyVpcAttributeFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DeleteVpc(ctx context.Context, params *awsec2.DeleteVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVpcOutput, error) {
	if m.deleteVpcFunc == nil {
		return nil, unexpectedCall("DeleteVpc")
	}
	return m.deleteVpcFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeAvailabilityZones(ctx context.Context, params *awsec2.DescribeAvailabilityZonesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeAvailabilityZonesOutput, error) {
	if m.describeAvailabilityZonesFunc == nil {
		return nil, unexpectedCall("DescribeAvailabilityZones")
	}
	return m.describeAvailabilityZonesFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) CreateSubnet(ctx context.Context, params *awsec2.CreateSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSubnetOutput, error) {
	if m.createSubnetFunc == nil {
		return nil, unexpectedCall("CreateSubnet")
	}
	return m.createSubnetFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeSubnets(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error) {
	if m.describeSubnetsFunc == nil {
		return nil, unexpectedCall("DescribeSubnets")
	}
	return m.describeSubnetsFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) ModifySubnetAttribute(ctx context.Context, params *awsec2.ModifySubnetAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifySubnetAttributeOutput, error) {
	if m.modifySubnetAttributeFunc == nil {
		return nil, unexpectedCall("ModifySubnetAttribute")
	}
	return m.modifySubnetAttributeFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DeleteSubnet(ctx context.Context, params *awsec2.DeleteSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSubnetOutput, error) {
	if m.deleteSubnetFunc == nil {
		return nil, unexpectedCall("DeleteSubnet")
	}
	return m.deleteSubnetFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) CreateInternetGateway(ctx context.Context, params *awsec2.CreateInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInternetGatewayOutput, error) {
	if m.createInternetGatewayFunc == nil {
		return nil, unexpectedCall("CreateInternetGateway")
	}
	return m.createInternetGatewayFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) AttachInternetGateway(ctx context.Context, params *awsec2.AttachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachInternetGatewayOutput, error) {
	if m.attachInternetGatewayFunc == nil {
		return nil, unexpectedCall("AttachInternetGateway")
	}
	return m.attachInternetGatewayFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeInternetGateways(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error) {
	if m.describeInternetGatewaysFunc == nil {
		return nil, unexpectedCall("DescribeInternetGateways")
	}
	return m.describeInternetGatewaysFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DetachInternetGateway(ctx context.Context, params *awsec2.DetachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachInternetGatewayOutput, error) {
	if m.detachInternetGatewayFunc == nil {
		return nil, unexpectedCall("DetachInternetGateway")
	}
	return m.detachInternetGatewayFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DeleteInternetGateway(ctx context.Context, params *awsec2.DeleteInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteInternetGatewayOutput, error) {
	if m.deleteInternetGatewayFunc == nil {
		return nil, unexpectedCall("DeleteInternetGateway")
	}
	return m.deleteInternetGatewayFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) AllocateAddress(ctx context.Context, params *awsec2.AllocateAddressInput, optFns ...func(*awsec2.Options)) (*awsec2.AllocateAddressOutput, error) {
	if m.allocateAddressFunc == nil {
		return nil, unexpectedCall("AllocateAddress")
	}
	return m.allocateAddressFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeAddresses(ctx context.Context, params *awsec2.DescribeAddressesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeAddressesOutput, error) {
	if m.describeAddressesFunc == nil {
		return nil, unexpectedCall("DescribeAddresses")
	}
	return m.describeAddressesFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) ReleaseAddress(ctx context.Context, params *awsec2.ReleaseAddressInput, optFns ...func(*awsec2.Options)) (*awsec2.ReleaseAddressOutput, error) {
	if m.releaseAddressFunc == nil {
		return nil, unexpectedCall("ReleaseAddress")
	}
	return m.releaseAddressFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) CreateNatGateway(ctx context.Context, params *awsec2.CreateNatGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateNatGatewayOutput, error) {
	if m.createNatGatewayFunc == nil {
		return nil, unexpectedCall("CreateNatGateway")
	}
	return m.createNatGatewayFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeNatGateways(ctx context.Context, params *awsec2.DescribeNatGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNatGatewaysOutput, error) {
	if m.describeNatGatewaysFunc == nil {
		return nil, unexpectedCall("DescribeNatGateways")
	}
	return m.describeNatGatewaysFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DeleteNatGateway(ctx context.Context, params *awsec2.DeleteNatGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteNatGatewayOutput, error) {
	if m.deleteNatGatewayFunc == nil {
		return nil, unexpectedCall("DeleteNatGateway")
	}
	return m.deleteNatGatewayFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) CreateRouteTable(ctx context.Context, params *awsec2.CreateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteTableOutput, error) {
	if m.createRouteTableFunc == nil {
		return nil, unexpectedCall("CreateRouteTable")
	}
	return m.createRouteTableFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeRouteTables(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error) {
	if m.describeRouteTablesFunc == nil {
		return nil, unexpectedCall("DescribeRouteTables")
	}
	return m.describeRouteTablesFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) CreateRoute(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error) {
	if m.createRouteFunc == nil {
		return nil, unexpectedCall("CreateRoute")
	}
	return m.createRouteFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) AssociateRouteTable(ctx context.Context, params *awsec2.AssociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateRouteTableOutput, error) {
	if m.associateRouteTableFunc == nil {
		return nil, unexpectedCall("AssociateRouteTable")
	}
	return m.associateRouteTableFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DisassociateRouteTable(ctx context.Context, params *awsec2.DisassociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DisassociateRouteTableOutput, error) {
	if m.disassociateRouteTableFunc == nil {
		return nil, unexpectedCall("DisassociateRouteTable")
	}
	return m.disassociateRouteTableFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DeleteRouteTable(ctx context.Context, params *awsec2.DeleteRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteTableOutput, error) {
	if m.deleteRouteTableFunc == nil {
		return nil, unexpectedCall("DeleteRouteTable")
	}
	return m.deleteRouteTableFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) CreateSecurityGroup(ctx context.Context, params *awsec2.CreateSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSecurityGroupOutput, error) {
	if m.createSecurityGroupFunc == nil {
		return nil, unexpectedCall("CreateSecurityGroup")
	}
	return m.createSecurityGroupFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error) {
	if m.describeSecurityGroupsFunc == nil {
		return nil, unexpectedCall("DescribeSecurityGroups")
	}
	return m.describeSecurityGroupsFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) AuthorizeSecurityGroupIngress(ctx context.Context, params *awsec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupIngressOutput, error) {
	if m.authorizeSecurityGroupIngressFunc == nil {
		return nil, unexpectedCall("AuthorizeSecurityGroupIngress")
	}
	return m.authorizeSecurityGroupIngressFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) AuthorizeSecurityGroupEgress(ctx context.Context, params *awsec2.AuthorizeSecurityGroupEgressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupEgressOutput, error) {
	if m.authorizeSecurityGroupEgressFunc == nil {
		return nil, unexpectedCall("AuthorizeSecurityGroupEgress")
	}
	return m.authorizeSecurityGroupEgressFunc(ctx, params, optFns...)
}

func (m *mockNetworkAPI) DeleteSecurityGroup(ctx context.Context, params *awsec2.DeleteSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSecurityGroupOutput, error) {
	if m.deleteSecurityGroupFunc == nil {
		return nil, unexpectedCall("DeleteSecurityGroup")
	}
	return m.deleteSecurityGroupFunc(ctx, params, optFns...)
}
