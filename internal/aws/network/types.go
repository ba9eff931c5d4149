package network

type VPCInfo struct {
	VPCID string
	Name  string
	CIDR  string
	State string
}

type SubnetInfo struct {
	SubnetID string
	Name     string
	CIDR     string
	AZ       string
	Role     string // public or private
}

type InternetGatewayInfo struct {
	GatewayID   string
	AttachedVPC string // empty when detached
}

type NATGatewayInfo struct {
	GatewayID     string
	State         string
	SubnetID      string
	AllocationIDs []string
}

type RouteTableInfo struct {
	RouteTableID string
	Role         string
	Associations []RouteTableAssociation
}

type RouteTableAssociation struct {
	AssociationID string
	SubnetID      string
}

type SecurityGroupInfo struct {
	GroupID string
	Name    string
}

type AddressInfo struct {
	AllocationID  string
	AssociationID string
}
