// Package naming provides consistent naming for stack resources.
// All names follow the {stack}-{kind} pattern so that a stack's resources
// are recognizable in the console even without inspecting tags.
package naming

import "fmt"

func VPC(stack string) string {
	return fmt.Sprintf("%s-vpc", stack)
}

func InternetGateway(stack string) string {
	return fmt.Sprintf("%s-igw", stack)
}

func NATGateway(stack string) string {
	return fmt.Sprintf("%s-nat", stack)
}

func NATElasticIP(stack string) string {
	return fmt.Sprintf("%s-nat-eip", stack)
}

// PublicSubnet names the i-th (zero-based) public subnet.
func PublicSubnet(stack string, i int) string {
	return fmt.Sprintf("%s-public-subnet-%d", stack, i+1)
}

// PrivateSubnet names the i-th (zero-based) private subnet.
func PrivateSubnet(stack string, i int) string {
	return fmt.Sprintf("%s-private-subnet-%d", stack, i+1)
}

func PublicRouteTable(stack string, i int) string {
	return fmt.Sprintf("%s-public-rt-%d", stack, i+1)
}

func PrivateRouteTable(stack string, i int) string {
	return fmt.Sprintf("%s-private-rt-%d", stack, i+1)
}

func SecurityGroup(stack string) string {
	return fmt.Sprintf("%s-db-sg", stack)
}

// SubnetGroup names the RDS DB subnet group. Unlike the EC2 resources the
// subnet group is identified by this name rather than by tags, so it must
// be derivable from the stack id alone.
func SubnetGroup(stack string) string {
	return fmt.Sprintf("%s-subnet-group", stack)
}
