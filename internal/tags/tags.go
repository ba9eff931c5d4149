// Package tags defines the tagging convention that ties every provisioned
// resource back to its stack. Discovery and cleanup filter on these tags,
// never on ids held in memory, which is what keeps repeated create and
// destroy invocations safe across process restarts.
package tags

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Standard tag keys. The vpcforge.io prefix namespaces them away from
// user-owned tags on the same account.
const (
	// KeyStack identifies which stack a resource belongs to.
	KeyStack = "vpcforge.io/stack"

	// KeyEnvironment carries the caller-supplied environment label.
	KeyEnvironment = "vpcforge.io/environment"

	// KeyRole distinguishes public from private subnets and route tables.
	KeyRole = "vpcforge.io/role"

	// KeyManagedBy marks resources this tool may delete.
	KeyManagedBy = "vpcforge.io/managed-by"

	// KeyName is the console display name.
	KeyName = "Name"
)

// Role values.
const (
	RolePublic  = "public"
	RolePrivate = "private"
)

// ManagedBy is the only value ever written under KeyManagedBy.
const ManagedBy = "vpcforge"

// Builder assembles the tag set for one resource.
type Builder struct {
	tags []ec2types.Tag
}

// New returns a Builder pre-populated with the stack, environment, and
// managed-by tags every resource carries.
func New(stack, environment string) *Builder {
	return &Builder{tags: []ec2types.Tag{
		{Key: aws.String(KeyStack), Value: aws.String(stack)},
		{Key: aws.String(KeyEnvironment), Value: aws.String(environment)},
		{Key: aws.String(KeyManagedBy), Value: aws.String(ManagedBy)},
	}}
}

// WithName adds the console display name.
func (b *Builder) WithName(name string) *Builder {
	b.tags = append(b.tags, ec2types.Tag{Key: aws.String(KeyName), Value: aws.String(name)})
	return b
}

// WithRole adds the public/private role tag.
func (b *Builder) WithRole(role string) *Builder {
	b.tags = append(b.tags, ec2types.Tag{Key: aws.String(KeyRole), Value: aws.String(role)})
	return b
}

// Build returns the accumulated tag set.
func (b *Builder) Build() []ec2types.Tag {
	return b.tags
}

// StackFilters returns the describe-call filters selecting resources
// belonging to the given stack and managed by this tool.
func StackFilters(stack string) []ec2types.Filter {
	return []ec2types.Filter{
		{Name: aws.String("tag:" + KeyStack), Values: []string{stack}},
		{Name: aws.String("tag:" + KeyManagedBy), Values: []string{ManagedBy}},
	}
}

// Value extracts the value of key from a resource's tag set, or "".
func Value(set []ec2types.Tag, key string) string {
	for _, tag := range set {
		if aws.ToString(tag.Key) == key {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}
