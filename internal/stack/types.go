package stack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStackNotFound is returned by Discover when no tagged resources exist
// for the requested stack.
var ErrStackNotFound = errors.New("no resources found for stack")

// Config holds the tunable parameters of a stack. The zero value is not
// usable directly; Create applies defaults for any unset field.
type Config struct {
	CIDR        string
	ZoneCount   int
	Environment string
	DBEngine    string
	DBPort      int32
}

func (c Config) withDefaults() Config {
	if c.CIDR == "" {
		c.CIDR = "10.0.0.0/16"
	}
	if c.ZoneCount == 0 {
		c.ZoneCount = 2
	}
	if c.Environment == "" {
		c.Environment = "dev"
	}
	if c.DBEngine == "" {
		c.DBEngine = "postgres"
	}
	if c.DBPort == 0 {
		c.DBPort = 5432
	}
	return c
}

// Handle identifies every resource a stack owns. Discover rebuilds it from
// tags, so callers never need to persist it between runs.
type Handle struct {
	StackID           string
	VPCID             string
	PublicSubnetIDs   []string
	PrivateSubnetIDs  []string
	InternetGatewayID string
	NATGatewayID      string
	AllocationID      string
	SecurityGroupID   string
	SubnetGroupName   string
	AvailabilityZones []string
}

// IsEmpty reports whether the handle references no resources at all.
func (h *Handle) IsEmpty() bool {
	return h.VPCID == "" &&
		len(h.PublicSubnetIDs) == 0 &&
		len(h.PrivateSubnetIDs) == 0 &&
		h.InternetGatewayID == "" &&
		h.NATGatewayID == "" &&
		h.AllocationID == "" &&
		h.SecurityGroupID == "" &&
		h.SubnetGroupName == ""
}

// StepError reports a failed creation step. Partial references everything
// created before the failure so the caller can hand it to Cleanup.
type StepError struct {
	Step    string
	Stack   string
	Partial *Handle
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("create step %q failed for stack %q: %v", e.Step, e.Stack, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// CleanupError collects the failures of a best-effort teardown.
type CleanupError struct {
	Errors []error
}

func (e *CleanupError) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *CleanupError) HasErrors() bool {
	return len(e.Errors) > 0
}

func (e *CleanupError) Error() string {
	if len(e.Errors) == 0 {
		return "no cleanup errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("cleanup finished with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *CleanupError) Unwrap() []error {
	return e.Errors
}
