package stack

import (
	"fmt"
	"net/netip"
)

// SubnetCIDRs carves per-zone /24 blocks out of the stack CIDR. Zone i
// (zero-based) gets the (2i+1)-th /24 for its public subnet and the
// (2i+2)-th for its private subnet; the 0-th block is left unused. Under a
// /16 parent the scheme stays overlap-free for up to 127 zones.
func SubnetCIDRs(parent string, zones int) (public, private []string, err error) {
	if zones < 1 {
		return nil, nil, fmt.Errorf("zone count must be at least 1, got %d", zones)
	}

	prefix, err := netip.ParsePrefix(parent)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing stack CIDR %q: %w", parent, err)
	}
	if !prefix.Addr().Is4() {
		return nil, nil, fmt.Errorf("stack CIDR %q must be IPv4", parent)
	}
	if prefix.Bits() > 24 {
		return nil, nil, fmt.Errorf("stack CIDR %q is smaller than a /24, cannot carve subnets", parent)
	}

	blocks := 1 << (24 - prefix.Bits())
	if highest := 2 * zones; highest > blocks-1 {
		return nil, nil, fmt.Errorf("stack CIDR %q holds %d /24 blocks, %d zones need %d", parent, blocks, zones, 2*zones+1)
	}

	base := prefix.Masked().Addr().As4()
	block := func(k int) string {
		addr := base
		idx := int(addr[1])<<8 + int(addr[2]) + k
		addr[1] = byte(idx >> 8)
		addr[2] = byte(idx)
		addr[3] = 0
		return netip.PrefixFrom(netip.AddrFrom4(addr), 24).String()
	}

	for i := 0; i < zones; i++ {
		public = append(public, block(2*i+1))
		private = append(private, block(2*i+2))
	}
	return public, private, nil
}
