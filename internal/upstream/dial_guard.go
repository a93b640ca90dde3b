package upstream

import (
	"fmt"
	"net"
	"net/netip"
	"syscall"
)

var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// RejectNonPublicAddress is a net.Dialer Control hook that refuses connections to
// loopback, private, link-local, multicast and unspecified addresses. It runs after
// DNS resolution, so a public name pointing at an internal address is refused too.
func RejectNonPublicAddress(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrImageHostNotAllowed, address)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrImageHostNotAllowed, address)
	}
	addr = addr.Unmap()

	if !addr.IsGlobalUnicast() || addr.IsPrivate() || sharedAddressSpace.Contains(addr) {
		return fmt.Errorf("%w: %s", ErrImageHostNotAllowed, addr)
	}
	return nil
}
