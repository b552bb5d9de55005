package server

import (
	"net/http"
	"net/netip"
)

// visitorIP returns the IP address of the client, or the
// zero address if it cannot be parsed.
func visitorIP(r *http.Request) netip.Addr {
	addrPort, err := netip.ParseAddrPort(r.RemoteAddr)
	if err == nil {
		return addrPort.Addr().Unmap()
	}
	// the real IP middleware sets the remote address without port
	ip, err := netip.ParseAddr(r.RemoteAddr)
	if err != nil {
		return netip.Addr{}
	}
	return ip.Unmap()
}
