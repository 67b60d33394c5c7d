package server

import (
	"errors"
	"fmt"
	"net/netip"
)

// DefaultBindAddr is used when no bind address is configured.
const DefaultBindAddr = "0.0.0.0:8080"

var ErrInvalidBindAddr = errors.New("invalid bind address")

type HttpConfig struct {
	// BindAddr is the literal ip:port socket address to listen on.
	BindAddr string `conf:"bind_addr"`

	// H2c enables the HTTP/2 cleartext upgrade.
	H2c bool `conf:"http_h2c"`
}

// Validate checks that BindAddr is a literal socket address.
// Host names are rejected, the address must be ip:port.
func (c HttpConfig) Validate() error {
	if _, err := ParseBindAddr(c.BindAddr); err != nil {
		return err
	}

	return nil
}

// ParseBindAddr parses addr as an ip:port socket address,
// with IPv6 addresses enclosed in brackets.
func ParseBindAddr(addr string) (netip.AddrPort, error) {
	addrPort, err := netip.ParseAddrPort(addr)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("%w %q: %v", ErrInvalidBindAddr, addr, err)
	}

	return addrPort, nil
}
