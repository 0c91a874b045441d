package service

import (
	"context"
	"fmt"
	"net"
	"time"
)

// NetworkMonitor reports connectivity and makes one bounded attempt to regain it.
type NetworkMonitor interface {
	Connected(ctx context.Context) bool
	Reconnect(ctx context.Context) error
}

// DialMonitor checks connectivity by opening a TCP connection to a well-known address.
type DialMonitor struct {
	addr      string
	timeout   time.Duration
	retryWait time.Duration
	dialer    net.Dialer
}

const (
	defaultDialAddr    = "api.open-meteo.com:443"
	defaultDialTimeout = 3 * time.Second
	defaultRetryWait   = time.Second
)

func NewDialMonitor(addr string, timeout, retryWait time.Duration) *DialMonitor {
	if addr == "" {
		addr = defaultDialAddr
	}
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	if retryWait <= 0 {
		retryWait = defaultRetryWait
	}
	return &DialMonitor{addr: addr, timeout: timeout, retryWait: retryWait}
}

func (m *DialMonitor) Connected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	conn, err := m.dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Reconnect waits once and dials again.
func (m *DialMonitor) Reconnect(ctx context.Context) error {
	t := time.NewTimer(m.retryWait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	if !m.Connected(ctx) {
		return fmt.Errorf("%s unreachable", m.addr)
	}
	return nil
}
