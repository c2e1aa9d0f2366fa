// internal/modbus/client.go
// Package modbus wraps exactly one Modbus TCP connection to an ISG gateway.
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

var errNotConnected = errors.New("not connected")

// Error wraps a failed register operation with its location and cause.
// Timeouts, resets and device exception codes all end up here.
type Error struct {
	Op      string
	Address uint16
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("modbus: %s @%d: %v", e.Op, e.Address, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client serializes all register traffic over one TCP connection. The ISG
// does not handle pipelined requests, so every operation and connect/close
// runs under a single critical section. Connect and Close are idempotent.
type Client struct {
	mu        sync.Mutex
	handler   *modbus.TCPClientHandler
	client    modbus.Client
	connected bool
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}
	if err := c.handler.Connect(); err != nil {
		return &Error{Op: "connect", Err: err}
	}
	c.connected = true
	return nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	err := c.handler.Close()
	c.connected = false
	return err
}

func (c *Client) ReadInputRegisters(unit uint8, addr, count uint16) ([]uint16, error) {
	return c.read("read input registers", unit, addr, count, func() ([]byte, error) {
		return c.client.ReadInputRegisters(addr, count)
	})
}

func (c *Client) ReadHoldingRegisters(unit uint8, addr, count uint16) ([]uint16, error) {
	return c.read("read holding registers", unit, addr, count, func() ([]byte, error) {
		return c.client.ReadHoldingRegisters(addr, count)
	})
}

func (c *Client) WriteRegisters(unit uint8, addr uint16, values []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	const op = "write registers"
	if !c.connected {
		return &Error{Op: op, Address: addr, Err: errNotConnected}
	}

	c.handler.SlaveId = unit
	qty := uint16(len(values))
	if _, err := c.client.WriteMultipleRegisters(addr, qty, packRegisters(values)); err != nil {
		return &Error{Op: op, Address: addr, Err: err}
	}
	return nil
}

func (c *Client) read(op string, unit uint8, addr, count uint16, call func() ([]byte, error)) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, &Error{Op: op, Address: addr, Err: errNotConnected}
	}

	c.handler.SlaveId = unit
	raw, err := call()
	if err != nil {
		return nil, &Error{Op: op, Address: addr, Err: err}
	}
	if len(raw) != int(count)*2 {
		return nil, &Error{
			Op:      op,
			Address: addr,
			Err:     fmt.Errorf("short response: got %d bytes, want %d", len(raw), int(count)*2),
		}
	}
	return unpackRegisters(raw), nil
}

// ---- helpers (pure geometry) ----

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}

func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
