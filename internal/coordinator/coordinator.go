// internal/coordinator/coordinator.go
// Package coordinator owns the transport and the decoded snapshot. It runs
// poll cycles against the ISG, merges block results and dispatches
// setpoint writes.
package coordinator

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/tamzrod/isg-poller/internal/codec"
	"github.com/tamzrod/isg-poller/internal/regmap"
)

// The ISG always answers as Modbus unit 1.
const unitID uint8 = 1

// Device identity lives in the SG Ready input block: state word, model word.
const (
	identityAddress uint16 = 5000
	identityCount   uint16 = 2
)

// Heat pump reset, WPM only.
const (
	resetAddress uint16 = 1519
	resetValue   uint16 = 3
)

// Transport is the exact contract the coordinator needs from the Modbus
// layer. All operations are blocking and mutually exclusive; Connect and
// Close are idempotent.
type Transport interface {
	Connect() error
	Close() error
	ReadInputRegisters(unit uint8, addr, count uint16) ([]uint16, error)
	ReadHoldingRegisters(unit uint8, addr, count uint16) ([]uint16, error)
	WriteRegisters(unit uint8, addr uint16, values []uint16) error
}

// Coordinator polls one ISG and keeps the merged snapshot. The snapshot
// map is owned exclusively by the coordinator; Snapshot and Refresh hand
// out copies.
type Coordinator struct {
	tr  Transport
	log *zap.Logger

	mu    sync.RWMutex
	def   *regmap.Definition
	model string
	data  map[string]any
}

func New(tr Transport, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		tr:   tr,
		log:  log,
		data: make(map[string]any),
	}
}

// Refresh runs one poll cycle: connect if needed, read every block of the
// active layout in its fixed order, decode and merge. A connect failure
// fails the whole cycle; a failed block keeps its previous snapshot values
// while the remaining blocks still refresh.
func (c *Coordinator) Refresh() (map[string]any, error) {
	if err := c.tr.Connect(); err != nil {
		return nil, fmt.Errorf("coordinator: connect: %w", err)
	}

	def, err := c.resolveIdentity()
	if err != nil {
		return nil, fmt.Errorf("coordinator: resolve device identity: %w", err)
	}

	merged := make(map[string]any)
	for _, b := range def.Blocks {
		words, err := c.readBlock(b)
		if err != nil {
			c.log.Warn("block read failed",
				zap.String("block", b.Role),
				zap.Error(err))
			continue
		}

		fields, err := regmap.DecodeBlock(b, words)
		if err != nil {
			// Layout mismatch. A table bug, not a device problem.
			c.log.Error("block decode failed",
				zap.String("block", b.Role),
				zap.Error(err))
			continue
		}

		for k, v := range fields {
			merged[k] = v
		}
	}

	c.mu.Lock()
	for k, v := range merged {
		c.data[k] = v
	}
	if id, ok := merged[regmap.FieldModelID].(int); ok {
		c.model = regmap.ModelName(uint16(id))
	}
	snap := copySnapshot(c.data)
	model := c.model
	c.mu.Unlock()

	c.log.Debug("poll cycle merged",
		zap.Int("fields", len(merged)),
		zap.String("model", model))
	return snap, nil
}

// Set writes one setpoint. Field ids the active family does not expose are
// ignored so a generic caller can probe optional setpoints. On success the
// snapshot is updated with the value as passed; the next cycle reconciles
// it with the device.
func (c *Coordinator) Set(field string, value any) error {
	def := c.definition()
	if def == nil {
		return errors.New("coordinator: device identity not resolved")
	}

	w, ok := def.Writable[field]
	if !ok {
		return nil
	}

	word, err := encodeWord(value, w.Scale)
	if err != nil {
		return err
	}

	if err := c.tr.WriteRegisters(unitID, w.Address, []uint16{word}); err != nil {
		return err
	}

	c.mu.Lock()
	c.data[field] = value
	c.mu.Unlock()

	c.log.Debug("setpoint written",
		zap.String("field", field),
		zap.Uint16("address", w.Address))
	return nil
}

// Reset restarts the heat pump. Only the WPM generation exposes the reset
// register.
func (c *Coordinator) Reset() error {
	def := c.definition()
	if def == nil || !def.Extended {
		return errors.New("coordinator: reset requires a WPM controller")
	}
	return c.tr.WriteRegisters(unitID, resetAddress, []uint16{resetValue})
}

// Snapshot returns a copy of the current best-known values.
func (c *Coordinator) Snapshot() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySnapshot(c.data)
}

// ModelName returns the controller's marketing name, or "" before the
// first successful identity read.
func (c *Coordinator) ModelName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// IsExtendedFamily reports whether the WPM layout governs this device,
// selecting which optional setpoints a caller may expose.
func (c *Coordinator) IsExtendedFamily() bool {
	def := c.definition()
	return def != nil && def.Extended
}

// resolveIdentity reads the model word and selects the register layout.
// Resolved once per connection; all decode calls of subsequent cycles use
// the same layout.
func (c *Coordinator) resolveIdentity() (*regmap.Definition, error) {
	if def := c.definition(); def != nil {
		return def, nil
	}

	words, err := c.tr.ReadInputRegisters(unitID, identityAddress, identityCount)
	if err != nil {
		return nil, err
	}
	if len(words) < int(identityCount) {
		return nil, fmt.Errorf("identity block: got %d words, want %d", len(words), identityCount)
	}

	id := words[1]
	def := regmap.ForModel(id)
	if err := def.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.def = def
	c.model = regmap.ModelName(id)
	c.mu.Unlock()

	c.log.Info("device identity resolved",
		zap.Uint16("model_id", id),
		zap.String("model", regmap.ModelName(id)),
		zap.String("family", def.Family))
	return def, nil
}

func (c *Coordinator) definition() *regmap.Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.def
}

func (c *Coordinator) readBlock(b regmap.Block) ([]uint16, error) {
	if b.Bank == regmap.BankHolding {
		return c.tr.ReadHoldingRegisters(unitID, b.Address, b.Count)
	}
	return c.tr.ReadInputRegisters(unitID, b.Address, b.Count)
}

func encodeWord(value any, scale int) (uint16, error) {
	if scale != 0 {
		switch v := value.(type) {
		case float64:
			return codec.EncodeScaled(v, scale)
		case int:
			return codec.EncodeScaled(float64(v), scale)
		}
		return 0, fmt.Errorf("coordinator: cannot encode %T as a scaled setpoint", value)
	}

	switch v := value.(type) {
	case int:
		if v < 0 || v > math.MaxUint16 {
			return 0, &codec.RangeError{Value: float64(v), Scale: 1}
		}
		return uint16(v), nil
	case uint16:
		return v, nil
	}
	return 0, fmt.Errorf("coordinator: cannot encode %T as a raw register value", value)
}

func copySnapshot(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
