// internal/regmap/regmap.go
// Package regmap holds the declarative register layouts of the ISG
// controller families and the generic loop that decodes a raw register
// block against such a layout.
//
// Every field is addressed by an absolute word offset within its block.
// Reserved words are simply unmapped offsets, so a layout mistake shows up
// in Validate instead of silently shifting every later field.
package regmap

import (
	"fmt"

	"github.com/tamzrod/isg-poller/internal/codec"
)

// Bank selects the Modbus register bank a block lives in.
type Bank uint8

const (
	BankInput Bank = iota
	BankHolding
)

func (b Bank) String() string {
	if b == BankHolding {
		return "holding"
	}
	return "input"
}

// Kind is the decode recipe of one field.
type Kind uint8

const (
	// KindScaled reads a signed word divided by Div (default 10),
	// absent on the -32768 sentinel.
	KindScaled Kind = iota
	// KindUint16 reads a raw unsigned word.
	KindUint16
	// KindFlag reads one bit of an unsigned word.
	KindFlag
	// KindStatus reads an unsigned word, absent on the 32768 sentinel.
	KindStatus
	// KindFault renders the active-error word as text.
	KindFault
	// KindCompound32 joins the low word at Offset with the high word at
	// Offset+1 into a lifetime counter.
	KindCompound32
)

// Field maps one snapshot key onto a word of its block.
type Field struct {
	ID     string
	Offset uint16 // word offset within the block; low word for KindCompound32
	Kind   Kind
	Bit    uint8 // KindFlag only
	Div    int   // KindScaled only; 0 means 10
}

// Block is one contiguous register read.
type Block struct {
	Role    string
	Bank    Bank
	Address uint16
	Count   uint16
	Fields  []Field
}

// Writable maps a setpoint key onto its holding register.
// Scale 0 writes the raw integer value, otherwise the value is encoded
// with codec.EncodeScaled.
type Writable struct {
	Address uint16
	Scale   int
}

// Definition is the complete register layout of one controller family.
type Definition struct {
	Family   string
	Extended bool
	Blocks   []Block
	Writable map[string]Writable
}

// LayoutError reports a table bug: an offset or address that leaves its
// block. It never indicates a device or network problem.
type LayoutError struct {
	Family string
	Field  string
	Detail string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("regmap: %s/%s: %s", e.Family, e.Field, e.Detail)
}

// Validate checks every field offset against its block geometry and every
// writable address against the family's holding blocks.
func (d *Definition) Validate() error {
	for _, b := range d.Blocks {
		for _, f := range b.Fields {
			end := f.Offset
			if f.Kind == KindCompound32 {
				end++ // high word
			}
			if end >= b.Count {
				return &LayoutError{
					Family: d.Family,
					Field:  f.ID,
					Detail: fmt.Sprintf("offset %d outside %s block %d..%d", f.Offset, b.Role, b.Address, b.Address+b.Count-1),
				}
			}
			if f.Kind == KindFlag && f.Bit > 15 {
				return &LayoutError{
					Family: d.Family,
					Field:  f.ID,
					Detail: fmt.Sprintf("bit %d outside a 16-bit word", f.Bit),
				}
			}
		}
	}

	for id, w := range d.Writable {
		if !d.insideHoldingBlock(w.Address) {
			return &LayoutError{
				Family: d.Family,
				Field:  id,
				Detail: fmt.Sprintf("write address %d outside every holding block", w.Address),
			}
		}
	}

	return nil
}

func (d *Definition) insideHoldingBlock(addr uint16) bool {
	for _, b := range d.Blocks {
		if b.Bank != BankHolding {
			continue
		}
		if addr >= b.Address && addr < b.Address+b.Count {
			return true
		}
	}
	return false
}

// DecodeBlock walks a raw register block through the block's field table.
// Absent fields (sentinel words) contribute no key. A response shorter than
// the block geometry is rejected before any field is touched.
func DecodeBlock(b Block, words []uint16) (map[string]any, error) {
	if len(words) < int(b.Count) {
		return nil, fmt.Errorf("regmap: %s block: got %d words, want %d", b.Role, len(words), b.Count)
	}

	out := make(map[string]any, len(b.Fields))
	for _, f := range b.Fields {
		switch f.Kind {
		case KindScaled:
			if v, ok := codec.DecodeScaled(int16(words[f.Offset]), f.Div); ok {
				out[f.ID] = v
			}
		case KindUint16:
			out[f.ID] = int(words[f.Offset])
		case KindFlag:
			out[f.ID] = codec.DecodeFlag(words[f.Offset], f.Bit)
		case KindStatus:
			if v, ok := codec.DecodeStatus(words[f.Offset]); ok {
				out[f.ID] = int(v)
			}
		case KindFault:
			out[f.ID] = codec.DecodeFault(words[f.Offset])
		case KindCompound32:
			out[f.ID] = codec.DecodeCompound32(words[f.Offset+1], words[f.Offset], 0)
		}
	}
	return out, nil
}
