// internal/regmap/regmap_test.go
package regmap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tamzrod/isg-poller/internal/codec"
)

func TestValidate_ShippedTables(t *testing.T) {
	for _, def := range []*Definition{Base(), WPM()} {
		if err := def.Validate(); err != nil {
			t.Fatalf("%s table: %v", def.Family, err)
		}
	}
}

func TestValidate_OffsetOutsideBlock(t *testing.T) {
	def := &Definition{
		Family: "broken",
		Blocks: []Block{
			{
				Role:    "b",
				Bank:    BankInput,
				Address: 100,
				Count:   4,
				Fields: []Field{
					{ID: "x", Offset: 4, Kind: KindUint16},
				},
			},
		},
	}

	var layoutErr *LayoutError
	if err := def.Validate(); !errors.As(err, &layoutErr) {
		t.Fatalf("expected *LayoutError, got %v", err)
	}
}

func TestValidate_CompoundHighWordOutsideBlock(t *testing.T) {
	def := &Definition{
		Family: "broken",
		Blocks: []Block{
			{
				Role:    "b",
				Bank:    BankInput,
				Address: 100,
				Count:   4,
				Fields: []Field{
					{ID: "x", Offset: 3, Kind: KindCompound32}, // high word at 4
				},
			},
		},
	}

	if err := def.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_WriteAddressOutsideHoldingBlocks(t *testing.T) {
	def := &Definition{
		Family: "broken",
		Blocks: []Block{
			{Role: "params", Bank: BankHolding, Address: 1500, Count: 19},
		},
		Writable: map[string]Writable{
			"x": {Address: 1519}, // one past the block
		},
	}

	if err := def.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestDecodeBlock_ShortResponseRejected(t *testing.T) {
	b := WPM().Blocks[1] // system state, 47 words
	if _, err := DecodeBlock(b, make([]uint16, 46)); err == nil {
		t.Fatalf("expected error for short block, got nil")
	}
}

// TestDecodeBlock_WPMSystemState feeds a literal 47-word state block
// through the WPM table and compares the full decoded map. Any
// misalignment in the table moves at least one of these keys.
func TestDecodeBlock_WPMSystemState(t *testing.T) {
	words := make([]uint16, 47)
	words[0] = 1<<0 | 1<<4 | 1<<8 // HK1 pump, heating, cooling
	words[3] = 2                  // error status
	words[6] = codec.StatusSentinel
	for i := 8; i < 47; i++ {
		words[i] = codec.StatusSentinel
	}
	words[8] = 1  // heating circuit 1 pump
	words[16] = 1 // circulation pump
	words[41] = 1 // heat pump 1

	got, err := DecodeBlock(WPM().Blocks[1], words)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}

	want := map[string]any{
		FieldPumpOnHK1:           true,
		FieldPumpOnHK2:           false,
		FieldHeatUpProgram:       false,
		FieldNHZStagesRunning:    false,
		FieldIsHeating:           true,
		FieldIsHeatingWater:      false,
		FieldCompressorOn:        false,
		FieldIsSummerMode:        false,
		FieldIsCooling:           true,
		FieldEvaporatorDefrost:   false,
		FieldErrorStatus:         2,
		FieldActiveError:         "no error",
		FieldHeatingCircuit1Pump: 1,
		FieldCirculationPump:     1,
		FieldHeatPump1On:         1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decoded state mismatch:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestDecodeBlock_WPMSystemValues(t *testing.T) {
	outdoor := int16(-107)
	words := make([]uint16, 111)
	words[0] = 235             // 23.5
	words[2] = 0x8000          // FEK sensor not fitted
	words[6] = uint16(outdoor) // -10.7
	words[19] = 150            // heater pressure, two decimals
	words[44] = 1234           // WP1 low pressure, two decimals
	words[109] = 221           // HK3 target

	got, err := DecodeBlock(WPM().Blocks[2], words)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}

	if v := got[FieldActualTemperature]; v != 23.5 {
		t.Fatalf("actual temperature = %v, want 23.5", v)
	}
	if _, present := got[FieldActualTemperatureFEK]; present {
		t.Fatalf("FEK sentinel must not contribute a key")
	}
	if v := got[FieldOutdoorTemperature]; v != -10.7 {
		t.Fatalf("outdoor temperature = %v, want -10.7", v)
	}
	if v := got[FieldHeaterPressure]; v != 1.5 {
		t.Fatalf("heater pressure = %v, want 1.5", v)
	}
	if v := got[FieldLowPressureWP1]; v != 12.34 {
		t.Fatalf("WP1 low pressure = %v, want 12.34", v)
	}
	if v := got[FieldTargetTemperatureHK3]; v != 22.1 {
		t.Fatalf("HK3 target = %v, want 22.1", v)
	}
}

func TestDecodeBlock_Energy(t *testing.T) {
	words := make([]uint16, 22)
	copy(words, []uint16{10, 500, 3, 5, 200, 1, 0, 0, 0, 0, 7, 800, 2, 4, 100, 1})

	got, err := DecodeBlock(energyBlock(), words)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}

	want := map[string]any{
		FieldProducedHeatingToday:      10,
		FieldProducedHeatingTotal:      3500,
		FieldProducedWaterHeatingToday: 5,
		FieldProducedWaterHeatingTotal: 1200,
		FieldConsumedHeatingToday:      7,
		FieldConsumedHeatingTotal:      2800,
		FieldConsumedWaterHeatingToday: 4,
		FieldConsumedWaterHeatingTotal: 1100,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decoded energy mismatch:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestModelName(t *testing.T) {
	cases := []struct {
		id   uint16
		want string
	}{
		{390, "WPM 3"},
		{391, "WPM 3i"},
		{449, "WPMsystem"},
		{123, "other model"},
		{0, "other model"},
	}
	for _, c := range cases {
		if got := ModelName(c.id); got != c.want {
			t.Fatalf("ModelName(%d) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestForModel_FamilySelection(t *testing.T) {
	for _, id := range []uint16{ModelWPM3, ModelWPM3i, ModelWPMSystem} {
		if def := ForModel(id); !def.Extended {
			t.Fatalf("model %d: expected extended layout", id)
		}
	}
	if def := ForModel(123); def.Extended {
		t.Fatalf("unknown model: expected base layout")
	}
}

func TestWritable_OperationMode(t *testing.T) {
	for _, def := range []*Definition{Base(), WPM()} {
		w, ok := def.Writable[FieldOperationMode]
		if !ok {
			t.Fatalf("%s: operation mode must be writable", def.Family)
		}
		if w.Address != 1500 || w.Scale != 0 {
			t.Fatalf("%s: operation mode writable = %+v", def.Family, w)
		}
	}
}

func TestWritable_SetpointsExtendedOnly(t *testing.T) {
	if _, ok := Base().Writable[FieldComfortTemperatureTargetHK1]; ok {
		t.Fatalf("base family must not expose the HK1 comfort setpoint")
	}
	w, ok := WPM().Writable[FieldComfortTemperatureTargetHK1]
	if !ok || w.Address != 1501 || w.Scale != 10 {
		t.Fatalf("WPM HK1 comfort writable = %+v, ok=%v", w, ok)
	}
}
