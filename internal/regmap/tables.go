// internal/regmap/tables.go
package regmap

// Block roles, used in logs and tests.
const (
	RoleEnergy           = "energy"
	RoleSystemState      = "system state"
	RoleSystemValues     = "system values"
	RoleSystemParameters = "system parameters"
	RoleSGReady          = "sg ready"
	RoleSGReadyControl   = "sg ready control"
)

// Known model ids reported in the SG Ready block.
const (
	ModelWPM3      = 390
	ModelWPM3i     = 391
	ModelWPMSystem = 449
)

// ModelName maps a model-id word onto its marketing name. Unknown ids are
// not an error; the ISG keeps answering with the generic layout.
func ModelName(id uint16) string {
	switch id {
	case ModelWPM3:
		return "WPM 3"
	case ModelWPM3i:
		return "WPM 3i"
	case ModelWPMSystem:
		return "WPMsystem"
	default:
		return "other model"
	}
}

// ForModel selects the register layout governing a controller. The WPM
// generations share the extended layout; everything else is decoded with
// the smaller base layout.
func ForModel(id uint16) *Definition {
	switch id {
	case ModelWPM3, ModelWPM3i, ModelWPMSystem:
		return WPM()
	default:
		return Base()
	}
}

// energyBlock is identical in both families. Lifetime totals are split
// into a low remainder word and a high full-MWh word.
func energyBlock() Block {
	return Block{
		Role:    RoleEnergy,
		Bank:    BankInput,
		Address: 3500,
		Count:   22,
		Fields: []Field{
			{ID: FieldProducedHeatingToday, Offset: 0, Kind: KindUint16},
			{ID: FieldProducedHeatingTotal, Offset: 1, Kind: KindCompound32},
			{ID: FieldProducedWaterHeatingToday, Offset: 3, Kind: KindUint16},
			{ID: FieldProducedWaterHeatingTotal, Offset: 4, Kind: KindCompound32},
			// 6..9 are the NHZ counters, not mapped
			{ID: FieldConsumedHeatingToday, Offset: 10, Kind: KindUint16},
			{ID: FieldConsumedHeatingTotal, Offset: 11, Kind: KindCompound32},
			{ID: FieldConsumedWaterHeatingToday, Offset: 13, Kind: KindUint16},
			{ID: FieldConsumedWaterHeatingTotal, Offset: 14, Kind: KindCompound32},
		},
	}
}

func sgReadyBlocks() []Block {
	return []Block{
		{
			Role:    RoleSGReady,
			Bank:    BankInput,
			Address: 5000,
			Count:   2,
			Fields: []Field{
				{ID: FieldSGReadyState, Offset: 0, Kind: KindUint16},
				{ID: FieldModelID, Offset: 1, Kind: KindUint16},
			},
		},
		{
			Role:    RoleSGReadyControl,
			Bank:    BankHolding,
			Address: 4000,
			Count:   3,
			Fields: []Field{
				{ID: FieldSGReadyActive, Offset: 0, Kind: KindUint16},
				{ID: FieldSGReadyInput1, Offset: 1, Kind: KindUint16},
				{ID: FieldSGReadyInput2, Offset: 2, Kind: KindUint16},
			},
		},
	}
}

func sgReadyWritables(w map[string]Writable) map[string]Writable {
	w[FieldSGReadyActive] = Writable{Address: 4000}
	w[FieldSGReadyInput1] = Writable{Address: 4001}
	w[FieldSGReadyInput2] = Writable{Address: 4002}
	return w
}

// Base returns the layout of the first-generation controllers.
func Base() *Definition {
	blocks := []Block{
		energyBlock(),
		{
			Role:    RoleSystemState,
			Bank:    BankInput,
			Address: 2500,
			Count:   1,
			Fields: []Field{
				{ID: FieldIsHeating, Offset: 0, Kind: KindFlag, Bit: 4},
				{ID: FieldIsHeatingWater, Offset: 0, Kind: KindFlag, Bit: 5},
				{ID: FieldIsSummerMode, Offset: 0, Kind: KindFlag, Bit: 7},
				{ID: FieldIsCooling, Offset: 0, Kind: KindFlag, Bit: 8},
			},
		},
		{
			Role:    RoleSystemValues,
			Bank:    BankInput,
			Address: 500,
			Count:   40,
			Fields: []Field{
				{ID: FieldActualTemperature, Offset: 0, Kind: KindScaled},
				{ID: FieldTargetTemperature, Offset: 1, Kind: KindScaled},
				{ID: FieldActualTemperatureFEK, Offset: 2, Kind: KindScaled},
				{ID: FieldTargetTemperatureFEK, Offset: 3, Kind: KindScaled},
				{ID: FieldActualHumidity, Offset: 4, Kind: KindScaled},
				{ID: FieldDewpointTemperature, Offset: 5, Kind: KindScaled},
				{ID: FieldOutdoorTemperature, Offset: 6, Kind: KindScaled},
				{ID: FieldActualTemperatureHK1, Offset: 7, Kind: KindScaled},
				// 8 is the raw HK1 target, superseded by word 9
				{ID: FieldTargetTemperatureHK1, Offset: 9, Kind: KindScaled},
				{ID: FieldActualTemperatureHK2, Offset: 10, Kind: KindScaled},
				{ID: FieldTargetTemperatureHK2, Offset: 11, Kind: KindScaled},
				{ID: FieldActualTemperatureBuffer, Offset: 17, Kind: KindScaled},
				{ID: FieldTargetTemperatureBuffer, Offset: 18, Kind: KindScaled},
				{ID: FieldHeaterPressure, Offset: 19, Kind: KindScaled, Div: 100},
				{ID: FieldVolumeStream, Offset: 20, Kind: KindScaled, Div: 100},
				{ID: FieldActualTemperatureWater, Offset: 21, Kind: KindScaled},
				{ID: FieldTargetTemperatureWater, Offset: 22, Kind: KindScaled},
				{ID: FieldSourceTemperature, Offset: 35, Kind: KindScaled},
			},
		},
		{
			Role:    RoleSystemParameters,
			Bank:    BankHolding,
			Address: 1500,
			Count:   19,
			Fields: []Field{
				{ID: FieldOperationMode, Offset: 0, Kind: KindUint16},
			},
		},
	}
	blocks = append(blocks, sgReadyBlocks()...)

	return &Definition{
		Family: "base",
		Blocks: blocks,
		Writable: sgReadyWritables(map[string]Writable{
			FieldOperationMode: {Address: 1500},
		}),
	}
}

// WPM returns the layout of the WPM controller generation. It supersedes
// the base layout with larger blocks and per-circuit status words.
func WPM() *Definition {
	blocks := []Block{
		energyBlock(),
		{
			Role:    RoleSystemState,
			Bank:    BankInput,
			Address: 2500,
			Count:   47,
			Fields:  wpmSystemStateFields(),
		},
		{
			Role:    RoleSystemValues,
			Bank:    BankInput,
			Address: 500,
			Count:   111,
			Fields:  wpmSystemValueFields(),
		},
		{
			Role:    RoleSystemParameters,
			Bank:    BankHolding,
			Address: 1500,
			Count:   19,
			Fields: []Field{
				{ID: FieldOperationMode, Offset: 0, Kind: KindUint16},
				{ID: FieldComfortTemperatureTargetHK1, Offset: 1, Kind: KindScaled},
				{ID: FieldEcoTemperatureTargetHK1, Offset: 2, Kind: KindScaled},
				{ID: FieldHeatingCurveRiseHK1, Offset: 3, Kind: KindScaled, Div: 100},
				{ID: FieldComfortTemperatureTargetHK2, Offset: 4, Kind: KindScaled},
				{ID: FieldEcoTemperatureTargetHK2, Offset: 5, Kind: KindScaled},
				{ID: FieldHeatingCurveRiseHK2, Offset: 6, Kind: KindScaled, Div: 100},
				{ID: FieldDualmodeTemperatureHzg, Offset: 8, Kind: KindScaled},
				{ID: FieldComfortWaterTemperatureTarget, Offset: 9, Kind: KindScaled},
				{ID: FieldEcoWaterTemperatureTarget, Offset: 10, Kind: KindScaled},
				{ID: FieldDualmodeTemperatureWW, Offset: 12, Kind: KindScaled},
				{ID: FieldAreaCoolingTargetFlowTemperature, Offset: 13, Kind: KindScaled},
				{ID: FieldAreaCoolingTargetRoomTemperature, Offset: 15, Kind: KindScaled},
				{ID: FieldFanCoolingTargetFlowTemperature, Offset: 16, Kind: KindScaled},
				{ID: FieldFanCoolingTargetRoomTemperature, Offset: 18, Kind: KindScaled},
			},
		},
	}
	blocks = append(blocks, sgReadyBlocks()...)

	return &Definition{
		Family:   "WPM",
		Extended: true,
		Blocks:   blocks,
		Writable: sgReadyWritables(map[string]Writable{
			FieldOperationMode:                    {Address: 1500},
			FieldComfortTemperatureTargetHK1:      {Address: 1501, Scale: 10},
			FieldEcoTemperatureTargetHK1:          {Address: 1502, Scale: 10},
			FieldHeatingCurveRiseHK1:              {Address: 1503, Scale: 100},
			FieldComfortTemperatureTargetHK2:      {Address: 1504, Scale: 10},
			FieldEcoTemperatureTargetHK2:          {Address: 1505, Scale: 10},
			FieldHeatingCurveRiseHK2:              {Address: 1506, Scale: 100},
			FieldDualmodeTemperatureHzg:           {Address: 1508, Scale: 10},
			FieldComfortWaterTemperatureTarget:    {Address: 1509, Scale: 10},
			FieldEcoWaterTemperatureTarget:        {Address: 1510, Scale: 10},
			FieldDualmodeTemperatureWW:            {Address: 1512, Scale: 10},
			FieldAreaCoolingTargetFlowTemperature: {Address: 1513, Scale: 10},
			FieldAreaCoolingTargetRoomTemperature: {Address: 1515, Scale: 10},
			FieldFanCoolingTargetFlowTemperature:  {Address: 1516, Scale: 10},
			FieldFanCoolingTargetRoomTemperature:  {Address: 1518, Scale: 10},
		}),
	}
}

func wpmSystemStateFields() []Field {
	return []Field{
		{ID: FieldPumpOnHK1, Offset: 0, Kind: KindFlag, Bit: 0},
		{ID: FieldPumpOnHK2, Offset: 0, Kind: KindFlag, Bit: 1},
		{ID: FieldHeatUpProgram, Offset: 0, Kind: KindFlag, Bit: 2},
		{ID: FieldNHZStagesRunning, Offset: 0, Kind: KindFlag, Bit: 3},
		{ID: FieldIsHeating, Offset: 0, Kind: KindFlag, Bit: 4},
		{ID: FieldIsHeatingWater, Offset: 0, Kind: KindFlag, Bit: 5},
		{ID: FieldCompressorOn, Offset: 0, Kind: KindFlag, Bit: 6},
		{ID: FieldIsSummerMode, Offset: 0, Kind: KindFlag, Bit: 7},
		{ID: FieldIsCooling, Offset: 0, Kind: KindFlag, Bit: 8},
		{ID: FieldEvaporatorDefrost, Offset: 0, Kind: KindFlag, Bit: 9},
		// 1..2 belong to the WPM 3 compatibility range
		{ID: FieldErrorStatus, Offset: 3, Kind: KindUint16},
		{ID: FieldActiveError, Offset: 6, Kind: KindFault},
		{ID: FieldHeatingCircuit1Pump, Offset: 8, Kind: KindStatus},
		{ID: FieldHeatingCircuit2Pump, Offset: 9, Kind: KindStatus},
		{ID: FieldHeatingCircuit3Pump, Offset: 10, Kind: KindStatus},
		{ID: FieldBuffer1ChargingPump, Offset: 11, Kind: KindStatus},
		{ID: FieldBuffer2ChargingPump, Offset: 12, Kind: KindStatus},
		{ID: FieldDHWChargingPump, Offset: 13, Kind: KindStatus},
		{ID: FieldSourcePump, Offset: 14, Kind: KindStatus},
		{ID: FieldCirculationPump, Offset: 16, Kind: KindStatus},
		{ID: FieldSecondGeneratorDHW, Offset: 17, Kind: KindStatus},
		{ID: FieldSecondGeneratorHeating, Offset: 18, Kind: KindStatus},
		{ID: FieldCoolingMode, Offset: 19, Kind: KindStatus},
		{ID: FieldMixerOpenHtgCircuit2, Offset: 20, Kind: KindStatus},
		{ID: FieldMixerCloseHtgCircuit2, Offset: 21, Kind: KindStatus},
		{ID: FieldMixerOpenHtgCircuit3, Offset: 22, Kind: KindStatus},
		{ID: FieldMixerCloseHtgCircuit3, Offset: 23, Kind: KindStatus},
		{ID: FieldEmergencyHeating1, Offset: 24, Kind: KindStatus},
		{ID: FieldEmergencyHeating2, Offset: 25, Kind: KindStatus},
		{ID: FieldEmergencyHeating12, Offset: 26, Kind: KindStatus},
		{ID: FieldHeatingCircuit4Pump, Offset: 27, Kind: KindStatus},
		{ID: FieldHeatingCircuit5Pump, Offset: 28, Kind: KindStatus},
		{ID: FieldBuffer3ChargingPump, Offset: 29, Kind: KindStatus},
		{ID: FieldBuffer4ChargingPump, Offset: 30, Kind: KindStatus},
		{ID: FieldBuffer5ChargingPump, Offset: 31, Kind: KindStatus},
		{ID: FieldBuffer6ChargingPump, Offset: 32, Kind: KindStatus},
		{ID: FieldDiffController1Pump, Offset: 33, Kind: KindStatus},
		{ID: FieldDiffController2Pump, Offset: 34, Kind: KindStatus},
		{ID: FieldPoolPrimaryPump, Offset: 35, Kind: KindStatus},
		{ID: FieldPoolSecondaryPump, Offset: 36, Kind: KindStatus},
		{ID: FieldMixerOpenHtgCircuit4, Offset: 37, Kind: KindStatus},
		{ID: FieldMixerCloseHtgCircuit4, Offset: 38, Kind: KindStatus},
		{ID: FieldMixerOpenHtgCircuit5, Offset: 39, Kind: KindStatus},
		{ID: FieldMixerCloseHtgCircuit5, Offset: 40, Kind: KindStatus},
		{ID: FieldHeatPump1On, Offset: 41, Kind: KindStatus},
		{ID: FieldHeatPump2On, Offset: 42, Kind: KindStatus},
		{ID: FieldHeatPump3On, Offset: 43, Kind: KindStatus},
		{ID: FieldHeatPump4On, Offset: 44, Kind: KindStatus},
		{ID: FieldHeatPump5On, Offset: 45, Kind: KindStatus},
		{ID: FieldHeatPump6On, Offset: 46, Kind: KindStatus},
	}
}

func wpmSystemValueFields() []Field {
	return []Field{
		{ID: FieldActualTemperature, Offset: 0, Kind: KindScaled},
		{ID: FieldTargetTemperature, Offset: 1, Kind: KindScaled},
		{ID: FieldActualTemperatureFEK, Offset: 2, Kind: KindScaled},
		{ID: FieldTargetTemperatureFEK, Offset: 3, Kind: KindScaled},
		{ID: FieldActualHumidity, Offset: 4, Kind: KindScaled},
		{ID: FieldDewpointTemperature, Offset: 5, Kind: KindScaled},
		{ID: FieldOutdoorTemperature, Offset: 6, Kind: KindScaled},
		{ID: FieldActualTemperatureHK1, Offset: 7, Kind: KindScaled},
		// 8 is the raw HK1 target, superseded by word 9
		{ID: FieldTargetTemperatureHK1, Offset: 9, Kind: KindScaled},
		{ID: FieldActualTemperatureHK2, Offset: 10, Kind: KindScaled},
		{ID: FieldTargetTemperatureHK2, Offset: 11, Kind: KindScaled},
		{ID: FieldFlowTemperature, Offset: 12, Kind: KindScaled},
		{ID: FieldFlowTemperatureNHZ, Offset: 13, Kind: KindScaled},
		{ID: FieldReturnTemperature, Offset: 15, Kind: KindScaled},
		{ID: FieldActualTemperatureBuffer, Offset: 17, Kind: KindScaled},
		{ID: FieldTargetTemperatureBuffer, Offset: 18, Kind: KindScaled},
		{ID: FieldHeaterPressure, Offset: 19, Kind: KindScaled, Div: 100},
		{ID: FieldVolumeStream, Offset: 20, Kind: KindScaled, Div: 100},
		{ID: FieldActualTemperatureWater, Offset: 21, Kind: KindScaled},
		{ID: FieldTargetTemperatureWater, Offset: 22, Kind: KindScaled},
		{ID: FieldActualTemperatureCoolingFancoil, Offset: 23, Kind: KindScaled},
		{ID: FieldTargetTemperatureCoolingFancoil, Offset: 24, Kind: KindScaled},
		{ID: FieldActualTemperatureCoolingSurface, Offset: 25, Kind: KindScaled},
		{ID: FieldTargetTemperatureCoolingSurface, Offset: 26, Kind: KindScaled},
		{ID: FieldSourceTemperature, Offset: 35, Kind: KindScaled},
		{ID: FieldSourcePressure, Offset: 37, Kind: KindScaled, Div: 100},
		{ID: FieldHotGasTemperature, Offset: 38, Kind: KindScaled},
		{ID: FieldHighPressure, Offset: 39, Kind: KindScaled},
		{ID: FieldLowPressure, Offset: 40, Kind: KindScaled},
		{ID: FieldReturnTemperatureWP1, Offset: 41, Kind: KindScaled},
		{ID: FieldFlowTemperatureWP1, Offset: 42, Kind: KindScaled},
		{ID: FieldHotGasTemperatureWP1, Offset: 43, Kind: KindScaled},
		{ID: FieldLowPressureWP1, Offset: 44, Kind: KindScaled, Div: 100},
		{ID: FieldHighPressureWP1, Offset: 46, Kind: KindScaled, Div: 100},
		{ID: FieldVolumeStreamWP1, Offset: 47, Kind: KindScaled},
		{ID: FieldReturnTemperatureWP2, Offset: 48, Kind: KindScaled},
		{ID: FieldFlowTemperatureWP2, Offset: 49, Kind: KindScaled},
		{ID: FieldHotGasTemperatureWP2, Offset: 50, Kind: KindScaled},
		{ID: FieldLowPressureWP2, Offset: 51, Kind: KindScaled, Div: 100},
		{ID: FieldHighPressureWP2, Offset: 53, Kind: KindScaled, Div: 100},
		{ID: FieldVolumeStreamWP2, Offset: 54, Kind: KindScaled},
		{ID: FieldActualRoomTemperatureHK1, Offset: 83, Kind: KindScaled},
		{ID: FieldTargetRoomTemperatureHK1, Offset: 84, Kind: KindScaled},
		{ID: FieldActualHumidityHK1, Offset: 85, Kind: KindScaled},
		{ID: FieldDewpointTemperatureHK1, Offset: 86, Kind: KindScaled},
		{ID: FieldActualRoomTemperatureHK2, Offset: 87, Kind: KindScaled},
		{ID: FieldTargetRoomTemperatureHK2, Offset: 88, Kind: KindScaled},
		{ID: FieldActualHumidityHK2, Offset: 89, Kind: KindScaled},
		{ID: FieldDewpointTemperatureHK2, Offset: 90, Kind: KindScaled},
		{ID: FieldActualRoomTemperatureHK3, Offset: 91, Kind: KindScaled},
		{ID: FieldTargetRoomTemperatureHK3, Offset: 92, Kind: KindScaled},
		{ID: FieldActualHumidityHK3, Offset: 93, Kind: KindScaled},
		{ID: FieldDewpointTemperatureHK3, Offset: 94, Kind: KindScaled},
		{ID: FieldActualTemperatureHK3, Offset: 108, Kind: KindScaled},
		{ID: FieldTargetTemperatureHK3, Offset: 109, Kind: KindScaled},
	}
}
