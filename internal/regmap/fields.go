// internal/regmap/fields.go
package regmap

// Snapshot keys. Names follow the ISG documentation wording.

// System value fields (both families).
const (
	FieldActualTemperature       = "actual_temperature"
	FieldTargetTemperature       = "target_temperature"
	FieldActualTemperatureFEK    = "actual_temperature_fek"
	FieldTargetTemperatureFEK    = "target_temperature_fek"
	FieldActualHumidity          = "actual_humidity"
	FieldDewpointTemperature     = "dewpoint_temperature"
	FieldOutdoorTemperature      = "outdoor_temperature"
	FieldActualTemperatureHK1    = "actual_temperature_hk1"
	FieldTargetTemperatureHK1    = "target_temperature_hk1"
	FieldActualTemperatureHK2    = "actual_temperature_hk2"
	FieldTargetTemperatureHK2    = "target_temperature_hk2"
	FieldActualTemperatureBuffer = "actual_temperature_buffer"
	FieldTargetTemperatureBuffer = "target_temperature_buffer"
	FieldHeaterPressure          = "heater_pressure"
	FieldVolumeStream            = "volume_stream"
	FieldActualTemperatureWater  = "actual_temperature_water"
	FieldTargetTemperatureWater  = "target_temperature_water"
	FieldSourceTemperature       = "source_temperature"
)

// System value fields (WPM only).
const (
	FieldFlowTemperature    = "flow_temperature"
	FieldFlowTemperatureNHZ = "flow_temperature_nhz"
	FieldReturnTemperature  = "return_temperature"
	FieldSourcePressure     = "source_pressure"
	FieldHotGasTemperature  = "hot_gas_temperature"
	FieldHighPressure       = "high_pressure"
	FieldLowPressure        = "low_pressure"

	FieldActualTemperatureCoolingFancoil = "actual_temperature_cooling_fancoil"
	FieldTargetTemperatureCoolingFancoil = "target_temperature_cooling_fancoil"
	FieldActualTemperatureCoolingSurface = "actual_temperature_cooling_surface"
	FieldTargetTemperatureCoolingSurface = "target_temperature_cooling_surface"

	FieldReturnTemperatureWP1 = "return_temperature_wp1"
	FieldFlowTemperatureWP1   = "flow_temperature_wp1"
	FieldHotGasTemperatureWP1 = "hot_gas_temperature_wp1"
	FieldLowPressureWP1       = "low_pressure_wp1"
	FieldHighPressureWP1      = "high_pressure_wp1"
	FieldVolumeStreamWP1      = "volume_stream_wp1"
	FieldReturnTemperatureWP2 = "return_temperature_wp2"
	FieldFlowTemperatureWP2   = "flow_temperature_wp2"
	FieldHotGasTemperatureWP2 = "hot_gas_temperature_wp2"
	FieldLowPressureWP2       = "low_pressure_wp2"
	FieldHighPressureWP2      = "high_pressure_wp2"
	FieldVolumeStreamWP2      = "volume_stream_wp2"

	FieldActualRoomTemperatureHK1 = "actual_room_temperature_hk1"
	FieldTargetRoomTemperatureHK1 = "target_room_temperature_hk1"
	FieldActualHumidityHK1        = "actual_humidity_hk1"
	FieldDewpointTemperatureHK1   = "dewpoint_temperature_hk1"
	FieldActualRoomTemperatureHK2 = "actual_room_temperature_hk2"
	FieldTargetRoomTemperatureHK2 = "target_room_temperature_hk2"
	FieldActualHumidityHK2        = "actual_humidity_hk2"
	FieldDewpointTemperatureHK2   = "dewpoint_temperature_hk2"
	FieldActualRoomTemperatureHK3 = "actual_room_temperature_hk3"
	FieldTargetRoomTemperatureHK3 = "target_room_temperature_hk3"
	FieldActualHumidityHK3        = "actual_humidity_hk3"
	FieldDewpointTemperatureHK3   = "dewpoint_temperature_hk3"
	FieldActualTemperatureHK3     = "actual_temperature_hk3"
	FieldTargetTemperatureHK3     = "target_temperature_hk3"
)

// System state fields.
const (
	FieldIsHeating         = "is_heating"
	FieldIsHeatingWater    = "is_heating_water"
	FieldIsSummerMode      = "is_summer_mode"
	FieldIsCooling         = "is_cooling"
	FieldPumpOnHK1         = "pump_on_hk1"
	FieldPumpOnHK2         = "pump_on_hk2"
	FieldHeatUpProgram     = "heat_up_program"
	FieldNHZStagesRunning  = "nhz_stages_running"
	FieldCompressorOn      = "compressor_on"
	FieldEvaporatorDefrost = "evaporator_defrost"

	FieldErrorStatus = "error_status"
	FieldActiveError = "active_error"

	FieldHeatingCircuit1Pump = "heating_circuit_1_pump"
	FieldHeatingCircuit2Pump = "heating_circuit_2_pump"
	FieldHeatingCircuit3Pump = "heating_circuit_3_pump"
	FieldHeatingCircuit4Pump = "heating_circuit_4_pump"
	FieldHeatingCircuit5Pump = "heating_circuit_5_pump"
	FieldBuffer1ChargingPump = "buffer_1_charging_pump"
	FieldBuffer2ChargingPump = "buffer_2_charging_pump"
	FieldBuffer3ChargingPump = "buffer_3_charging_pump"
	FieldBuffer4ChargingPump = "buffer_4_charging_pump"
	FieldBuffer5ChargingPump = "buffer_5_charging_pump"
	FieldBuffer6ChargingPump = "buffer_6_charging_pump"
	FieldDHWChargingPump     = "dhw_charging_pump"
	FieldSourcePump          = "source_pump"
	FieldCirculationPump     = "circulation_pump"

	FieldSecondGeneratorDHW     = "second_generator_dhw"
	FieldSecondGeneratorHeating = "second_generator_heating"
	FieldCoolingMode            = "cooling_mode"

	FieldMixerOpenHtgCircuit2  = "mixer_open_htg_circuit_2"
	FieldMixerCloseHtgCircuit2 = "mixer_close_htg_circuit_2"
	FieldMixerOpenHtgCircuit3  = "mixer_open_htg_circuit_3"
	FieldMixerCloseHtgCircuit3 = "mixer_close_htg_circuit_3"
	FieldMixerOpenHtgCircuit4  = "mixer_open_htg_circuit_4"
	FieldMixerCloseHtgCircuit4 = "mixer_close_htg_circuit_4"
	FieldMixerOpenHtgCircuit5  = "mixer_open_htg_circuit_5"
	FieldMixerCloseHtgCircuit5 = "mixer_close_htg_circuit_5"

	FieldEmergencyHeating1  = "emergency_heating_1"
	FieldEmergencyHeating2  = "emergency_heating_2"
	FieldEmergencyHeating12 = "emergency_heating_1_2"

	FieldDiffController1Pump = "diff_controller_1_pump"
	FieldDiffController2Pump = "diff_controller_2_pump"
	FieldPoolPrimaryPump     = "pool_primary_pump"
	FieldPoolSecondaryPump   = "pool_secondary_pump"

	FieldHeatPump1On = "heat_pump_1_on"
	FieldHeatPump2On = "heat_pump_2_on"
	FieldHeatPump3On = "heat_pump_3_on"
	FieldHeatPump4On = "heat_pump_4_on"
	FieldHeatPump5On = "heat_pump_5_on"
	FieldHeatPump6On = "heat_pump_6_on"
)

// System parameter fields (holding registers, writable).
const (
	FieldOperationMode = "operation_mode"

	FieldComfortTemperatureTargetHK1 = "comfort_temperature_target_hk1"
	FieldEcoTemperatureTargetHK1     = "eco_temperature_target_hk1"
	FieldHeatingCurveRiseHK1         = "heating_curve_rise_hk1"
	FieldComfortTemperatureTargetHK2 = "comfort_temperature_target_hk2"
	FieldEcoTemperatureTargetHK2     = "eco_temperature_target_hk2"
	FieldHeatingCurveRiseHK2         = "heating_curve_rise_hk2"

	FieldDualmodeTemperatureHzg        = "dualmode_temperature_hzg"
	FieldComfortWaterTemperatureTarget = "comfort_water_temperature_target"
	FieldEcoWaterTemperatureTarget     = "eco_water_temperature_target"
	FieldDualmodeTemperatureWW         = "dualmode_temperature_ww"

	FieldAreaCoolingTargetFlowTemperature = "area_cooling_target_flow_temperature"
	FieldAreaCoolingTargetRoomTemperature = "area_cooling_target_room_temperature"
	FieldFanCoolingTargetFlowTemperature  = "fan_cooling_target_flow_temperature"
	FieldFanCoolingTargetRoomTemperature  = "fan_cooling_target_room_temperature"
)

// Energy fields.
const (
	FieldProducedHeatingToday      = "produced_heating_today"
	FieldProducedHeatingTotal      = "produced_heating_total"
	FieldProducedWaterHeatingToday = "produced_water_heating_today"
	FieldProducedWaterHeatingTotal = "produced_water_heating_total"
	FieldConsumedHeatingToday      = "consumed_heating_today"
	FieldConsumedHeatingTotal      = "consumed_heating_total"
	FieldConsumedWaterHeatingToday = "consumed_water_heating_today"
	FieldConsumedWaterHeatingTotal = "consumed_water_heating_total"
)

// SG Ready fields.
const (
	FieldSGReadyState  = "sg_ready_state"
	FieldModelID       = "model_id"
	FieldSGReadyActive = "sg_ready_active"
	FieldSGReadyInput1 = "sg_ready_input_1"
	FieldSGReadyInput2 = "sg_ready_input_2"
)
