package form

// Building is the 様式A basic-information record.
type Building struct {
	BuildingName       Value `json:"building_name" yaml:"building_name" label:"建物名称" kind:"text"`
	Region             Value `json:"region" yaml:"region" label:"省エネ基準地域区分" kind:"select" options:"regions"`
	SolarRegion        Value `json:"solar_region" yaml:"solar_region" label:"年間日射地域区分" kind:"select" options:"solar_regions"`
	BuildingType       Value `json:"building_type" yaml:"building_type" label:"建物用途" kind:"select" options:"building_types"`
	RoomType           Value `json:"room_type" yaml:"room_type" label:"室用途" kind:"text"`
	CalcFloorArea      Value `json:"calc_floor_area" yaml:"calc_floor_area" label:"計算対象床面積" kind:"number" unit:"m2"`
	ACFloorArea        Value `json:"ac_floor_area" yaml:"ac_floor_area" label:"空調対象床面積" kind:"number" unit:"m2"`
	TotalArea          Value `json:"total_area" yaml:"total_area" label:"延べ面積" kind:"number" unit:"m2"`
	Prefecture         Value `json:"prefecture" yaml:"prefecture" label:"都道府県" kind:"text"`
	City               Value `json:"city" yaml:"city" label:"市区町村" kind:"text"`
	FloorsAbove        Value `json:"floors_above" yaml:"floors_above" label:"階数（地上）" kind:"integer"`
	FloorsBelow        Value `json:"floors_below" yaml:"floors_below" label:"階数（地下）" kind:"integer"`
	TotalHeight        Value `json:"total_height" yaml:"total_height" label:"建物の高さ" kind:"number" unit:"m"`
	Perimeter          Value `json:"perimeter" yaml:"perimeter" label:"外周長さ" kind:"number" unit:"m"`
	NonACCoreDirection Value `json:"non_ac_core_direction" yaml:"non_ac_core_direction" label:"非空調コア部の方位" kind:"select" options:"directions"`
	NonACCoreLength    Value `json:"non_ac_core_length" yaml:"non_ac_core_length" label:"非空調コア部の長さ" kind:"number" unit:"m"`
}

// Performance holds optional whole-building envelope and renewable figures.
// They drive advisory warnings only and are not submitted.
type Performance struct {
	UAValue         Value `json:"ua_value" yaml:"ua_value" label:"外皮平均熱貫流率 UA" kind:"number" unit:"W/(m2K)"`
	EtaACValue      Value `json:"eta_ac_value" yaml:"eta_ac_value" label:"平均日射熱取得率 ηAC" kind:"number"`
	RenewableEnergy Value `json:"renewable_energy" yaml:"renewable_energy" label:"再生可能エネルギー控除量" kind:"number" unit:"MJ/年"`
}

// Window is one 様式B1 opening specification.
type Window struct {
	Name         Value `json:"name" yaml:"name" label:"建具仕様名称" kind:"text"`
	Width        Value `json:"width" yaml:"width" label:"幅 W" kind:"number" unit:"m"`
	Height       Value `json:"height" yaml:"height" label:"高さ H" kind:"number" unit:"m"`
	Area         Value `json:"area" yaml:"area" label:"窓面積" kind:"number" unit:"m2"`
	WindowType   Value `json:"window_type" yaml:"window_type" label:"建具の種類" kind:"select" options:"window_types"`
	GlassType    Value `json:"glass_type" yaml:"glass_type" label:"ガラスの種類" kind:"text"`
	GlassUValue  Value `json:"glass_u_value" yaml:"glass_u_value" label:"ガラス 熱貫流率" kind:"number" unit:"W/(m2K)"`
	GlassSHGC    Value `json:"glass_shgc" yaml:"glass_shgc" label:"ガラス 日射熱取得率" kind:"number"`
	WindowUValue Value `json:"window_u_value" yaml:"window_u_value" label:"窓 熱貫流率" kind:"number" unit:"W/(m2K)"`
	WindowSHGC   Value `json:"window_shgc" yaml:"window_shgc" label:"窓 日射熱取得率" kind:"number"`
}

// Insulation is one 様式B2 insulation specification.
type Insulation struct {
	Name             Value `json:"name" yaml:"name" label:"断熱仕様名称" kind:"text"`
	PartClass        Value `json:"part_class" yaml:"part_class" label:"部位種別" kind:"select" options:"part_classes"`
	InputMethod      Value `json:"input_method" yaml:"input_method" label:"入力方法" kind:"select" options:"insulation_input_methods"`
	MaterialCategory Value `json:"material_category" yaml:"material_category" label:"断熱材種類(大分類)" kind:"select" options:"insulation_materials"`
	MaterialDetail   Value `json:"material_detail" yaml:"material_detail" label:"断熱材種類(詳細)" kind:"text"`
	Conductivity     Value `json:"conductivity" yaml:"conductivity" label:"熱伝導率" kind:"number" unit:"W/(mK)"`
	Thickness        Value `json:"thickness" yaml:"thickness" label:"厚み" kind:"number" unit:"mm"`
	UValue           Value `json:"u_value" yaml:"u_value" label:"熱貫流率" kind:"number" unit:"W/(m2K)"`
}

// Envelope is one 様式B3 exterior face.
type Envelope struct {
	Name              Value `json:"name" yaml:"name" label:"外皮名称" kind:"text"`
	Direction         Value `json:"direction" yaml:"direction" label:"方位" kind:"select" options:"envelope_directions"`
	Width             Value `json:"width" yaml:"width" label:"幅 W" kind:"number" unit:"m"`
	Height            Value `json:"height" yaml:"height" label:"高さ H" kind:"number" unit:"m"`
	Area              Value `json:"area" yaml:"area" label:"外皮面積" kind:"number" unit:"m2"`
	InsulationName    Value `json:"insulation_name" yaml:"insulation_name" label:"断熱仕様名称" kind:"text"`
	WindowName        Value `json:"window_name" yaml:"window_name" label:"建具仕様名称" kind:"text"`
	WindowCount       Value `json:"window_count" yaml:"window_count" label:"建具等個数" kind:"integer"`
	HasBlind          Value `json:"has_blind" yaml:"has_blind" label:"ブラインド" kind:"select" options:"boolean"`
	ShadeCoeffCooling Value `json:"shade_coeff_cooling" yaml:"shade_coeff_cooling" label:"日除け係数(冷房)" kind:"number"`
	ShadeCoeffHeating Value `json:"shade_coeff_heating" yaml:"shade_coeff_heating" label:"日除け係数(暖房)" kind:"number"`
}

// HeatSource is one 様式C1 heat source unit.
type HeatSource struct {
	Name            Value `json:"name" yaml:"name" label:"熱源機器名称" kind:"text"`
	Type            Value `json:"type" yaml:"type" label:"熱源機種" kind:"select" options:"heat_source_types"`
	Count           Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	CapacityCooling Value `json:"capacity_cooling" yaml:"capacity_cooling" label:"定格能力 冷房" kind:"number" unit:"kW/台"`
	CapacityHeating Value `json:"capacity_heating" yaml:"capacity_heating" label:"定格能力 暖房" kind:"number" unit:"kW/台"`
	PowerCooling    Value `json:"power_cooling" yaml:"power_cooling" label:"消費電力 冷房" kind:"number" unit:"kW/台"`
	PowerHeating    Value `json:"power_heating" yaml:"power_heating" label:"消費電力 暖房" kind:"number" unit:"kW/台"`
	FuelCooling     Value `json:"fuel_cooling" yaml:"fuel_cooling" label:"燃料消費量 冷房" kind:"number" unit:"kW/台"`
	FuelHeating     Value `json:"fuel_heating" yaml:"fuel_heating" label:"燃料消費量 暖房" kind:"number" unit:"kW/台"`
}

// OutdoorAir is one 様式C2 outdoor-air handling unit.
type OutdoorAir struct {
	Name                   Value `json:"name" yaml:"name" label:"送風機名称" kind:"text"`
	Count                  Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	SupplyAirflow          Value `json:"supply_airflow" yaml:"supply_airflow" label:"給気風量" kind:"number" unit:"m3/h/台"`
	ExhaustAirflow         Value `json:"exhaust_airflow" yaml:"exhaust_airflow" label:"排気風量" kind:"number" unit:"m3/h/台"`
	HeatExchangeEffCooling Value `json:"heat_exchange_eff_cooling" yaml:"heat_exchange_eff_cooling" label:"全熱交換効率 冷房" kind:"number" unit:"%"`
	HeatExchangeEffHeating Value `json:"heat_exchange_eff_heating" yaml:"heat_exchange_eff_heating" label:"全熱交換効率 暖房" kind:"number" unit:"%"`
	AutoBypass             Value `json:"auto_bypass" yaml:"auto_bypass" label:"自動換気切替" kind:"select" options:"boolean"`
	PreheatStop            Value `json:"preheat_stop" yaml:"preheat_stop" label:"予熱時外気停止" kind:"select" options:"boolean"`
}

// Pump is one 様式C3 secondary pump.
type Pump struct {
	Name         Value `json:"name" yaml:"name" label:"ポンプ名称" kind:"text"`
	Count        Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	FlowRate     Value `json:"flow_rate" yaml:"flow_rate" label:"設計流量" kind:"number" unit:"m3/h台"`
	VariableFlow Value `json:"variable_flow" yaml:"variable_flow" label:"変流量制御" kind:"select" options:"boolean"`
	MinFlowInput Value `json:"min_flow_input" yaml:"min_flow_input" label:"最小流量の入力" kind:"text"`
	MinFlowRatio Value `json:"min_flow_ratio" yaml:"min_flow_ratio" label:"最小流量比" kind:"number" unit:"%"`
}

// Fan is one 様式C4 air-handling fan.
type Fan struct {
	Name            Value `json:"name" yaml:"name" label:"送風機名称" kind:"text"`
	Count           Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	Airflow         Value `json:"airflow" yaml:"airflow" label:"設計風量" kind:"number" unit:"m3/h台"`
	VariableAirflow Value `json:"variable_airflow" yaml:"variable_airflow" label:"変風量制御" kind:"select" options:"boolean"`
	MinAirflowInput Value `json:"min_airflow_input" yaml:"min_airflow_input" label:"最小風量の入力" kind:"text"`
	MinAirflowRatio Value `json:"min_airflow_ratio" yaml:"min_airflow_ratio" label:"最小風量比" kind:"number" unit:"%"`
}

// Ventilation is one 様式D mechanically ventilated room.
type Ventilation struct {
	RoomName       Value `json:"room_name" yaml:"room_name" label:"室名称" kind:"text"`
	RoomType       Value `json:"room_type" yaml:"room_type" label:"室用途" kind:"select" options:"ventilation_room_types"`
	FloorArea      Value `json:"floor_area" yaml:"floor_area" label:"床面積" kind:"number" unit:"m2"`
	Method         Value `json:"method" yaml:"method" label:"換気方式" kind:"select" options:"ventilation_methods"`
	EquipmentName  Value `json:"equipment_name" yaml:"equipment_name" label:"機器名称" kind:"text"`
	Count          Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	Airflow        Value `json:"airflow" yaml:"airflow" label:"送風量" kind:"number" unit:"m3/h台"`
	MotorPower     Value `json:"motor_power" yaml:"motor_power" label:"電動機出力" kind:"number" unit:"W/台"`
	HighEffMotor   Value `json:"high_eff_motor" yaml:"high_eff_motor" label:"高効率電動機" kind:"select" options:"boolean"`
	Inverter       Value `json:"inverter" yaml:"inverter" label:"インバーター" kind:"select" options:"boolean"`
	AirflowControl Value `json:"airflow_control" yaml:"airflow_control" label:"送風量制御" kind:"select" options:"boolean"`
}

// Lighting is one 様式E lit room.
type Lighting struct {
	RoomName           Value `json:"room_name" yaml:"room_name" label:"室名称" kind:"text"`
	RoomType           Value `json:"room_type" yaml:"room_type" label:"室用途" kind:"text"`
	FloorArea          Value `json:"floor_area" yaml:"floor_area" label:"床面積" kind:"number" unit:"m2"`
	RoomHeight         Value `json:"room_height" yaml:"room_height" label:"室の高さ" kind:"number" unit:"m"`
	FixtureName        Value `json:"fixture_name" yaml:"fixture_name" label:"照明器具名称" kind:"text"`
	PowerPerUnit       Value `json:"power_per_unit" yaml:"power_per_unit" label:"消費電力" kind:"number" unit:"W/台"`
	Count              Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	OccupancySensor    Value `json:"occupancy_sensor" yaml:"occupancy_sensor" label:"在室検知制御" kind:"select" options:"boolean"`
	DaylightControl    Value `json:"daylight_control" yaml:"daylight_control" label:"明るさ制御" kind:"select" options:"boolean"`
	ScheduleControl    Value `json:"schedule_control" yaml:"schedule_control" label:"タイムスケジュール" kind:"select" options:"boolean"`
	InitialIlluminance Value `json:"initial_illuminance" yaml:"initial_illuminance" label:"初期照度補正" kind:"select" options:"boolean"`
}

// HotWater is one 様式F hot water system.
type HotWater struct {
	SystemName       Value `json:"system_name" yaml:"system_name" label:"給湯系統名称" kind:"text"`
	UseType          Value `json:"use_type" yaml:"use_type" label:"給湯用途" kind:"select" options:"hot_water_use_types"`
	SourceName       Value `json:"source_name" yaml:"source_name" label:"熱源名称" kind:"text"`
	Count            Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	HeatingCapacity  Value `json:"heating_capacity" yaml:"heating_capacity" label:"定格加熱能力" kind:"number" unit:"kW/台"`
	PowerConsumption Value `json:"power_consumption" yaml:"power_consumption" label:"定格消費電力" kind:"number" unit:"kW/台"`
	FuelConsumption  Value `json:"fuel_consumption" yaml:"fuel_consumption" label:"定格燃料消費量" kind:"number" unit:"kW/台"`
	InsulationLevel  Value `json:"insulation_level" yaml:"insulation_level" label:"配管保温仕様" kind:"select" options:"insulation_levels"`
	WaterSaving      Value `json:"water_saving" yaml:"water_saving" label:"節湯器具" kind:"select" options:"water_saving"`
}

// Elevator is one 様式G elevator.
type Elevator struct {
	Name        Value `json:"name" yaml:"name" label:"昇降機名称" kind:"text"`
	ControlType Value `json:"control_type" yaml:"control_type" label:"速度制御方式" kind:"select" options:"elevator_controls"`
}

// SolarPV is one 様式H photovoltaic system.
type SolarPV struct {
	SystemName       Value `json:"system_name" yaml:"system_name" label:"システム名称" kind:"text"`
	CellType         Value `json:"cell_type" yaml:"cell_type" label:"太陽電池の種類" kind:"select" options:"solar_cell_types"`
	InstallationMode Value `json:"installation_mode" yaml:"installation_mode" label:"アレイ設置方式" kind:"select" options:"install_modes"`
	CapacityKW       Value `json:"capacity_kw" yaml:"capacity_kw" label:"システム容量" kind:"number" unit:"kW"`
	PanelDirection   Value `json:"panel_direction" yaml:"panel_direction" label:"パネル方位角" kind:"select" options:"panel_directions"`
	PanelAngle       Value `json:"panel_angle" yaml:"panel_angle" label:"パネル傾斜角" kind:"select" options:"panel_angles"`
}

// Cogeneration is one 様式I cogeneration unit.
type Cogeneration struct {
	Name            Value `json:"name" yaml:"name" label:"設備名称" kind:"text"`
	RatedOutput     Value `json:"rated_output" yaml:"rated_output" label:"定格発電出力" kind:"number" unit:"kW/台"`
	Count           Value `json:"count" yaml:"count" label:"台数" kind:"count"`
	GenEff100       Value `json:"gen_eff_100" yaml:"gen_eff_100" label:"発電効率 100%" kind:"number" unit:"%"`
	GenEff75        Value `json:"gen_eff_75" yaml:"gen_eff_75" label:"発電効率 75%" kind:"number" unit:"%"`
	GenEff50        Value `json:"gen_eff_50" yaml:"gen_eff_50" label:"発電効率 50%" kind:"number" unit:"%"`
	HeatEff100      Value `json:"heat_eff_100" yaml:"heat_eff_100" label:"排熱効率 100%" kind:"number" unit:"%"`
	HeatEff75       Value `json:"heat_eff_75" yaml:"heat_eff_75" label:"排熱効率 75%" kind:"number" unit:"%"`
	HeatEff50       Value `json:"heat_eff_50" yaml:"heat_eff_50" label:"排熱効率 50%" kind:"number" unit:"%"`
	HeatRecoveryFor Value `json:"heat_recovery_for" yaml:"heat_recovery_for" label:"排熱利用先" kind:"select" options:"cogen_heat_recovery"`
}
