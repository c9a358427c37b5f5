package spec

// Scenario is the top-level YAML configuration for one route-energy run.
type Scenario struct {
	SpecVersion string   `yaml:"spec_version" json:"spec_version"`
	Route       RouteDef `yaml:"route" json:"route"`
	Bus         BusDef   `yaml:"bus" json:"bus"`
	Model       ModelDef `yaml:"model" json:"model"`
	Stops       StopsDef `yaml:"stops" json:"stops"`
}

// RouteDef names the route and its input files.
type RouteDef struct {
	ID         string `yaml:"id" json:"id" validate:"required"`
	ShapeFile  string `yaml:"shape_file" json:"shape_file" validate:"required"`
	RasterFile string `yaml:"raster_file" json:"raster_file" validate:"required"`
}

// BusDef holds the vehicle parameters. Zero values fall back to the 40-foot
// reference bus defaults.
type BusDef struct {
	UnloadedMass     float64 `yaml:"unloaded_mass" json:"unloaded_mass" validate:"gte=0"`
	ChargingPowerMax float64 `yaml:"charging_power_max" json:"charging_power_max" validate:"gte=0"`
}

// ModelDef selects the speed model and its bounds.
type ModelDef struct {
	Name       string  `yaml:"name" json:"name" validate:"required"`
	AccelLimit float64 `yaml:"accel_limit" json:"accel_limit" validate:"gte=0"`
	SpeedLimit float64 `yaml:"speed_limit" json:"speed_limit" validate:"gte=0"`
}

// StopsDef configures stop placement. Policy is one of "none", "random", or
// "coords"; an empty policy means none. Coords are [x, y] pairs in route
// projection metres; Masses, if present, is the loaded bus mass at each
// coordinate.
type StopsDef struct {
	Policy string       `yaml:"policy" json:"policy" validate:"omitempty,oneof=none random coords"`
	Coords [][2]float64 `yaml:"coords" json:"coords" validate:"omitempty,min=1"`
	Masses []float64    `yaml:"masses" json:"masses" validate:"omitempty,min=1,dive,gt=0"`
}
