package dynamics

// Physical constants for the longitudinal dynamics model.
// Environmental values are fixed for now; a weather feed could eventually
// supply air density and wind.
const (
	GravAccel  = 9.81  // m/s²
	AirDensity = 1.225 // kg/m³
	WindSpeed  = 0.0   // m/s, headwind component
	RollCoeff  = 0.01  // rolling friction coefficient
)

// Parameters for a 40-foot transit bus.
const (
	BusWidth    = 2.6     // m
	BusHeight   = 3.3     // m
	DragCoeff   = 0.34    // drag coefficient, literature estimate
	WheelRadius = 0.28575 // m

	// FrontalArea is the projected frontal area used by the drag term.
	FrontalArea = BusWidth * BusHeight // m²
)

// DefaultUnloadedMass is the curb weight of the reference 40-foot bus in kg.
const DefaultUnloadedMass = 12927.0

// JoulesPerKWh converts integrated energy to kilowatt-hours for reports.
const JoulesPerKWh = 3.6e6
