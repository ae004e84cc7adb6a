package golftraj

import (
	"math"

	"github.com/rhwilloughby/golftraj/config"
)

// Density computes the air density rho in kg/m^3 from temperature,
// pressure, altitude, and humidity, via the barometric lapse-rate
// formula with a small correction for water vapor's lower molar mass.
func Density(env Environment) (float64, error) {
	if err := env.Validate(); err != nil {
		return 0, err
	}
	cfg := config.Current()
	t := env.TemperatureK()

	rho := env.PressurePa / (cfg.GasConstantAir * t)

	if env.AltitudeM > 0 {
		exponent := cfg.Gravity/(cfg.GasConstantAir*cfg.LapseRate) - 1
		base := 1 - cfg.LapseRate*env.AltitudeM/cfg.SeaLevelTemperatureK
		if base <= 0 {
			return 0, newError(CodeInvalidInput, "altitude exceeds the lapse-rate model's validity", nil)
		}
		rho *= math.Pow(base, exponent)
	}

	// Humidity correction: reduce dry-air density by up to
	// HumidityMaxReduction at saturation, linear in humidity fraction
	// (; exact coefficient is implementation-defined).
	rho *= 1 - cfg.HumidityMaxReduction*env.Humidity

	return rho, nil
}

// Viscosity computes the dynamic viscosity mu in Pa*s via Sutherland's
// law approximated as a power fit in T/288.15,.
// Grounded on cprevallet/baseballgui's viscosity() (also a Sutherland
// approximation, though keyed on a full Sutherland-constant formula
// rather than spec's simpler 0.76-power fit).
func Viscosity(env Environment) float64 {
	const (
		muRef  = 1.81e-5
		tRef   = 288.15
		expVal = 0.76
	)
	return muRef * math.Pow(env.TemperatureK()/tRef, expVal)
}
