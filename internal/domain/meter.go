package domain

// MeterKey identifies a utility meter recorded in a protocol payload
type MeterKey string

const (
	MeterPowerUnit        MeterKey = "strom_we"
	MeterPowerCommon      MeterKey = "strom_allg"
	MeterGasUnit          MeterKey = "gas_we"
	MeterGasCommon        MeterKey = "gas_allg"
	MeterWaterKitchenCold MeterKey = "wasser_kueche_kalt"
	MeterWaterKitchenWarm MeterKey = "wasser_kueche_warm"
	MeterWaterBathCold    MeterKey = "wasser_bad_kalt"
	MeterWaterBathWarm    MeterKey = "wasser_bad_warm"
	MeterWaterWasher      MeterKey = "wasser_wm"
)

// MeterKeys is the fixed set of meters used for consumption deltas
var MeterKeys = []MeterKey{
	MeterPowerUnit,
	MeterPowerCommon,
	MeterGasUnit,
	MeterGasCommon,
	MeterWaterKitchenCold,
	MeterWaterKitchenWarm,
	MeterWaterBathCold,
	MeterWaterBathWarm,
	MeterWaterWasher,
}
