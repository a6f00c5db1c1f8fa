package orrery

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _orreryconfig{}
)

// _orreryconfig is a "hidden" struct, just use `orreryConfig`.
type _orreryconfig struct {
	UnitsPerAU        float64
	DaysPerSecond     float64
	MaxDaysPerTick    float64
	CometActiveRadius float64
	VSOP87            bool
	VSOP87Dir         string
}

// defaultConfig is used when no configuration directory is set. The engine
// must always be able to run; only a present-but-broken file is fatal.
func defaultConfig() _orreryconfig {
	return _orreryconfig{
		UnitsPerAU:        36,
		DaysPerSecond:     1,
		MaxDaysPerTick:    30,
		CometActiveRadius: 108,
	}
}

// orreryConfig returns the engine configuration, loading it on first use from
// the conf.toml in the directory named by ORRERY_CONFIG, if any.
func orreryConfig() _orreryconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("ORRERY_CONFIG")
	if confPath == "" {
		config = defaultConfig()
		cfgLoaded = true
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	viper.SetDefault("scene.units_per_au", 36.0)
	viper.SetDefault("clock.days_per_second", 1.0)
	viper.SetDefault("clock.max_days_per_tick", 30.0)
	viper.SetDefault("comet.active_radius", 108.0)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not readable: %s", confPath, err))
	}

	config = _orreryconfig{
		UnitsPerAU:        viper.GetFloat64("scene.units_per_au"),
		DaysPerSecond:     viper.GetFloat64("clock.days_per_second"),
		MaxDaysPerTick:    viper.GetFloat64("clock.max_days_per_tick"),
		CometActiveRadius: viper.GetFloat64("comet.active_radius"),
		VSOP87:            viper.GetBool("VSOP87.enabled"),
		VSOP87Dir:         viper.GetString("VSOP87.directory"),
	}
	if config.UnitsPerAU <= 0 || config.DaysPerSecond <= 0 || config.MaxDaysPerTick <= 0 || config.CometActiveRadius <= 0 {
		panic(fmt.Errorf("%s/conf.toml contains non-positive engine parameters", confPath))
	}
	cfgLoaded = true
	return config
}
