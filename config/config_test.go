package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	_, err := LoadConfig()
	assert.True(t, errors.As(err, &ErrNoToken{}))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DB_PATH", "")
	t.Setenv("WORKERS", "")
	t.Setenv("DEFAULT_HOURLY_WAGE", "40,04")
	t.Setenv("DEFAULT_TAX_PERCENT", "11.78")
	t.Setenv("DEFAULT_BASE_HOURS", "")
	t.Setenv("DEFAULT_BASE_HOURS_SPECIAL", "6")
	t.Setenv("DEFAULT_START_ON_SUNDAY", "true")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "salary-bot.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Workers)

	s := cfg.WageDefaults()
	assert.Equal(t, 40.04, s.HourlyWage)
	assert.Equal(t, 11.78, s.TaxDeductionPercent)
	assert.Equal(t, 8.0, s.BaseHoursWeekday)
	assert.Equal(t, 6.0, s.BaseHoursSpecialDay)
	assert.True(t, s.StartWorkOnSunday)
	assert.Equal(t, 40.0, s.WeeklyOvertimeThresholdHours)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestValidate(t *testing.T) {
	valid := Config{Workers: 1, QueueSize: 0, DefaultBaseHours: 8, DefaultBaseHoursSpecial: 8}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"negative queue", func(c *Config) { c.QueueSize = -1 }},
		{"negative wage", func(c *Config) { c.DefaultHourlyWage = -1 }},
		{"tax above 100", func(c *Config) { c.DefaultTaxPercent = 101 }},
		{"negative base", func(c *Config) { c.DefaultBaseHours = -8 }},
		{"unknown timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
