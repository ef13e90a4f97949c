package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
)

type SettingsService struct {
	Repo     domain.SettingsRepo
	Defaults model.WageSettings
}

func NewSettingsService(repo domain.SettingsRepo, defaults model.WageSettings) *SettingsService {
	return &SettingsService{Repo: repo, Defaults: defaults.WithWeeklyDefaults()}
}

// GetSettings возвращает сохранённые настройки или значения по умолчанию.
func (s *SettingsService) GetSettings(ctx context.Context, employeeID int64) (model.WageSettings, error) {
	settings, found, err := s.Repo.GetSettings(ctx, employeeID)
	if err != nil {
		return model.WageSettings{}, fmt.Errorf("get settings: %w", err)
	}
	if !found {
		return s.Defaults, nil
	}
	return settings.WithWeeklyDefaults(), nil
}

func (s *SettingsService) SaveSettings(ctx context.Context, employeeID int64, settings model.WageSettings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}
	return s.Repo.SaveSettings(ctx, employeeID, settings)
}

// Set меняет одну настройку по ключу и сохраняет результат.
func (s *SettingsService) Set(ctx context.Context, employeeID int64, key, value string) (model.WageSettings, error) {
	current, err := s.GetSettings(ctx, employeeID)
	if err != nil {
		return model.WageSettings{}, err
	}
	updated, err := ApplySetting(current, key, value)
	if err != nil {
		return model.WageSettings{}, err
	}
	if err := s.SaveSettings(ctx, employeeID, updated); err != nil {
		return model.WageSettings{}, err
	}
	return updated, nil
}

// Ключи настроек, принимаемые ApplySetting.
const (
	KeyHourlyWage       = "wage"
	KeyTaxPercent       = "tax"
	KeyBaseHours        = "base"
	KeyBaseHoursSpecial = "basespecial"
	KeyStartOnSunday    = "sunday"
	KeyWeeklyThreshold  = "weekly"
	KeyWeeklyRate       = "weeklyrate"
)

func ApplySetting(s model.WageSettings, key, value string) (model.WageSettings, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	if key == KeyStartOnSunday {
		on, err := parseBool(value)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%q", domain.ErrInvalidSettings, key, value)
		}
		s.StartWorkOnSunday = on
		return s, ValidateSettings(s)
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil {
		return s, fmt.Errorf("%w: %s=%q", domain.ErrInvalidSettings, key, value)
	}
	switch key {
	case KeyHourlyWage:
		s.HourlyWage = v
	case KeyTaxPercent:
		s.TaxDeductionPercent = v
	case KeyBaseHours:
		s.BaseHoursWeekday = v
	case KeyBaseHoursSpecial:
		s.BaseHoursSpecialDay = v
	case KeyWeeklyThreshold:
		s.WeeklyOvertimeThresholdHours = v
	case KeyWeeklyRate:
		s.WeeklyOvertimeMultiplier = v
	default:
		return s, fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSettings, key)
	}
	return s, ValidateSettings(s)
}

func ValidateSettings(s model.WageSettings) error {
	switch {
	case s.HourlyWage < 0:
		return fmt.Errorf("%w: hourly wage must not be negative", domain.ErrInvalidSettings)
	case s.TaxDeductionPercent < 0 || s.TaxDeductionPercent > 100:
		return fmt.Errorf("%w: tax percent must be within 0-100", domain.ErrInvalidSettings)
	case s.BaseHoursWeekday < 0 || s.BaseHoursSpecialDay < 0:
		return fmt.Errorf("%w: base hours must not be negative", domain.ErrInvalidSettings)
	case s.BaseHoursWeekday > 24 || s.BaseHoursSpecialDay > 24:
		return fmt.Errorf("%w: base hours must not exceed 24", domain.ErrInvalidSettings)
	case s.WeeklyOvertimeThresholdHours < 0 || s.WeeklyOvertimeMultiplier < 0:
		return fmt.Errorf("%w: weekly overtime values must not be negative", domain.ErrInvalidSettings)
	}
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "да", "вкл":
		return true, nil
	case "off", "нет", "выкл":
		return false, nil
	}
	return strconv.ParseBool(v)
}
