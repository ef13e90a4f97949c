package domain

import (
	"context"

	"shift-wage-bot/internal/model"
)

type SettingsRepo interface {
	// GetSettings возвращает found=false, если сотрудник ещё ничего не сохранял
	GetSettings(ctx context.Context, employeeID int64) (settings model.WageSettings, found bool, err error)
	SaveSettings(ctx context.Context, employeeID int64, settings model.WageSettings) error
}
