package survey_fx

import (
	"go.uber.org/fx"

	"clean/internal/services"
)

var Module = fx.Provide(services.NewSurveyService)
