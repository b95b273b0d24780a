package integrations

import (
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/integrations/whiskyweb"
	"droscher.com/MyWhiskies/pkg/model"
)

// Integration looks distilleries up on an external site. Results are not
// saved; the user picks one to prefill the add form.
type Integration interface {
	FindDistillery(name string) ([]model.Distillery, error)
}

func GetIntegration(conf configs.Integrations, logger *zap.Logger) Integration {
	if conf.Distillery == whiskyweb.IntegrationName {
		return whiskyweb.NewWhiskyWebIntegration(conf.DistilleryBaseURL, logger)
	}

	return nil
}
