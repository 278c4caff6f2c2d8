package system_healthcheck

import "time"

var healthcheckService = &HealthcheckService{
	startedAt: time.Now(),
}
var healthcheckController = &HealthcheckController{
	healthcheckService,
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
