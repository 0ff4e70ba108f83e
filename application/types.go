package application

import (
	"cryptogold-alerts/services/health"
	newsService "cryptogold-alerts/services/news"
	telegramService "cryptogold-alerts/services/telegram"
	"cryptogold-alerts/utils/databases"
	"cryptogold-alerts/utils/insights"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler       gocron.Scheduler
	healthService   health.Service
	newsService     newsService.Service
	telegramService telegramService.Service
	db              databases.SqlConnection
	probes          insights.Probes
}
