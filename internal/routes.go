package internal

import (
	"alarmclock/internal/controllers"
	"alarmclock/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/alarms", http.HandlerFunc(apiController.ListAlarms))
	routers.Post("/alarms/add", http.HandlerFunc(apiController.AddAlarm))
	routers.Post("/alarms/toggle", http.HandlerFunc(apiController.ToggleAlarm))
	routers.Delete("/alarms/delete", http.HandlerFunc(apiController.DeleteAlarm))
	routers.Post("/alarms/snooze", http.HandlerFunc(apiController.SnoozeAlarm))
	routers.Post("/alarms/dismiss", http.HandlerFunc(apiController.DismissAlarm))
	return routers
}
