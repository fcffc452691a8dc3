package interfaces

import "alarmclock/internal/models"

type AlarmStoreInterface interface {
	Load() models.AlarmList
	Save(list models.AlarmList)
	Close() error
}
