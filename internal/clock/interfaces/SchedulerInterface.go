package interfaces

type SchedulerInterface interface {
	Init()
	Stop()
	Tick()
	Restore() error
	Persist() error
}
