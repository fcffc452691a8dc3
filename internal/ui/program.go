package ui

import (
	"alarmclock/internal/clock/interfaces"
	"alarmclock/internal/device"
	"alarmclock/internal/providers"
	"alarmclock/internal/services"
	storage "alarmclock/internal/storage/interfaces"
	"alarmclock/internal/structures"
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is the interactive front-end. The screen's own tick drives the
// alarm check, so the scheduler is only used to restore and persist.
type Program struct {
	conf      *structures.Config
	logger    providers.Logger
	service   services.AlarmServiceInterface
	scheduler interfaces.SchedulerInterface
	trigger   device.TriggerInterface
	store     storage.AlarmStoreInterface
	options   []tea.ProgramOption
}

func NewProgram(conf *structures.Config, logger providers.Logger, service services.AlarmServiceInterface, scheduler interfaces.SchedulerInterface, trigger device.TriggerInterface, store storage.AlarmStoreInterface) *Program {
	return &Program{
		conf:      conf,
		logger:    logger,
		service:   service,
		scheduler: scheduler,
		trigger:   trigger,
		store:     store,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

func (p *Program) Run(ctx context.Context) error {
	p.logger.Infof(providers.TypeUI, "Starting %s", p.conf.AppName)
	if err := p.scheduler.Restore(); err != nil {
		p.logger.Errorf(providers.TypeUI, "Restore error: %s", err)
	}

	m := newModel(p.service, p.logger, p.conf.Clock.TickInterval)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.options...)
	_, runErr := tea.NewProgram(m, opts...).Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = nil
	}
	if runErr != nil {
		runErr = fmt.Errorf("terminal ui: %w", runErr)
	}

	var errs []error
	errs = append(errs, runErr)
	if err := p.scheduler.Persist(); err != nil {
		errs = append(errs, err)
	}
	p.trigger.Close()
	if err := p.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	p.logger.Infof(providers.TypeUI, "Stopped")
	p.logger.Close()
	return errors.Join(errs...)
}
