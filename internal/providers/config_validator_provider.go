package providers

import (
	"alarmclock/internal/structures"
	"fmt"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (v *CnfValidator) Validate() error {
	sections := []interface{}{
		&v.conf.Clock,
		&v.conf.Storage,
		&v.conf.Logger,
		&v.conf.Vibration,
	}
	if v.conf.WebServer.Enabled {
		sections = append(sections, &v.conf.WebServer)
	}

	for _, section := range sections {
		vd := validate.Struct(section)
		if !vd.Validate() {
			return vd.Errors
		}
	}

	for i, d := range v.conf.Vibration.Pattern {
		if d <= 0 {
			return fmt.Errorf("vibration.pattern[%d] must be positive, got %s", i, d)
		}
	}

	return nil
}
