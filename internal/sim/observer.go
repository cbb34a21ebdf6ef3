package sim

import (
	"github.com/rs/zerolog"

	"github.com/san-kum/swingby/internal/dynamo"
)

// LogObserver reports run progress at debug level every n samples.
type LogObserver struct {
	log   zerolog.Logger
	every int
	total int
}

func NewLogObserver(log zerolog.Logger, every, total int) *LogObserver {
	return &LogObserver{log: log, every: every, total: total}
}

func (o *LogObserver) OnStep(i int, x dynamo.State) {
	if o.every <= 0 || i%o.every != 0 {
		return
	}
	o.log.Debug().
		Int("step", i).
		Int("steps", o.total).
		Float64("t", x.Time).
		Float64("r", x.Radius()).
		Float64("speed", x.Speed()).
		Msg("integration progress")
}
