package audit

import "github.com/rs/zerolog/log"

type Event struct {
	UserID   uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher grava auditoria fora do caminho da requisição; fila cheia
// descarta o evento em vez de travar a API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Warn().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Msg("audit queue full, dropping event")
	}
}
