package menu

import (
	"time"

	"github.com/MenuDoce/cardapio-api/internal/models"
)

const (
	defaultInicio = "08:00"
	defaultFim    = "18:00"
)

// Status aberto/fechado derivado do relógio de parede contra o horário de
// funcionamento da loja.
type Status struct {
	Aberto  bool   `json:"aberto"`
	Label   string `json:"label"`   // "Aberto" / "Fechado"
	Detalhe string `json:"detalhe"` // "Fecha às 18:00" / "Abre às 08:00"
}

// StatusAt compara agora (horas*60+minutos) com a janela de funcionamento.
// Ambas as bordas são inclusivas. A janela é tratada como intervalo do
// mesmo dia: fechamento antes da abertura (horário noturno) não é
// suportado.
func StatusAt(cfg *models.Configuracoes, now time.Time) Status {
	inicio, fim := defaultInicio, defaultFim
	if cfg != nil {
		if cfg.HorarioFuncionamentoInicio != "" {
			inicio = cfg.HorarioFuncionamentoInicio
		}
		if cfg.HorarioFuncionamentoFim != "" {
			fim = cfg.HorarioFuncionamentoFim
		}
	}

	cur := now.Hour()*60 + now.Minute()
	abre := parseMinutes(inicio, 8*60)
	fecha := parseMinutes(fim, 18*60)

	if cur >= abre && cur <= fecha {
		return Status{Aberto: true, Label: "Aberto", Detalhe: "Fecha às " + fim}
	}
	return Status{Aberto: false, Label: "Fechado", Detalhe: "Abre às " + inicio}
}

func parseMinutes(hm string, def int) int {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return def
	}
	return t.Hour()*60 + t.Minute()
}
