package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MenuDoce/cardapio-api/internal/models"
)

func at(hora, minuto int) time.Time {
	return time.Date(2026, 3, 10, hora, minuto, 0, 0, time.UTC)
}

func TestStatusAtDentroDaJanela(t *testing.T) {
	t.Parallel()

	cfg := &models.Configuracoes{
		HorarioFuncionamentoInicio: "08:00",
		HorarioFuncionamentoFim:    "18:00",
	}

	st := StatusAt(cfg, at(9, 0))
	assert.True(t, st.Aberto)
	assert.Equal(t, "Aberto", st.Label)
	assert.Equal(t, "Fecha às 18:00", st.Detalhe)
}

func TestStatusAtForaDaJanela(t *testing.T) {
	t.Parallel()

	cfg := &models.Configuracoes{
		HorarioFuncionamentoInicio: "08:00",
		HorarioFuncionamentoFim:    "18:00",
	}

	st := StatusAt(cfg, at(19, 0))
	assert.False(t, st.Aberto)
	assert.Equal(t, "Fechado", st.Label)
	assert.Equal(t, "Abre às 08:00", st.Detalhe)
}

func TestStatusAtBordasInclusivas(t *testing.T) {
	t.Parallel()

	cfg := &models.Configuracoes{
		HorarioFuncionamentoInicio: "08:00",
		HorarioFuncionamentoFim:    "18:00",
	}

	assert.True(t, StatusAt(cfg, at(8, 0)).Aberto, "abertura exata conta como aberto")
	assert.True(t, StatusAt(cfg, at(18, 0)).Aberto, "fechamento exato conta como aberto")
	assert.False(t, StatusAt(cfg, at(7, 59)).Aberto)
	assert.False(t, StatusAt(cfg, at(18, 1)).Aberto)
}

func TestStatusAtSemConfiguracao(t *testing.T) {
	t.Parallel()

	// Sem linha de configuração vale a janela padrão 08:00-18:00.
	assert.True(t, StatusAt(nil, at(12, 0)).Aberto)
	assert.False(t, StatusAt(nil, at(6, 0)).Aberto)

	vazio := &models.Configuracoes{}
	st := StatusAt(vazio, at(20, 0))
	assert.False(t, st.Aberto)
	assert.Equal(t, "Abre às 08:00", st.Detalhe)
}

func TestStatusAtHorarioInvalido(t *testing.T) {
	t.Parallel()

	cfg := &models.Configuracoes{
		HorarioFuncionamentoInicio: "abc",
		HorarioFuncionamentoFim:    "25:99",
	}
	// Horário que não parseia cai no padrão em minutos.
	assert.True(t, StatusAt(cfg, at(10, 0)).Aberto)
}
