package timezone

import "time"

// Todas as lojas operam no fuso brasileiro; o cálculo aberto/fechado do
// cardápio usa este relógio.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
