package domain

import "time"

// ItemCardapio is a menu entry. Prices are stored in centavos.
type ItemCardapio struct {
	ID            string
	Nome          string
	Descricao     string
	Categoria     string
	PrecoCentavos int64
	Disponivel    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
