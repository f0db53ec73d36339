package dto

import "github.com/Lucasdx7/Sistema-sub000/internal/domain"

// ItemCardapioRequest payload for creating or updating a menu item.
type ItemCardapioRequest struct {
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	Categoria     string `json:"categoria"`
	PrecoCentavos int64  `json:"preco_centavos"`
	Disponivel    *bool  `json:"disponivel"`
}

// ItemCardapioResponse projects a menu item.
type ItemCardapioResponse struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	Categoria     string `json:"categoria"`
	PrecoCentavos int64  `json:"preco_centavos"`
	Disponivel    bool   `json:"disponivel"`
}

// NewItemCardapioResponse maps the domain model.
func NewItemCardapioResponse(item *domain.ItemCardapio) ItemCardapioResponse {
	return ItemCardapioResponse{
		ID:            item.ID,
		Nome:          item.Nome,
		Descricao:     item.Descricao,
		Categoria:     item.Categoria,
		PrecoCentavos: item.PrecoCentavos,
		Disponivel:    item.Disponivel,
	}
}
