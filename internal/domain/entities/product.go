package entities

import "time"

// Product representa um produto do catálogo
type Product struct {
	ID              string
	Name            string
	Description     string
	ActiveStartDate *time.Time
	ActiveEndDate   *time.Time
	Manufacturer    string
	Model           string
	PromoMessage    string
	DefaultCategory *Category
	Media           []Media // ordenado pela chave da mídia
}

// IsActive verifica se o produto está ativo no instante informado
func (p *Product) IsActive(now time.Time) bool {
	return isActive(p.ActiveStartDate, p.ActiveEndDate, now)
}

// PrimaryMedia retorna a mídia com chave "primary", se existir
func (p *Product) PrimaryMedia() (Media, bool) {
	for _, m := range p.Media {
		if m.Key == "primary" {
			return m, true
		}
	}
	return Media{}, false
}
