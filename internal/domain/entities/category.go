package entities

import "time"

// Category representa uma categoria do catálogo
type Category struct {
	ID              string
	Name            string
	Description     string
	URL             string
	ActiveStartDate *time.Time
	ActiveEndDate   *time.Time
}

// IsActive verifica se a categoria está ativa no instante informado
func (c *Category) IsActive(now time.Time) bool {
	return isActive(c.ActiveStartDate, c.ActiveEndDate, now)
}

// isActive: início ausente = sempre iniciado; fim ausente = nunca expira
func isActive(start, end *time.Time, now time.Time) bool {
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && !now.Before(*end) {
		return false
	}
	return true
}
