package entities

// Media representa uma imagem ou arquivo associado a um produto
type Media struct {
	ID      string
	Key     string // ex.: "primary", "alt1"
	URL     string
	Title   string
	AltText string
	Tags    string
}
