package models

// Pet is a record owned by exactly one user. UserID is set from the
// authenticated identity at creation time and never changes afterwards.
type Pet struct {
	ID                 string `json:"id"`
	Nome               string `json:"nome"`
	Idade              int    `json:"idade"`
	Tipo               string `json:"tipo"`
	Foto               string `json:"foto,omitempty"`
	ServicosProcurados string `json:"servicosProcurados,omitempty"`
	UserID             string `json:"usuario"`
}
