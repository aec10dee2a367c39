// Package models defines the data records persisted by the server.
package models

// User is a registered account. SenhaHash holds the bcrypt hash of the
// password and is never serialized back to a caller.
type User struct {
	ID              string `json:"id"`
	Nome            string `json:"nome"`
	Sexo            string `json:"sexo"`
	Email           string `json:"email"`
	Celular         string `json:"celular"`
	DataAniversario string `json:"dataAniversario"`
	Idade           int    `json:"idade"`
	Foto            string `json:"foto,omitempty"`
	SenhaHash       string `json:"-"`
}
