package entity

import "time"

// Contact é uma mensagem enviada pelo formulário público do site.
// Criada por visitantes anônimos; lida e apagada apenas por administradores.
type Contact struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}
