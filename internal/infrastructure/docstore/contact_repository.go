package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
	"github.com/msantana/advocacia-pro/internal/store"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo mensagens de contato sobre a coleção contacts.
type ContactRepo struct {
	st store.Store
}

// NewContactRepository constrói o adaptador.
func NewContactRepository(st store.Store) *ContactRepo {
	return &ContactRepo{st: st}
}

// Create persiste a mensagem e preenche o ID gerado.
func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now()
	}
	id, err := r.st.Create(ctx, store.ColContacts, contactToDoc(c))
	if err != nil {
		return fmt.Errorf("criar contato: %w", err)
	}
	c.ID = id
	return nil
}

// List devolve as mensagens ordenadas por submittedAt decrescente.
func (r *ContactRepo) List(ctx context.Context) ([]*entity.Contact, error) {
	snap, err := r.st.Query(ctx, ContactsQuery())
	if err != nil {
		return nil, fmt.Errorf("listar contatos: %w", err)
	}
	out := make([]*entity.Contact, 0, len(snap))
	for _, doc := range snap {
		out = append(out, contactFromDoc(doc))
	}
	return out, nil
}

// Delete remove a mensagem.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	if err := r.st.Delete(ctx, store.ColContacts, id); err != nil {
		return fmt.Errorf("remover contato: %w", err)
	}
	return nil
}

// ContactsQuery é a consulta canônica das mensagens (também usada pelo realtime).
func ContactsQuery() store.Query {
	return store.Query{
		Collection: store.ColContacts,
		OrderBy:    &store.Order{Field: "submittedAt", Desc: true},
	}
}

func contactToDoc(c *entity.Contact) map[string]any {
	return map[string]any{
		"name":        c.Name,
		"email":       c.Email,
		"phone":       c.Phone,
		"message":     c.Message,
		"submittedAt": stamp(c.SubmittedAt),
	}
}

func contactFromDoc(doc store.Document) *entity.Contact {
	return &entity.Contact{
		ID:          doc.ID,
		Name:        str(doc.Data, "name"),
		Email:       str(doc.Data, "email"),
		Phone:       str(doc.Data, "phone"),
		Message:     str(doc.Data, "message"),
		SubmittedAt: when(doc.Data, "submittedAt"),
	}
}
