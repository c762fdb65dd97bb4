package store

import "context"

// QueryFunc executa a consulta de uma subscrição (reutilizada a cada aviso).
type QueryFunc func(ctx context.Context, q Query) (Snapshot, error)

// Serve implementa a mecânica comum de subscrição dos dois armazéns: snapshot
// inicial, reconsulta a cada aviso do hub e entrega coalescida (o snapshot
// mais recente substitui um ainda não consumido). Um erro de consulta encerra
// apenas esta subscrição (onErr é chamado e o canal fecha); as demais seguem
// intactas.
func Serve(ctx context.Context, q Query, run QueryFunc, h *Hub, onErr func(error)) *Subscription {
	notify, stop := h.Listen(q.Collection)
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Snapshot, 1)

	push := func(snap Snapshot) {
		select {
		case out <- snap:
		default:
			// consumidor lento: descartar o snapshot pendente e entregar o novo
			select {
			case <-out:
			default:
			}
			out <- snap
		}
	}

	go func() {
		defer close(out)
		defer stop()

		snap, err := run(ctx, q)
		if err != nil {
			if onErr != nil && ctx.Err() == nil {
				onErr(err)
			}
			return
		}
		push(snap)

		for {
			select {
			case <-ctx.Done():
				return
			case <-notify:
				snap, err := run(ctx, q)
				if err != nil {
					if onErr != nil && ctx.Err() == nil {
						onErr(err)
					}
					return
				}
				push(snap)
			}
		}
	}()

	return NewSubscription(out, cancel)
}
