package bookmatch

import (
	"context"
	"fmt"
	"log/slog"

	"librarian/internal/catalog"
	"librarian/internal/config"
	"librarian/internal/logging"
	"librarian/internal/namenorm"
)

// Store is the author surface the registrar writes through.
// *catalog.Store satisfies it.
type Store interface {
	AuthorByName(ctx context.Context, name string) (*catalog.Author, error)
	AddAuthor(ctx context.Context, name string) (*catalog.Author, error)
}

// Registrar adds unknown authors to the catalog under a normalised
// name, so "Tolkien, J.R.R." and "J R R Tolkien" land on one row.
type Registrar struct {
	store     Store
	postfixes []string
	log       *slog.Logger
}

// NewRegistrar builds a Registrar using the author postfix list from
// cfg.
func NewRegistrar(store Store, cfg *config.Config, log *slog.Logger) *Registrar {
	if log == nil {
		log = logging.NewNop()
	}
	return &Registrar{
		store:     store,
		postfixes: cfg.NamePostfixes(),
		log:       logging.WithComponent(log, "bookmatch"),
	}
}

// Register resolves name to an author row, normalising the spelling
// first. If the normalised name already exists that row is returned
// with added false; otherwise a new row is created and added is true.
func (r *Registrar) Register(ctx context.Context, name, title string) (*catalog.Author, bool, error) {
	formatted := namenorm.FormatAuthorName(name, r.postfixes)
	if formatted != name {
		existing, err := r.store.AuthorByName(ctx, formatted)
		if err != nil {
			return nil, false, fmt.Errorf("look up author %q: %w", formatted, err)
		}
		if existing != nil {
			return existing, false, nil
		}
	}
	author, err := r.store.AddAuthor(ctx, formatted)
	if err != nil {
		return nil, false, fmt.Errorf("add author %q: %w", formatted, err)
	}
	r.log.Debug("added author", "author", formatted, "title", title)
	return author, true, nil
}
