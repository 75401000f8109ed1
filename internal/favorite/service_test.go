package favorite

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lojaplena/favoritos/internal/apperr"
)

type stubStore struct {
	favorites []Favorite
	createErr error
}

func (s *stubStore) Create(ctx context.Context, clientID uuid.UUID, productID int) (*Favorite, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	f := Favorite{ID: uuid.New(), ClientID: clientID, ProductID: productID}
	s.favorites = append(s.favorites, f)
	return &f, nil
}

func (s *stubStore) Exists(ctx context.Context, clientID uuid.UUID, productID int) (bool, error) {
	for _, f := range s.favorites {
		if f.ClientID == clientID && f.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStore) ListByClient(ctx context.Context, clientID uuid.UUID) ([]Favorite, error) {
	var out []Favorite
	for _, f := range s.favorites {
		if f.ClientID == clientID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *stubStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, f := range s.favorites {
		if f.ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStore) DeleteByClient(ctx context.Context, clientID uuid.UUID) (bool, error) {
	kept := s.favorites[:0]
	deleted := false
	for _, f := range s.favorites {
		if f.ClientID == clientID {
			deleted = true
			continue
		}
		kept = append(kept, f)
	}
	s.favorites = kept
	return deleted, nil
}

// stubDirectory registra a ordem dos colaboradores consultados.
type stubDirectory struct {
	exists bool
	err    error
	calls  *[]string
}

func (d *stubDirectory) ClientExists(ctx context.Context, clientID string) (bool, error) {
	if d.calls != nil {
		*d.calls = append(*d.calls, "directory")
	}
	return d.exists, d.err
}

type stubCatalog struct {
	products map[int]*Product
	err      error
	calls    *[]string
}

func (c *stubCatalog) GetProduct(ctx context.Context, productID int) (*Product, error) {
	if c.calls != nil {
		*c.calls = append(*c.calls, "catalog")
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.products[productID], nil
}

func TestCreateFavorite(t *testing.T) {
	clientID := uuid.New()
	store := &stubStore{}
	svc := NewService(store,
		&stubDirectory{exists: true},
		&stubCatalog{products: map[int]*Product{1: {ID: 1, Title: "Caneca"}}})

	created, err := svc.Create(context.Background(), clientID.String(), 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ClientID != clientID || created.ProductID != 1 {
		t.Fatalf("favorito divergente: %+v", created)
	}
}

func TestCreateUnknownClientSkipsCatalog(t *testing.T) {
	var calls []string
	svc := NewService(&stubStore{},
		&stubDirectory{exists: false, calls: &calls},
		&stubCatalog{products: map[int]*Product{1: {ID: 1}}, calls: &calls})

	_, err := svc.Create(context.Background(), uuid.NewString(), 1)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("esperava NotFound, veio %v", err)
	}
	if len(calls) != 1 || calls[0] != "directory" {
		t.Fatalf("catálogo não deveria ser consultado; chamadas: %v", calls)
	}
}

func TestCreateChecksClientBeforeProduct(t *testing.T) {
	var calls []string
	svc := NewService(&stubStore{},
		&stubDirectory{exists: true, calls: &calls},
		&stubCatalog{products: map[int]*Product{1: {ID: 1}}, calls: &calls})

	if _, err := svc.Create(context.Background(), uuid.NewString(), 1); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(calls) != 2 || calls[0] != "directory" || calls[1] != "catalog" {
		t.Fatalf("ordem de checagens divergente: %v", calls)
	}
}

func TestCreateUnknownProductIsBadRequest(t *testing.T) {
	svc := NewService(&stubStore{},
		&stubDirectory{exists: true},
		&stubCatalog{products: map[int]*Product{}})

	_, err := svc.Create(context.Background(), uuid.NewString(), 99)
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Fatalf("esperava BadRequest, veio %v", err)
	}
}

func TestCreateDirectoryDownIsUnavailable(t *testing.T) {
	svc := NewService(&stubStore{},
		&stubDirectory{err: apperr.Unavailable("serviço de clientes fora do ar")},
		&stubCatalog{})

	_, err := svc.Create(context.Background(), uuid.NewString(), 1)
	if !apperr.IsKind(err, apperr.KindUnavailable) {
		t.Fatalf("esperava Unavailable, veio %v", err)
	}
}

func TestCreateCatalogDownIsUnavailable(t *testing.T) {
	svc := NewService(&stubStore{},
		&stubDirectory{exists: true},
		&stubCatalog{err: apperr.Unavailable("catálogo fora do ar")})

	_, err := svc.Create(context.Background(), uuid.NewString(), 1)
	if !apperr.IsKind(err, apperr.KindUnavailable) {
		t.Fatalf("esperava Unavailable, veio %v", err)
	}
}

func TestCreateDuplicatePairConflicts(t *testing.T) {
	clientID := uuid.New()
	store := &stubStore{favorites: []Favorite{{ID: uuid.New(), ClientID: clientID, ProductID: 1}}}
	svc := NewService(store,
		&stubDirectory{exists: true},
		&stubCatalog{products: map[int]*Product{1: {ID: 1}}})

	_, err := svc.Create(context.Background(), clientID.String(), 1)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("esperava Conflict, veio %v", err)
	}
}

// Não há transação cobrindo a checagem de unicidade e o insert: dois pedidos
// simultâneos passam pela checagem, e o segundo insert esbarra na constraint.
func TestCreateDuplicateRaceCaughtByConstraint(t *testing.T) {
	svc := NewService(&stubStore{createErr: ErrDuplicatePair},
		&stubDirectory{exists: true},
		&stubCatalog{products: map[int]*Product{1: {ID: 1}}})

	_, err := svc.Create(context.Background(), uuid.NewString(), 1)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("esperava Conflict vindo da constraint, veio %v", err)
	}
}

func TestListProductsDropsMissingCatalogEntries(t *testing.T) {
	clientID := uuid.New()
	store := &stubStore{favorites: []Favorite{
		{ID: uuid.New(), ClientID: clientID, ProductID: 1},
		{ID: uuid.New(), ClientID: clientID, ProductID: 2},
	}}
	svc := NewService(store,
		&stubDirectory{exists: true},
		&stubCatalog{products: map[int]*Product{1: {ID: 1, Title: "Caneca"}}})

	products, err := svc.ListProducts(context.Background(), clientID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("esperava exatamente o produto 1, veio %+v", products)
	}
}

func TestListProductsEmptyClient(t *testing.T) {
	svc := NewService(&stubStore{},
		&stubDirectory{exists: true},
		&stubCatalog{})

	products, err := svc.ListProducts(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("esperava lista vazia, veio %+v", products)
	}
}

func TestListProductsCatalogDownFailsWhole(t *testing.T) {
	clientID := uuid.New()
	store := &stubStore{favorites: []Favorite{{ID: uuid.New(), ClientID: clientID, ProductID: 1}}}
	svc := NewService(store,
		&stubDirectory{exists: true},
		&stubCatalog{err: apperr.Unavailable("catálogo fora do ar")})

	_, err := svc.ListProducts(context.Background(), clientID.String())
	if !apperr.IsKind(err, apperr.KindUnavailable) {
		t.Fatalf("esperava Unavailable, veio %v", err)
	}
}

func TestListProductsPreservesRowOrder(t *testing.T) {
	clientID := uuid.New()
	store := &stubStore{favorites: []Favorite{
		{ID: uuid.New(), ClientID: clientID, ProductID: 3},
		{ID: uuid.New(), ClientID: clientID, ProductID: 1},
		{ID: uuid.New(), ClientID: clientID, ProductID: 2},
	}}
	svc := NewService(store,
		&stubDirectory{exists: true},
		&stubCatalog{products: map[int]*Product{
			1: {ID: 1}, 2: {ID: 2}, 3: {ID: 3},
		}})

	products, err := svc.ListProducts(context.Background(), clientID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 3 || products[0].ID != 3 || products[1].ID != 1 || products[2].ID != 2 {
		t.Fatalf("ordem divergente: %+v", products)
	}
}

func TestDeleteByClientReportsOutcome(t *testing.T) {
	clientID := uuid.New()
	store := &stubStore{favorites: []Favorite{{ID: uuid.New(), ClientID: clientID, ProductID: 1}}}
	svc := NewService(store, &stubDirectory{exists: true}, &stubCatalog{})

	deleted, err := svc.DeleteByClient(context.Background(), clientID.String())
	if err != nil || !deleted {
		t.Fatalf("esperava remoção, veio deleted=%v err=%v", deleted, err)
	}

	deleted, err = svc.DeleteByClient(context.Background(), clientID.String())
	if err != nil || deleted {
		t.Fatalf("segunda remoção deveria reportar false, veio deleted=%v err=%v", deleted, err)
	}
}
