package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wishlist-cli/internal/api"
	"wishlist-cli/internal/model"

	"github.com/google/uuid"
)

// Client is the remote collection surface the store syncs against.
// *api.Client satisfies it; tests use a stub.
type Client interface {
	List(ctx context.Context) ([]model.Item, error)
	Create(ctx context.Context, d api.Draft) (model.Item, error)
	Update(ctx context.Context, id int64, p api.Patch) (model.Item, error)
	Delete(ctx context.Context, id int64) error
}

// AddForm holds the transient add-form fields. Price stays a string until
// submission, when it is parsed to a float.
type AddForm struct {
	URL      string
	Category string
	Price    string
}

// EditForm holds the transient edit-form fields for the open edit session.
type EditForm struct {
	Name     string
	Price    string
	URL      string
	Category string
}

// Store is the item store view-model: the ordered in-memory item sequence
// plus the add/edit form state, kept in lockstep with the server through
// the four collection operations. All state changes happen on the caller's
// goroutine; the store does no locking of its own.
type Store struct {
	client Client

	Items     []model.Item
	AddForm   AddForm
	EditingID int64 // 0 = no open edit session
	EditForm  EditForm

	// editToken identifies the current edit session. A commit response is
	// applied only while its token is still current, so a save resolving
	// after cancel (or after a new session opened) is discarded.
	editToken string
}

func New(c Client) *Store {
	return &Store{
		client:  c,
		AddForm: defaultAddForm(),
	}
}

func defaultAddForm() AddForm {
	return AddForm{URL: "", Category: model.DefaultCategory, Price: ""}
}

// Client returns the remote collection client. The TUI issues requests on
// it from background commands and feeds the responses back through the
// Apply* methods on the update loop.
func (s *Store) Client() Client { return s.client }

// Find returns the item with the given id, if present.
func (s *Store) Find(id int64) (model.Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// Load replaces Items wholesale with the server's sequence, in the order
// received. On failure Items is left unchanged.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.client.List(ctx)
	if err != nil {
		return err
	}
	s.ApplyLoaded(items)
	return nil
}

// ApplyLoaded installs a freshly fetched sequence.
func (s *Store) ApplyLoaded(items []model.Item) {
	s.Items = items
}

// Draft validates the add form and returns the create request body.
// URL and price are required; price must parse to a non-negative number.
// An empty category falls back to the default.
func (s *Store) Draft() (api.Draft, error) {
	u := strings.TrimSpace(s.AddForm.URL)
	if u == "" {
		return api.Draft{}, errors.New("url is required")
	}
	price, err := parsePrice(s.AddForm.Price)
	if err != nil {
		return api.Draft{}, err
	}
	cat := strings.TrimSpace(s.AddForm.Category)
	if cat == "" {
		cat = model.DefaultCategory
	}
	return api.Draft{URL: u, Category: cat, Price: price}, nil
}

// Create submits the add form. On success the server's item (with its
// assigned id) is appended and the form resets to defaults; on failure
// both Items and the form are left as they were, so the entry can be
// resubmitted.
func (s *Store) Create(ctx context.Context) (model.Item, error) {
	d, err := s.Draft()
	if err != nil {
		return model.Item{}, err
	}
	it, err := s.client.Create(ctx, d)
	if err != nil {
		return model.Item{}, err
	}
	s.ApplyCreated(it)
	return it, nil
}

// ApplyCreated appends a server-created item and resets the add form.
func (s *Store) ApplyCreated(it model.Item) {
	s.Items = append(s.Items, it)
	s.AddForm = defaultAddForm()
}

// BeginEdit opens an edit session for the given item, seeding the edit
// form from its current fields. Opening a new session silently replaces
// any pending one without saving it.
func (s *Store) BeginEdit(it model.Item) {
	s.EditingID = it.ID
	s.EditForm = EditForm{
		Name:     it.Name,
		Price:    formatPrice(it.Price),
		URL:      it.URL,
		Category: it.Category,
	}
	s.editToken = uuid.NewString()
}

// Editing reports whether an edit session is open.
func (s *Store) Editing() bool { return s.EditingID != 0 }

// EditToken returns the current edit session token ("" when no session
// is open). Callers running the commit asynchronously capture it at
// request time and hand it back to ApplyUpdated.
func (s *Store) EditToken() string { return s.editToken }

// EditPatch validates the edit form and returns the update request body.
func (s *Store) EditPatch() (api.Patch, error) {
	if !s.Editing() {
		return api.Patch{}, errors.New("no open edit session")
	}
	price, err := parsePrice(s.EditForm.Price)
	if err != nil {
		return api.Patch{}, err
	}
	u := strings.TrimSpace(s.EditForm.URL)
	if u == "" {
		return api.Patch{}, errors.New("url is required")
	}
	return api.Patch{
		Name:     strings.TrimSpace(s.EditForm.Name),
		Price:    price,
		URL:      u,
		Category: s.EditForm.Category,
	}, nil
}

// CommitEdit sends the edit form to the server. On success the matching
// element is replaced in place with the server's representation and the
// session closes; on failure the session stays open for another attempt.
func (s *Store) CommitEdit(ctx context.Context) (model.Item, error) {
	patch, err := s.EditPatch()
	if err != nil {
		return model.Item{}, err
	}
	id := s.EditingID
	token := s.editToken
	it, err := s.client.Update(ctx, id, patch)
	if err != nil {
		return model.Item{}, err
	}
	s.ApplyUpdated(it, token)
	return it, nil
}

// ApplyUpdated replaces the element matching the updated item's id and
// closes the edit session. The mutation is applied only while token is
// still the current session token; a stale response (session canceled or
// superseded while the request was in flight) is discarded. Reports
// whether the update was applied.
func (s *Store) ApplyUpdated(it model.Item, token string) bool {
	if token == "" || token != s.editToken {
		return false
	}
	for i := range s.Items {
		if s.Items[i].ID == it.ID {
			s.Items[i] = it
			break
		}
	}
	s.clearEdit()
	return true
}

// CancelEdit discards the edit session without any network call.
// Calling it with no open session is a no-op.
func (s *Store) CancelEdit() {
	if !s.Editing() {
		return
	}
	s.clearEdit()
}

func (s *Store) clearEdit() {
	s.EditingID = 0
	s.EditForm = EditForm{}
	s.editToken = ""
}

// Remove deletes an item by id. The local element is removed only after
// the server confirms; a failed request leaves Items unchanged.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, id); err != nil {
		return err
	}
	s.ApplyRemoved(id)
	return nil
}

// ApplyRemoved drops the element with the given id, preserving the order
// of the rest.
func (s *Store) ApplyRemoved(id int64) {
	kept := s.Items[:0]
	for _, it := range s.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.Items = kept
	// A pending edit session for the removed item no longer has a row.
	if s.EditingID == id {
		s.clearEdit()
	}
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("price is required")
	}
	// Accept a comma decimal separator; the backend audience types "12,50".
	raw = strings.ReplaceAll(raw, ",", ".")
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", raw)
	}
	if p < 0 {
		return 0, errors.New("price cannot be negative")
	}
	return p, nil
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// FormatPrice renders a price for display, with the currency prefix.
func FormatPrice(p float64) string {
	return "€" + formatPrice(p)
}
