// Package memory is an in-process wallet engine. It serves seeded documents
// and resolves deferred issuance after a fixed number of retries, which is
// enough to run the catalog without a real wallet.
package memory

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
	"eudiwallet/pkg/platform/sentinel"
)

// DefaultResolveAfter is how many retries a pending document needs before
// the issuer hands it out.
const DefaultResolveAfter = 2

var _ ports.DocumentsController = (*Controller)(nil)

type Controller struct {
	mu           sync.Mutex
	docs         []models.Document
	attempts     map[models.DocumentID]int
	resolveAfter int
	clock        func() time.Time
}

type Option func(*Controller)

// WithResolveAfter sets the retries a pending document needs. Values below
// one resolve on the first retry.
func WithResolveAfter(n int) Option {
	return func(c *Controller) {
		c.resolveAfter = max(n, 1)
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.clock = now
	}
}

func NewController(docs []models.Document, opts ...Option) *Controller {
	c := &Controller{
		attempts:     make(map[models.DocumentID]int),
		resolveAfter: DefaultResolveAfter,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, d := range docs {
		if c.indexOf(d.ID) < 0 {
			c.docs = append(c.docs, d)
		}
	}
	return c
}

func (c *Controller) GetAllDocuments(ctx context.Context) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.docs), nil
}

func (c *Controller) GetDocumentByID(ctx context.Context, id models.DocumentID) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return models.Document{}, fmt.Errorf("document %s: %w", id, sentinel.ErrNotFound)
	}
	return c.docs[idx], nil
}

// RetryIssuance counts one attempt per pending ref and issues the document
// once it reaches the configured count. Refs for failed documents are
// reported failed. Unknown refs are left out of the result.
func (c *Controller) RetryIssuance(ctx context.Context, refs map[models.DocumentID]models.FormatType) (models.RetryResult, error) {
	if err := ctx.Err(); err != nil {
		return models.RetryResult{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var result models.RetryResult
	for _, id := range sortedRefs(refs) {
		idx := c.indexOf(id)
		if idx < 0 {
			continue
		}
		doc := &c.docs[idx]
		ref := models.DeferredDocument{ID: doc.ID, Name: doc.Name, FormatType: doc.FormatType}

		switch doc.IssuanceState {
		case models.IssuanceIssued:
			result.Succeeded = append(result.Succeeded, ref)
		case models.IssuanceFailed:
			result.Failed = append(result.Failed, ref)
		default:
			c.attempts[id]++
			if c.attempts[id] < c.resolveAfter {
				result.StillPending = append(result.StillPending, ref)
				continue
			}
			now := c.clock()
			doc.IssuanceState = models.IssuanceIssued
			doc.IssuedAt = &now
			delete(c.attempts, id)
			result.Succeeded = append(result.Succeeded, ref)
		}
	}
	return result, nil
}

func (c *Controller) DeleteDocument(ctx context.Context, id models.DocumentID) (models.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return models.DeleteResult{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return models.DeleteResult{}, fmt.Errorf("document %s: %w", id, sentinel.ErrNotFound)
	}
	c.docs = slices.Delete(c.docs, idx, idx+1)
	delete(c.attempts, id)
	return models.DeleteResult{AllDeleted: len(c.docs) == 0}, nil
}

func (c *Controller) indexOf(id models.DocumentID) int {
	return slices.IndexFunc(c.docs, func(d models.Document) bool { return d.ID == id })
}

func sortedRefs(refs map[models.DocumentID]models.FormatType) []models.DocumentID {
	ids := make([]models.DocumentID, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// seedFile is the YAML layout accepted by LoadSeed.
type seedFile struct {
	Documents []seedDocument `yaml:"documents"`
}

type seedDocument struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Issuer    string     `yaml:"issuer"`
	Format    string     `yaml:"format"`
	Category  string     `yaml:"category"`
	IssuedAt  *time.Time `yaml:"issued_at"`
	ExpiresAt *time.Time `yaml:"expires_at"`
	State     string     `yaml:"state"`
}

// LoadSeed reads documents from YAML. Format defaults to mso_mdoc and state
// to issued.
func LoadSeed(r io.Reader) ([]models.Document, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	docs := make([]models.Document, 0, len(seed.Documents))
	for i, s := range seed.Documents {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("seed document %d: id and name are required", i)
		}
		doc := models.Document{
			ID:            models.DocumentID(s.ID),
			Name:          s.Name,
			Issuer:        s.Issuer,
			FormatType:    models.FormatType(s.Format),
			Category:      models.Category(s.Category),
			IssuedAt:      s.IssuedAt,
			ExpiresAt:     s.ExpiresAt,
			IssuanceState: models.IssuanceState(s.State),
		}
		if doc.FormatType == "" {
			doc.FormatType = models.FormatMsoMdoc
		}
		if doc.IssuanceState == "" {
			doc.IssuanceState = models.IssuanceIssued
		}
		if !doc.IssuanceState.IsValid() {
			return nil, fmt.Errorf("seed document %s: unknown state %q", s.ID, s.State)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
