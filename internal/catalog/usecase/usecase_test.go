package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"bookrack/internal/catalog/entity"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/goerror"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/jwt"
	"bookrack/internal/pkg/storage"
	"bookrack/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  catalog:
    cover_url_ttl_minutes: 15
    cover_max_bytes: 64
`

type fakeRepoDB struct {
	mu    sync.Mutex
	books map[int64]entity.Book

	listErr   error
	createErr error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{books: make(map[int64]entity.Book)}
}

func (f *fakeRepoDB) ListBooksByUser(_ context.Context, userID int64) ([]entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []entity.Book
	for _, b := range f.books {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepoDB) GetBookByID(_ context.Context, id int64) (*entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &b, nil
}

func (f *fakeRepoDB) CreateBook(_ context.Context, in entity.NewBook) (*entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	b := entity.Book{
		ID:        in.ID,
		UserID:    in.UserID,
		Title:     in.Title,
		Author:    in.Author,
		Genre:     in.Genre,
		CreatedAt: time.Now(),
	}
	f.books[in.ID] = b
	return &b, nil
}

func (f *fakeRepoDB) DeleteBook(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	if !ok || b.UserID != userID {
		return goerror.ErrNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepoDB) UpdateBookCover(_ context.Context, id, userID int64, coverKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	if !ok || b.UserID != userID {
		return goerror.ErrNotFound
	}
	b.CoverKey = coverKey
	f.books[id] = b
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte

	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, key, _ string, _ int64, r io.Reader) (storage.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.uploadErr != nil {
		return storage.Object{}, f.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.Object{}, err
	}
	f.objects[key] = data
	return storage.Object{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeStorage) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.objects[key]; !ok {
		return "", errors.New("object not found")
	}
	return "https://storage.test/" + key + "?signed", nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, key)
	return nil
}

type seqNumberID struct {
	next int64
}

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type fixture struct {
	uc      *Usecase
	repo    *fakeRepoDB
	storage *fakeStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	repo := newFakeRepoDB()
	stg := newFakeStorage()

	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		Config:     cfg,
		Storage:    stg,
		UID:        &seqNumberID{},
		Clock:      realClock{},
		Instrument: instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, storage: stg}
}

func authCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), &jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject: strconv.FormatInt(userID, 10),
		},
	})
}

func assertGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	return gerr
}
