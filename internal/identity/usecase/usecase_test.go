package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bookrack/internal/identity/entity"
	"bookrack/internal/pkg/config"
	"bookrack/internal/pkg/goerror"
	"bookrack/internal/pkg/hash"
	"bookrack/internal/pkg/instrument"
	"bookrack/internal/pkg/jwt"
	"bookrack/internal/pkg/validator"
)

const testConfigYAML = `
jwt:
  issuer: "bookrack-test"
  access_token_ttl_hours: 1
modules:
  identity:
    signup_code_ttl_minutes: 10
    resend_cooldown_seconds: 60
`

type fakeRepoDB struct {
	mu       sync.Mutex
	users    map[string]*entity.User
	pendings map[string]entity.PendingSignup

	getUserErr error
	saveErr    error
	promoteErr error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{
		users:    make(map[string]*entity.User),
		pendings: make(map[string]entity.PendingSignup),
	}
}

func (f *fakeRepoDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepoDB) GetPendingSignupByEmail(_ context.Context, email string) (*entity.PendingSignup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.pendings[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRepoDB) SavePendingSignup(_ context.Context, in entity.PendingSignup) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.pendings[in.Email] = in
	return nil
}

func (f *fakeRepoDB) ResetPendingSignupCode(_ context.Context, email, code string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.pendings[email]
	if !ok {
		return goerror.ErrNotFound
	}
	p.Code = code
	p.ExpiresAt = expiresAt
	f.pendings[email] = p
	return nil
}

func (f *fakeRepoDB) PromotePendingSignup(_ context.Context, in entity.NewUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.promoteErr != nil {
		return f.promoteErr
	}
	if _, ok := f.users[in.Email]; ok {
		return goerror.ErrConflict
	}
	f.users[in.Email] = &entity.User{
		ID:           in.ID,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: in.PasswordHash,
		Provider:     in.Provider,
	}
	delete(f.pendings, in.Email)
	return nil
}

func (f *fakeRepoDB) UpsertOAuthUser(_ context.Context, in entity.NewUser) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u, ok := f.users[in.Email]; ok {
		u.FullName = in.FullName
		cp := *u
		return &cp, nil
	}
	u := &entity.User{
		ID:       in.ID,
		Email:    in.Email,
		FullName: in.FullName,
		Provider: in.Provider,
	}
	f.users[in.Email] = u
	cp := *u
	return &cp, nil
}

type fakeMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	fail  bool
	calls int
}

type sentMail struct {
	email string
	name  string
	code  string
}

func (f *fakeMailer) SendVerificationCode(_ context.Context, email, fullName, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.fail {
		return errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, sentMail{email: email, name: fullName, code: code})
	return nil
}

func (f *fakeMailer) lastSent(t *testing.T) sentMail {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		t.Fatal("no mail was sent")
	}
	return f.sent[len(f.sent)-1]
}

type fakePublisher struct {
	mu     sync.Mutex
	events []UserVerifiedEvent
	fail   bool
}

func (f *fakePublisher) PublishUserVerified(_ context.Context, msg UserVerifiedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return errors.New("broker unavailable")
	}
	f.events = append(f.events, msg)
	return nil
}

type fakeThrottle struct {
	allow bool
	err   error
	keys  []string
}

func (f *fakeThrottle) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allow, f.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type scriptedCodes struct {
	codes []string
	idx   int
}

func (s *scriptedCodes) Generate() string {
	code := s.codes[s.idx%len(s.codes)]
	s.idx++
	return code
}

type seqNumberID struct {
	next int64
}

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type staticStringID struct {
	value string
}

func (s staticStringID) Generate() string {
	return s.value
}

type fixture struct {
	uc       *Usecase
	repo     *fakeRepoDB
	mailer   *fakeMailer
	pub      *fakePublisher
	throttle *fakeThrottle
	clock    *fixedClock
	codes    *scriptedCodes
	jwt      jwt.JWT
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
	mailer := &fakeMailer{}
	pub := &fakePublisher{}
	thr := &fakeThrottle{allow: true}
	// Token verification compares expiry against real time, so the fixture
	// clock starts at the current time rather than a fixed date.
	clk := &fixedClock{now: time.Now()}
	codes := &scriptedCodes{codes: []string{"123456", "654321", "111111"}}
	signer := jwt.NewSymmetric([]byte("test-secret"))

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: pub,
		Mailer:        mailer,
		Throttle:      thr,
		Validator:     v10,
		Config:        cfg,
		Bcrypt:        hash.NewBcrypt(4, ""),
		HMAC:          hash.NewHMACSHA256("test-hmac"),
		Codes:         codes,
		UID:           &seqNumberID{},
		Nonce:         staticStringID{value: "nonce-1"},
		Clock:         clk,
		JWT:           signer,
		Instrument:    instrument.NewNoop(),
	})

	return &fixture{
		uc:       uc,
		repo:     repo,
		mailer:   mailer,
		pub:      pub,
		throttle: thr,
		clock:    clk,
		codes:    codes,
		jwt:      signer,
	}
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
