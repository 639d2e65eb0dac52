package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/domain"
	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"
)

type fakeAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*domain.Account{}}
}

func (f *fakeAccountRepo) Save(_ context.Context, account *domain.Account) (*domain.Account, error) {
	clone := *account
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.accounts[clone.Username] = &clone
	return &clone, nil
}

func (f *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	if a, ok := f.accounts[username]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeAccountRepo) List(_ context.Context) ([]*domain.Account, error) {
	var list []*domain.Account
	for _, a := range f.accounts {
		clone := *a
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeAccountRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.accounts)), nil
}

// fakeHasher marks hashes with a prefix instead of doing real key derivation.
type fakeHasher struct{}

func (fakeHasher) Hash(raw string) (string, error) { return "hashed:" + raw, nil }

func (fakeHasher) Compare(hash, raw string) error {
	if hash != "hashed:"+raw {
		return errors.New("mismatch")
	}
	return nil
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, fakeHasher{})

	account, err := svc.Register(context.Background(), "  Jane@Example.COM ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", account.Username)
	require.Equal(t, "hashed:secret1", account.PasswordHash)
	require.Equal(t, domain.RoleUser, account.Role)
	require.True(t, account.Enabled)
	require.NotZero(t, account.ID)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), fakeHasher{})

	_, err := svc.Register(context.Background(), "   ", "secret1")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrBlankUsername)

	_, err = svc.Register(context.Background(), "jane@example.com", "")
	require.ErrorIs(t, err, domain.ErrShortPassword)

	_, err = svc.Register(context.Background(), "jane@example.com", "12345")
	require.ErrorIs(t, err, domain.ErrShortPassword)
}

func TestRegister_DuplicateIsCaseInsensitive(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), fakeHasher{})

	_, err := svc.Register(context.Background(), "A@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@X.COM", "secret2")
	require.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, fakeHasher{})
	_, err := svc.Register(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)

	account, err := svc.Authenticate(context.Background(), "Jane@Example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", account.Username)
	require.False(t, account.IsAdmin())

	_, err = svc.Authenticate(context.Background(), "jane@example.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, fakeHasher{})

	_, err := repo.Save(context.Background(), &domain.Account{
		Username:     "off@example.com",
		PasswordHash: "hashed:secret1",
		Role:         domain.RoleUser,
		Enabled:      false,
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "off@example.com", "secret1")
	require.ErrorIs(t, err, ErrBadCredentials)
}
