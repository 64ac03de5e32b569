package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shared-city/backend/internal/cache"
	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/domain"
	mock_repository "github.com/shared-city/backend/internal/repository/mock"
	"github.com/shared-city/backend/pkg/auth"
	"github.com/shared-city/backend/pkg/hash"
	"github.com/shared-city/backend/pkg/otp"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPhone = "13800001234"

// fakeUsers keeps users in memory and enforces phone uniqueness like the user table.
type fakeUsers struct {
	mu      sync.Mutex
	byPhone map[string]*domain.User
	creates int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byPhone: make(map[string]*domain.User)}
}

func (f *fakeUsers) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byPhone[user.Phone]; ok {
		return domain.ErrDuplicateEntry
	}
	stored := *user
	f.byPhone[user.Phone] = &stored
	f.creates++
	return nil
}

func (f *fakeUsers) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byPhone[phone]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUsers) GetOneByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byPhone {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

type recordingSender struct {
	mu    sync.Mutex
	codes map[string][]string
	err   error
}

func newRecordingSender() *recordingSender {
	return &recordingSender{codes: make(map[string][]string)}
}

func (r *recordingSender) SendVerificationCode(_ context.Context, phone string, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[phone] = append(r.codes[phone], code)
	return r.err
}

func (r *recordingSender) last(phone string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	codes := r.codes[phone]
	if len(codes) == 0 {
		return ""
	}
	return codes[len(codes)-1]
}

// sequenceGenerator hands out fixed values in order, formatted like real codes.
type sequenceGenerator struct {
	mu     sync.Mutex
	values []int64
}

func (g *sequenceGenerator) RandomCode(length int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.values) == 0 {
		return "", errors.New("sequence exhausted")
	}
	v := g.values[0]
	g.values = g.values[1:]
	return otp.Format(v, length), nil
}

func testAuthConfig(policy string) config.AuthConfig {
	return config.AuthConfig{
		VerificationCodeLength: 6,
		VerificationCodeTTL:    5 * time.Minute,
		DeliveryFailurePolicy:  policy,
	}
}

func newTestUserService(t *testing.T, store cache.Store, users *fakeUsers, sender CodeSender, generator otp.Generator, policy string) *userService {
	t.Helper()

	tokenManager, err := auth.NewManager("test-signing-key", time.Hour)
	require.NoError(t, err)

	if generator == nil {
		generator = otp.NewCryptoGenerator()
	}

	return newUserService(users, store, hash.NewSHA256Hasher("salt"), tokenManager, generator, sender, testAuthConfig(policy))
}

func newMiniredisStore(t *testing.T) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisStore(client), mr
}

// codeStores runs a test against the atomic Redis store and the mutex guarded memory store.
func codeStores(t *testing.T) map[string]func(t *testing.T) cache.Store {
	t.Helper()
	return map[string]func(t *testing.T) cache.Store{
		"redis": func(t *testing.T) cache.Store {
			s, _ := newMiniredisStore(t)
			return s
		},
		"memory": func(t *testing.T) cache.Store {
			return cache.NewMemoryStore()
		},
	}
}

func TestUserService_IssueCodeStoresZeroPaddedCode(t *testing.T) {
	store, mr := newMiniredisStore(t)
	sender := newRecordingSender()
	s := newTestUserService(t, store, newFakeUsers(), sender, &sequenceGenerator{values: []int64{7}}, config.DeliveryFailureLog)

	require.NoError(t, s.IssueCode(context.Background(), testPhone))

	stored, err := store.Get(context.Background(), "login:code:"+testPhone)
	require.NoError(t, err)
	assert.Equal(t, "000007", stored)
	assert.Equal(t, "000007", sender.last(testPhone))
	assert.Equal(t, 5*time.Minute, mr.TTL("login:code:"+testPhone))
}

func TestUserService_SecondIssueInvalidatesFirst(t *testing.T) {
	for name, newStore := range codeStores(t) {
		t.Run(name, func(t *testing.T) {
			sender := newRecordingSender()
			s := newTestUserService(t, newStore(t), newFakeUsers(), sender, &sequenceGenerator{values: []int64{111111, 222222}}, config.DeliveryFailureLog)
			ctx := context.Background()

			require.NoError(t, s.IssueCode(ctx, testPhone))
			first := sender.last(testPhone)
			require.NoError(t, s.IssueCode(ctx, testPhone))
			second := sender.last(testPhone)

			_, err := s.Login(ctx, testPhone, first)
			assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)

			user, err := s.Login(ctx, testPhone, second)
			require.NoError(t, err)
			assert.Equal(t, testPhone, user.Phone)
		})
	}
}

func TestUserService_CodeIsOneTimeUse(t *testing.T) {
	for name, newStore := range codeStores(t) {
		t.Run(name, func(t *testing.T) {
			sender := newRecordingSender()
			s := newTestUserService(t, newStore(t), newFakeUsers(), sender, nil, config.DeliveryFailureLog)
			ctx := context.Background()

			require.NoError(t, s.IssueCode(ctx, testPhone))
			code := sender.last(testPhone)

			_, err := s.Login(ctx, testPhone, code)
			require.NoError(t, err)

			_, err = s.Login(ctx, testPhone, code)
			assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
		})
	}
}

func TestUserService_LoginWithoutIssuedCode(t *testing.T) {
	for name, newStore := range codeStores(t) {
		t.Run(name, func(t *testing.T) {
			s := newTestUserService(t, newStore(t), newFakeUsers(), newRecordingSender(), nil, config.DeliveryFailureLog)

			for _, code := range []string{"000000", "123456", ""} {
				_, err := s.Login(context.Background(), "13900005678", code)
				assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
			}
		})
	}
}

func TestUserService_MismatchKeepsCode(t *testing.T) {
	for name, newStore := range codeStores(t) {
		t.Run(name, func(t *testing.T) {
			sender := newRecordingSender()
			s := newTestUserService(t, newStore(t), newFakeUsers(), sender, &sequenceGenerator{values: []int64{424242}}, config.DeliveryFailureLog)
			ctx := context.Background()

			require.NoError(t, s.IssueCode(ctx, testPhone))

			_, err := s.Login(ctx, testPhone, "424241")
			assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
			_, err = s.Login(ctx, testPhone, " 424242")
			assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)

			_, err = s.Login(ctx, testPhone, "424242")
			assert.NoError(t, err)
		})
	}
}

func TestUserService_ExpiredCode(t *testing.T) {
	store, mr := newMiniredisStore(t)
	sender := newRecordingSender()
	s := newTestUserService(t, store, newFakeUsers(), sender, nil, config.DeliveryFailureLog)
	ctx := context.Background()

	require.NoError(t, s.IssueCode(ctx, testPhone))
	mr.FastForward(5*time.Minute + time.Second)

	_, err := s.Login(ctx, testPhone, sender.last(testPhone))
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestUserService_FirstLoginProvisionsUser(t *testing.T) {
	users := newFakeUsers()
	sender := newRecordingSender()
	s := newTestUserService(t, cache.NewMemoryStore(), users, sender, nil, config.DeliveryFailureLog)
	ctx := context.Background()

	require.NoError(t, s.IssueCode(ctx, testPhone))
	first, err := s.Login(ctx, testPhone, sender.last(testPhone))
	require.NoError(t, err)
	assert.Equal(t, "User_1234", first.NickName)
	assert.Equal(t, domain.RoleNormal, first.Role)
	assert.Equal(t, testPhone, first.Phone)
	assert.Equal(t, uuid.Version(7), first.ID.Version())

	require.NoError(t, s.IssueCode(ctx, testPhone))
	second, err := s.Login(ctx, testPhone, sender.last(testPhone))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, users.creates)
}

func TestUserService_ConcurrentLoginSingleSuccess(t *testing.T) {
	for name, newStore := range codeStores(t) {
		t.Run(name, func(t *testing.T) {
			users := newFakeUsers()
			sender := newRecordingSender()
			s := newTestUserService(t, newStore(t), users, sender, nil, config.DeliveryFailureLog)
			ctx := context.Background()

			require.NoError(t, s.IssueCode(ctx, testPhone))
			code := sender.last(testPhone)

			const attempts = 16
			var (
				wg        sync.WaitGroup
				successes atomic.Int32
				start     = make(chan struct{})
			)
			for i := 0; i < attempts; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					if _, err := s.Login(ctx, testPhone, code); err == nil {
						successes.Add(1)
					} else {
						assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
					}
				}()
			}
			close(start)
			wg.Wait()

			assert.Equal(t, int32(1), successes.Load())
			assert.Equal(t, 1, users.creates)
			assert.Zero(t, s.codeLocks.size())
		})
	}
}

func TestUserService_LoginLosesCreationRace(t *testing.T) {
	users := new(mock_repository.Users)
	store := cache.NewMemoryStore()
	tokenManager, err := auth.NewManager("test-signing-key", time.Hour)
	require.NoError(t, err)
	s := newUserService(users, store, hash.NewSHA256Hasher("salt"), tokenManager, &sequenceGenerator{values: []int64{1}}, newRecordingSender(), testAuthConfig(config.DeliveryFailureLog))
	ctx := context.Background()

	winner := domain.NewPhoneUser(uuid.New(), testPhone)
	users.On("GetByPhone", mock.Anything, testPhone).Return(nil, domain.ErrNotFound).Once()
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicateEntry).Once()
	users.On("GetByPhone", mock.Anything, testPhone).Return(winner, nil).Once()

	require.NoError(t, s.IssueCode(ctx, testPhone))
	user, err := s.Login(ctx, testPhone, "000001")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, user.ID)
	users.AssertExpectations(t)
}

func TestUserService_LoginCreationConflict(t *testing.T) {
	users := new(mock_repository.Users)
	tokenManager, err := auth.NewManager("test-signing-key", time.Hour)
	require.NoError(t, err)
	s := newUserService(users, cache.NewMemoryStore(), hash.NewSHA256Hasher("salt"), tokenManager, &sequenceGenerator{values: []int64{1}}, newRecordingSender(), testAuthConfig(config.DeliveryFailureLog))
	ctx := context.Background()

	users.On("GetByPhone", mock.Anything, testPhone).Return(nil, domain.ErrNotFound).Twice()
	users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry).Once()

	require.NoError(t, s.IssueCode(ctx, testPhone))
	_, err = s.Login(ctx, testPhone, "000001")
	assert.ErrorIs(t, err, ErrUserConflict)
	users.AssertExpectations(t)
}

func TestUserService_PersistenceFailureConsumesCode(t *testing.T) {
	users := new(mock_repository.Users)
	tokenManager, err := auth.NewManager("test-signing-key", time.Hour)
	require.NoError(t, err)
	s := newUserService(users, cache.NewMemoryStore(), hash.NewSHA256Hasher("salt"), tokenManager, &sequenceGenerator{values: []int64{1}}, newRecordingSender(), testAuthConfig(config.DeliveryFailureLog))
	ctx := context.Background()

	users.On("GetByPhone", mock.Anything, testPhone).Return(nil, domain.ErrNotFound).Once()
	users.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	require.NoError(t, s.IssueCode(ctx, testPhone))
	_, err = s.Login(ctx, testPhone, "000001")
	assert.ErrorIs(t, err, ErrUserPersistence)

	_, err = s.Login(ctx, testPhone, "000001")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
	users.AssertExpectations(t)
}

func TestUserService_DeliveryFailurePolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		wantErr error
	}{
		{name: "log", policy: config.DeliveryFailureLog},
		{name: "fail", policy: config.DeliveryFailureFail, wantErr: ErrCodeDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cache.NewMemoryStore()
			sender := newRecordingSender()
			sender.err = errors.New("gateway down")
			s := newTestUserService(t, store, newFakeUsers(), sender, &sequenceGenerator{values: []int64{123456}}, tt.policy)

			err := s.IssueCode(context.Background(), testPhone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			stored, err := store.Get(context.Background(), "login:code:"+testPhone)
			require.NoError(t, err)
			assert.Equal(t, "123456", stored)
		})
	}
}

func TestUserService_StoreUnavailable(t *testing.T) {
	store, mr := newMiniredisStore(t)
	s := newTestUserService(t, store, newFakeUsers(), newRecordingSender(), nil, config.DeliveryFailureLog)
	mr.Close()

	err := s.IssueCode(context.Background(), testPhone)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.Login(context.Background(), testPhone, "123456")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestUserService_LogoutRevokesToken(t *testing.T) {
	users := newFakeUsers()
	sender := newRecordingSender()
	s := newTestUserService(t, cache.NewMemoryStore(), users, sender, nil, config.DeliveryFailureLog)
	ctx := context.Background()

	require.NoError(t, s.IssueCode(ctx, testPhone))
	user, err := s.Login(ctx, testPhone, sender.last(testPhone))
	require.NoError(t, err)

	tokens, err := s.CreateSession(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, tokens.AccessTTL)

	revoked, err := s.IsRevoked(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Logout(ctx, tokens.AccessToken))

	revoked, err = s.IsRevoked(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestUserService_GetOneByID(t *testing.T) {
	users := newFakeUsers()
	s := newTestUserService(t, cache.NewMemoryStore(), users, newRecordingSender(), nil, config.DeliveryFailureLog)
	ctx := context.Background()

	_, err := s.GetOneByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	created := domain.NewPhoneUser(uuid.New(), testPhone)
	require.NoError(t, users.Create(ctx, created))

	got, err := s.GetOneByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestKeyedMutex_SerialisesPerKey(t *testing.T) {
	k := newKeyedMutex()

	var (
		wg      sync.WaitGroup
		inside  atomic.Int32
		maxSeen atomic.Int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("login:code:" + testPhone)
			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Zero(t, k.size())
}
