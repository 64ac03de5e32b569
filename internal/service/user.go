package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/shared-city/backend/internal/cache"
	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/repository"
	"github.com/shared-city/backend/pkg/auth"
	"github.com/shared-city/backend/pkg/hash"
	"github.com/shared-city/backend/pkg/logger"
	"github.com/shared-city/backend/pkg/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const revokedTokenKeyPrefix = "auth:revoked:"

type userService struct {
	userRepository repository.Users
	store          cache.Store
	hasher         hash.Hasher
	tokenManager   auth.TokenManager
	otpGenerator   otp.Generator
	codeSender     CodeSender
	authConfig     config.AuthConfig
	codeLocks      *keyedMutex
}

func newUserService(userRepository repository.Users,
	store cache.Store,
	hasher hash.Hasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	codeSender CodeSender,
	authConfig config.AuthConfig,
) *userService {
	return &userService{
		userRepository: userRepository,
		store:          store,
		hasher:         hasher,
		tokenManager:   tokenManager,
		otpGenerator:   otpGenerator,
		codeSender:     codeSender,
		authConfig:     authConfig,
		codeLocks:      newKeyedMutex(),
	}
}

type Tokens struct {
	AccessToken string
	AccessTTL   time.Duration
}

// IssueCode stores a fresh code for phone, replacing any live one, and hands it to the sender.
func (s *userService) IssueCode(ctx context.Context, phone string) error {
	code, err := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	if err != nil {
		return fmt.Errorf("generate verification code failed: %w", err)
	}

	issued := domain.VerificationCode{
		Phone:    phone,
		Code:     code,
		IssuedAt: time.Now(),
		TTL:      s.authConfig.VerificationCodeTTL,
	}
	if err := s.store.Set(ctx, domain.LoginCodeKey(phone), issued.Code, issued.TTL); err != nil {
		return fmt.Errorf("%w: save verification code: %w", ErrStoreUnavailable, err)
	}
	logger.Debug("verification code issued",
		zap.String("phone", maskPhone(phone)),
		zap.Time("expires_at", issued.ExpiresAt()),
	)

	if err := s.codeSender.SendVerificationCode(ctx, issued.Phone, issued.Code); err != nil {
		if s.authConfig.DeliveryFailurePolicy == config.DeliveryFailureFail {
			return fmt.Errorf("%w: %w", ErrCodeDelivery, err)
		}
		logger.Error("verification code delivery failed",
			zap.String("phone", maskPhone(phone)),
			zap.Error(err),
		)
	}

	return nil
}

// Login consumes the code issued for phone and returns the user owning phone,
// provisioning one on first login. The code stays consumed even when provisioning fails.
func (s *userService) Login(ctx context.Context, phone string, code string) (*domain.User, error) {
	if code == "" {
		return nil, ErrInvalidOrExpiredCode
	}

	consumed, err := s.consumeCode(ctx, domain.LoginCodeKey(phone), code)
	if err != nil {
		return nil, fmt.Errorf("%w: consume verification code: %w", ErrStoreUnavailable, err)
	}
	if !consumed {
		return nil, ErrInvalidOrExpiredCode
	}

	return s.findOrCreate(ctx, phone)
}

func (s *userService) consumeCode(ctx context.Context, key string, code string) (bool, error) {
	if consumer, ok := s.store.(cache.Consumer); ok {
		return consumer.Consume(ctx, key, code)
	}

	unlock := s.codeLocks.Lock(key)
	defer unlock()

	stored, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return false, err
	}

	return true, nil
}

func (s *userService) findOrCreate(ctx context.Context, phone string) (*domain.User, error) {
	user, err := s.userRepository.GetByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: get user by phone: %w", ErrStoreUnavailable, err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%w: generate user id: %w", ErrUserPersistence, err)
	}

	newUser := domain.NewPhoneUser(userID, phone)
	now := time.Now().UTC()
	newUser.CreatedAt, newUser.UpdatedAt = now, now

	if err := s.userRepository.Create(ctx, newUser); err != nil {
		if !errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, fmt.Errorf("%w: create user: %w", ErrUserPersistence, err)
		}

		// another login created the phone first
		winner, err := s.userRepository.GetByPhone(ctx, phone)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUserConflict, err)
		}
		return winner, nil
	}

	logger.Info("user provisioned", zap.String("user_id", userID.String()), zap.String("phone", maskPhone(phone)))

	return newUser, nil
}

func (s *userService) CreateSession(_ context.Context, user *domain.User) (*Tokens, error) {
	accessToken, accessTTL, err := s.tokenManager.NewJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	return &Tokens{
		AccessToken: accessToken,
		AccessTTL:   accessTTL,
	}, nil
}

// Logout revokes accessToken until it would have expired on its own.
func (s *userService) Logout(ctx context.Context, accessToken string) error {
	key, err := s.revokedTokenKey(accessToken)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, key, "1", s.tokenManager.AccessTTL()); err != nil {
		return fmt.Errorf("%w: revoke access token: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (s *userService) IsRevoked(ctx context.Context, accessToken string) (bool, error) {
	key, err := s.revokedTokenKey(accessToken)
	if err != nil {
		return false, err
	}

	if _, err := s.store.Get(ctx, key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: check revoked token: %w", ErrStoreUnavailable, err)
	}

	return true, nil
}

func (s *userService) revokedTokenKey(accessToken string) (string, error) {
	fingerprint, err := s.hasher.Hash(accessToken)
	if err != nil {
		return "", fmt.Errorf("hash access token failed: %w", err)
	}

	return revokedTokenKeyPrefix + fingerprint, nil
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	return user, nil
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "****" + phone[len(phone)-4:]
}
