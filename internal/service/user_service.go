package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/pkg/entity"
	"github.com/ferrous/regiment/pkg/mailqueue"
)

var (
	verificationTTL = time.Hour * 24
)

type UserService struct {
	repo     repository.UsersRepositoryI
	producer mailqueue.ProducerI
}

func NewUserService(usersRepo repository.UsersRepositoryI, producer mailqueue.ProducerI) *UserService {
	return &UserService{
		repo:     usersRepo,
		producer: producer,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	code, err := verificationCode()
	if err != nil {
		return nil, errors.New("generating verification code error: " + err.Error())
	}
	user := &entity.User{
		Email:               req.Email,
		PasswordHash:        passwordHash,
		VerificationCode:    code,
		VerificationToken:   uuid.New().String(),
		VerificationExpires: time.Now().Add(verificationTTL),
	}
	id, err := us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user.ID = id
	// Verification email delivery is decoupled: a failed publish doesn't
	// fail registration, the user can request the sweep-and-retry path.
	err = us.producer.PublishVerification(ctx, &mailqueue.VerificationEvent{
		Email:     user.Email,
		Code:      user.VerificationCode,
		Token:     user.VerificationToken,
		ExpiresAt: user.VerificationExpires,
	})
	if err != nil {
		slog.Error("publishing verification event failed", slog.String("error", err.Error()))
	}
	return user, nil
}

func (us *UserService) Verify(ctx context.Context, req *VerifyRequest) error {
	err := validate.Struct(*req)
	if err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	user, err := us.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if user.Verified {
		return nil
	}
	// Past expiry the pending row is removed outright, the caller has to
	// register again. This is distinct from a mismatched code.
	if time.Now().After(user.VerificationExpires) {
		if err = us.repo.Delete(ctx, user.ID); err != nil {
			return errors.New("repository deletion error: " + err.Error())
		}
		return errorvalues.ErrVerificationExpired
	}
	if user.VerificationCode != req.Code || user.VerificationToken != req.Token {
		return errorvalues.ErrInvalidVerification
	}
	if err = us.repo.MarkVerified(ctx, user.ID); err != nil {
		return errors.New("repository verifying error: " + err.Error())
	}
	return nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if !user.Verified {
		return nil, errorvalues.ErrUserNotVerified
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) CleanupUnverified(ctx context.Context) (int64, error) {
	removed, err := us.repo.DeleteExpiredUnverified(ctx, time.Now())
	if err != nil {
		return 0, errors.New("repository cleanup error: " + err.Error())
	}
	return removed, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
