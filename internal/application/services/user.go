package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"blindstore-api/internal/application/ports"
	domain "blindstore-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	auth           ports.Auth
	blobs          ports.BlobStore
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	auth ports.Auth,
	blobs ports.BlobStore,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		auth:           auth,
		blobs:          blobs,
		mCounter:       mCounter,
	}
}

func (us *UserService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := us.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := us.userRepository.CreateUser(ctx, domain.User{
		UUID:         uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	// A fresh account gets its blob partition up front so the first upload
	// never races partition creation.
	if err := us.blobs.EnsurePartition(u.UUID); err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return u, nil
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return u, nil
}
