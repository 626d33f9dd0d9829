package services

import (
	"context"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Register(ctx context.Context, email, password, name, address string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.New(apperr.KindValidation, "email and password are required")
	}

	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	if count > 0 {
		return nil, apperr.New(apperr.KindValidation, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Address:  strings.TrimSpace(address),
		Role:     "customer",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}
	return u, nil
}
