package service

import (
	"context"
	"errors"
	"fmt"

	"sentimentservice/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService реализует регистрацию и проверку учётных записей
// администраторов. Пароли хранятся только в виде bcrypt-хеша.
type AuthService struct {
	adminRepo domain.AdminRepository
	logger    *zap.Logger
}

// NewAuthService создаёт новый экземпляр AuthService
func NewAuthService(adminRepo domain.AdminRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Register создаёт учётную запись администратора.
// Уникальность имени обеспечивается условной вставкой в хранилище,
// поэтому гонки "проверили - вставили" здесь нет.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.adminRepo.Create(ctx, username, hash); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			s.logger.Info("registration rejected, username taken", zap.String("username", username))
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("admin account registered", zap.String("username", username))

	return nil
}

// Login проверяет учётные данные администратора.
// Возвращает ErrUserNotFound для неизвестного имени и
// ErrInvalidCredentials при несовпадении пароля.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	account, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return domain.ErrInvalidCredentials
	}

	s.logger.Info("admin logged in", zap.String("username", username))

	return nil
}
