package service

import (
	"context"
	"errors"
	"time"

	"cardquest-service/internal/models"
	"cardquest-service/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound means no registered user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists means the card hash already belongs to a
	// registered user.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCardHash means the supplied hash is not a SHA-256 hex
	// digest.
	ErrInvalidCardHash = errors.New("invalid card hash")
)

// UserService covers user lookup and the server side of the
// registration flow. Registration only starts here; the companion bot
// completes it against the pending record.
type UserService struct {
	userRepo *repository.UserRepository
	regRepo  *repository.RegistrationRepository
	botURL   string
}

func NewUserService(userRepo *repository.UserRepository, regRepo *repository.RegistrationRepository, botURL string) *UserService {
	return &UserService{userRepo: userRepo, regRepo: regRepo, botURL: botURL}
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.StoredUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetUserByCardHash(ctx context.Context, cardHash string) (*models.StoredUser, error) {
	user, err := s.userRepo.FindByCardHash(ctx, cardHash)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// BeginRegistration starts registering a card. The hash must be a
// SHA-256 hex digest not yet bound to a user; the stored pending
// record carries a fresh user id for the bot to claim.
func (s *UserService) BeginRegistration(ctx context.Context, cardHash string) (*models.RegistrationResponse, error) {
	if !models.ValidCardHash(cardHash) {
		return nil, ErrInvalidCardHash
	}

	existing, err := s.userRepo.FindByCardHash(ctx, cardHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	// Restarting a pending registration re-issues the same token
	// instead of minting a second user id.
	pending, err := s.regRepo.Find(ctx, cardHash)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return &models.RegistrationResponse{
			Token:  models.RegistrationToken(cardHash),
			BotURL: s.botURL,
		}, nil
	}

	reg := &models.PendingRegistration{
		ID:        uuid.New().String(),
		CardHash:  cardHash,
		StartedAt: time.Now(),
	}
	if err := s.regRepo.Save(ctx, reg); err != nil {
		return nil, err
	}

	return &models.RegistrationResponse{
		Token:  models.RegistrationToken(cardHash),
		BotURL: s.botURL,
	}, nil
}
