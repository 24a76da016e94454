package services

import (
	"github.com/google/uuid"

	"github.com/shashiranjanraj/chronoluxe/app/models"
	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/pkg/apperr"
	"github.com/shashiranjanraj/chronoluxe/pkg/auth"
)

// UserService handles registration, login, and profile management.
type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// Register validates the payload and creates a new account. Email uniqueness
// is enforced by the store at insert time.
func (s *UserService) Register(req requests.RegisterUser) (models.User, error) {
	if err := requests.Validate(req); err != nil {
		return models.User{}, err
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     role,
	}

	return s.store.InsertUser(user)
}

// Login checks credentials and issues a signed token. The password is
// compared verbatim; credential hashing is out of scope for this system.
func (s *UserService) Login(req requests.LoginUser) (models.User, string, error) {
	if err := requests.Validate(req); err != nil {
		return models.User{}, "", err
	}

	user, ok := s.store.FindUserByEmail(req.Email)
	if !ok {
		return models.User{}, "", &apperr.AuthenticationError{Reason: "User not found"}
	}

	if user.Password != req.Password {
		return models.User{}, "", &apperr.AuthenticationError{Reason: "Invalid password"}
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// GetProfile returns the user with the given id.
func (s *UserService) GetProfile(userID string) (models.User, error) {
	user, ok := s.store.FindUserByID(userID)
	if !ok {
		return models.User{}, apperr.NotFound("User")
	}
	return user, nil
}

// ListUsers returns every registered user.
func (s *UserService) ListUsers() []models.User {
	return s.store.ListUsers()
}

// UpdateProfile applies name/email changes. Only those two fields are
// mutable; everything else on the record is preserved.
func (s *UserService) UpdateProfile(userID string, req requests.UpdateProfile) (models.User, error) {
	if err := requests.Validate(req); err != nil {
		return models.User{}, err
	}

	return s.store.MutateUser(userID, func(u *models.User) error {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		return nil
	})
}
