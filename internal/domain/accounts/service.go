package accounts

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"cat-collector/internal/platform/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidSignup      = errors.New("invalid sign up")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type Service struct {
	repo Repository
	now  func() time.Time
	cost int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		cost: bcrypt.DefaultCost,
	}
}

// WithHashCost permite bajar el costo de bcrypt (tests).
func (s *Service) WithHashCost(cost int) *Service {
	s.cost = cost
	return s
}

type SignupInput struct {
	Username  string `form:"username" validate:"required,max=150"`
	Password1 string `form:"password1" validate:"required,min=8,nefield=Username"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// Signup crea la cuenta. Cualquier problema de validación se reporta como
// ErrInvalidSignup (junto con el detalle por campo, para logs).
func (s *Service) Signup(ctx context.Context, in SignupInput) (Account, error) {
	in.Username = strings.TrimSpace(in.Username)

	fe := validate.FieldErrors{}
	if in.Username != "" && !usernamePattern.MatchString(in.Username) {
		fe.Add("username", "Enter a valid username.")
	}
	if in.Password1 != "" && isNumeric(in.Password1) {
		fe.Add("password1", "This password is entirely numeric.")
	}
	if err := validate.Merge(validate.Struct(in), fe.Err()); err != nil {
		return Account{}, errors.Join(ErrInvalidSignup, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password1), s.cost)
	if err != nil {
		return Account{}, err
	}

	a := Account{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return Account{}, errors.Join(ErrInvalidSignup, err)
		}
		return Account{}, err
	}
	return a, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Account{}, ErrInvalidCredentials
	}

	a, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Account{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Exists lo usa el middleware de sesión: una cookie firmada de una cuenta
// borrada no cuenta como login.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
