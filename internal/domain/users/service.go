package users

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-wellness/internal/ports/auth"
	"pet-wellness/internal/ports/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email already registered")

type Options struct {
	// DemoEmail puede loguearse con cualquier password (modo showcase).
	DemoEmail string
	// Cost de bcrypt; 0 => bcrypt.DefaultCost.
	Cost int
}

type Service struct {
	repo Repository
	opts Options

	// serializa Register para que el chequeo de email sea atómico
	mu sync.Mutex
}

func NewService(repo Repository, opts Options) *Service {
	if opts.Cost == 0 {
		opts.Cost = bcrypt.DefaultCost
	}
	opts.DemoEmail = NormalizeEmail(opts.DemoEmail)
	return &Service{repo: repo, opts: opts}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return User{}, err
	}

	hash, err := HashPassword(in.Password, s.opts.Cost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findByEmail(ctx, in.Email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return User{}, err
	}

	acc := Account{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		return User{}, err
	}
	return acc.User(), nil
}

// Login devuelve auth.ErrUnauthorized tanto para email desconocido como para password incorrecta.
func (s *Service) Login(ctx context.Context, in LoginInput) (User, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return User{}, auth.ErrUnauthorized
	}

	acc, err := s.findByEmail(ctx, in.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return User{}, auth.ErrUnauthorized
	}
	if err != nil {
		return User{}, err
	}

	if s.opts.DemoEmail != "" && NormalizeEmail(acc.Email) == s.opts.DemoEmail {
		return acc.User(), nil
	}
	if !CheckPassword(in.Password, acc.PasswordHash) {
		return User{}, auth.ErrUnauthorized
	}
	return acc.User(), nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	acc, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return User{}, err
	}
	return acc.User(), nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (Account, error) {
	items, err := s.repo.ListByScope(ctx, NormalizeEmail(email))
	if err != nil {
		return Account{}, err
	}
	if len(items) == 0 {
		return Account{}, storage.ErrNotFound
	}
	return items[0], nil
}

func HashPassword(password string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
