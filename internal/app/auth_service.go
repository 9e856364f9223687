package app

import (
	"context"
	"log/slog"
	"strings"

	"gigboard/internal/common"
	"gigboard/internal/domain/user"
	"gigboard/internal/security"
)

// AuthService implements the identity boundary: signup, credential login.
// Session issuance lives in the http layer; this service only deals in
// users and password hashes.
type AuthService struct {
	users  user.Repository
	hasher *security.PasswordHasher
	logger *slog.Logger
}

func NewAuthService(users user.Repository, hasher *security.PasswordHasher, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, logger: logger}
}

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*user.User, error) {
	name := strings.TrimSpace(in.Name)
	email := user.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, common.NewError(common.CodeValidation, "Please fill all required fields.", nil)
	}
	if !in.AcceptTerms {
		return nil, common.NewError(common.CodeValidation, "Please accept the Terms of Service.", nil)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "Email already registered. Please login.", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, common.NewError(common.CodeValidation, "Passwords do not match.", nil)
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	created, err := s.users.Create(ctx, user.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		// Concurrent signup with the same email lands here.
		if common.Is(err, common.CodeConflict) {
			return nil, common.NewError(common.CodeConflict, "Email already registered. Please login.", err)
		}
		return nil, err
	}
	s.logInfo("user signed up", slog.String("user_id", created.ID.String()))
	return created, nil
}

// Login checks credentials. Unknown email and wrong password produce the
// same error so the response never reveals whether an account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, error) {
	account, err := s.users.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "Invalid email or password.", nil)
		}
		return nil, err
	}
	if !s.hasher.Compare(account.PasswordHash, password) {
		return nil, common.NewError(common.CodeUnauthorized, "Invalid email or password.", nil)
	}
	s.logInfo("user logged in", slog.String("user_id", account.ID.String()))
	return account, nil
}

func (s *AuthService) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}
