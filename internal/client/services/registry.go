package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"worldquery/internal/client/models"
	"worldquery/internal/client/storage"
	"worldquery/internal/common"
	"worldquery/internal/logging"
)

// SignUpForm is the sign-up input. Validation rules mirror the sign-up
// screen: every field required, password at least 6 characters, confirm
// must match.
type SignUpForm struct {
	Username        string `validate:"required"`
	Email           string `validate:"required"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// Registry manages the append-only registered-users list persisted under
// the "users" key. It enforces sign-up uniqueness and backs the explicit
// sign-in flow; the quick-auth login path bypasses it entirely.
type Registry struct {
	store    storage.Store
	session  *Session
	log      logging.Logger
	validate *validator.Validate
}

func NewRegistry(store storage.Store, session *Session, log logging.Logger) *Registry {
	return &Registry{
		store:    store,
		session:  session,
		log:      log.With("component", "registry"),
		validate: validator.New(),
	}
}

// Register validates the form, rejects duplicate emails (case-sensitive),
// appends the new record to the registered-users list, and logs the new
// identity in. Validation failures return before any storage access.
func (r *Registry) Register(ctx context.Context, form SignUpForm) (*models.User, error) {
	if err := r.validate.Struct(form); err != nil {
		return nil, asValidationError(err)
	}

	users := r.loadUsers(ctx)
	for _, u := range users {
		if u.Email == form.Email {
			return nil, common.ErrDuplicateUser
		}
	}

	users = append(users, models.RegisteredUser{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err := r.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	r.log.Info(ctx, "registered new user", "email", form.Email)

	return r.session.Login(ctx, models.Credentials{Email: form.Email, Password: form.Password})
}

// Registered returns the current registered-users list. An absent or
// unreadable list degrades to empty.
func (r *Registry) Registered(ctx context.Context) []models.RegisteredUser {
	return r.loadUsers(ctx)
}

func (r *Registry) loadUsers(ctx context.Context) []models.RegisteredUser {
	raw, err := r.store.Get(ctx, registeredUsersKey)
	if err != nil {
		r.log.Warn(ctx, "failed to read registered users, treating as empty", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var users []models.RegisteredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		r.log.Warn(ctx, "discarding unreadable registered-users record", "error", err)
		return nil
	}
	return users
}

func (r *Registry) saveUsers(ctx context.Context, users []models.RegisteredUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, registeredUsersKey, raw); err != nil {
		return fmt.Errorf("failed to persist registered users: %w", err)
	}
	return nil
}

// asValidationError maps validator output to the user-facing messages of
// the sign-up screen. When several rules fail at once the original checks
// them in a fixed order: missing fields, then the confirm mismatch, then
// the length rule.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	byRule := func(rule string) validator.FieldError {
		for _, fe := range verrs {
			if fe.Tag() == rule {
				return fe
			}
		}
		return nil
	}

	if fe := byRule("required"); fe != nil {
		return &common.ValidationError{Field: fe.Field(), Rule: "required", Message: "Please fill in all fields"}
	}
	if fe := byRule("eqfield"); fe != nil {
		return &common.ValidationError{Field: fe.Field(), Rule: "eqfield", Message: "Passwords do not match"}
	}
	if fe := byRule("min"); fe != nil {
		return &common.ValidationError{Field: fe.Field(), Rule: "min", Message: "Password must be at least 6 characters"}
	}

	fe := verrs[0]
	return &common.ValidationError{Field: fe.Field(), Rule: fe.Tag(), Message: "Invalid input"}
}
