package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID         = validationSentinel("user ID cannot be empty")
	ErrEmptyEmail          = validationSentinel("email cannot be empty")
	ErrPasswordTooShort    = validationSentinel("password must be at least 8 characters long")
	ErrPasswordTooLong     = validationSentinel("password must be at most 72 characters long")
	ErrEmptyPassword       = validationSentinel("password cannot be empty")
	ErrEmptyHashedPassword = validationSentinel("hashed password cannot be empty")
)

// User represents a registered account. Staff users may modify the catalog
// (airports, routes, airplanes, flights, crews); regular users may read the
// catalog and manage their own orders.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	IsStaff        bool      `json:"is_staff"`
	IsSuperuser    bool      `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new non-staff User with the given email and password.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password, // Plaintext password, must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// CanWriteCatalog reports whether the user may create, update, or delete
// catalog entities. Superusers always qualify.
func (u *User) CanWriteCatalog() bool {
	return u.IsStaff || u.IsSuperuser
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		return ValidatePassword(u.Password)
	}

	// Without a plaintext password the user must already carry a hash
	// (the case for users loaded from the database).
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidatePassword checks a plaintext password against the length
// requirements. The 72-character ceiling is bcrypt's practical limit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	return nil
}

// validEmailFormat performs a structural check of the email address: one "@"
// with a non-empty local part and a dotted domain. Full RFC 5322 validation
// is left to the request layer's validator.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsRune(domain, '@') {
		return false
	}

	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
