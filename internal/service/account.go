package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"questshare/internal/catalog"
	"questshare/internal/model"
	"questshare/internal/repository"
)

// contactNumberRe mirrors the registration form rule: optional plus sign,
// then 10-15 digits, spaces, or dashes.
var contactNumberRe = regexp.MustCompile(`^\+?[0-9\s-]{10,15}$`)

// RegisterInput carries the profile submitted at registration. The identity
// itself comes from the external auth provider, not from this payload.
type RegisterInput struct {
	FullName      string `json:"full_name" validate:"required,min=3"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contact_number" validate:"required"`
	RollNo        string `json:"roll_no" validate:"required,min=5"`
	Department    string `json:"department" validate:"required"`
	Semester      int    `json:"semester" validate:"required,min=1,max=8"`
	Batch         int    `json:"batch" validate:"required,min=10,max=99"`
}

// AccountService resolves and registers accounts.
type AccountService interface {
	// Register creates the profile for a fresh identity. The role is derived
	// exactly once here: the configured admin email gets admin, all others
	// student. Accounts are never mutated afterwards.
	Register(ctx context.Context, identity string, in RegisterInput) (*model.Account, error)

	// Resolve returns the account for an authenticated identity.
	Resolve(ctx context.Context, identity string) (*model.Account, error)
}

type accountService struct {
	repo       repository.AccountRepository
	adminEmail string
}

// NewAccountService constructs a new AccountService.
func NewAccountService(repo repository.AccountRepository, adminEmail string) AccountService {
	return &accountService{repo: repo, adminEmail: adminEmail}
}

func (s *accountService) Register(ctx context.Context, identity string, in RegisterInput) (*model.Account, error) {
	if identity == "" {
		return nil, ErrUnauthenticated
	}
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, identity); err == nil {
		return nil, ErrAccountExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	role := model.RoleStudent
	if strings.EqualFold(in.Email, s.adminEmail) {
		role = model.RoleAdmin
	}

	a := &model.Account{
		ID:            identity,
		FullName:      in.FullName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		RollNo:        in.RollNo,
		Department:    in.Department,
		Semester:      in.Semester,
		Batch:         in.Batch,
		Role:          role,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *accountService) Resolve(ctx context.Context, identity string) (*model.Account, error) {
	if identity == "" {
		return nil, ErrUnauthenticated
	}
	a, err := s.repo.FindByID(ctx, identity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func validateRegistration(in RegisterInput) error {
	fields := map[string]string{}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case "FullName":
				fields["full_name"] = "Full name must be at least 3 characters."
			case "Email":
				fields["email"] = "Please enter a valid email address."
			case "ContactNumber":
				fields["contact_number"] = "Please enter a valid contact number."
			case "RollNo":
				fields["roll_no"] = "Roll number seems too short."
			case "Department":
				fields["department"] = "Please select a department."
			case "Semester":
				fields["semester"] = "Semester must be between 1 and 8."
			case "Batch":
				fields["batch"] = "Batch should be a 2-digit year (e.g., 23, 24)."
			}
		}
	}

	if in.ContactNumber != "" && !contactNumberRe.MatchString(in.ContactNumber) {
		fields["contact_number"] = "Please enter a valid contact number."
	}
	if _, ok := fields["department"]; !ok {
		if _, ok := fields["semester"]; !ok {
			if len(catalog.ValidSubjects(in.Department, in.Semester)) == 0 {
				fields["department"] = "Unknown department or semester."
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
