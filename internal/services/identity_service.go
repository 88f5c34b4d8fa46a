package services

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/supabase-community/gotrue-go/types"

	"luxcert-backend/internal/models"
)

// IdentityAdmin is the slice of the GoTrue admin API the resolver needs. The
// Supabase client's Auth field satisfies it.
type IdentityAdmin interface {
	AdminCreateUser(req types.AdminCreateUserRequest) (*types.AdminCreateUserResponse, error)
	AdminListUsers() (*types.AdminListUsersResponse, error)
	AdminGenerateLink(req types.AdminGenerateLinkRequest) (*types.AdminGenerateLinkResponse, error)
}

// ProfileStore is the profile persistence the resolver needs.
type ProfileStore interface {
	GetProfileByEmail(email string) (*models.Profile, error)
	UpsertProfile(p *models.Profile) error
}

// IdentityService finds or provisions customer accounts during checkout.
type IdentityService struct {
	auth            IdentityAdmin
	store           ProfileStore
	frontendBaseURL string
	log             *logrus.Logger
}

func NewIdentityService(auth IdentityAdmin, store ProfileStore, frontendBaseURL string, log *logrus.Logger) *IdentityService {
	return &IdentityService{
		auth:            auth,
		store:           store,
		frontendBaseURL: frontendBaseURL,
		log:             log,
	}
}

// ResolveOrCreateCustomer returns the profile for an email address, creating
// an identity and a guest profile when none exists. wasCreated is true only
// on the creation branch; an existing profile, or an identity discovered
// through race recovery, reports false and never mutates the account.
//
// Identity creation is not idempotent on the provider side: if a concurrent
// request created the identity between our lookup and our create, the create
// fails with "already registered". That case is recovered here by re-querying
// the user list and matching on email instead of failing the operation.
func (s *IdentityService) ResolveOrCreateCustomer(email string, data models.CustomerData) (*models.Profile, bool, error) {
	if email == "" {
		return nil, false, fmt.Errorf("%w: email is required", models.ErrInvalidInput)
	}

	existing, err := s.store.GetProfileByEmail(email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up profile: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	// Pre-confirmed, no password: the customer activates the account later
	// through a one-time setup link.
	created, createErr := s.auth.AdminCreateUser(types.AdminCreateUserRequest{
		Email:        email,
		EmailConfirm: true,
	})

	profile := &models.Profile{
		Email:      email,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		Address:    data.Address,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		IsGuest:    true,
	}

	wasCreated := false
	switch {
	case createErr == nil:
		profile.ID = created.ID
		wasCreated = true
	case isAlreadyRegistered(createErr):
		s.log.WithField("email", email).Info("identity already exists, recovering from duplicate-creation race")
		list, listErr := s.auth.AdminListUsers()
		if listErr != nil {
			return nil, false, fmt.Errorf("failed to list users during race recovery: %w", listErr)
		}
		found := false
		for _, u := range list.Users {
			if strings.EqualFold(u.Email, email) {
				profile.ID = u.ID
				found = true
				break
			}
		}
		if !found {
			return nil, false, fmt.Errorf("identity reported as registered but not found for %s", email)
		}
	default:
		return nil, false, fmt.Errorf("failed to create identity: %w", createErr)
	}

	if err := s.store.UpsertProfile(profile); err != nil {
		return nil, false, err
	}

	return profile, wasCreated, nil
}

// GenerateSetupLink returns a one-time password-setup link for a guest
// account.
func (s *IdentityService) GenerateSetupLink(email string) (string, error) {
	resp, err := s.auth.AdminGenerateLink(types.AdminGenerateLinkRequest{
		Type:       types.LinkTypeRecovery,
		Email:      email,
		RedirectTo: s.frontendBaseURL + "/account/setup",
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate setup link: %w", err)
	}
	return resp.ActionLink, nil
}

func isAlreadyRegistered(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already been registered") ||
		strings.Contains(msg, "already registered") ||
		strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "email_exists")
}
