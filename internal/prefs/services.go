package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// servicesKey holds the JSON-encoded service list.
const servicesKey = "services"

// Service is a named log source and the endpoint its entries are
// fetched from. An empty endpoint serves built-in sample data, so a
// fresh install renders something before any real source is wired up.
type Service struct {
	Name     string `json:"name" validate:"required"`
	Endpoint string `json:"endpoint,omitempty"`
}

// Validate checks the service using go-playground/validator plus the
// endpoint scheme rule, mapping errors onto messages fit for the
// settings form.
func (s Service) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("service name is required")
		}
		return err
	}
	if !validEndpoint(s.Endpoint) {
		return fmt.Errorf("endpoint must start with http://, https://, or file:// (or be empty for sample data)")
	}
	return nil
}

func validEndpoint(endpoint string) bool {
	if endpoint == "" {
		return true
	}
	for _, scheme := range []string{"http://", "https://", "file://"} {
		if strings.HasPrefix(endpoint, scheme) && len(endpoint) > len(scheme) {
			return true
		}
	}
	return false
}

// ValidateService checks a new or edited service against the current
// list. originalName is the name the entry had before the edit, or
// empty when adding.
func ValidateService(svc Service, existing []Service, originalName string) error {
	if err := svc.Validate(); err != nil {
		return err
	}
	for _, other := range existing {
		if other.Name == svc.Name && svc.Name != originalName {
			return fmt.Errorf("service %q already exists", svc.Name)
		}
	}
	return nil
}

// DefaultServices seeds a fresh install. The endpoints are empty on
// purpose; every pick serves sample data until the user points the
// service somewhere real.
func DefaultServices() []Service {
	return []Service{
		{Name: "gateway"},
		{Name: "orders"},
		{Name: "billing"},
	}
}

// LoadServices returns the stored service list. An absent, corrupt, or
// empty list falls back to the seeded defaults so the dashboard always
// has something to select.
func LoadServices(store Store) []Service {
	raw, err := store.Get(servicesKey)
	if err != nil {
		return DefaultServices()
	}
	var services []Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil || len(services) == 0 {
		return DefaultServices()
	}
	return services
}

// SaveServices persists the full service list.
func SaveServices(store Store, services []Service) error {
	data, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}
	if err := store.Set(servicesKey, string(data)); err != nil {
		return fmt.Errorf("save services: %w", err)
	}
	return nil
}

// RemoveService returns the list without the named service. Removing
// an absent name is a no-op.
func RemoveService(services []Service, name string) []Service {
	kept := make([]Service, 0, len(services))
	for _, svc := range services {
		if svc.Name != name {
			kept = append(kept, svc)
		}
	}
	return kept
}
