package lead

import (
	"fmt"
	"strings"
)

// ServiceType is the category a lead is asking about.
type ServiceType string

const (
	ServiceCloud          ServiceType = "cloud"
	ServiceSecurity       ServiceType = "security"
	ServiceAnalytics      ServiceType = "analytics"
	ServiceInfrastructure ServiceType = "infrastructure"
	ServiceCustom         ServiceType = "custom"
)

var serviceLabels = map[ServiceType]string{
	ServiceCloud:          "Cloud Infrastructure Management",
	ServiceSecurity:       "Network Security & Compliance",
	ServiceAnalytics:      "Data Analytics & BI",
	ServiceInfrastructure: "IT Infrastructure Optimization",
	ServiceCustom:         "Custom Solution",
}

// ServiceTypes lists every category in display order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceCloud,
		ServiceSecurity,
		ServiceAnalytics,
		ServiceInfrastructure,
		ServiceCustom,
	}
}

// ParseServiceType accepts a category key such as "analytics".
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown service type %q", s)
	}
	return st, nil
}

// Valid reports whether s is one of the known categories.
func (s ServiceType) Valid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label is the human-readable name shown in the select control.
func (s ServiceType) Label() string {
	return serviceLabels[s]
}

func (s ServiceType) String() string {
	return string(s)
}
