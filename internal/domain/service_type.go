package domain

import (
	"strconv"
	"strings"
)

// ServiceType is a car wash service the user can order
type ServiceType int

const (
	ServiceExterior ServiceType = iota
	ServiceInterior
	ServiceCarpet
	ServiceSpotCleaning
	ServiceVignetteRemoval
	ServicePolishing
	ServiceAcCleaningOzon
	ServiceAcCleaningBomba
	ServiceBugRemoval
	ServiceWheelCleaning
	ServiceTireCare
	ServiceLeatherCare
	ServicePlasticCare
	ServicePreparingCarForSale
)

var serviceTypeNames = []string{
	"Exterior",
	"Interior",
	"Carpet",
	"SpotCleaning",
	"VignetteRemoval",
	"Polishing",
	"AcCleaningOzon",
	"AcCleaningBomba",
	"BugRemoval",
	"WheelCleaning",
	"TireCare",
	"LeatherCare",
	"PlasticCare",
	"PreparingCarForSale",
}

// ServiceTypes returns every known service type in id order
func ServiceTypes() []ServiceType {
	types := make([]ServiceType, len(serviceTypeNames))
	for i := range serviceTypeNames {
		types[i] = ServiceType(i)
	}
	return types
}

// String returns the service name
func (s ServiceType) String() string {
	if !s.Valid() {
		return "ServiceType(" + strconv.Itoa(int(s)) + ")"
	}
	return serviceTypeNames[s]
}

// Valid reports whether s is a known service type
func (s ServiceType) Valid() bool {
	return s >= 0 && int(s) < len(serviceTypeNames)
}

// ParseServiceType parses a service by name (case-insensitive) or by numeric id.
// Spaces inside a name are ignored, so "spot cleaning" parses as SpotCleaning.
func ParseServiceType(raw string) (ServiceType, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if id, err := strconv.Atoi(s); err == nil {
		st := ServiceType(id)
		return st, st.Valid()
	}

	compact := strings.ReplaceAll(s, " ", "")
	for i, name := range serviceTypeNames {
		if strings.EqualFold(name, compact) {
			return ServiceType(i), true
		}
	}
	return 0, false
}
