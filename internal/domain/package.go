package domain

import (
	"fmt"
	"strings"
)

// PackageType is the participation tier a prospective attendee picks before
// sending an inquiry.
type PackageType string

const (
	PackageStandard   PackageType = "standard"
	PackageFellowship PackageType = "fellowship"
	PackagePrestige   PackageType = "prestige"
	PackageInvited    PackageType = "invited"
)

// DefaultPackage is used whenever a call-to-action does not name a tier.
const DefaultPackage = PackageStandard

// PackageTypes lists every tier in display order.
func PackageTypes() []PackageType {
	return []PackageType{PackageStandard, PackagePrestige, PackageFellowship, PackageInvited}
}

// ParsePackageType converts user input into a PackageType. An empty value
// yields DefaultPackage.
func ParsePackageType(s string) (PackageType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPackage, nil
	}
	p := PackageType(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPackage, s)
	}
	return p, nil
}

// Valid reports whether p is one of the four tiers.
func (p PackageType) Valid() bool {
	switch p {
	case PackageStandard, PackagePrestige, PackageFellowship, PackageInvited:
		return true
	}
	return false
}

func (p PackageType) String() string {
	return string(p)
}
