package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Experience records how long the company has worked in one area.
type Experience struct {
	// Years of demonstrable experience in the area.
	Years int `toml:"years"`
}

// CompanyProfile describes the bidding company. Eligibility is judged by
// matching extracted requirement lines against this profile.
type CompanyProfile struct {
	// Certifications the company holds (e.g. "ISO 9001").
	Certifications []string `toml:"certifications"`

	// Experience maps an area name (e.g. "IT") to declared experience.
	Experience map[string]Experience `toml:"experience"`

	// Capabilities is a free-form list of things the company can do.
	Capabilities []string `toml:"capabilities"`
}

// yearsPattern matches "<N> years" with an optional plus sign.
var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)

// Meets reports whether the profile satisfies a single requirement line.
// Dispatch is content-based: lines mentioning "certification" are matched
// against held certifications, "<N> years experience" lines against
// declared experience, and everything else against capabilities by
// case-insensitive substring.
func (p CompanyProfile) Meets(requirement string) bool {
	req := strings.ToLower(requirement)

	if strings.Contains(req, "certification") {
		for _, cert := range p.Certifications {
			if cert != "" && strings.Contains(req, strings.ToLower(cert)) {
				return true
			}
		}
		return false
	}

	if m := yearsPattern.FindStringSubmatch(req); m != nil && strings.Contains(req, "experience") {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			for _, exp := range p.Experience {
				if exp.Years >= years {
					return true
				}
			}
		}
		return false
	}

	for _, capability := range p.Capabilities {
		if capability != "" && strings.Contains(req, strings.ToLower(capability)) {
			return true
		}
	}
	return false
}
