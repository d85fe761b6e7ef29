package convrules

import (
	"encoding"
	"fmt"
)

// Domain names the technology a convention belongs to.
type Domain int

const (
	domainInvalid Domain = iota

	DomainPython
	DomainBash
	DomainNodejs
	DomainLaravel
	DomainWordPress
)

var domainValueMap = map[Domain]string{
	DomainPython:    "python",
	DomainBash:      "bash",
	DomainNodejs:    "nodejs",
	DomainLaravel:   "laravel",
	DomainWordPress: "wordpress",
}

// Domains lists all known domains in declaration order.
func Domains() []Domain {
	return []Domain{DomainPython, DomainBash, DomainNodejs, DomainLaravel, DomainWordPress}
}

func (d Domain) String() string {
	v, ok := domainValueMap[d]
	if !ok {
		return fmt.Sprintf("domain-invalid(%d)", d)
	}

	return v
}

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	_, ok := domainValueMap[d]
	return ok
}

// DefaultGlob gives the file pattern a rule of this domain applies to when
// the rule declares no glob of its own.
func (d Domain) DefaultGlob() string {
	switch d {
	case DomainPython:
		return "**/*.py"
	case DomainBash:
		return "**/*.{sh,bash,zsh}"
	case DomainNodejs:
		return "**/*.{js,mjs,cjs}"
	case DomainLaravel, DomainWordPress:
		return "**/*.php"
	default:
		return ""
	}
}

var _ encoding.TextUnmarshaler = (*Domain)(nil)

func (d *Domain) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range domainValueMap {
		if v == text {
			*d = k
			return nil
		}
	}

	return fmt.Errorf("unknown domain %q", text)
}

func (d Domain) MarshalText() ([]byte, error) {
	v, ok := domainValueMap[d]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Domain(%d)", d)
	}

	return []byte(v), nil
}
