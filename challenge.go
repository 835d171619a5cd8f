package capsolver

import (
	"fmt"
	"sort"
	"strings"
)

// ChallengeKind identifies a CapSolver task type.
type ChallengeKind string

const (
	// KindReCaptchaV2 solves reCAPTCHA v2 checkbox and invisible widgets.
	KindReCaptchaV2 ChallengeKind = "ReCaptchaV2TaskProxyLess"
	// KindReCaptchaV2Enterprise solves reCAPTCHA v2 Enterprise widgets.
	KindReCaptchaV2Enterprise ChallengeKind = "ReCaptchaV2EnterpriseTaskProxyLess"
	// KindReCaptchaV3 solves score-based reCAPTCHA v3.
	KindReCaptchaV3 ChallengeKind = "ReCaptchaV3TaskProxyLess"
	// KindTurnstile solves Cloudflare Turnstile widgets.
	KindTurnstile ChallengeKind = "AntiTurnstileTaskProxyLess"
)

// SolutionField names the key of the solution object that carries the token.
type SolutionField string

const (
	// FieldRecaptchaResponse carries the token for every reCAPTCHA kind.
	FieldRecaptchaResponse SolutionField = "gRecaptchaResponse"
	// FieldToken carries the token for Turnstile.
	FieldToken SolutionField = "token"
)

type challengeInfo struct {
	alias string
	field SolutionField
}

var challenges = map[ChallengeKind]challengeInfo{
	KindReCaptchaV2:           {alias: "recaptcha-v2", field: FieldRecaptchaResponse},
	KindReCaptchaV2Enterprise: {alias: "recaptcha-v2-enterprise", field: FieldRecaptchaResponse},
	KindReCaptchaV3:           {alias: "recaptcha-v3", field: FieldRecaptchaResponse},
	KindTurnstile:             {alias: "turnstile", field: FieldToken},
}

// Valid reports whether k is a supported challenge kind.
func (k ChallengeKind) Valid() bool {
	_, ok := challenges[k]
	return ok
}

// Alias returns the short CLI name of k.
func (k ChallengeKind) Alias() string {
	return challenges[k].alias
}

// SolutionField returns the solution key holding the token for k.
// Unknown kinds fall back to the reCAPTCHA field.
func (k ChallengeKind) SolutionField() SolutionField {
	if info, ok := challenges[k]; ok {
		return info.field
	}
	return FieldRecaptchaResponse
}

// ExtractToken reads the token for k from a decoded solution object.
func (k ChallengeKind) ExtractToken(solution map[string]any) string {
	s, _ := solution[string(k.SolutionField())].(string)
	return s
}

// ChallengeKinds returns every supported kind in a stable order.
func ChallengeKinds() []ChallengeKind {
	kinds := make([]ChallengeKind, 0, len(challenges))
	for k := range challenges {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ParseChallengeKind accepts either a CapSolver task type or its short alias.
func ParseChallengeKind(s string) (ChallengeKind, error) {
	s = strings.TrimSpace(s)
	if k := ChallengeKind(s); k.Valid() {
		return k, nil
	}
	for k, info := range challenges {
		if strings.EqualFold(info.alias, s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unsupported challenge type %q", s)
}

// ChallengeRequest describes one challenge to solve.
// WebsiteURL and WebsiteKey are passed to the service unchecked.
type ChallengeRequest struct {
	Kind       ChallengeKind
	WebsiteURL string
	WebsiteKey string
}
