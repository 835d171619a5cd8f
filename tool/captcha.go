package tool

import (
	"context"

	capsolver "github.com/spetersoncode/capsolver"
	"github.com/spetersoncode/capsolver/solver"
)

// Names of the CAPTCHA tools.
const (
	SolveRecaptchaV2Name = "solve_recaptcha_v2"
	SolveTurnstileName   = "solve_turnstile"
	SolveAnyCaptchaName  = "solve_any_captcha"
	CheckBalanceName     = "check_capsolver_balance"
)

// Solver is the part of solver.Client the CAPTCHA tools use.
type Solver interface {
	Solve(ctx context.Context, req capsolver.ChallengeRequest) (*solver.Solution, error)
	Balance(ctx context.Context) (float64, error)
}

// SiteArgs identify a challenge widget on a page.
type SiteArgs struct {
	WebsiteURL string `json:"website_url" jsonschema_description:"The URL of the page showing the challenge"`
	WebsiteKey string `json:"website_key" jsonschema_description:"The site key of the widget (data-sitekey attribute)"`
}

// AnyCaptchaArgs are the arguments for solve_any_captcha.
type AnyCaptchaArgs struct {
	WebsiteURL  string `json:"website_url" jsonschema_description:"The URL of the page showing the challenge"`
	WebsiteKey  string `json:"website_key" jsonschema_description:"The site key of the widget (data-sitekey attribute)"`
	CaptchaType string `json:"captcha_type,omitempty" jsonschema:"enum=ReCaptchaV2TaskProxyLess,enum=ReCaptchaV2EnterpriseTaskProxyLess,enum=ReCaptchaV3TaskProxyLess,enum=AntiTurnstileTaskProxyLess,default=ReCaptchaV2TaskProxyLess" jsonschema_description:"CapSolver task type; defaults to ReCaptchaV2TaskProxyLess"`
}

// OutcomeError carries a failed outcome through a Handler.
// Its message is the outcome text, so invokers see the same string either way.
type OutcomeError struct {
	Outcome capsolver.Outcome
}

func (e *OutcomeError) Error() string {
	return e.Outcome.String()
}

// CaptchaTools returns the CAPTCHA tools bound to s.
//   - solve_recaptcha_v2: returns the g-recaptcha-response token
//   - solve_turnstile: returns the Turnstile token
//   - solve_any_captcha: solves any supported task type
//   - check_capsolver_balance: reports the account balance
//
// Every tool answers with a plain string. Failures are reported as
// "Failed: ...", "Error: ..." or "Timeout waiting for solution".
func CaptchaTools(s Solver) []Registration {
	return []Registration{
		Func(SolveRecaptchaV2Name,
			"Solves reCAPTCHA v2 challenges using CapSolver. Returns the g-recaptcha-response token.",
			func(ctx context.Context, args SiteArgs) (string, error) {
				return solve(ctx, s, capsolver.KindReCaptchaV2, args.WebsiteURL, args.WebsiteKey)
			}),
		Func(SolveTurnstileName,
			"Solves Cloudflare Turnstile challenges using CapSolver. Returns the Turnstile token.",
			func(ctx context.Context, args SiteArgs) (string, error) {
				return solve(ctx, s, capsolver.KindTurnstile, args.WebsiteURL, args.WebsiteKey)
			}),
		Func(SolveAnyCaptchaName,
			"Universal CAPTCHA solver supporting multiple CapSolver task types. Returns the solution token.",
			func(ctx context.Context, args AnyCaptchaArgs) (string, error) {
				kind := capsolver.KindReCaptchaV2
				if args.CaptchaType != "" {
					k, err := capsolver.ParseChallengeKind(args.CaptchaType)
					if err != nil {
						return outcome(capsolver.Outcome{
							Status:      capsolver.OutcomeRequestError,
							Description: err.Error(),
						})
					}
					kind = k
				}
				return solve(ctx, s, kind, args.WebsiteURL, args.WebsiteKey)
			}),
		Func(CheckBalanceName,
			"Checks the current CapSolver account balance.",
			func(ctx context.Context, _ struct{}) (string, error) {
				bal, err := s.Balance(ctx)
				if err != nil {
					return outcome(capsolver.OutcomeOf("", err))
				}
				return capsolver.FormatBalance(bal), nil
			}),
	}
}

// RegisterCaptchaTools adds the CAPTCHA tools bound to s to r.
func RegisterCaptchaTools(r *Registry, s Solver) error {
	return r.RegisterAll(CaptchaTools(s)...)
}

func solve(ctx context.Context, s Solver, kind capsolver.ChallengeKind, websiteURL, websiteKey string) (string, error) {
	sol, err := s.Solve(ctx, capsolver.ChallengeRequest{
		Kind:       kind,
		WebsiteURL: websiteURL,
		WebsiteKey: websiteKey,
	})
	var token string
	if sol != nil {
		token = sol.Token
	}
	return outcome(capsolver.OutcomeOf(token, err))
}

func outcome(o capsolver.Outcome) (string, error) {
	if o.IsError() {
		return "", &OutcomeError{Outcome: o}
	}
	return o.String(), nil
}
