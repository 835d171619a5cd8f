// Package capsolver solves CAPTCHA challenges through the CapSolver API and
// exposes the solver as agent tools.
//
// A solve is a two-phase lifecycle: the challenge is submitted as a task
// (createTask) and the task is polled (getTaskResult) until it is ready,
// fails, or the poll budget runs out. Each solve is independent; nothing is
// cached or shared between calls except the read-only client key.
//
// # Packages
//
//   - [github.com/spetersoncode/capsolver/solver]: the HTTP client and poll loop
//   - [github.com/spetersoncode/capsolver/tool]: the tool registry and the CAPTCHA tool set
//   - [github.com/spetersoncode/capsolver/mcp]: serves a registry over the Model Context Protocol
//   - [github.com/spetersoncode/capsolver/config]: YAML and environment configuration
//
// This package holds the shared vocabulary: challenge kinds, categorized
// errors, outcomes and the tool call types.
//
// # Basic Usage
//
//	s := solver.New(os.Getenv("CAPSOLVER_API_KEY"))
//
//	sol, err := s.Solve(ctx, capsolver.ChallengeRequest{
//	    Kind:       capsolver.KindTurnstile,
//	    WebsiteURL: "https://example.com/login",
//	    WebsiteKey: "0x4AAAAAAA",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Token)
//
// # Challenge Kinds
//
// Four CapSolver task types are supported. Each carries its token under a
// different solution field:
//
//   - [KindReCaptchaV2] (gRecaptchaResponse)
//   - [KindReCaptchaV2Enterprise] (gRecaptchaResponse)
//   - [KindReCaptchaV3] (gRecaptchaResponse)
//   - [KindTurnstile] (token)
//
// [ParseChallengeKind] accepts either the task type or a short alias such as
// "turnstile".
//
// # Error Handling
//
// Solver errors are [*Error] values with a category:
//
//	sol, err := s.Solve(ctx, req)
//	if err != nil {
//	    switch {
//	    case capsolver.IsRequest(err):
//	        // the service rejected the request (bad key, bad task)
//	    case capsolver.IsTaskFailed(err):
//	        // the service could not solve the challenge
//	    case capsolver.IsTimeout(err):
//	        // no terminal status within the poll budget
//	    case capsolver.IsTransport(err):
//	        // network, HTTP or decoding failure
//	    }
//	}
//
// # Outcomes
//
// At the tool boundary every solve collapses to a single string. [OutcomeOf]
// converts a token and error into an [Outcome] whose String method yields
// the token, "Failed: <description>", "Error: <description>" or
// "Timeout waiting for solution".
package capsolver
