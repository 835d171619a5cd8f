// Package solver is a client for the CapSolver task API.
//
// A solve is a two-step lifecycle: the challenge is submitted with
// createTask, which returns an opaque task ID, and getTaskResult is then
// polled on a fixed interval until the task is ready, fails, or the poll
// budget runs out.
//
// # Basic Usage
//
//	s := solver.New(os.Getenv("CAPSOLVER_API_KEY"))
//
//	sol, err := s.Solve(ctx, capsolver.ChallengeRequest{
//	    Kind:       capsolver.KindReCaptchaV2,
//	    WebsiteURL: "https://www.google.com/recaptcha/api2/demo",
//	    WebsiteKey: "6Le-wvkSAAAAAPBMRTvw0Q4Muexq9bi0DJwx_mJ-",
//	})
//	if err != nil {
//	    // err is a *capsolver.Error; see capsolver.CategoryOf
//	}
//	fmt.Println(sol.Token)
//
// # Timing
//
// By default the client waits 2 seconds before each of at most 60
// getTaskResult calls, so one solve makes at most 61 requests and waits at
// most two minutes. Use [WithPollConfig] to change the cadence.
//
// # Transport Failures
//
// A transport failure on createTask ends the solve. During polling,
// transient failures (timeouts, connection resets, HTTP 429 and 5xx) use up
// one attempt and polling continues; any other failure ends the solve.
//
// # Concurrency
//
// A Client is safe for concurrent use. Each Solve owns its task ID; the only
// shared state is the read-only client key.
package solver
