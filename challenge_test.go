package capsolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeKindTable(t *testing.T) {
	tests := []struct {
		kind  ChallengeKind
		alias string
		field SolutionField
	}{
		{KindReCaptchaV2, "recaptcha-v2", FieldRecaptchaResponse},
		{KindReCaptchaV2Enterprise, "recaptcha-v2-enterprise", FieldRecaptchaResponse},
		{KindReCaptchaV3, "recaptcha-v3", FieldRecaptchaResponse},
		{KindTurnstile, "turnstile", FieldToken},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.alias, tt.kind.Alias())
			assert.Equal(t, tt.field, tt.kind.SolutionField())
		})
	}

	assert.Len(t, ChallengeKinds(), len(tests))
}

func TestChallengeKindsSorted(t *testing.T) {
	kinds := ChallengeKinds()
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, string(kinds[i-1]), string(kinds[i]))
	}
}

func TestParseChallengeKind(t *testing.T) {
	t.Run("accepts task types", func(t *testing.T) {
		k, err := ParseChallengeKind("AntiTurnstileTaskProxyLess")
		require.NoError(t, err)
		assert.Equal(t, KindTurnstile, k)
	})

	t.Run("accepts aliases case-insensitively", func(t *testing.T) {
		k, err := ParseChallengeKind(" ReCAPTCHA-v2 ")
		require.NoError(t, err)
		assert.Equal(t, KindReCaptchaV2, k)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		_, err := ParseChallengeKind("HCaptchaTaskProxyLess")
		assert.ErrorContains(t, err, "unsupported challenge type")
	})
}

func TestExtractToken(t *testing.T) {
	solution := map[string]any{
		"gRecaptchaResponse": "recaptcha-token",
		"token":              "turnstile-token",
		"userAgent":          "Mozilla/5.0",
	}

	assert.Equal(t, "recaptcha-token", KindReCaptchaV2.ExtractToken(solution))
	assert.Equal(t, "recaptcha-token", KindReCaptchaV3.ExtractToken(solution))
	assert.Equal(t, "turnstile-token", KindTurnstile.ExtractToken(solution))
	assert.Empty(t, KindTurnstile.ExtractToken(map[string]any{"gRecaptchaResponse": "x"}))
	assert.Empty(t, KindReCaptchaV2.ExtractToken(nil))
}
