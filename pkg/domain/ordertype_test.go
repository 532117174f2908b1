package domain_test

import (
	"sharecart/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExpirationPolicy_Cutoff(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		policy domain.ExpirationPolicy
		want   time.Time
	}{
		{"days", domain.ExpirationPolicy{Count: 7, Unit: domain.IntervalUnitDay}, time.Date(2025, 3, 24, 12, 0, 0, 0, time.UTC)},
		{"weeks", domain.ExpirationPolicy{Count: 2, Unit: domain.IntervalUnitWeek}, time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)},
		// February has no 31st, AddDate normalizes into March.
		{"months", domain.ExpirationPolicy{Count: 1, Unit: domain.IntervalUnitMonth}, time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
		{"years", domain.ExpirationPolicy{Count: 1, Unit: domain.IntervalUnitYear}, time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.policy.Cutoff(now))
		})
	}
}

func TestExpirationPolicy_Validate(t *testing.T) {
	require.NoError(t, domain.ExpirationPolicy{Count: 1, Unit: domain.IntervalUnitMonth}.Validate())
	require.Error(t, domain.ExpirationPolicy{Count: 0, Unit: domain.IntervalUnitDay}.Validate())
	require.Error(t, domain.ExpirationPolicy{Count: -3, Unit: domain.IntervalUnitDay}.Validate())
	require.Error(t, domain.ExpirationPolicy{Count: 3, Unit: "fortnight"}.Validate())
}
