package ratelimit

import "testing"

func TestGetRateLimitType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/users/login", RateLimitTypeAuth},
		{"/api/v1/users/register", RateLimitTypeAuth},
		{"/api/v1/organisers/login", RateLimitTypeAuth},
		{"/api/v1/bookings", RateLimitTypeBooking},
		{"/api/v1/bookings/:id/cancel", RateLimitTypeBooking},
		{"/api/v1/organisers/:id/stats", RateLimitTypeAdmin},
		{"/api/v1/events/:id/seats", RateLimitTypePublic},
		{"/api/v1/venues", RateLimitTypePublic},
		{"/api/v1/users/:cnic", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			if got := getRateLimitType(tc.path); got != tc.want {
				t.Fatalf("getRateLimitType(%q) = %s, want %s", tc.path, got, tc.want)
			}
		})
	}
}
