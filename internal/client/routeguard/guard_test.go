package routeguard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		want          Decision
	}{
		{
			name: "anonymous on protected path redirects to sign-in with origin",
			path: "/dashboard/todos",
			want: Decision{RedirectTo: "/login?redirectedFrom=%2Fdashboard%2Ftodos"},
		},
		{
			name: "anonymous on dashboard root",
			path: "/dashboard",
			want: Decision{RedirectTo: "/login?redirectedFrom=%2Fdashboard"},
		},
		{
			name:          "authenticated on login page redirects to dashboard",
			path:          "/login",
			authenticated: true,
			want:          Decision{RedirectTo: "/dashboard"},
		},
		{
			name:          "authenticated on register page redirects to dashboard",
			path:          "/register",
			authenticated: true,
			want:          Decision{RedirectTo: "/dashboard"},
		},
		{
			name: "anonymous on login page is allowed",
			path: "/login",
			want: Decision{Allow: true},
		},
		{
			name:          "authenticated on protected path is allowed",
			path:          "/dashboard/priorities",
			authenticated: true,
			want:          Decision{Allow: true},
		},
		{
			name: "marketing page is always allowed",
			path: "/",
			want: Decision{Allow: true},
		},
		{
			name:          "marketing page allowed when authenticated",
			path:          "/pricing",
			authenticated: true,
			want:          Decision{Allow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Evaluate(tt.path, tt.authenticated))
		})
	}
}
