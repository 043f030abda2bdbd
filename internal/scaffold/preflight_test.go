package scaffold

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/init-project/internal/provision"
)

func TestPreflight(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *provision.MockRunner)
		minNode string
		wantErr bool
	}{
		{name: "all tools present", setup: func(r *provision.MockRunner) {}},
		{
			name:    "missing npm",
			setup:   func(r *provision.MockRunner) { r.RemovePath("npm") },
			wantErr: true,
		},
		{
			name:    "node too old",
			setup:   func(r *provision.MockRunner) { r.SetOutput("node --version", "v12.22.0") },
			wantErr: true,
		},
		{
			name:    "version without prefix",
			setup:   func(r *provision.MockRunner) { r.SetOutput("node --version", "18.19.0\n") },
			minNode: "18.0.0",
		},
		{
			name:    "garbage version",
			setup:   func(r *provision.MockRunner) { r.SetOutput("node --version", "unknown") },
			wantErr: true,
		},
		{
			name: "node fails to run",
			setup: func(r *provision.MockRunner) {
				r.OutputErrors["node --version"] = errors.New("segfault")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := provision.NewMockRunner()
			tt.setup(runner)

			err := NewPreflight(runner, tt.minNode, "npm", "npx", "node").Check(context.Background())
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrPreflight)
			var pre *PreconditionError
			require.ErrorAs(t, err, &pre)
		})
	}
}

func TestPreflight_DefaultsMinimum(t *testing.T) {
	p := NewPreflight(provision.NewMockRunner(), "")
	require.Equal(t, DefaultMinNode, p.minNode)
}
