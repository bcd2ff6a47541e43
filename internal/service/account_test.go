package service

import (
	"casino-backend/internal/model"
	repomocks "casino-backend/mocks/repository"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUsername(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		username  string
		exists    bool
		wantErr   error
		available bool
	}{
		{name: "available", username: "new_player", available: true},
		{name: "taken", username: "  Taken_1 ", exists: true},
		{name: "too short", username: "ab", wantErr: model.ErrInvalidUsername},
		{name: "bad characters", username: "bad-name!", wantErr: model.ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := repomocks.NewProfileRepository(t)
			svc := NewAccountService(profileRepo, zerolog.Nop())

			if tt.wantErr == nil {
				profileRepo.On("UsernameExists", ctx, "new_player").Return(false, nil).Maybe()
				profileRepo.On("UsernameExists", ctx, "Taken_1").Return(true, nil).Maybe()
			}

			resp, err := svc.CheckUsername(ctx, tt.username)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exists, resp.Exists)
			assert.Equal(t, tt.available, resp.IsAvailable)
		})
	}
}
