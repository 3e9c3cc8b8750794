package services

import (
	"context"
	"errors"
	"testing"
)

func TestUserService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, token, err := env.users.CreateUser(ctx, " Trevor ")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Username != "trevor" || len(token) != 64 {
		t.Fatalf("user=%+v token=%q", user, token)
	}
	if user.APIToken == token {
		t.Fatalf("token stored in plain text")
	}

	got, err := env.users.Authenticate(ctx, token)
	if err != nil || got.ID != user.ID {
		t.Fatalf("Authenticate: user=%v err=%v", got, err)
	}
	if _, err := env.users.Authenticate(ctx, "nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}
	if _, err := env.users.Authenticate(ctx, ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}

	_, _, err = env.users.CreateUser(ctx, "TREVOR")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "username" {
		t.Fatalf("err=%v, want username validation error", err)
	}
}
