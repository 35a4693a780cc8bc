package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	want := models.Principal{UserID: 1, Username: "alice", Permissions: models.DefaultPermissions}
	ctx := WithPrincipal(context.Background(), want)

	got, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestPrincipalContext_IsolatedPerContext(t *testing.T) {
	base := context.Background()
	alice := WithPrincipal(base, models.Principal{UserID: 1, Username: "alice"})
	bob := WithPrincipal(base, models.Principal{UserID: 2, Username: "bob"})

	a, _ := PrincipalFromContext(alice)
	b, _ := PrincipalFromContext(bob)
	_, baseHas := PrincipalFromContext(base)

	assert.Equal(t, "alice", a.Username)
	assert.Equal(t, "bob", b.Username)
	assert.False(t, baseHas)
}

func TestPrincipalContext_StringKeyCannotSpoof(t *testing.T) {
	ctx := context.WithValue(context.Background(), "principal", models.Principal{UserID: 9})

	_, ok := PrincipalFromContext(ctx)
	assert.False(t, ok)
}

func TestAuthStateContext(t *testing.T) {
	assert.Equal(t, models.AuthUnauthenticated, AuthStateFromContext(context.Background()))

	ctx := WithAuthState(context.Background(), models.AuthBypassed)
	assert.Equal(t, models.AuthBypassed, AuthStateFromContext(ctx))
	assert.Equal(t, "bypassed", models.AuthBypassed.String())
}
