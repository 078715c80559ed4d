// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/primeitclub/the-newbies/demo"
	"github.com/primeitclub/the-newbies/model"
	sessionrepo "github.com/primeitclub/the-newbies/repository/session"
	userrepo "github.com/primeitclub/the-newbies/repository/user"
	jwtutil "github.com/primeitclub/the-newbies/util/jwt"
)

func newDemoService(t *testing.T) Service {
	t.Helper()
	slot := sessionrepo.NewSlot(filepath.Join(t.TempDir(), "demo-session.json"))
	return New(userrepo.NewMemory(demo.Users()), slot, "test-secret", true)
}

func newRemoteStyleService(t *testing.T) Service {
	t.Helper()
	slot := sessionrepo.NewSlot(filepath.Join(t.TempDir(), "session.json"))
	return New(userrepo.NewMemory(nil), slot, "test-secret", false)
}

// --- register ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	svc := newRemoteStyleService(t)

	u, tok, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Sita Sharma",
		Email:    "SITA@Example.COM",
		Password: "supersecret",
		UserType: "landlord",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, "sita@example.com", u.Email)
	require.Equal(t, model.UserLandlord, u.UserType)
	require.NotEmpty(t, u.ID)
	require.NotEmpty(t, u.PasswordHash)
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := newRemoteStyleService(t)

	cases := []model.RegisterReq{
		{Name: "x", Email: " ", Password: "123456", UserType: "student"},
		{Name: "x", Email: "a@b.com", Password: "123", UserType: "student"},
		{Name: "", Email: "a@b.com", Password: "123456", UserType: "student"},
		{Name: "x", Email: "a@b.com", Password: "123456", UserType: "admin"},
	}
	for i, req := range cases {
		_, _, err := svc.Register(ctx, req)
		require.Error(t, err, "case %d", i)
		require.Equal(t, ErrBadInput, Code(err))
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	svc := newRemoteStyleService(t)

	req := model.RegisterReq{Name: "x", Email: "taken@example.com", Password: "123456", UserType: "student"}
	_, _, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, req)
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

// --- login ---

func TestLogin_RegisteredUser(t *testing.T) {
	ctx := context.Background()
	svc := newRemoteStyleService(t)

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name: "x", Email: "user@example.com", Password: "supersecret", UserType: "student",
	})
	require.NoError(t, err)

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "User@Example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, "user@example.com", u.Email)

	_, _, err = svc.Login(ctx, model.LoginReq{Email: "user@example.com", Password: "wrong-password"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_UnknownUserOutsideDemoMode(t *testing.T) {
	ctx := context.Background()
	svc := newRemoteStyleService(t)

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "missing@example.com", Password: "whatever"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_DemoCredentialPairs(t *testing.T) {
	ctx := context.Background()
	svc := newDemoService(t)

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: demo.StudentEmail, Password: demo.Password})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, model.UserStudent, u.UserType)
	require.True(t, u.Verified)

	u, _, err = svc.Login(ctx, model.LoginReq{Email: demo.LandlordEmail, Password: demo.Password})
	require.NoError(t, err)
	require.Equal(t, model.UserLandlord, u.UserType)
}

// Any email with any password logs in as a guest when demo mode is on.
// This documents the demo affordance as it behaves today; it is why the
// flag must never be enabled outside demos.
func TestLogin_DemoGuestAcceptsAnything(t *testing.T) {
	ctx := context.Background()
	svc := newDemoService(t)

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "ram.k@example.com", Password: "not-a-real-password"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, "ram.k", u.Name)
	require.Equal(t, model.UserStudent, u.UserType)
	require.False(t, u.Verified)
}

// --- sessions ---

func TestCurrentUser_AndLogout(t *testing.T) {
	ctx := context.Background()
	svc := newDemoService(t)

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: demo.StudentEmail, Password: demo.Password})
	require.NoError(t, err)

	sid := sessionIDFromToken(t, tok)
	got, err := svc.CurrentUser(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	require.NoError(t, svc.Logout(ctx, sid))

	got, err = svc.CurrentUser(ctx, sid)
	require.NoError(t, err)
	require.Nil(t, got)
}

// The slot holds one identity; a later login evicts the earlier session.
func TestDemoSlot_SecondLoginEvictsFirst(t *testing.T) {
	ctx := context.Background()
	svc := newDemoService(t)

	_, firstTok, err := svc.Login(ctx, model.LoginReq{Email: demo.StudentEmail, Password: demo.Password})
	require.NoError(t, err)
	firstSID := sessionIDFromToken(t, firstTok)

	_, secondTok, err := svc.Login(ctx, model.LoginReq{Email: demo.LandlordEmail, Password: demo.Password})
	require.NoError(t, err)

	got, err := svc.CurrentUser(ctx, firstSID)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = svc.CurrentUser(ctx, sessionIDFromToken(t, secondTok))
	require.NoError(t, err)
	require.Equal(t, model.UserLandlord, got.UserType)
}

func sessionIDFromToken(t *testing.T, token string) string {
	t.Helper()
	claims, err := jwtutil.ParseAuth(token, "test-secret")
	require.NoError(t, err)
	sid, _ := claims["sid"].(string)
	require.NotEmpty(t, sid)
	return sid
}
