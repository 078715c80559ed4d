package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/primeitclub/the-newbies/demo"
	"github.com/primeitclub/the-newbies/model"
	sessionrepo "github.com/primeitclub/the-newbies/repository/session"
	userrepo "github.com/primeitclub/the-newbies/repository/user"
	"github.com/primeitclub/the-newbies/util/hash"
	jwtutil "github.com/primeitclub/the-newbies/util/jwt"
)

type ErrCode string

const (
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrBadInput     ErrCode = "BAD_INPUT"
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const sessionTTLHours = 24

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser resolves a session to its user; nil, nil when the
	// session is unknown, expired or overwritten.
	CurrentUser(ctx context.Context, sessionID string) (*model.User, error)
}

type service struct {
	ur     userrepo.Repo
	sr     sessionrepo.Repo
	secret string
	demo   bool
}

// New builds the auth service. demoMode switches login to the demo
// credential pairs plus guest synthesis; it is an explicit flag, never
// inferred from stored state.
func New(ur userrepo.Repo, sr sessionrepo.Repo, secret string, demoMode bool) Service {
	return &service{ur: ur, sr: sr, secret: secret, demo: demoMode}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" || len(req.Password) < 6 {
		return nil, "", codedError{ErrBadInput}
	}
	ut := model.UserType(req.UserType)
	if ut != model.UserStudent && ut != model.UserLandlord {
		return nil, "", codedError{ErrBadInput}
	}

	if existing, err := s.ur.ByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", codedError{ErrEmailTaken}
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        email,
		UserType:     ut,
		College:      req.College,
		PasswordHash: hashed,
	}
	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	return s.openSession(ctx, u)
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(strings.ToLower(pgErr.ConstraintName), "email") ||
			strings.Contains(strings.ToLower(pgErr.Message), "email") {
			return codedError{ErrEmailTaken}
		}
		return codedError{ErrBadInput}
	}
	return nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", codedError{ErrBadInput}
	}

	u, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if u != nil && u.PasswordHash != "" && hash.Check(u.PasswordHash, req.Password) {
		return s.openSession(ctx, u)
	}

	if s.demo {
		return s.demoLogin(ctx, email, req.Password, u)
	}
	return nil, "", codedError{ErrInvalidCreds}
}

// demoLogin accepts the demo credential pairs and, failing those,
// fabricates a guest from whatever email was supplied. Any password is
// accepted for the guest: this is a demo affordance, gated behind the
// explicit demo flag, not an auth path.
func (s *service) demoLogin(ctx context.Context, email, password string, known *model.User) (*model.User, string, error) {
	if (email == demo.StudentEmail || email == demo.LandlordEmail) && password == demo.Password {
		if known != nil {
			return s.openSession(ctx, known)
		}
		for _, du := range demo.Users() {
			if strings.EqualFold(du.Email, email) {
				return s.openSession(ctx, &du)
			}
		}
	}

	guest := &model.User{
		ID:       "demo-user-" + uuid.NewString(),
		Name:     strings.SplitN(email, "@", 2)[0],
		Email:    email,
		UserType: model.UserStudent,
		Verified: false,
	}
	return s.openSession(ctx, guest)
}

func (s *service) openSession(ctx context.Context, u *model.User) (*model.User, string, error) {
	now := time.Now().UTC()
	sess := model.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTLHours * time.Hour),
	}
	if err := s.sr.Create(ctx, sessionrepo.Record{Session: sess, User: *u}); err != nil {
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, string(u.UserType), sess.ID, sessionTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	return s.sr.Delete(ctx, sessionID)
}

func (s *service) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, nil
	}
	rec, err := s.sr.Get(ctx, sessionID)
	if err != nil || rec == nil {
		return nil, err
	}

	// prefer the live record; guests exist only in the session snapshot
	if u, err := s.ur.ByID(ctx, rec.Session.UserID); err == nil && u != nil {
		return u, nil
	}
	u := rec.User
	return &u, nil
}
