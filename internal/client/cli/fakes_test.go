package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/moneyboy/internal/client/config"
	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
)

type fakeSession struct {
	loginUser, loginPass string
	loginErr             error

	logoutCalled bool

	reg    models.Registration
	regErr error

	user    *models.UserProfile
	userErr error

	users    []models.UserInfo
	usersErr error

	status    *models.SessionStatus
	statusErr error
}

func (f *fakeSession) Login(_ context.Context, u, p string) error {
	f.loginUser, f.loginPass = u, p
	return f.loginErr
}
func (f *fakeSession) Logout(context.Context) { f.logoutCalled = true; f.user = nil }
func (f *fakeSession) Register(_ context.Context, r models.Registration) error {
	f.reg = r
	return f.regErr
}
func (f *fakeSession) GetUser(context.Context) (*models.UserProfile, error) {
	return f.user, f.userErr
}
func (f *fakeSession) GetUsers(context.Context) ([]models.UserInfo, error) {
	return f.users, f.usersErr
}
func (f *fakeSession) SessionStatus(context.Context) (*models.SessionStatus, error) {
	return f.status, f.statusErr
}

type fakePayments struct {
	created []models.PaymentCreate
	accept  bool
	list    []models.Payment
	listErr error
}

func (f *fakePayments) Create(_ context.Context, p models.PaymentCreate) bool {
	f.created = append(f.created, p)
	return f.accept
}
func (f *fakePayments) GetAll(context.Context) ([]models.Payment, error) {
	return f.list, f.listErr
}

func newTestApp(s *fakeSession, p *fakePayments) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:   cfg,
		session:  s,
		payments: p,
		logger:   logging.NewNopLogger(),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      out,
	}, out
}

// stubInputs feeds answers to successive text and password prompts.
func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
}
