package cmd

import (
	"testing"

	"github.com/saptools/sapgui-cli/internal/scripting/scripttest"
	"github.com/saptools/sapgui-cli/internal/session"
)

func withFakeSession(t *testing.T, fake *scripttest.Fake) {
	t.Helper()
	orig := attachSession
	attachSession = func() (*session.Session, error) {
		return session.New(fake, nil), nil
	}
	t.Cleanup(func() { attachSession = orig })
}

func TestTxStartStatusUnreadable(t *testing.T) {
	// No status bar registered: the navigation lands but its outcome is
	// unknown, which must surface as an error rather than OK: true.
	fake := scripttest.New()
	withFakeSession(t, fake)

	if err := runTxStart(txStartCmd, []string{"SE16H"}); err == nil {
		t.Error("unreadable status bar after start reported no error")
	}
	if len(fake.Transactions) != 1 || fake.Transactions[0] != "SE16H" {
		t.Errorf("transactions = %v", fake.Transactions)
	}
}
