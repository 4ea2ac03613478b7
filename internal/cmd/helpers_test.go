package cmd

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/camel-tooling/camel-dashboard-cli/internal/config"
	"github.com/camel-tooling/camel-dashboard-cli/internal/kubernetes"
	"github.com/camel-tooling/camel-dashboard-cli/internal/testutil"
)

// syncBuffer is a bytes.Buffer safe for a command goroutine writing while
// the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// isolateEnv points HOME at a temp dir and clears every variable the
// resolver reads, so the developer's own config never leaks into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, env := range []string{
		config.EnvConfig,
		config.EnvKubeconfig,
		config.EnvContext,
		config.EnvNamespace,
		config.EnvLocale,
		"CAMEL_DASHBOARD_WATCH_INTERVAL",
		"CAMEL_DASHBOARD_CAMEL_APPLABEL",
	} {
		t.Setenv(env, "")
	}
	return home
}

// newTestRoot builds a root command whose client factory returns client.
func newTestRoot(t *testing.T, client *kubernetes.Client) (*cobra.Command, *GlobalConfig, *syncBuffer) {
	t.Helper()
	isolateEnv(t)

	g := &GlobalConfig{
		NewClient: func(kubernetes.ClientOptions) (*kubernetes.Client, error) {
			return client, nil
		},
	}
	root := newRootCmd(g)

	out := &syncBuffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	return root, g, out
}

// fixtureClient serves order-service in ns1 and billing in ns2, with ns1 as
// the context namespace.
func fixtureClient(extra ...runtime.Object) *kubernetes.Client {
	objs := []runtime.Object{
		testutil.OrderService(),
		testutil.CamelApp("ns2", "billing", map[string]interface{}{"phase": "Error"}),
	}
	return kubernetes.NewFakeClient("ns1", append(objs, extra...)...)
}

// execute runs the command line and returns its stdout.
func execute(t *testing.T, client *kubernetes.Client, args ...string) (string, error) {
	t.Helper()
	root, _, out := newTestRoot(t, client)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}
