// Package kubernetes reads CamelApp resources and the workloads backing them
// from a cluster.
package kubernetes

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/camel-tooling/camel-dashboard-cli/internal/config"
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/version"
)

// ClientOptions configures Kubernetes client creation.
type ClientOptions struct {
	// Kubeconfig is the path to the kubeconfig file.
	// Precedence: this field > CAMEL_DASHBOARD_KUBECONFIG > KUBECONFIG > ~/.kube/config
	Kubeconfig string

	// Context is the Kubernetes context to use.
	// If empty, uses the current-context from kubeconfig.
	Context string

	// APIWarnings is one of "warn", "debug" or "suppress".
	APIWarnings string
}

// Client wraps the Kubernetes API clients used by the dashboard.
type Client struct {
	// Dynamic reads CamelApps and their backing workloads.
	Dynamic dynamic.Interface

	// Clientset is used for API discovery.
	Clientset kubernetes.Interface

	// RestConfig is nil for clients built from fakes.
	RestConfig *rest.Config

	// Namespace is the default namespace of the selected context.
	Namespace string
}

var (
	cachedClient *Client
	clientMu     sync.Mutex
)

// NewClient creates a Kubernetes client with the given options.
// The client is cached for reuse within the same command invocation.
func NewClient(opts ClientOptions) (*Client, error) {
	clientMu.Lock()
	defer clientMu.Unlock()

	if cachedClient != nil {
		return cachedClient, nil
	}

	clientConfig := buildClientConfig(opts)
	restConfig, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("building kubernetes config: %w",
			oerrors.Wrap(oerrors.ErrConnectivity, err.Error()))
	}
	restConfig.WarningHandler = &warningHandler{level: opts.APIWarnings, logger: defaultWarningLogger{}}
	restConfig.UserAgent = version.UserAgent()

	namespace, _, err := clientConfig.Namespace()
	if err != nil || namespace == "" {
		namespace = "default"
	}

	client, err := NewClientFromConfig(restConfig, namespace)
	if err != nil {
		return nil, err
	}
	cachedClient = client

	return cachedClient, nil
}

// NewClientFromConfig builds an uncached Client from a REST config.
func NewClientFromConfig(restConfig *rest.Config, namespace string) (*Client, error) {
	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("creating dynamic client: %w",
			oerrors.Wrap(oerrors.ErrConnectivity, err.Error()))
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("creating clientset: %w",
			oerrors.Wrap(oerrors.ErrConnectivity, err.Error()))
	}

	if namespace == "" {
		namespace = "default"
	}
	return &Client{
		Dynamic:    dynamicClient,
		Clientset:  clientset,
		RestConfig: restConfig,
		Namespace:  namespace,
	}, nil
}

// NewClientFromInterfaces builds a Client around existing clients, typically
// the client-go fakes.
func NewClientFromInterfaces(dyn dynamic.Interface, cs kubernetes.Interface, namespace string) *Client {
	if namespace == "" {
		namespace = "default"
	}
	return &Client{Dynamic: dyn, Clientset: cs, Namespace: namespace}
}

// ResetClient clears the cached client. Used for testing.
func ResetClient() {
	clientMu.Lock()
	defer clientMu.Unlock()
	cachedClient = nil
}

func buildClientConfig(opts ClientOptions) clientcmd.ClientConfig {
	loadingRules := &clientcmd.ClientConfigLoadingRules{
		ExplicitPath: resolveKubeconfig(opts.Kubeconfig),
	}

	overrides := &clientcmd.ConfigOverrides{}
	if opts.Context != "" {
		overrides.CurrentContext = opts.Context
	}

	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)
}

// resolveKubeconfig resolves kubeconfig path with precedence:
// flag > CAMEL_DASHBOARD_KUBECONFIG > KUBECONFIG > ~/.kube/config
func resolveKubeconfig(flagValue string) string {
	var path string

	switch {
	case flagValue != "":
		path = flagValue
	case os.Getenv(config.EnvKubeconfig) != "":
		path = os.Getenv(config.EnvKubeconfig)
	case os.Getenv("KUBECONFIG") != "":
		path = os.Getenv("KUBECONFIG")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".kube", "config")
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
