//go:build integration

// Integration tests start a local API server with envtest.
// Run with: go test -tags integration ./internal/kubernetes/ -v
package kubernetes

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/envtest"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/navigation"
	"github.com/camel-tooling/camel-dashboard-cli/internal/testutil"
)

var testClient *Client

func camelAppCRD() *apiextensionsv1.CustomResourceDefinition {
	preserve := true
	return &apiextensionsv1.CustomResourceDefinition{
		ObjectMeta: metav1.ObjectMeta{Name: camelapp.Resource + "." + camelapp.Group},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: camelapp.Group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:   camelapp.Resource,
				Singular: "camelapp",
				Kind:     camelapp.Kind,
				ListKind: camelapp.Kind + "List",
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{{
				Name:    camelapp.Version,
				Served:  true,
				Storage: true,
				Schema: &apiextensionsv1.CustomResourceValidation{
					OpenAPIV3Schema: &apiextensionsv1.JSONSchemaProps{
						Type:                   "object",
						XPreserveUnknownFields: &preserve,
					},
				},
			}},
		},
	}
}

func TestMain(m *testing.M) {
	testEnv := &envtest.Environment{
		CRDInstallOptions: envtest.CRDInstallOptions{
			CRDs: []*apiextensionsv1.CustomResourceDefinition{camelAppCRD()},
		},
	}

	cfg, err := testEnv.Start()
	if err != nil {
		panic("failed to start envtest: " + err.Error())
	}

	testClient, err = NewClientFromConfig(cfg, "default")
	if err != nil {
		panic("failed to create test client: " + err.Error())
	}

	code := m.Run()

	if err := testEnv.Stop(); err != nil {
		panic("failed to stop envtest: " + err.Error())
	}
	os.Exit(code)
}

func createNamespace(t *testing.T, name string) {
	t.Helper()
	ns := testutil.Workload("v1", "Namespace", "", name, nil)
	_, err := testClient.Dynamic.Resource(schema.GroupVersionResource{Version: "v1", Resource: "namespaces"}).
		Create(context.Background(), ns, metav1.CreateOptions{})
	require.NoError(t, err)
}

func TestIntegration_ListAndGet(t *testing.T) {
	ctx := context.Background()
	createNamespace(t, "list-get")

	apps := NewCamelApps(testClient, camelapp.GroupVersionResource)
	require.NoError(t, apps.CheckInstalled())

	obj := testutil.CamelApp("list-get", "order-service", nil)
	_, err := testClient.Dynamic.Resource(camelapp.GroupVersionResource).Namespace("list-get").
		Create(ctx, obj, metav1.CreateOptions{})
	require.NoError(t, err)

	listed, err := apps.List(ctx, navigation.InNamespace("list-get"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "order-service", listed[0].Name())

	got, err := apps.Get(ctx, "list-get", "order-service")
	require.NoError(t, err)
	assert.Equal(t, camelapp.StatusUnknown, camelapp.Status(got))
}

func TestIntegration_WatchSeesStatusUpdate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	createNamespace(t, "watch")

	res := testClient.Dynamic.Resource(camelapp.GroupVersionResource).Namespace("watch")
	created, err := res.Create(ctx, testutil.CamelApp("watch", "order-service", nil), metav1.CreateOptions{})
	require.NoError(t, err)

	ch, err := NewCamelApps(testClient, camelapp.GroupVersionResource).Watch(ctx, navigation.InNamespace("watch"))
	require.NoError(t, err)
	first := <-ch
	require.Len(t, first.Apps, 1)

	require.NoError(t, unstructured.SetNestedField(created.Object, "Running", "status", "phase"))
	_, err = res.UpdateStatus(ctx, created, metav1.UpdateOptions{})
	if err != nil {
		// Without a status subresource the whole object is updated.
		_, err = res.Update(ctx, created, metav1.UpdateOptions{})
	}
	require.NoError(t, err)

	for s := range ch {
		if len(s.Apps) == 1 && camelapp.Status(s.Apps[0]) == "Running" {
			return
		}
	}
	t.Fatal("watch closed before the status update arrived")
}
