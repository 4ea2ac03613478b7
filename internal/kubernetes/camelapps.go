package kubernetes

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/dynamic"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
	"github.com/camel-tooling/camel-dashboard-cli/internal/navigation"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// DefaultRetryInterval is the pause between attempts to re-establish a
// broken watch.
const DefaultRetryInterval = 2 * time.Second

// Snapshot is the full set of CamelApps in scope after a change. Err is set
// when the watch is being re-established; Apps is then empty.
type Snapshot struct {
	Apps []camelapp.App
	Err  error
}

// CamelApps reads CamelApp resources.
type CamelApps struct {
	client *Client
	gvr    schema.GroupVersionResource
	log    *log.Logger

	// RetryInterval is the pause before re-listing after a watch failure.
	RetryInterval time.Duration
}

// NewCamelApps returns an accessor for the CamelApps served at gvr.
func NewCamelApps(client *Client, gvr schema.GroupVersionResource) *CamelApps {
	return &CamelApps{
		client:        client,
		gvr:           gvr,
		log:           output.ModuleLogger("camelapps"),
		RetryInterval: DefaultRetryInterval,
	}
}

func (c *CamelApps) resource(scope navigation.ListScope) dynamic.ResourceInterface {
	r := c.client.Dynamic.Resource(c.gvr)
	if scope.AllNamespaces || scope.Namespace == "" {
		return r
	}
	return r.Namespace(scope.Namespace)
}

// CheckInstalled verifies that the API server serves the CamelApp resource.
func (c *CamelApps) CheckInstalled() error {
	gv := c.gvr.GroupVersion().String()
	list, err := c.client.Clientset.Discovery().ServerResourcesForGroupVersion(gv)
	if err != nil && !apierrors.IsNotFound(err) {
		return classify(err, "discovering "+gv)
	}
	if list != nil {
		for _, r := range list.APIResources {
			if r.Name == c.gvr.Resource {
				return nil
			}
		}
	}
	return oerrors.NewNotFoundError(
		fmt.Sprintf("the cluster does not serve %s", c.gvr.GroupResource()),
		gv,
		"install the Camel Dashboard operator, which provides the CamelApp CRD",
	)
}

// List returns the CamelApps in scope ordered by namespace, then name.
func (c *CamelApps) List(ctx context.Context, scope navigation.ListScope) ([]camelapp.App, error) {
	st, _, err := c.list(ctx, scope)
	if err != nil {
		return nil, err
	}
	return st.snapshot(), nil
}

// Get returns a single CamelApp.
func (c *CamelApps) Get(ctx context.Context, namespace, name string) (camelapp.App, error) {
	obj, err := c.client.Dynamic.Resource(c.gvr).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			notFound := &AppNotFoundError{Name: name, Namespace: namespace}
			return camelapp.App{}, &oerrors.DetailError{
				Type:     "not found",
				Message:  notFound.Error(),
				Location: navigation.DetailsPath(namespace, name, navigation.TabDetails),
				Hint:     "run 'camel-dashboard list -A' to see the available CamelApps",
				Cause:    notFound,
			}
		}
		return camelapp.App{}, classify(err, fmt.Sprintf("getting CamelApp %s/%s", namespace, name))
	}
	return camelapp.New(obj), nil
}

// Watch streams a Snapshot for the initial state and after every change.
// A broken watch is re-established by listing again. The channel is closed
// once ctx is done.
func (c *CamelApps) Watch(ctx context.Context, scope navigation.ListScope) (<-chan Snapshot, error) {
	st, w, err := c.establish(ctx, scope)
	if err != nil {
		return nil, err
	}

	out := make(chan Snapshot, 1)
	go c.run(ctx, scope, st, w, out)
	return out, nil
}

func (c *CamelApps) run(ctx context.Context, scope navigation.ListScope, st *appStore, w watch.Interface, out chan<- Snapshot) {
	defer close(out)

	for {
		if !emit(ctx, out, Snapshot{Apps: st.snapshot()}) {
			w.Stop()
			return
		}

		restart := c.consume(ctx, st, w, out)
		w.Stop()
		if !restart {
			return
		}
		c.log.Debug("watch closed, re-listing", "scope", scope.String())

		for {
			var err error
			st, w, err = c.establish(ctx, scope)
			if err == nil {
				break
			}
			if !emit(ctx, out, Snapshot{Err: err}) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.RetryInterval):
			}
		}
	}
}

// consume applies watch events to st until the watch ends. It reports
// whether the watch should be re-established.
func (c *CamelApps) consume(ctx context.Context, st *appStore, w watch.Interface, out chan<- Snapshot) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-w.ResultChan():
			if !ok {
				return true
			}
			if ev.Type == watch.Error {
				c.log.Debug("watch error", "err", apierrors.FromObject(ev.Object))
				return true
			}
			if !st.apply(ev) {
				continue
			}
			if !emit(ctx, out, Snapshot{Apps: st.snapshot()}) {
				return false
			}
		}
	}
}

func (c *CamelApps) establish(ctx context.Context, scope navigation.ListScope) (*appStore, watch.Interface, error) {
	st, rv, err := c.list(ctx, scope)
	if err != nil {
		return nil, nil, err
	}
	w, err := c.resource(scope).Watch(ctx, metav1.ListOptions{ResourceVersion: rv})
	if err != nil {
		return nil, nil, classify(err, "watching CamelApps in "+scope.String())
	}
	return st, w, nil
}

func (c *CamelApps) list(ctx context.Context, scope navigation.ListScope) (*appStore, string, error) {
	list, err := c.resource(scope).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, "", classify(err, "listing CamelApps in "+scope.String())
	}
	st := newAppStore()
	for i := range list.Items {
		st.put(&list.Items[i])
	}
	c.log.Debug("listed CamelApps", "scope", scope.String(), "count", len(list.Items))
	return st, list.GetResourceVersion(), nil
}

func emit(ctx context.Context, out chan<- Snapshot, s Snapshot) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- s:
		return true
	}
}

// appStore holds the latest object per namespace/name. Stored objects are
// replaced on update, never mutated, so snapshots can share them.
type appStore struct {
	objs map[string]*unstructured.Unstructured
}

func newAppStore() *appStore {
	return &appStore{objs: map[string]*unstructured.Unstructured{}}
}

func (s *appStore) put(obj *unstructured.Unstructured) {
	s.objs[obj.GetNamespace()+"/"+obj.GetName()] = obj
}

// apply reports whether ev changed the store.
func (s *appStore) apply(ev watch.Event) bool {
	obj, ok := ev.Object.(*unstructured.Unstructured)
	if !ok {
		return false
	}
	switch ev.Type {
	case watch.Added, watch.Modified:
		s.put(obj)
		return true
	case watch.Deleted:
		key := obj.GetNamespace() + "/" + obj.GetName()
		if _, ok := s.objs[key]; !ok {
			return false
		}
		delete(s.objs, key)
		return true
	default:
		return false
	}
}

func (s *appStore) snapshot() []camelapp.App {
	apps := make([]camelapp.App, 0, len(s.objs))
	for _, obj := range s.objs {
		apps = append(apps, camelapp.New(obj))
	}
	SortApps(apps)
	return apps
}

// SortApps orders apps by namespace, then name.
func SortApps(apps []camelapp.App) {
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].Namespace() != apps[j].Namespace() {
			return apps[i].Namespace() < apps[j].Namespace()
		}
		return apps[i].Name() < apps[j].Name()
	})
}
