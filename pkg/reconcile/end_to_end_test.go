package reconcile

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rastaman/jenkinsctl/internal/fakejenkins"
	"github.com/rastaman/jenkinsctl/pkg/jenkins"
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

// End to end against the in-memory master with crumb enforcement on:
// every operation twice to prove idempotence, plus the default-template
// and always-mutates contracts.
func TestReconcileEndToEnd(t *testing.T) {
	fake := fakejenkins.New(true, false)
	ts := httptest.NewServer(fake.Router())
	defer ts.Close()

	svc, err := New(&jenkins.Options{URL: ts.URL, Username: "admin", Password: "secret"})
	assert.Nil(t, err)

	client, err := jenkins.New(&jenkins.Options{URL: ts.URL, Username: "admin", Password: "secret"})
	assert.Nil(t, err)

	// create with no config: changed, and the stored config is the
	// default template verbatim
	res, err := svc.Apply(structs.OpCreate, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.True(t, res.Changed)

	cfg, err := client.JobConfig("demo-job")
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfigXML, cfg)

	// create again: nothing to do
	res, err = svc.Apply(structs.OpCreate, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, "job demo-job already exists", res.Message)

	// enable an enabled job: nothing to do
	res, err = svc.Apply(structs.OpEnable, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.False(t, res.Changed)

	// disable, then disable again
	res, err = svc.Apply(structs.OpDisable, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.True(t, res.Changed)

	res, err = svc.Apply(structs.OpDisable, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, "job demo-job already disabled", res.Message)

	// and back
	res, err = svc.Apply(structs.OpEnable, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.True(t, res.Changed)

	// modify replaces the config, identical or not
	next := `<project><description>v2</description></project>`
	for i := 0; i < 2; i++ {
		res, err = svc.Apply(structs.OpModify, "demo-job", next, nil)
		assert.Nil(t, err)
		assert.True(t, res.Changed)
	}
	cfg, err = client.JobConfig("demo-job")
	assert.Nil(t, err)
	assert.Equal(t, next, cfg)

	// delete, then delete again
	res, err = svc.Apply(structs.OpDelete, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.True(t, res.Changed)

	res, err = svc.Apply(structs.OpDelete, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, "unknown job demo-job", res.Message)
}

// A master restart invalidates cached crumbs; the requester's single
// retry absorbs it without the reconciler noticing.
func TestReconcileSurvivesCrumbRotation(t *testing.T) {
	fake := fakejenkins.New(true, false)
	ts := httptest.NewServer(fake.Router())
	defer ts.Close()

	svc, err := New(&jenkins.Options{URL: ts.URL, Username: "admin", Password: "secret"})
	assert.Nil(t, err)

	res, err := svc.Apply(structs.OpCreate, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.True(t, res.Changed)

	fake.RotateCrumb()

	res, err = svc.Apply(structs.OpDisable, "demo-job", "", nil)
	assert.Nil(t, err)
	assert.True(t, res.Changed)
}
