// reconcile brings a single remote CI job into a declared desired state
// via idempotent guarded operations. Each operation is one precondition
// check followed by at most one mutation; the remote server is the sole
// source of truth and nothing is cached between calls.
package reconcile

import (
	ers "errors"
	"fmt"

	"github.com/rastaman/jenkinsctl/pkg/errors"
	"github.com/rastaman/jenkinsctl/pkg/jenkins"
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

// Service applies reconcile operations through a jenkins client.
type Service struct {
	client jenkins.JobAPI
}

// ops is the fixed dispatch table, one guarded transition per operation.
var ops = map[structs.Operation]func(*Service, string, string) (*structs.Result, error){
	structs.OpCreate:  (*Service).Create,
	structs.OpDelete:  (*Service).Delete,
	structs.OpEnable:  (*Service).Enable,
	structs.OpDisable: (*Service).Disable,
	structs.OpModify:  (*Service).Modify,
}

// New builds a Service over a fresh client, failing fast if the client
// cannot be constructed from the given options.
func New(opts *jenkins.Options) (*Service, error) {
	client, err := jenkins.New(opts)
	if err != nil {
		return nil, err
	}
	return NewService(client), nil
}

// NewService builds a Service over an existing client.
func NewService(client jenkins.JobAPI) *Service {
	return &Service{client: client}
}

// Apply runs one operation against the named job. Params (if any) are
// substituted into the config template before use.
func (s *Service) Apply(op structs.Operation, name, config string, params map[string]string) (*structs.Result, error) {
	fn, ok := ops[op]
	if !ok {
		return nil, fmt.Errorf("%w: operation %q", errors.ErrInvalidArg, op)
	}
	if config != "" {
		config = ExpandConfig(config, params)
	}
	return fn(s, name, config)
}

// Create makes the job exist. If no config is given the default template
// is used. After the create call we verify the job is actually present;
// the server can silently reject a create it dislikes.
func (s *Service) Create(name, config string) (*structs.Result, error) {
	exists, err := s.client.JobExists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return &structs.Result{Message: fmt.Sprintf("job %s already exists", name)}, nil
	}

	if config == "" {
		config = DefaultConfigXML
	}
	if err := s.client.CreateJob(name, config); err != nil {
		return nil, err
	}

	exists, err = s.client.JobExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", errors.ErrCreateUnverified, name)
	}
	return &structs.Result{Changed: true}, nil
}

// Delete removes the job. Deleting a job that isn't there is a no-op,
// never an error.
func (s *Service) Delete(name, _ string) (*structs.Result, error) {
	exists, err := s.client.JobExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &structs.Result{Message: fmt.Sprintf("unknown job %s", name)}, nil
	}

	if err := s.client.DeleteJob(name); err != nil {
		return nil, err
	}
	return &structs.Result{Changed: true}, nil
}

// Enable allows builds of the job if it exists and is currently disabled.
func (s *Service) Enable(name, _ string) (*structs.Result, error) {
	info, err := s.client.JobInfo(name)
	if ers.Is(err, errors.ErrUnknownJob) {
		return &structs.Result{Message: fmt.Sprintf("unknown job %s", name)}, nil
	}
	if err != nil {
		return nil, err
	}
	if info.Enabled() {
		return &structs.Result{Message: fmt.Sprintf("job %s already enabled", name)}, nil
	}

	if err := s.client.EnableJob(name); err != nil {
		return nil, err
	}
	return &structs.Result{Changed: true}, nil
}

// Disable stops builds of the job if it exists and is currently enabled.
func (s *Service) Disable(name, _ string) (*structs.Result, error) {
	info, err := s.client.JobInfo(name)
	if ers.Is(err, errors.ErrUnknownJob) {
		return &structs.Result{Message: fmt.Sprintf("unknown job %s", name)}, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.Enabled() {
		return &structs.Result{Message: fmt.Sprintf("job %s already disabled", name)}, nil
	}

	if err := s.client.DisableJob(name); err != nil {
		return nil, err
	}
	return &structs.Result{Changed: true}, nil
}

// Modify replaces the job's config with the given XML. There is no
// "already identical" check; modify always mutates an existing job.
func (s *Service) Modify(name, config string) (*structs.Result, error) {
	if config == "" {
		return nil, fmt.Errorf("%w: modify requires a config", errors.ErrInvalidArg)
	}

	exists, err := s.client.JobExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &structs.Result{Message: fmt.Sprintf("unknown job %s", name)}, nil
	}

	if err := s.client.SetJobConfig(name, config); err != nil {
		return nil, err
	}
	return &structs.Result{Changed: true}, nil
}
