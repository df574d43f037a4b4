// File: registry.go
// Title: Policy Registry with Configuration Hot Reload
// Description: Holds named generation policies loaded from a TOML or YAML
//              document and reloads them when the file changes.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-03
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation
// - 2025-03-09 v0.1.1: Warn when a rejected reload keeps the previous policies

package stringx

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/msto63/toolbox/core/config"
	tberror "github.com/msto63/toolbox/core/error"
	"github.com/msto63/toolbox/core/errors"
	"github.com/msto63/toolbox/core/log"
)

// policyDocument is the layout of a policy file:
//
//	[policies.api_key]
//	length = 40
//	classes = "lower,upper,digits"
//	minimums = { digits = 4 }
type policyDocument struct {
	Policies map[string]Policy `toml:"policies" yaml:"policies"`
}

// PolicyRegistry maps names to policies. It always contains the built-in
// "password" and "url_token" policies unless a loaded file overrides them.
type PolicyRegistry struct {
	mu        sync.RWMutex
	builtins  map[string]Policy
	policies  map[string]Policy
	cfg       *config.Config
	generator *Generator
	logger    *log.Logger
}

// RegistryOption configures a PolicyRegistry
type RegistryOption func(*PolicyRegistry)

// WithRegistryLogger sets the logger for load and reload events
func WithRegistryLogger(logger *log.Logger) RegistryOption {
	return func(r *PolicyRegistry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithGenerator sets the generator used by Generate
func WithGenerator(g *Generator) RegistryOption {
	return func(r *PolicyRegistry) {
		if g != nil {
			r.generator = g
		}
	}
}

// NewPolicyRegistry creates a registry holding the built-in policies
func NewPolicyRegistry(opts ...RegistryOption) *PolicyRegistry {
	password := PasswordPolicy(DefaultPasswordLength)
	token := URLTokenPolicy(DefaultTokenLength)

	r := &PolicyRegistry{
		builtins: map[string]Policy{
			password.Name: password,
			token.Name:    token,
		},
		generator: defaultGenerator,
		logger:    log.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.policies = copyPolicies(r.builtins)
	return r
}

// Register validates p and adds it under p.Name, replacing any policy with
// the same name. A later load or reload discards registered policies that
// the file does not contain.
func (r *PolicyRegistry) Register(p Policy) error {
	if p.Name == "" {
		return errors.InvalidInput(errors.ModuleStringx, "Register", p.Name, "non-empty policy name")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.policies[p.Name] = p
	r.mu.Unlock()
	return nil
}

// LoadPolicies reads the [policies.<name>] tables of a TOML or YAML file.
// Either every policy in the file is valid and replaces the loaded set, or
// nothing changes.
func (r *PolicyRegistry) LoadPolicies(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := r.apply(cfg); err != nil {
		return err
	}

	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()
	return nil
}

func (r *PolicyRegistry) apply(cfg *config.Config) error {
	var doc policyDocument
	if err := cfg.Decode(&doc); err != nil {
		return err
	}

	loaded := copyPolicies(r.builtins)
	for name, p := range doc.Policies {
		p.Name = name
		if err := p.Validate(); err != nil {
			return tberror.Wrap(err, "invalid policy in "+cfg.FilePath()).
				WithDetail("policy", name)
		}
		loaded[name] = p
	}

	r.mu.Lock()
	r.policies = loaded
	r.mu.Unlock()

	r.logger.Info("policies loaded", log.Fields{
		"file":     cfg.FilePath(),
		"policies": len(doc.Policies),
	})
	return nil
}

// Get returns the policy registered under name
func (r *PolicyRegistry) Get(name string) (Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[name]
	return p, ok
}

// Names returns the registered policy names, sorted
func (r *PolicyRegistry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Generate returns a string for the named policy
func (r *PolicyRegistry) Generate(name string) (string, error) {
	p, ok := r.Get(name)
	if !ok {
		return "", errors.NotFound(errors.ModuleStringx, "PolicyRegistry.Generate", name)
	}
	return r.generator.Generate(p)
}

// Watch reloads the policies whenever the loaded file changes, until ctx is
// cancelled. A reload with an invalid policy is logged and the previous
// policies stay active.
func (r *PolicyRegistry) Watch(ctx context.Context) error {
	r.mu.RLock()
	cfg := r.cfg
	r.mu.RUnlock()

	if cfg == nil {
		return errors.InvalidInput(errors.ModuleStringx, "PolicyRegistry.Watch", nil, "policies loaded from a file")
	}

	return cfg.Watch(ctx, func(cfg *config.Config, err error) {
		logger := r.logger.WithCorrelationID(uuid.NewString())
		timer := logger.StartTimer("policy reload").WithLevel(log.LevelInfo)
		if err == nil {
			err = r.apply(cfg)
		}
		if err != nil {
			timer.StopWithError(err)
			logger.WarnWithErr("keeping previous policies", err, log.Fields{
				"policies": len(r.Names()),
			})
			return
		}
		timer.Stop()
	})
}

func copyPolicies(src map[string]Policy) map[string]Policy {
	dst := make(map[string]Policy, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
