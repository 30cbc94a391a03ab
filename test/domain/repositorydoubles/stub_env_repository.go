//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// EnsureCall records one Ensure invocation.
type EnsureCall struct {
	Env        *entities.Environment
	VenvBin    string
	ParentEnv  string
	ParentRepo string
}

// StubEnvRepository is a stub implementation of repositories.EnvRepository.
type StubEnvRepository struct {
	Calls        []EnsureCall
	EnsureResult string
	EnsureErr    error
}

var _ repositories.EnvRepository = (*StubEnvRepository)(nil)

func (s *StubEnvRepository) Ensure(
	_ context.Context,
	env *entities.Environment,
	venvBin, parentEnv, parentRepo string,
) (string, error) {
	s.Calls = append(s.Calls, EnsureCall{
		Env:        env,
		VenvBin:    venvBin,
		ParentEnv:  parentEnv,
		ParentRepo: parentRepo,
	})
	return s.EnsureResult, s.EnsureErr
}
