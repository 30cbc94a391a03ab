//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// CloneCall records one Clone invocation.
type CloneCall struct {
	Repo string
	Dest string
}

// StubGitRepository is a stub implementation of repositories.GitRepository
// that records calls and optionally fakes the clone by creating the
// destination directory.
type StubGitRepository struct {
	CloneCalls      []CloneCall
	CloneErr        error
	CreateDest      bool // make Clone create the destination directory
	PullCalls       int
	PullErr         error
	SubmoduleCalls  int
	SubmoduleErr    error
	InstallCalls    int
	InstallErr      error
	StagedResult    []string
	StagedErr       error
	DescribeResult  string
	DescribeErr     error
	DescribeDirs    []string
}

var _ repositories.GitRepository = (*StubGitRepository)(nil)

func (s *StubGitRepository) Clone(_ context.Context, repo, dest string) error {
	s.CloneCalls = append(s.CloneCalls, CloneCall{Repo: repo, Dest: dest})
	if s.CloneErr != nil {
		return s.CloneErr
	}
	if s.CreateDest {
		return os.MkdirAll(dest, 0o755)
	}
	return nil
}

func (s *StubGitRepository) Pull(_ context.Context) error {
	s.PullCalls++
	return s.PullErr
}

func (s *StubGitRepository) UpdateSubmodules(_ context.Context) error {
	s.SubmoduleCalls++
	return s.SubmoduleErr
}

func (s *StubGitRepository) InstallHooks() error {
	s.InstallCalls++
	return s.InstallErr
}

func (s *StubGitRepository) StagedFiles(_ string) ([]string, error) {
	return s.StagedResult, s.StagedErr
}

func (s *StubGitRepository) Describe(_ context.Context, dir string) (string, error) {
	s.DescribeDirs = append(s.DescribeDirs, dir)
	return s.DescribeResult, s.DescribeErr
}
