package repositories

import (
	"context"

	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// EnvRepository resolves one repository's isolated environment. The
// resolution happens with the working directory at the repository root;
// relative environment paths resolve against it.
//
// Priority: link to parentEnv when handed down from a depending repo,
// else link to the environment of the parentRepo peer directory
// (../<parentRepo>), else create a new environment with venvBin. An
// environment path that already exists is left untouched.
type EnvRepository interface {
	Ensure(
		ctx context.Context,
		env *entities.Environment,
		venvBin, parentEnv, parentRepo string,
	) (string, error)
}
