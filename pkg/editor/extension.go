package editor

import (
	"context"
	"fmt"

	"github.com/devenv-toolkit/devsetup/pkg/errors"
	"github.com/devenv-toolkit/devsetup/pkg/toolchain"
)

// InstallExtensions asks the editor CLI to install each extension by
// identifier, inheriting stdio so the editor's own progress output is
// visible. The first non-zero exit aborts with that exit code; whether an
// identifier is valid is the editor's call, not ours.
func InstallExtensions(ctx context.Context, r toolchain.CommandRunner, binary string, ids []string, dir string) error {
	for _, id := range ids {
		code, err := r.Run(ctx, binary, []string{"--install-extension", id}, toolchain.RunOpts{Dir: dir})
		if err != nil {
			return errors.New(errors.ErrInternal, fmt.Sprintf("failed to run %s --install-extension %s", binary, id), err)
		}
		if code != 0 {
			return errors.CommandError(fmt.Sprintf("%s --install-extension %s", binary, id), code)
		}
	}
	return nil
}
