package cli

import (
	"context"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/names"
	"github.com/roach88/avatarhash/internal/store"
)

// openRegistry opens the store at opts.DB, or reports E002 when --db is unset.
func openRegistry(opts *RootOptions, formatter *OutputFormatter) (*store.Store, error) {
	if opts.DB == "" {
		return nil, formatter.Fail(ExitCommandError, ErrCodeInvalidArg, "--db (or AVATARHASH_DB) is required", nil)
	}
	st, err := store.Open(opts.DB, store.WithLogger(opts.logger()))
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeRegistry, "failed to open registry", err)
	}
	formatter.VerboseLog("Opened registry %s", opts.DB)
	return st, nil
}

// resolveName looks fp up in the name asset first and then in the registry.
// Sources that are not configured are skipped. source reports where the name
// came from: "names", "db" or "".
func resolveName(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, fp fingerprint.Fingerprint) (name, source string, err error) {
	if opts.Names != "" {
		dir, err := names.Load(opts.Names)
		if err != nil {
			return "", "", formatter.Fail(ExitCommandError, ErrCodeNotFound, "failed to load name asset", err)
		}
		formatter.VerboseLog("Loaded %d name(s) from %s", dir.Len(), opts.Names)
		if name := dir.Lookup(fp.Value); name != "" {
			return name, "names", nil
		}
	}

	if opts.DB != "" {
		st, err := openRegistry(opts, formatter)
		if err != nil {
			return "", "", err
		}
		defer st.Close()

		name, found, err := st.LookupName(ctx, fp)
		if err != nil {
			return "", "", formatter.Fail(ExitCommandError, ErrCodeRegistry, "registry lookup failed", err)
		}
		if found {
			return name, "db", nil
		}
	}

	return "", "", nil
}
