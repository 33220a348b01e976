// Package provision wires the inventory, key generator, and config sink
// into the sequential provisioning pipeline. Records are processed strictly
// in inventory order; a skip or failure of one record never aborts the run.
// Only config-file I/O errors are fatal.
package provision

import (
	"fmt"
	"io"
	"os"

	"github.com/0xjuang/portal22/internal/config"
	"github.com/0xjuang/portal22/internal/keygen"
	"github.com/0xjuang/portal22/internal/logger"
	"github.com/0xjuang/portal22/internal/sshconf"
	"github.com/0xjuang/portal22/internal/ui"
)

// Runner holds the injected capabilities for one provisioning run.
type Runner struct {
	Paths  config.Paths
	Keygen keygen.Generator
	Log    logger.Logger
	Out    io.Writer // user-facing progress output
}

// New returns a Runner with the given paths and generator, logging through
// log and printing progress to out.
func New(paths config.Paths, gen keygen.Generator, log logger.Logger, out io.Writer) *Runner {
	return &Runner{Paths: paths, Keygen: gen, Log: log, Out: out}
}

// Apply provisions every machine: ensures a keypair exists at the derived
// path and appends the corresponding config block to the sink. The sentinel
// header is written first, at most once per config file lifetime.
func (r *Runner) Apply(machines []config.Machine, sink sshconf.Sink) error {
	if err := sink.WriteHeaderOnce(); err != nil {
		return err
	}

	for _, m := range machines {
		if err := r.applyOne(m, sink); err != nil {
			return err
		}
	}

	return nil
}

// applyOne handles a single record. Validation skips and keygen failures
// return nil so the batch continues; sink errors propagate as fatal.
func (r *Runner) applyOne(m config.Machine, sink sshconf.Sink) error {
	if field := m.MissingField(); field != "" {
		r.printSkip(m, field)
		return nil
	}

	keyPath := r.Paths.KeyPath(m)
	if exists(keyPath) {
		fmt.Fprintf(r.Out, "%s key already exists: %s\n", ui.SymbolSkipped, keyPath)
	} else {
		if err := r.Keygen.Generate(keyPath, m.Comment()); err != nil {
			// No config block for a machine whose key was never created.
			fmt.Fprintf(r.Out, "%s key generation failed for %s, skipping config entry\n",
				ui.SymbolFail, m.Hostname)
			r.Log.Error("keygen failed for %s: %v", m.Hostname, err)
			return nil
		}
		fmt.Fprintf(r.Out, "%s generated key for %s at %s\n", ui.SymbolSuccess, m.Hostname, keyPath)
	}

	// The block is appended even when the key already existed: key
	// idempotency and config-block idempotency are independent, so
	// re-runs append duplicate blocks. See `portal22 doctor`, which
	// reports duplicate aliases rather than this silently deduplicating.
	return sink.AppendBlock(sshconf.NewBlock(m, keyPath).Render())
}

// Preview reports what Apply would do, without touching the filesystem or
// invoking ssh-keygen. No directories are created and no file handles are
// opened; existence checks are the only filesystem access.
func (r *Runner) Preview(machines []config.Machine) {
	for _, m := range machines {
		if field := m.MissingField(); field != "" {
			r.printSkip(m, field)
			continue
		}

		keyPath := r.Paths.KeyPath(m)
		if exists(keyPath) {
			fmt.Fprintf(r.Out, "%s key already exists: %s\n", ui.SymbolSkipped, keyPath)
		} else {
			fmt.Fprintf(r.Out, "%s [dry-run] would generate key: %s\n", ui.SymbolPreview, keyPath)
		}

		fmt.Fprintf(r.Out, "%s [dry-run] would append to SSH config:\n%s",
			ui.SymbolPreview, sshconf.NewBlock(m, keyPath).Render())
	}
}

// printSkip emits the validation skip diagnostic for a record, naming the
// missing field and the hostname when one is available.
func (r *Runner) printSkip(m config.Machine, field string) {
	if field == "hostname" {
		fmt.Fprintf(r.Out, "%s machine entry has no hostname, skipping\n", ui.SymbolSkipped)
	} else {
		fmt.Fprintf(r.Out, "%s no %s for %s, skipping\n", ui.SymbolSkipped, field, m.Hostname)
	}
	r.Log.Debug("skipped record: missing %s", field)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
