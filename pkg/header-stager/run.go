package headerstager

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/hstage/pkg/logger"
)

const rule = "---------------------------------------"

// Run wipes the destination and stages headers, proxies, libraries and docs into it.
// The run log is archived as DescriptionFile once everything else succeeded.
func (h *realHeaderStager) Run(ctx context.Context) (Result, error) {
	result := Result{Started: h.now()}
	log := h.deps.Logger
	dest := h.config.DestPath()

	log.Logf("%s started at %s", ToolName, result.Started.Format(logger.TimestampLayout))

	h.VerbosePrint("Removing %s", dest)
	if err := h.deps.FS.RemoveAll(dest); err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrCleanDest, dest, err)
	}

	needs, err := h.Needs()
	if err != nil {
		return result, err
	}
	h.VerbosePrint("Loaded %d needed headers from %s", needs.Len(), h.config.LegacyIncludePath())

	staged, err := h.deps.Stager.Stage(ctx, h.config.SourcePath(), needs, dest)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrStageHeaders, err)
	}
	result.Result = staged

	libs, err := h.deps.Stager.StageArtifacts(h.config.LibPath(), h.config.LibPattern, filepath.Join(dest, LibDir))
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrStageLibs, err)
	}
	result.Libraries = libs

	docs, err := h.deps.Stager.StageArtifacts(h.config.DocPath(), h.config.DocPattern, filepath.Join(dest, DocDir))
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrStageDocs, err)
	}
	result.Docs = docs

	if err := h.archiveLog(dest); err != nil {
		return result, err
	}

	result.Finished = h.now()
	log.Logf("%s finished at %s: %d headers, %d proxies, %d diagnostics, %d libraries, %d docs",
		ToolName, result.Finished.Format(logger.TimestampLayout),
		len(result.Headers), len(result.Proxies), len(result.Diagnostics), len(result.Libraries), len(result.Docs))

	return result, nil
}

// archiveLog writes the end banner and copies the log so far into dest.
func (h *realHeaderStager) archiveLog(dest string) error {
	log := h.deps.Logger
	log.Logf("%s  end %s", rule, rule)

	if err := log.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrSyncLog, err)
	}

	target := filepath.Join(dest, DescriptionFile)
	if err := h.deps.FS.CopyFile(log.Path(), target); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchiveLog, target, err)
	}
	return nil
}
