package core

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/packup/packup/pkg/archive"
	"github.com/packup/packup/pkg/errors"
	"github.com/packup/packup/pkg/filesystem"
	"github.com/packup/packup/pkg/logging"
	"github.com/packup/packup/pkg/paths"
	"github.com/packup/packup/pkg/rules"
	"github.com/packup/packup/pkg/scanner"
	"github.com/packup/packup/pkg/staging"
	"github.com/packup/packup/pkg/types"
)

// DeployOptions contains options for the Deploy operation
type DeployOptions struct {
	// Root is the project directory to package
	Root string
	// Output is the destination archive path. Relative paths are
	// resolved against Root.
	Output string
	// Rules is the exclusion rule set applied to every file
	// (optional, defaults to an empty set)
	Rules *rules.Set
	// Workers caps concurrent staging copies (minimum 1)
	Workers int
	// DryRun classifies and reports without staging or writing
	DryRun bool
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
	// StagingDir overrides the base directory for staging areas
	// (optional, defaults to the platform staging base)
	StagingDir string
}

// Deploy walks the project tree under opts.Root, filters it through the
// exclusion rules, stages the surviving files, and writes them into a
// zip archive at opts.Output. The staging area is destroyed before
// Deploy returns, on every path.
func Deploy(ctx context.Context, opts DeployOptions) (*types.RunResult, error) {
	log := logging.GetLogger("core.deploy")
	start := time.Now()

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	ruleset := opts.Rules
	if ruleset == nil {
		ruleset = rules.NewSet(nil, nil, nil)
	}

	root, err := filepath.Abs(paths.ExpandHome(opts.Root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to resolve root path %s", opts.Root)
	}

	output := paths.ExpandHome(opts.Output)
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	log.Debug().
		Str("root", root).
		Str("output", output).
		Int("rules", ruleset.Len()).
		Bool("dryRun", opts.DryRun).
		Msg("Starting deploy")

	var (
		stats    types.RunStats
		selected []types.FileEntry
		topLevel = map[string]struct{}{}
	)

	sc := scanner.NewWithFS(fs)
	err = sc.Walk(ctx, root, func(entry types.FileEntry) error {
		if entry.AbsPath == output {
			// A previous run's archive never packages itself.
			stats.Skipped++
			return nil
		}

		cand, err := rules.NewCandidate(entry.RelPath)
		if err != nil {
			return err
		}

		cls, rule := ruleset.ClassifyRule(cand)
		if cls == rules.Excluded {
			stats.Skipped++
			log.Trace().
				Str("path", entry.RelPath).
				Str("rule", rule.Description()).
				Msg("File excluded")
			return nil
		}

		stats.Included++
		selected = append(selected, entry)
		topLevel[topSegment(entry.RelPath)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("included", stats.Included).
		Int("skipped", stats.Skipped).
		Msg("Classification complete")

	if opts.DryRun {
		return &types.RunResult{
			Command:     types.ModeDeploy,
			Destination: output,
			Stats:       stats,
			Entries:     sortedKeys(topLevel),
			DryRun:      true,
			Elapsed:     time.Since(start),
			Timestamp:   time.Now(),
		}, nil
	}

	stagingBase := opts.StagingDir
	if stagingBase == "" {
		stagingBase = paths.StagingBaseDir()
	}

	area, err := staging.New(fs, stagingBase)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := area.Destroy(); err != nil {
			log.Warn().Err(err).Str("dir", area.Root()).Msg("Failed to destroy staging area")
		}
	}()

	if err := area.StageAll(ctx, selected, opts.Workers); err != nil {
		return nil, err
	}

	archStats, err := archive.New(fs).WriteDir(area.Root(), output)
	if err != nil {
		return nil, err
	}

	if err := area.Destroy(); err != nil {
		return nil, err
	}

	result := &types.RunResult{
		Command:     types.ModeDeploy,
		Destination: output,
		Stats:       stats,
		Archive:     archStats,
		Entries:     sortedKeys(topLevel),
		Elapsed:     time.Since(start),
		Timestamp:   time.Now(),
	}

	log.Info().
		Str("destination", output).
		Int("included", stats.Included).
		Int("skipped", stats.Skipped).
		Int("archived", archStats.Files).
		Msg("Deploy complete")

	return result, nil
}

// topSegment returns the first segment of a slash-separated relative
// path.
func topSegment(rel string) string {
	if idx := strings.Index(rel, "/"); idx >= 0 {
		return rel[:idx]
	}
	return rel
}

// sortedKeys flattens a string set into a sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
