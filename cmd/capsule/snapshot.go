package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/snapshot"
)

const defaultSnapshotFile = "capsule.snap.yaml"

type snapshotOptions struct {
	output  string
	against string
	repo    string
}

func newSnapshotCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record every story's classes, or diff them against a git revision",
		Long: "Without flags the snapshot is printed. With -o it is written to a file.\n" +
			"With --against the snapshot file committed at that revision is compared\n" +
			"with the current classes and the command fails when they differ.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Snapshot file to write (or to read at --against)")
	cmd.Flags().StringVar(&opts.against, "against", "", "Git revision holding the baseline snapshot, e.g. HEAD~1")
	cmd.Flags().StringVar(&opts.repo, "repo", ".", "Path inside the git repository")

	return cmd
}

func runSnapshot(cmd *cobra.Command, rootFlags *rootFlags, opts *snapshotOptions) error {
	registry, err := loadRegistry(cmd, rootFlags)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, rootFlags)
	if err != nil {
		return err
	}

	snap, err := snapshot.Build(registry)
	if err != nil {
		return newCommandError("snapshot", "resolving stories", err, "Fix the story selection named in the error.")
	}
	current, err := snap.Marshal()
	if err != nil {
		return newCommandError("snapshot", "encoding snapshot", err, "This is a bug; please report it.")
	}

	if opts.against != "" {
		return compareSnapshot(cmd, opts, current)
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(current)
		return err
	}
	if err := snapshot.Write(opts.output, snap); err != nil {
		return newCommandError("snapshot", "writing "+opts.output, err, "Check that the directory exists and is writable.")
	}
	log.WithFields(map[string]any{"path": opts.output, "components": len(snap)}).Info("snapshot written")
	return nil
}

func compareSnapshot(cmd *cobra.Command, opts *snapshotOptions, current []byte) error {
	path := opts.output
	if path == "" {
		path = defaultSnapshotFile
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return newCommandError("snapshot", "resolving "+path, err, "Pass an explicit -o path.")
	}

	baseline, err := snapshot.FromGit(opts.repo, opts.against, abs)
	if err != nil {
		return newCommandError("snapshot", "reading baseline at "+opts.against, err, "Commit a snapshot with 'capsule snapshot -o "+path+"' first.")
	}
	if _, err := snapshot.Parse(opts.against+":"+path, baseline); err != nil {
		return newCommandError("snapshot", "reading baseline at "+opts.against, err, "Regenerate the committed snapshot.")
	}

	unified, stats := snapshot.Compare(baseline, current, opts.against+":"+path, "current")
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "no class drift since %s\n", opts.against)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), unified)
	return fmt.Errorf("class drift since %s: %d added, %d removed", opts.against, stats.Added, stats.Removed)
}
