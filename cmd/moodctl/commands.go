package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
	"github.com/yourname/moodjournal/internal/config"
	"github.com/yourname/moodjournal/internal/insight"
	"github.com/yourname/moodjournal/internal/mentor"
	"github.com/yourname/moodjournal/internal/service"
	"github.com/yourname/moodjournal/internal/storage"
)

type cli struct {
	out       io.Writer
	file      string
	seed      int64
	tz        string
	configDir string
	now       func() time.Time
}

func newRootCommand(out io.Writer) *cobra.Command {
	c := &cli{out: out, now: time.Now}

	root := &cobra.Command{
		Use:           "moodctl",
		Short:         "Offline tools for the mood journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.configDir, "config", ".", "Directory holding the .env file")

	insights := &cobra.Command{
		Use:   "insights",
		Short: "Compute insights from an exported bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInsights()
		},
	}
	note := &cobra.Command{
		Use:   "mentor",
		Short: "Write the mentor note for an exported bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMentor()
		},
	}
	for _, cmd := range []*cobra.Command{insights, note} {
		cmd.Flags().StringVarP(&c.file, "file", "f", "", "Bundle exported by the app")
		cmd.Flags().Int64Var(&c.seed, "seed", 0, "Seed for text selection (0 picks one from the clock)")
		cmd.Flags().StringVar(&c.tz, "tz", "", "IANA zone used for the greeting")
		_ = cmd.MarkFlagRequired("file")
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Load a bundle into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(cmd.Context())
		},
	}
	importCmd.Flags().StringVarP(&c.file, "file", "f", "", "Bundle to import")
	_ = importCmd.MarkFlagRequired("file")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the configured user's data as a bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context())
		},
	}

	root.AddCommand(insights, note, importCmd, exportCmd)
	return root
}

// snapshot turns a bundle into engine input. Bundles written by hand may be
// in any order, so records are sorted newest-first here.
func snapshot(b *service.Bundle, cat *catalog.Catalog) *service.Snapshot {
	records := append([]internal.EmotionRecord(nil), b.Records...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	activities := b.Activities
	if activities == nil {
		activities = cat.DefaultActivityList()
	}
	return &service.Snapshot{Records: records, Activities: activities, Profile: b.Profile}
}

func (c *cli) readBundle() (*service.Bundle, error) {
	f, err := os.Open(c.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return service.ParseBundle(f)
}

func (c *cli) engines(cat *catalog.Catalog) (*insight.Engine, *mentor.Engine) {
	seed := c.seed
	if seed == 0 {
		seed = c.now().UnixNano()
	}
	rnd := mentor.NewLockedRand(seed)
	m := mentor.NewEngine(cat, rnd)
	return insight.NewEngine(cat, rnd, m), m
}

func (c *cli) localNow() (time.Time, error) {
	now := c.now()
	if c.tz == "" {
		return now, nil
	}
	loc, err := time.LoadLocation(c.tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --tz: %w", err)
	}
	return now.In(loc), nil
}

func (c *cli) runInsights() error {
	b, err := c.readBundle()
	if err != nil {
		return err
	}
	now, err := c.localNow()
	if err != nil {
		return err
	}
	cat := catalog.Default()
	snap := snapshot(b, cat)
	ins, _ := c.engines(cat)
	return c.print(ins.Compute(snap.Records, snap.Profile, snap.Activities, now))
}

func (c *cli) runMentor() error {
	b, err := c.readBundle()
	if err != nil {
		return err
	}
	now, err := c.localNow()
	if err != nil {
		return err
	}
	cat := catalog.Default()
	snap := snapshot(b, cat)
	_, m := c.engines(cat)
	return c.print(m.GenerateNote(snap.Records, snap.Profile, now))
}

// openStore connects to the configured backend as the configured local user.
func (c *cli) openStore(ctx context.Context) (storage.Store, *internal.User, *internal.ZapLogger, error) {
	cfg, err := config.Load(c.configDir)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := internal.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := storage.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return store, &internal.User{ID: cfg.AuthUserID}, logger, nil
}

func (c *cli) runImport(ctx context.Context) error {
	b, err := c.readBundle()
	if err != nil {
		return err
	}
	store, user, logger, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer store.Close()

	sum, err := service.Import(ctx, store, catalog.Default(), user, b)
	if err != nil {
		return err
	}
	logger.Infof("imported %d records for %s", sum.Records, user.ID)
	return c.print(sum)
}

func (c *cli) runExport(ctx context.Context) error {
	store, user, logger, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer store.Close()

	b, err := service.Export(ctx, store, user)
	if err != nil {
		return err
	}
	return c.print(b)
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
