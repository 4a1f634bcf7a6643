package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dtnitsch/skincheck/internal/common"
	"github.com/dtnitsch/skincheck/models"
	"github.com/dtnitsch/skincheck/pkg/inventory"
	"github.com/dtnitsch/skincheck/pkg/manifest"
	"github.com/dtnitsch/skincheck/pkg/skinini"
	"github.com/dtnitsch/skincheck/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Exit codes used with --strict.
const (
	ExitMissingAssets = 1
	ExitNotFound      = 2
)

// ErrTargetNotFound is returned by Run when the target directory does not exist.
var ErrTargetNotFound = errors.New("target directory not found")

// validateFields rejects --fields for text output and for keys the report
// does not have.
func validateFields(config *models.CheckConfig) error {
	if config.Fields == "" {
		return nil
	}
	if config.Format == models.FormatText || config.Format == "" {
		return fmt.Errorf("--fields applies to yaml and json output only")
	}
	shape := &inventory.Report{Skin: &skinini.Metadata{}}
	if _, err := common.FilterResultFields(shape, config.Fields); err != nil {
		return fmt.Errorf("invalid --fields: %w", err)
	}
	return nil
}

func CheckAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	} else if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))

	m, err := manifest.Default()
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	format, err := models.ParseOutputFormat(c.String("format"))
	if err != nil {
		return fmt.Errorf("invalid --format: %w", err)
	}

	// Initialize runtime config from CLI flags
	config := &models.CheckConfig{
		Dir:        m.TargetDir,
		Format:     format,
		OutputPath: c.String("output"),
		Fields:     c.String("fields"),
		Strict:     c.Bool("strict"),
	}
	if c.IsSet("dir") {
		config.Dir = c.String("dir")
	}
	if c.NArg() > 0 {
		config.Dir = c.Args().First()
	}

	report, err := Run(c.App.Writer, logger, m, config)
	switch {
	case errors.Is(err, ErrTargetNotFound):
		if config.Strict {
			return cli.Exit("", ExitNotFound)
		}
		return nil
	case err != nil:
		return err
	}

	if config.Strict && !report.Complete() {
		logger.Warn("required assets missing",
			"missing", report.RequiredTotals.Total-report.RequiredTotals.Found)
		return cli.Exit("", ExitMissingAssets)
	}
	return nil
}

// Run performs one check of config.Dir against m and writes the rendered
// report to out, or to config.OutputPath when set. A missing directory is
// reported on out as a single line and returned as ErrTargetNotFound.
func Run(out io.Writer, logger *slog.Logger, m *models.AssetManifest, config *models.CheckConfig) (*inventory.Report, error) {
	if err := validateFields(config); err != nil {
		return nil, err
	}

	s := &storage.Storage{}

	if !s.Exists(config.Dir) {
		if err := RenderNotFound(out, config.Dir); err != nil {
			return nil, err
		}
		logger.Debug("target directory does not exist", "dir", config.Dir)
		return nil, ErrTargetNotFound
	}

	absDir, err := filepath.Abs(config.Dir)
	if err != nil {
		absDir = config.Dir
	}

	snapshot := s.ScanPNG(config.Dir)
	logger.Debug("scanned directory", "dir", absDir, "png_files", len(snapshot))

	report := inventory.Build(m, absDir, snapshot)

	meta, err := skinini.Load(s, config.Dir)
	if err != nil {
		logger.Warn("skipping unreadable skin.ini", "dir", absDir, "error", err)
	}
	report.Skin = meta

	logger.Info("check complete",
		"dir", absDir,
		"required_found", report.RequiredTotals.Found,
		"required_total", report.RequiredTotals.Total,
		"extra", len(report.Extra),
		"hd_variants", len(report.HDVariants))

	if config.OutputPath == "" {
		if err := Render(out, report, config.Format, config.Fields); err != nil {
			return nil, fmt.Errorf("failed to render report: %w", err)
		}
		return report, nil
	}

	var buf bytes.Buffer
	if err := Render(&buf, report, config.Format, config.Fields); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	if err := s.SaveFile(config.OutputPath, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("report saved", "path", config.OutputPath, "format", string(config.Format))
	return report, nil
}
