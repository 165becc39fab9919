// Package main provides the kittidrives CLI: walks a KITTI dataset root
// and converts every drive into its own video.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/drivereel/pkg/adapters/autoencoder"
	"github.com/user/drivereel/pkg/adapters/imagedecoder"
	"github.com/user/drivereel/pkg/adapters/logger"
	"github.com/user/drivereel/pkg/adapters/osfilesystem"
	"github.com/user/drivereel/pkg/config"
	"github.com/user/drivereel/pkg/orchestrator"
	"github.com/user/drivereel/pkg/ports"
	"github.com/user/drivereel/pkg/stages/convert"
	"github.com/user/drivereel/pkg/summarizer"
)

// CLI defines the command-line interface.
type CLI struct {
	KittiRoot string  `required:"" type:"existingdir" help:"Path to the root of the KITTI Eigen split dataset."`
	OutputDir string  `help:"Directory for the generated videos (default: kitti_videos)."`
	FPS       float64 `help:"Frames per second for the output videos (default: 10.0, standard for KITTI)."`
	Config    string  `short:"c" type:"existingfile" help:"Optional YAML config file."`

	LogLevel string           `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool             `short:"Q" help:"Suppress all log output."`
	Version  kong.VersionFlag `help:"Show version information."`
}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("kittidrives"),
		kong.Description("Process KITTI dataset drives into individual videos."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("kittidrives version %s", version)},
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the batch conversion.
func (cmd *CLI) Run() error {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	// Flags override config file values.
	if cmd.OutputDir != "" {
		cfg.OutputDir = cmd.OutputDir
	}
	if cmd.FPS != 0 {
		cfg.FPS = cmd.FPS
	}

	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	fs := osfilesystem.New()

	searchRoot := filepath.Join(cmd.KittiRoot, cfg.Subset)
	isDir, err := fs.IsDir(searchRoot)
	if err != nil {
		return fmt.Errorf("check dataset subset: %w", err)
	}
	if !isDir {
		return errors.New(l10n.F("the %q directory was not found inside %s", cfg.Subset, cmd.KittiRoot))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	stage := convert.NewStage(imagedecoder.New(), autoencoder.New(), fs, log)
	orch := orchestrator.New(stage, fs, log)

	log.Info(l10n.F("Searching for drives in %s", searchRoot))

	summary, runErr := orch.Run(ctx, orchestrator.Config{
		DatasetRoot: searchRoot,
		OutputDir:   cfg.OutputDir,
		FPS:         cfg.FPS,
		Extension:   cfg.Extension,
		Camera:      cfg.Camera,
		Container:   cfg.Container,
	})

	// Print the summary for whatever completed, even on cancellation.
	if summary.Total() > 0 && !cmd.Quiet {
		writer := summarizer.NewWriter(summarizer.NewTextFormatter())
		if err := writer.Write(os.Stdout, summary); err != nil {
			log.Error(l10n.F("Failed to write summary: %s", err))
		}
	}

	return runErr
}
