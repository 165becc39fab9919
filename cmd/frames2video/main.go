// Package main provides the frames2video CLI: one frame folder in, one
// video out.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/drivereel/pkg/adapters/autoencoder"
	"github.com/user/drivereel/pkg/adapters/imagedecoder"
	"github.com/user/drivereel/pkg/adapters/logger"
	"github.com/user/drivereel/pkg/adapters/osfilesystem"
	"github.com/user/drivereel/pkg/pipeline"
	"github.com/user/drivereel/pkg/ports"
	"github.com/user/drivereel/pkg/stages/convert"
)

// CLI defines the command-line interface.
type CLI struct {
	ImageFolder string  `short:"i" required:"" type:"existingdir" help:"Folder containing the image frames."`
	Output      string  `short:"o" default:"output.mp4" help:"Output video file path (.mp4 or .avi)."`
	FPS         float64 `default:"10.0" help:"Frames per second for the output video."`
	Ext         string  `default:"png" help:"File extension of the images (e.g. png, jpg)."`

	LogLevel string           `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool             `short:"Q" help:"Suppress all log output."`
	Version  kong.VersionFlag `help:"Show version information."`
}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("frames2video"),
		kong.Description("Convert a folder of numbered image frames into a video without altering resolution."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("frames2video version %s", version)},
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the conversion.
func (cmd *CLI) Run() error {
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
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

	fs := osfilesystem.New()
	stage := convert.NewStage(imagedecoder.New(), autoencoder.New(), fs, log)

	log.Info(l10n.F("Converting %s to %s at %.1f fps...", cmd.ImageFolder, cmd.Output, cmd.FPS))

	result, err := stage.Execute(ctx, pipeline.ConvertInput{
		Folder:     cmd.ImageFolder,
		OutputPath: cmd.Output,
		FPS:        cmd.FPS,
		Extension:  cmd.Ext,
	})
	if err != nil {
		return err
	}

	log.Info(l10n.F("Saved %s (%d frames, %dx%d)", result.OutputPath, result.FrameCount, result.Width, result.Height))
	return nil
}
