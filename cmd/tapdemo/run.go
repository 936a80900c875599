package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tapkit"
)

const (
	windowTitle = "tapkit demo"
	screenW     = 640
	screenH     = 480
)

var (
	flagDebug   bool
	flagScript  string
	flagExit    bool
	flagNoSound bool
	flagShots   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the demo window",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	runCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw padded hitboxes")
	runCmd.Flags().StringVar(&flagScript, "script", "", "YAML input script to play back")
	runCmd.Flags().BoolVar(&flagExit, "exit", false, "Quit once the input script finishes")
	runCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable the audible tap tick")
	runCmd.Flags().StringVar(&flagShots, "screenshots", "screenshots", "Directory for script screenshots")
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := tapkit.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.Debug = true
	}

	feedback := tapkit.MultiFeedback{tapkit.VibrateFeedback{}}
	if !flagNoSound {
		tone := tapkit.NewToneFeedback(logger)
		defer tone.Close()
		feedback = append(feedback, tone)
	}

	var runner *tapkit.ScriptRunner
	if flagScript != "" {
		data, err := os.ReadFile(flagScript)
		if err != nil {
			return fmt.Errorf("read script %s: %w", flagScript, err)
		}
		runner, err = tapkit.LoadScript(data)
		if err != nil {
			return err
		}
	}

	g := newGame(cfg, feedback, logger)
	g.runner = runner
	g.exitAfterScript = flagExit
	g.shots.Dir = flagShots
	g.shots.Logger = logger
	if runner != nil {
		runner.OnScreenshot = g.shots.Queue
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
