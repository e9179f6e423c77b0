package main

import (
	"image"
	"os"

	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/scenes"
	"github.com/automoto/navpatrol/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.PatrolScene
}

func NewGame(scene *scenes.PatrolScene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func rootCmd() *cobra.Command {
	var configFile string
	var agents int
	var assetsDir string
	c := &cobra.Command{
		Use:   "navpatrol",
		Short: "patrol agents walking a navmesh, with a player to steer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := config.LoadFile(configFile); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("agents") {
				config.Pool.Count = agents
			}
			if cmd.Flags().Changed("assets") {
				config.Assets.Dir = assetsDir
			}
			if err := config.ApplyLogLevel(); err != nil {
				return err
			}
			return run()
		},
	}
	c.Flags().StringVar(&configFile, "config", "", "hjson config overrides")
	c.Flags().IntVar(&agents, "agents", config.Pool.Count, "number of patrol agents")
	c.Flags().StringVar(&assetsDir, "assets", "", "asset directory (default: bundled data)")
	return c
}

func run() error {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and restore the last player pose
	var saved *systems.SavedPose
	if config.Persistence.Enabled {
		if err := systems.InitPersistence(config.Persistence.AppName); err == nil {
			saved, _ = systems.LoadPlayerPose()
		}
	}

	scene := scenes.NewPatrolScene(assets.Open(config.Assets.Dir), saved)
	err := ebiten.RunGame(NewGame(scene))

	if config.Persistence.Enabled && scene.ECS() != nil {
		_ = systems.SavePlayerPose(systems.CurrentPlayerPose(scene.ECS()))
	}
	// RunGame returns nil when Update ends with ebiten.Termination
	return err
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error("navpatrol failed", "err", err)
		os.Exit(1)
	}
}
