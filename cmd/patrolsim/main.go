package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/scenes"
	"github.com/automoto/navpatrol/systems"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi/ecs"
)

func rootCmd() *cobra.Command {
	var configFile string
	var assetsDir string
	var agents int
	var ticks int
	var report int
	var seed int64
	c := &cobra.Command{
		Use:   "patrolsim",
		Short: "run the patrol world headless and log agent state",
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
			if cmd.Flags().Changed("seed") {
				config.Pool.Seed = seed
			}
			if err := config.ApplyLogLevel(); err != nil {
				return err
			}
			return run(ticks, report)
		},
	}
	c.Flags().StringVar(&configFile, "config", "", "hjson config overrides")
	c.Flags().StringVar(&assetsDir, "assets", "", "asset directory (default: bundled data)")
	c.Flags().IntVar(&agents, "agents", config.Pool.Count, "number of patrol agents")
	c.Flags().IntVar(&ticks, "ticks", 0, "ticks to run as fast as possible; 0 runs in real time until interrupted")
	c.Flags().IntVar(&report, "report", 60, "ticks between state reports")
	c.Flags().Int64Var(&seed, "seed", 0, "waypoint sampling seed (0 = time based)")
	return c
}

func run(ticks, report int) error {
	sim := scenes.NewSimulation(assets.Open(config.Assets.Dir), config.C.TPS)
	sim.OnTick = func(e *ecs.ECS, tick int) {
		if report > 0 && tick%report == 0 {
			log.Info("tick", "n", tick)
			os.Stdout.WriteString(systems.DebugText(e))
		}
	}

	if ticks > 0 {
		if !sim.WaitForAssets(10 * time.Second) {
			log.Warn("assets still loading, running anyway")
		}
		sim.RunTicks(ticks)
		return nil
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down simulation")
		sim.Stop()
	}()
	sim.Run()
	return nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error("patrolsim failed", "err", err)
		os.Exit(1)
	}
}
