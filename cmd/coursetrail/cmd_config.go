package main

import (
	"fmt"

	"github.com/coursetrail/coursetrail/internal/config"
)

// cmdConfig shows or initializes configuration
func cmdConfig(args []string) error {
	if len(args) > 0 && args[0] == "init" {
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		dir, err := config.CoursetrailDir()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s/config.yaml\n", dir)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dataDir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	fmt.Println("Configuration")
	fmt.Println("=============")
	fmt.Printf("Storage Backend:    %s\n", cfg.Storage.Backend)
	fmt.Printf("Data Directory:     %s\n", dataDir)
	fmt.Printf("Autosave Interval:  %ds\n", cfg.Player.AutosaveSeconds)
	fmt.Printf("Default Quality:    %s\n", cfg.Player.DefaultQuality)
	fmt.Printf("Subtitles:          %v\n", cfg.Player.SubtitlesEnabled)
	fmt.Printf("Study Increment:    %dm per lesson\n", cfg.Learning.StudyIncrementMinutes)
	return nil
}
