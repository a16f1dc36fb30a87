package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Vinillian/daily-tracker/internal/config"
	"github.com/Vinillian/daily-tracker/internal/diary"
	"github.com/Vinillian/daily-tracker/internal/project"
	"github.com/Vinillian/daily-tracker/internal/state"
)

// verbose tracks the global --verbose flag for use by main.
var verbose bool

// Execute runs the tracker CLI. It returns the verbose flag value and any error.
func Execute() (bool, error) {
	app := &cli.App{
		Name:    "daily-tracker",
		Usage:   "Personal daily planner and project tracker",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable verbose output",
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "storage root directory (overrides DAILY_TRACKER_HOME)",
			},
		},
		Before: func(c *cli.Context) error {
			verbose = c.Bool("verbose")
			return nil
		},
		Commands: []*cli.Command{
			dayCmd(),
			projectCmd(),
			stateCmd(),
			migrateCmd(),
		},
	}

	err := app.Run(os.Args)
	return verbose, err
}

// loadConfig resolves configuration honoring the global --root flag.
func loadConfig(c *cli.Context) (config.Config, error) {
	return config.Load(c.String("root"))
}

func diaryService(c *cli.Context) (*diary.Service, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return diary.NewService(cfg.DiaryDir(), cfg.TemplatesDir())
}

func projectService(c *cli.Context) (*project.Service, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return project.NewService(cfg.ProjectsDir(), cfg.ProjectTemplatesDir())
}

func stateService(c *cli.Context) (*state.Service, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return state.NewService(cfg.ConfigDir())
}
