package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Vinillian/daily-tracker/internal/diary"
	"github.com/Vinillian/daily-tracker/internal/project"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Rewrite all stored documents through the migration pass",
		Action: func(c *cli.Context) error {
			diarySvc, err := diaryService(c)
			if err != nil {
				return err
			}
			projectSvc, err := projectService(c)
			if err != nil {
				return err
			}
			return runMigrate(diarySvc, projectSvc)
		},
	}
}

// runMigrate persists the load-time migration for every stored
// document: day tasks get categories and stable identifiers backfilled,
// legacy flat projects get their sectioned shape written out.
func runMigrate(diarySvc *diary.Service, projectSvc *project.Service) error {
	changed, err := diarySvc.MigrateAll()
	if err != nil {
		return err
	}
	for _, key := range changed {
		fmt.Println("migrated day", key)
	}

	names, err := projectSvc.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		p, err := projectSvc.Load(name)
		if err != nil {
			return err
		}
		if err := projectSvc.Save(name, p); err != nil {
			return err
		}
	}

	fmt.Printf("Migration done: %d day(s) changed, %d project(s) rewritten.\n",
		len(changed), len(names))
	return nil
}
