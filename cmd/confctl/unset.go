package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robsonj/confstack/internal/settings/document"
)

func init() {
	rootCmd.AddCommand(newUnsetCmd())
}

func newUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <section> <key>",
		Short: "Remove an item from the closest file that defines it",
		Long: `The unset command removes an item from the closest settings file in the
chain that defines it. Machine-wide files are never modified.

Example:
  confctl unset packageSources nuget.org`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnset(args[0], args[1])
		},
	}
}

func runUnset(sectionName, key string) error {
	dirs, err := discoverConfigDirs(workDir)
	if err != nil {
		return err
	}
	files, err := openChain(dirs)
	if err != nil {
		return err
	}

	for _, f := range files {
		section, ok := f.LookupSection(sectionName)
		if !ok {
			continue
		}
		if _, ok := section.Item(key); !ok {
			continue
		}
		if err := f.Remove(sectionName, document.NewItem(key, nil)); err != nil {
			return err
		}
		if err := f.Save(); err != nil {
			return err
		}
		fmt.Printf("removed %s/%s from %s\n", sectionName, key, f.Path())
		return nil
	}

	return fmt.Errorf("item %q not found in section %q", key, sectionName)
}
