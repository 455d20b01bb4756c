package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <section> <key>",
		Short: "Print the effective value of one item",
		Long: `The get command prints the attributes of an item as seen through the merged
chain, i.e. the value from the closest file that defines it.

Example:
  confctl get packageSources nuget.org`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(sectionName, key string) error {
	dirs, err := discoverConfigDirs(workDir)
	if err != nil {
		return err
	}
	files, err := openChain(dirs)
	if err != nil {
		return err
	}
	merged := mergedSections(files)

	section, ok := merged[sectionName]
	if !ok {
		return fmt.Errorf("section %q not found", sectionName)
	}
	item, ok := section.Item(key)
	if !ok {
		return fmt.Errorf("item %q not found in section %q", key, sectionName)
	}

	if jsonOut {
		return printJSON(itemValue(item))
	}
	for _, attr := range sortedNames(item.Attributes) {
		fmt.Printf("%s = %s\n", attr, item.Attributes[attr])
	}
	return nil
}
