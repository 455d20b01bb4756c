package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var listQuery string

func init() {
	cmd := newListCmd()
	cmd.Flags().StringVar(&listQuery, "query", "", "gjson path to extract from the merged settings")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the merged settings from every file in the chain",
		Long: `The list command folds every settings file that applies to the working
directory into a single view and prints it.

Example:
  confctl list
  confctl list --json
  confctl list --query packageSources
  confctl list --query 'packageSources.nuget\.org.value'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	dirs, err := discoverConfigDirs(workDir)
	if err != nil {
		return err
	}
	files, err := openChain(dirs)
	if err != nil {
		return err
	}
	merged := mergedSections(files)

	if listQuery != "" {
		data, err := json.Marshal(sectionsValue(merged))
		if err != nil {
			return err
		}
		result := gjson.GetBytes(data, listQuery)
		if !result.Exists() {
			return fmt.Errorf("no value at query path %q", listQuery)
		}
		fmt.Println(result.String())
		return nil
	}

	if jsonOut {
		return printJSON(sectionsValue(merged))
	}

	for _, name := range sortedNames(merged) {
		fmt.Println(name)
		for _, item := range merged[name].Items() {
			fmt.Printf("  %s", item.Key)
			for _, attr := range sortedNames(item.Attributes) {
				fmt.Printf(" %s=%s", attr, item.Attributes[attr])
			}
			fmt.Println()
		}
	}
	return nil
}
