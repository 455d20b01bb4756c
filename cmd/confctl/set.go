package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robsonj/confstack/internal/settings"
	"github.com/robsonj/confstack/internal/settings/document"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section> <key> [attr=value ...]",
		Short: "Add or update an item in the working directory's settings file",
		Long: `The set command writes to the settings file in the working directory,
creating it on first save. An existing item with the same key is replaced.

Example:
  confctl set packageSources nuget.org value=https://api.nuget.org/v3/index.json
  confctl set packageSources nuget.org value=https://api.nuget.org/v3/index.json protocolVersion=3`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1], args[2:])
		},
	}
}

func runSet(sectionName, key string, attrArgs []string) error {
	attrs, err := parseAttrs(attrArgs)
	if err != nil {
		return err
	}

	f, err := settings.Open(workDir, configFileName)
	if err != nil {
		return err
	}
	if err := f.AddOrUpdate(sectionName, document.NewItem(key, attrs)); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return err
	}

	fmt.Printf("set %s/%s in %s\n", sectionName, key, f.Path())
	return nil
}

// parseAttrs parses attr=value arguments into an attribute map.
func parseAttrs(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected attr=value", arg)
		}
		attrs[name] = value
	}
	return attrs, nil
}
