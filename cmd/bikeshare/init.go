package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/bikeshare/internal/config"
)

// templatePath is the embedded configuration template.
const templatePath = "templates/bikeshare.yaml"

//go:embed templates/bikeshare.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new bikeshare configuration file",
		Long: `Initialize creates a new .bikeshare configuration file in the current directory.

The generated file includes:
- The data directory and text encoding of the city files
- The number of raw rows shown per page
- The city to file name mapping, ready to extend with new cities

Examples:
  # Create .bikeshare in current directory
  bikeshare init

  # Create config file at a specific path
  bikeshare init -o ~/.config/bikeshare/config.yaml

  # Force overwrite existing file
  bikeshare init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}
	settings, err := describeTemplate(content)
	if err != nil {
		return fmt.Errorf("invalid config template: %w", err)
	}

	if err := writeConfigFile(outputPath, content, force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure:")
	for _, s := range settings {
		fmt.Fprintf(out, "  - %s\n", s)
	}

	return nil
}

// writeConfigFile writes content to path, creating parent directories.
// An existing file is only replaced when force is set.
func writeConfigFile(path string, content []byte, force bool) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("configuration path is a directory: %s", path)
		}
		if !force {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

// describeTemplate checks that content is a valid configuration file and
// lists its top-level keys, each with the first line of its comment.
func describeTemplate(content []byte) ([]string, error) {
	var file config.File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("template is not a mapping")
	}

	root := doc.Content[0]
	settings := make([]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		if summary := commentSummary(key.HeadComment); summary != "" {
			settings = append(settings, key.Value+": "+summary)
		} else {
			settings = append(settings, key.Value)
		}
	}
	return settings, nil
}

// commentSummary returns the first line of the last paragraph of a YAML
// head comment, without the leading "#".
func commentSummary(comment string) string {
	paragraphs := strings.Split(strings.TrimSpace(comment), "\n\n")
	lines := strings.Split(paragraphs[len(paragraphs)-1], "\n")
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[0]), "#"))
}
