// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classydev100/react-mindmap/internal/convert"
	"github.com/classydev100/react-mindmap/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an exported map collection to renderer JSON",
	Long: `Convert reads every exported map under the input directory, builds the
collection-wide link table, and writes one normalized JSON map per input
document under the output directory, mirroring the input's subdirectory
structure. Both directories are required.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	if cfg.InputDir == "" || cfg.OutputDir == "" {
		return fmt.Errorf("input and output directories are required: " +
			"pass --input and --output, or set convert.input_dir and " +
			"convert.output_dir in mapconv.yaml")
	}

	_, err := convert.Run(cfg, os.Stdout)
	return err
}

func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	inputDir, _ := cmd.Flags().GetString("input")
	if inputDir == "" {
		inputDir = viper.GetString("convert.input_dir")
	}
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = viper.GetString("convert.output_dir")
	}
	rootMap, _ := cmd.Flags().GetString("root-map")
	if rootMap == "" {
		rootMap = viper.GetString("convert.root_map")
	}

	return types.ConvertConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
		RootMap:   rootMap,
	}
}

func init() {
	convertCmd.Flags().String("input", "", "directory holding the exported map collection")
	convertCmd.Flags().String("output", "", "directory the converted maps are written under")
	convertCmd.Flags().String("root-map", "", "name of the collection's root map (default \""+types.DefaultRootMap+"\")")

	rootCmd.AddCommand(convertCmd)
}
