package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sheetforge/dnd5e/internal/config"
	"github.com/sheetforge/dnd5e/internal/domain/character"
	rulebook "github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e"
	"github.com/sheetforge/dnd5e/internal/domain/rulebook/dnd5e/srd"
	"github.com/sheetforge/dnd5e/internal/errors"
	"github.com/sheetforge/dnd5e/internal/sheet"
)

var (
	buildName     string
	buildClass    string
	buildLevel    int
	buildSubclass string
	buildChoices  []string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compose a character and print its sheet",
	RunE:  runBuild,
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the available classes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := srd.Register(); err != nil {
			return err
		}
		for _, name := range srd.ClassNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildName, "name", "Adventurer", "character name")
	buildCmd.Flags().StringVar(&buildClass, "class", "", "class name (required)")
	buildCmd.Flags().IntVar(&buildLevel, "level", 1, "class level, 1-20")
	buildCmd.Flags().StringVar(&buildSubclass, "subclass", "", "subclass name, matched case-insensitively")
	buildCmd.Flags().StringArrayVar(&buildChoices, "choice", nil, "feature choice, repeatable (e.g. --choice archery)")
	if err := buildCmd.MarkFlagRequired("class"); err != nil {
		log.Fatalf("Failed to mark class flag required: %v", err)
	}
}

func runBuild(cmd *cobra.Command, _ []string) error {
	// Load .env file, if present
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))

	if err := srd.Register(); err != nil {
		return errors.Wrap(err, "failed to register rule data")
	}

	def, ok := srd.Class(buildClass)
	if !ok {
		return errors.Newf(errors.CodeNotFound, "unknown class %q (available: %s)",
			buildClass, strings.Join(srd.ClassNames(), ", "))
	}

	char := character.NewCharacter(buildName)
	if _, err := rulebook.NewCharClass(def, rulebook.CharClassConfig{
		Level:          buildLevel,
		Owner:          char,
		Subclass:       buildSubclass,
		FeatureChoices: buildChoices,
		Logger:         logger,
	}); err != nil {
		return errors.Wrap(err, "failed to compose class")
	}

	fmt.Fprint(cmd.OutOrStdout(), sheet.NewRenderer(cfg.Sheet.Width).Render(char))
	return nil
}
