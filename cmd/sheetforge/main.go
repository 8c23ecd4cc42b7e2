// Package main is the entry point for the sheetforge CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheetforge",
	Short: "D&D 5e character sheet generator",
	Long:  `Sheetforge composes D&D 5e classes, subclasses, features and spells into a character and renders it as a plain-text sheet.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(classesCmd)
}
