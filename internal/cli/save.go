package cli

import (
	"fmt"

	"cvision/internal/common"
	"cvision/internal/store"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [resume-file]",
	Short: "Save a resume to the local store",
	Long: `Save a structured resume file as the current working resume in the local
store. With --name, the resume is also snapshotted as a named saved CV
using the store's current template settings, so later edits to the working
resume do not affect it.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

var saveName string

func init() {
	saveCmd.Flags().StringVar(&saveName, "name", "", "Also snapshot the resume as a named saved CV")
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	data, err := common.ParseResumeData(contents[0])
	if err != nil {
		return err
	}

	blobStore, err := store.New(cfg.Store.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	if err := blobStore.SaveResumeData(data); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	logger.Info("Saved working resume", "dir", blobStore.Dir())

	if saveName != "" {
		settings, err := blobStore.Settings()
		if err != nil {
			return fmt.Errorf("failed to load template settings: %w", err)
		}
		saved, err := blobStore.SaveCV(saveName, data, settings)
		if err != nil {
			return fmt.Errorf("failed to snapshot saved CV: %w", err)
		}
		logger.Info("Snapshotted saved CV", "name", saved.Name, "id", saved.ID)
		fmt.Printf("Saved CV %q (%s)\n", saved.Name, saved.ID)
	} else {
		fmt.Println("Saved working resume")
	}

	return nil
}
